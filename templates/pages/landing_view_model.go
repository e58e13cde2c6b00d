package pages

import "lai_landing_go/models"

// LandingViewModel carries everything the landing page needs to render
type LandingViewModel struct {
	CSRFToken     string
	State         models.ViewState
	HeroImageURL  string
	Notifications []string
	SEO           *models.SEO
	Year          int
}

// ActionViewModel carries what an htmx interaction response re-renders
type ActionViewModel struct {
	CSRFToken string
	State     models.ViewState
}
