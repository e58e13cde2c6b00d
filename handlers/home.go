package handlers

import (
	"net/http"
	"time"

	"lai_landing_go/config"
	"lai_landing_go/middleware"
	"lai_landing_go/services"
	"lai_landing_go/templates/pages"

	"github.com/labstack/echo/v4"
)

// LandingHandler renders the landing page for the visitor's current view state
func LandingHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)
	ctx := c.Request().Context()
	state := middleware.GetViewState(c)

	var messages []string
	if sess := middleware.GetViewSession(c); sess != nil {
		for _, n := range services.ViewStates.PopNotifications(sess) {
			messages = append(messages, notificationText(ctx, n))
		}
	}

	// Saving issues the cookie to new visitors and clears consumed flashes
	if err := middleware.SaveViewState(c, services.ViewStates, state); err != nil {
		c.Logger().Errorf("Failed to save view state: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load page")
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	component := pages.Landing(ctx, pages.LandingViewModel{
		CSRFToken:     middleware.GetCSRFToken(c),
		State:         state,
		HeroImageURL:  cfg.HeroImageURL,
		Notifications: messages,
		SEO:           landingSEO(ctx, cfg.AppURL, cfg.HeroImageURL),
		Year:          time.Now().Year(),
	})
	return render(c, component)
}
