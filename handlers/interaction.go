package handlers

import (
	"lai_landing_go/middleware"
	"lai_landing_go/models"
	"lai_landing_go/services"
	"lai_landing_go/services/metrics"

	"github.com/labstack/echo/v4"
)

// interaction applies one visitor action to the view state. label is the
// sanitized "name" form value; actions without a subject ignore it.
type interaction func(state *models.ViewState, label string) services.Outcome

func handleInteraction(c echo.Context, action string, apply interaction) error {
	state := middleware.GetViewState(c)
	label := services.SanitizeLabel(c.FormValue("name"))

	out := apply(&state, label)
	metrics.Default.RecordInteraction(action, out.Label())
	c.Logger().Debugf("interaction %s by visitor %s: %s", action, state.VisitorID, out.Label())

	return respond(c, state, out)
}

// TryAssistantHandler handles the hero call to action
func TryAssistantHandler(c echo.Context) error {
	return handleInteraction(c, services.ActionTryAssistant, func(state *models.ViewState, _ string) services.Outcome {
		return services.TryAssistant(state)
	})
}

// SelectServiceHandler handles service card clicks
func SelectServiceHandler(c echo.Context) error {
	return handleInteraction(c, services.ActionSelectService, services.SelectService)
}

// ActivateFeatureHandler handles key feature clicks
func ActivateFeatureHandler(c echo.Context) error {
	return handleInteraction(c, services.ActionActivateFeature, services.ActivateFeature)
}

// NavigateHandler handles the logo and navigation links
func NavigateHandler(c echo.Context) error {
	return handleInteraction(c, services.ActionNavigate, services.Navigate)
}
