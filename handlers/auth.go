package handlers

import (
	"lai_landing_go/models"
	"lai_landing_go/services"
	"lai_landing_go/services/metrics"

	"github.com/labstack/echo/v4"
)

// OpenLoginHandler opens the login modal from the navigation bar
func OpenLoginHandler(c echo.Context) error {
	return handleInteraction(c, services.ActionOpenLogin, func(state *models.ViewState, _ string) services.Outcome {
		return services.OpenLogin(state)
	})
}

// CancelLoginHandler closes the login modal
func CancelLoginHandler(c echo.Context) error {
	return handleInteraction(c, services.ActionCancelLogin, func(state *models.ViewState, _ string) services.Outcome {
		return services.CancelLogin(state)
	})
}

// LoginPostHandler performs the mock login. There are no accounts: the
// email and password fields are never read and any submission succeeds.
func LoginPostHandler(c echo.Context) error {
	metrics.Default.RecordLoginSubmission()
	return handleInteraction(c, services.ActionSubmitLogin, func(state *models.ViewState, _ string) services.Outcome {
		return services.SubmitLogin(state)
	})
}
