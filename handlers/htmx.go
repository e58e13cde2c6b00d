package handlers

import (
	"context"
	"net/http"

	"lai_landing_go/middleware"
	"lai_landing_go/models"
	"lai_landing_go/services"
	"lai_landing_go/services/i18n"
	"lai_landing_go/templates/pages"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// render writes a component as the HTML response body
func render(c echo.Context, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	return component.Render(c.Request().Context(), c.Response().Writer)
}

// notificationText renders a notification in the request's language
func notificationText(ctx context.Context, n models.Notification) string {
	return i18n.T(ctx, n.MessageKey(), map[string]any{"name": n.Subject})
}

// respond persists the new view state and reports the outcome.
// htmx requests get out-of-band fragments plus a notify event. Plain form
// posts are redirected back to the page, with the notification queued as a flash.
func respond(c echo.Context, state models.ViewState, out services.Outcome) error {
	ctx := c.Request().Context()
	store := services.ViewStates

	if !middleware.IsHTMX(c) {
		if out.Notification != nil {
			if sess := middleware.GetViewSession(c); sess != nil {
				store.AddNotification(sess, *out.Notification)
			}
		}
		if err := middleware.SaveViewState(c, store, state); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/")
	}

	if err := middleware.SaveViewState(c, store, state); err != nil {
		return err
	}
	if out.Notification != nil {
		if err := middleware.SetNotifyTrigger(c, notificationText(ctx, *out.Notification)); err != nil {
			return err
		}
	}

	component := pages.ActionResponse(ctx, pages.ActionViewModel{
		CSRFToken: middleware.GetCSRFToken(c),
		State:     state,
	})
	return render(c, component)
}
