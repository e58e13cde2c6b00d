package middleware

import (
	"fmt"

	"lai_landing_go/models"
	"lai_landing_go/services"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
)

const (
	viewStateKey   = "view_state"
	viewSessionKey = "view_session"
)

// ViewState loads the visitor's view state from the session cookie before
// the handler runs. Handlers that change it call SaveViewState.
func ViewState(store *services.ViewStateStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			state, sess := store.Load(c.Request())
			c.Set(viewStateKey, state)
			c.Set(viewSessionKey, sess)
			return next(c)
		}
	}
}

// GetViewState returns the state loaded for this request, or the initial state
func GetViewState(c echo.Context) models.ViewState {
	if state, ok := c.Get(viewStateKey).(models.ViewState); ok {
		return state
	}
	return models.ViewState{}
}

// GetViewSession returns the raw session, mainly for flashes
func GetViewSession(c echo.Context) *sessions.Session {
	sess, _ := c.Get(viewSessionKey).(*sessions.Session)
	return sess
}

// SaveViewState stores state on the context and writes the session cookie
func SaveViewState(c echo.Context, store *services.ViewStateStore, state models.ViewState) error {
	sess := GetViewSession(c)
	if sess == nil {
		return fmt.Errorf("view state middleware not installed")
	}
	c.Set(viewStateKey, state)
	if err := store.Save(c.Response(), c.Request(), sess, state); err != nil {
		return fmt.Errorf("failed to save view state: %w", err)
	}
	return nil
}
