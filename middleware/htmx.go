package middleware

import (
	"encoding/json"
	"fmt"

	"github.com/labstack/echo/v4"
)

// NotifyEvent is the client-side event app.js turns into an alert
const NotifyEvent = "lai:notify"

// IsHTMX reports whether the request was issued by htmx
func IsHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

// SetNotifyTrigger asks htmx to raise NotifyEvent with message once the response arrives
func SetNotifyTrigger(c echo.Context, message string) error {
	payload, err := json.Marshal(map[string]map[string]string{
		NotifyEvent: {"message": message},
	})
	if err != nil {
		return fmt.Errorf("failed to encode notify trigger: %w", err)
	}
	c.Response().Header().Set("HX-Trigger", string(payload))
	return nil
}
