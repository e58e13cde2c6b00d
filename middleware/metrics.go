package middleware

import (
	"errors"
	"net/http"

	"lai_landing_go/services/metrics"

	"github.com/labstack/echo/v4"
)

// Metrics records the status code of every response
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)

			status := c.Response().Status
			if err != nil && !c.Response().Committed {
				// The error handler has not written yet; record what it will send
				status = http.StatusInternalServerError
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				}
			}
			metrics.Default.RecordHTTPStatus(status)
			return err
		}
	}
}
