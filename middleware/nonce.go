package middleware

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
)

type contextKey string

const NonceKey contextKey = "csp_nonce"

// Script and style origins the landing page loads from
const (
	htmxOrigin     = "https://unpkg.com"
	iconifyOrigin  = "https://code.iconify.design"
	iconifyAPI     = "https://api.iconify.design"
	tailwindOrigin = "https://cdn.tailwindcss.com"
)

// GenerateNonce creates a random nonce string
func GenerateNonce() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

// imageOrigin reduces an image URL to the scheme://host form CSP expects
func imageOrigin(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

// CSPNonce generates a nonce for each request, adds it to the context and
// sends a Content-Security-Policy allowing scripts only with that nonce.
// imageURLs are external images the page renders, such as the hero background.
func CSPNonce(imageURLs ...string) echo.MiddlewareFunc {
	imgSrc := []string{"'self'", "data:"}
	for _, raw := range imageURLs {
		if origin := imageOrigin(raw); origin != "" {
			imgSrc = append(imgSrc, origin)
		}
	}
	imgPolicy := strings.Join(imgSrc, " ")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			nonce, err := GenerateNonce()
			if err != nil {
				c.Logger().Errorf("Failed to generate nonce: %v", err)
				nonce = "fallback-nonce-value"
			}

			// Add to Echo context (for handlers)
			c.Set(string(NonceKey), nonce)

			// Add to Request context (for components)
			ctx := context.WithValue(c.Request().Context(), NonceKey, nonce)
			c.SetRequest(c.Request().WithContext(ctx))

			csp := fmt.Sprintf("default-src 'self'; script-src 'self' 'nonce-%s' %s %s %s; style-src 'self' 'unsafe-inline'; img-src %s; connect-src 'self' %s; frame-ancestors 'none'",
				nonce, htmxOrigin, iconifyOrigin, tailwindOrigin, imgPolicy, iconifyAPI)

			c.Response().Header().Set("Content-Security-Policy", csp)

			return next(c)
		}
	}
}

// GetNonce retrieves the nonce from the context
func GetNonce(ctx context.Context) string {
	if val, ok := ctx.Value(NonceKey).(string); ok {
		return val
	}
	return ""
}
