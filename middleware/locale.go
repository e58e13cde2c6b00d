package middleware

import (
	"net/http"
	"strings"
	"time"

	"lai_landing_go/config"
	"lai_landing_go/services/i18n"

	"github.com/labstack/echo/v4"
)

const langCookieName = "lang"

// Locale middleware handles language detection and persistence.
// Priority:
// 1. Query param "lang" (sets cookie)
// 2. Cookie "lang"
// 3. Accept-Language header
// 4. Configured default
func Locale(cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			lang := ""

			if q := c.QueryParam("lang"); q != "" {
				lang = q
				if !i18n.IsSupported(lang) {
					lang = i18n.Default()
				}
				SetLanguageCookie(c, lang, cfg.IsProduction())
			} else if cookie, err := c.Cookie(langCookieName); err == nil && i18n.IsSupported(cookie.Value) {
				lang = cookie.Value
			}

			if lang == "" {
				lang = fromAcceptLanguage(c.Request().Header.Get("Accept-Language"))
			}

			c.Set("locale", lang)

			// Components read the locale from the request context
			ctx := i18n.WithLocale(c.Request().Context(), lang)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// fromAcceptLanguage picks the first supported primary tag, e.g. "es-CO,es;q=0.9" -> "es"
func fromAcceptLanguage(header string) string {
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		primary := strings.ToLower(strings.SplitN(tag, "-", 2)[0])
		if i18n.IsSupported(primary) {
			return primary
		}
	}
	return i18n.Default()
}

// SetLanguageCookie remembers the visitor's language for a year
func SetLanguageCookie(c echo.Context, lang string, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     langCookieName,
		Value:    lang,
		Expires:  time.Now().Add(24 * 365 * time.Hour),
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// GetLocale returns the current locale from context
func GetLocale(c echo.Context) string {
	if lang, ok := c.Get("locale").(string); ok {
		return lang
	}
	return i18n.Default()
}
