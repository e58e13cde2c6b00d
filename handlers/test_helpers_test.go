package handlers

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"lai_landing_go/config"
	"lai_landing_go/middleware"
	"lai_landing_go/services"
	"lai_landing_go/services/i18n"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

const testSessionSecret = "handlers-test-session-secret-0123456789"

func testConfig() *config.Config {
	return &config.Config{
		ServerPort:     "8080",
		Environment:    "test",
		AppURL:         "http://localhost:8080",
		SessionSecret:  testSessionSecret,
		HeroImageURL:   config.DefaultHeroImageURL,
		DefaultLocale:  "en",
		AllowedOrigins: []string{"*"},
	}
}

func setupServices(t *testing.T) {
	t.Helper()
	require.NoError(t, i18n.Load())
	services.InitViewStateStore(testSessionSecret, false)
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Add config to context
	c.Set("config", testConfig())

	return e, c, rec
}

// browser drives a test server the way a visitor's browser would: it keeps
// cookies between requests and posts forms with the CSRF token.
type browser struct {
	t      *testing.T
	server *httptest.Server
	client *http.Client
}

func newBrowser(t *testing.T) *browser {
	t.Helper()
	setupServices(t)

	limiter := func() *middleware.RateLimiter {
		rl := middleware.NewRateLimiter(middleware.RateLimitConfig{Rate: rate.Inf, Burst: 1})
		t.Cleanup(rl.Stop)
		return rl
	}
	e := NewServer(testConfig(), ServerOptions{
		InteractionLimiter: limiter(),
		LoginLimiter:       limiter(),
	})
	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &browser{
		t:      t,
		server: server,
		client: &http.Client{
			Jar: jar,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// get loads a page and returns its body
func (b *browser) get(path string) (*http.Response, string) {
	b.t.Helper()
	resp, err := b.client.Get(b.server.URL + path)
	require.NoError(b.t, err)
	return resp, readBody(b.t, resp)
}

func (b *browser) csrfToken() string {
	b.t.Helper()
	u, err := url.Parse(b.server.URL)
	require.NoError(b.t, err)
	for _, cookie := range b.client.Jar.Cookies(u) {
		if cookie.Name == "_csrf" {
			return cookie.Value
		}
	}
	b.t.Fatal("no CSRF cookie; load the page first")
	return ""
}

// post submits a form. htmx controls whether it is sent the way htmx sends it.
func (b *browser) post(path string, form url.Values, htmx bool) (*http.Response, string) {
	b.t.Helper()
	if form == nil {
		form = url.Values{}
	}
	form.Set("_csrf", b.csrfToken())

	req, err := http.NewRequest(http.MethodPost, b.server.URL+path, strings.NewReader(form.Encode()))
	require.NoError(b.t, err)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}

	resp, err := b.client.Do(req)
	require.NoError(b.t, err)
	return resp, readBody(b.t, resp)
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}
