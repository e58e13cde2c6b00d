package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// navLoginLabel extracts the text of the navigation bar login button
func navLoginLabel(t *testing.T, body string) string {
	t.Helper()
	start := strings.Index(body, `id="nav-login"`)
	require.NotEqual(t, -1, start, "login button not rendered")
	rest := body[start:]
	end := strings.Index(rest, "</button>")
	require.NotEqual(t, -1, end)
	rest = rest[:end]
	return rest[strings.LastIndex(rest, ">")+1:]
}

func modalOpen(body string) bool {
	return strings.Contains(body, `role="dialog"`)
}

// notifyMessage decodes the message htmx will raise as a notification
func notifyMessage(t *testing.T, resp *http.Response) string {
	t.Helper()
	header := resp.Header.Get("HX-Trigger")
	if header == "" {
		return ""
	}
	var payload map[string]map[string]string
	require.NoError(t, json.Unmarshal([]byte(header), &payload))
	return payload["lai:notify"]["message"]
}

func named(name string) url.Values {
	return url.Values{"name": {name}}
}

func TestLandingInitialRender(t *testing.T) {
	b := newBrowser(t)

	resp, body := b.get("/")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, resp.Header.Get("Content-Security-Policy"), "'nonce-")
	assert.Equal(t, "Login", navLoginLabel(t, body))
	assert.False(t, modalOpen(body))
	assert.NotContains(t, body, "data-lai-notify")

	// Content sections
	assert.Contains(t, body, "Welcome to LAI - Your Smart Legal Assistant")
	assert.Contains(t, body, "TRY OUT LAI")
	for _, title := range []string{"Immigration", "Matrimonial", "Property", "Personal"} {
		assert.Contains(t, body, title)
	}
	assert.Contains(t, body, "Expert guidance for all your immigration legal matters")
	assert.Contains(t, body, "INSTANT ADVICE!")
	assert.Contains(t, body, "Simplifying Legal Guidance for Everyone")
	assert.Contains(t, body, "Completely confidential")
	assert.Contains(t, body, "LAI - Legal AI Assistant. All rights reserved.")
	assert.Contains(t, body, `data-icon="lucide:scale"`)
	assert.Contains(t, body, `rel="canonical"`)
	assert.Contains(t, body, `hreflang="es"`)

	// The view state cookie is issued on first visit
	var viewCookie bool
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "lai_view" {
			viewCookie = true
			assert.True(t, cookie.HttpOnly)
		}
	}
	assert.True(t, viewCookie)
}

func TestLandingSpanish(t *testing.T) {
	b := newBrowser(t)

	_, body := b.get("/?lang=es")

	assert.Contains(t, body, `lang="es"`)
	assert.Equal(t, "Ingresar", navLoginLabel(t, body))

	// The language sticks through the cookie
	_, body = b.get("/")
	assert.Contains(t, body, `lang="es"`)
}

func TestTryAssistantHTMX(t *testing.T) {
	b := newBrowser(t)
	b.get("/")

	resp, body := b.post("/actions/try", nil, true)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, notifyMessage(t, resp))
	assert.True(t, modalOpen(body))
	assert.Contains(t, body, `hx-swap-oob="true"`)

	resp, body = b.post("/login", url.Values{"email": {""}, "password": {""}}, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, modalOpen(body))
	assert.Equal(t, "Dashboard", navLoginLabel(t, body))

	resp, body = b.post("/actions/try", nil, true)
	assert.Equal(t, "Navigating to AI Assistant...", notifyMessage(t, resp))
	assert.False(t, modalOpen(body))
}

func TestTryAssistantWithoutJavaScript(t *testing.T) {
	b := newBrowser(t)
	b.get("/")

	resp, _ := b.post("/actions/try", nil, false)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	_, body := b.get("/")
	assert.True(t, modalOpen(body), "modal state survives the redirect")
	assert.Equal(t, "Login", navLoginLabel(t, body))

	resp, _ = b.post("/login", nil, false)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	_, body = b.get("/")
	assert.False(t, modalOpen(body))
	assert.Equal(t, "Dashboard", navLoginLabel(t, body))

	b.post("/actions/try", nil, false)
	_, body = b.get("/")
	assert.Contains(t, body, "data-lai-notify")
	assert.Contains(t, body, "Navigating to AI Assistant...")

	// Flashes are shown once
	_, body = b.get("/")
	assert.NotContains(t, body, "data-lai-notify")
}

func TestCancelLoginKeepsFlag(t *testing.T) {
	b := newBrowser(t)
	b.get("/")

	b.post("/login/open", nil, true)
	resp, body := b.post("/login/cancel", named("ignored"), true)
	assert.Empty(t, notifyMessage(t, resp))
	assert.False(t, modalOpen(body))
	assert.Equal(t, "Login", navLoginLabel(t, body))

	b.post("/login/open", nil, true)
	b.post("/login", nil, true)
	b.post("/login/open", nil, true)
	_, body = b.post("/login/cancel", nil, true)
	assert.False(t, modalOpen(body))
	assert.Equal(t, "Dashboard", navLoginLabel(t, body))
}

func TestLoginAcceptsAnyInput(t *testing.T) {
	inputs := []url.Values{
		nil,
		{"email": {""}, "password": {""}},
		{"email": {"not-an-email"}, "password": {"x"}},
		{"email": {"a@b.c"}, "password": {strings.Repeat("p", 500)}},
	}

	for _, form := range inputs {
		b := newBrowser(t)
		b.get("/")
		b.post("/login/open", nil, true)

		resp, body := b.post("/login", form, true)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.False(t, modalOpen(body))
		assert.Equal(t, "Dashboard", navLoginLabel(t, body))
	}
}

func TestSelectServiceNotGated(t *testing.T) {
	b := newBrowser(t)
	b.get("/")

	for _, name := range []string{"Immigration", "Matrimonial", "Property", "Personal"} {
		resp, body := b.post("/actions/service", named(name), true)
		assert.Equal(t, "Navigating to "+name+" service page...", notifyMessage(t, resp))
		assert.False(t, modalOpen(body))
	}

	b.post("/login", nil, true)
	resp, _ := b.post("/actions/service", named("Property"), true)
	assert.Equal(t, "Navigating to Property service page...", notifyMessage(t, resp))
}

func TestActivateFeatureGated(t *testing.T) {
	b := newBrowser(t)
	b.get("/")

	resp, body := b.post("/actions/feature", named("INSTANT ADVICE!"), true)
	assert.Empty(t, notifyMessage(t, resp))
	assert.True(t, modalOpen(body))

	b.post("/login", nil, true)

	resp, body = b.post("/actions/feature", named("INSTANT ADVICE!"), true)
	assert.Equal(t, "Activating feature: INSTANT ADVICE!", notifyMessage(t, resp))
	assert.False(t, modalOpen(body))
}

func TestNavigate(t *testing.T) {
	b := newBrowser(t)
	b.get("/")

	resp, body := b.post("/actions/navigate", named("contact"), true)

	assert.Equal(t, "Navigating to contact page...", notifyMessage(t, resp))
	assert.False(t, modalOpen(body))
}

func TestLabelsAreSanitized(t *testing.T) {
	b := newBrowser(t)
	b.get("/")

	resp, _ := b.post("/actions/service", named(`<script>alert(1)</script>Immigration`), true)

	message := notifyMessage(t, resp)
	assert.NotContains(t, message, "<script>")
	assert.Contains(t, message, "Immigration")
}

func TestOpenCancelRepeatedly(t *testing.T) {
	b := newBrowser(t)
	_, initial := b.get("/")

	for i := 0; i < 20; i++ {
		_, body := b.post("/login/open", nil, true)
		require.True(t, modalOpen(body))
		_, body = b.post("/login/cancel", nil, true)
		require.False(t, modalOpen(body))
	}

	_, body := b.get("/")
	assert.False(t, modalOpen(body))
	assert.Equal(t, navLoginLabel(t, initial), navLoginLabel(t, body))
}

func TestInteractionRequiresCSRFToken(t *testing.T) {
	b := newBrowser(t)
	b.get("/")

	form := url.Values{"_csrf": {"forged"}}
	resp, err := b.client.PostForm(b.server.URL+"/login", form)
	require.NoError(t, err)
	readBody(t, resp)

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	_, body := b.get("/")
	assert.Equal(t, "Login", navLoginLabel(t, body))
}
