package services

import (
	"crypto/sha256"
	"encoding/gob"
	"errors"
	"log"
	"net/http"

	"lai_landing_go/models"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
)

const (
	// ViewStateCookieName is the cookie carrying the visitor's view state
	ViewStateCookieName = "lai_view"

	keyVisitorID      = "visitor_id"
	keyLoggedIn       = "logged_in"
	keyShowLoginModal = "show_login_modal"
)

func init() {
	gob.Register(models.Notification{})
}

// ViewStates is the process-wide store, set by InitViewStateStore
var ViewStates *ViewStateStore

// ViewStateStore keeps view state in a signed and encrypted browser-session
// cookie. Nothing is stored on the server.
type ViewStateStore struct {
	store *sessions.CookieStore
}

// InitViewStateStore creates the global store
func InitViewStateStore(secret string, secure bool) {
	ViewStates = NewViewStateStore(secret, secure)
}

// NewViewStateStore builds a cookie store from the session secret.
// An empty secret produces random keys, so state does not survive a restart.
func NewViewStateStore(secret string, secure bool) *ViewStateStore {
	var hashKey, blockKey []byte
	if secret == "" {
		log.Println("[WARNING] No session secret provided, using random view state keys")
		hashKey = securecookie.GenerateRandomKey(64)
		blockKey = securecookie.GenerateRandomKey(32)
	} else {
		hashKey = []byte(secret)
		sum := sha256.Sum256([]byte("view-state:" + secret))
		blockKey = sum[:]
	}

	store := sessions.NewCookieStore(hashKey, blockKey)
	// MaxAge 0 makes it a browser-session cookie: closing the browser drops the state
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   0,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &ViewStateStore{store: store}
}

// Load returns the visitor's view state and the underlying session.
// Missing or tampered cookies yield the initial state with a new visitor ID.
func (s *ViewStateStore) Load(r *http.Request) (models.ViewState, *sessions.Session) {
	sess, err := s.store.Get(r, ViewStateCookieName)
	if err != nil {
		var scErr securecookie.Error
		if errors.As(err, &scErr) && scErr.IsDecode() {
			log.Printf("[WARNING] Discarding unreadable view state cookie from %s", r.RemoteAddr)
		} else {
			log.Printf("[WARNING] Failed to read view state: %v", err)
		}
		sess.Values = make(map[any]any)
		sess.IsNew = true
	}

	var state models.ViewState
	state.VisitorID, _ = sess.Values[keyVisitorID].(string)
	state.LoggedIn, _ = sess.Values[keyLoggedIn].(bool)
	state.ShowLoginModal, _ = sess.Values[keyShowLoginModal].(bool)

	if state.IsNew() {
		state.VisitorID = uuid.NewString()
	}
	return state, sess
}

// Save writes state back into the session cookie
func (s *ViewStateStore) Save(w http.ResponseWriter, r *http.Request, sess *sessions.Session, state models.ViewState) error {
	sess.Values[keyVisitorID] = state.VisitorID
	sess.Values[keyLoggedIn] = state.LoggedIn
	sess.Values[keyShowLoginModal] = state.ShowLoginModal
	return sess.Save(r, w)
}

// AddNotification queues a notification for the next full page render
func (s *ViewStateStore) AddNotification(sess *sessions.Session, n models.Notification) {
	sess.AddFlash(n)
}

// PopNotifications drains queued notifications. The session must be saved afterwards.
func (s *ViewStateStore) PopNotifications(sess *sessions.Session) []models.Notification {
	var out []models.Notification
	for _, flash := range sess.Flashes() {
		if n, ok := flash.(models.Notification); ok {
			out = append(out, n)
		}
	}
	return out
}
