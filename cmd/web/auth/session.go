package auth

import (
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	SessionName       = "streamlens_session"
	ViewerIDKey       = "viewer_id"
	SessionCreatedKey = "created_at"
)

// SessionManager hands out anonymous viewer identities. The overlay has no
// accounts of its own; the host platform authenticates its side separately
// and this cookie only keys per-viewer overlay state.
type SessionManager struct {
	store *sessions.CookieStore
}

func NewSessionManager(secret string) *SessionManager {
	if secret == "" {
		secret = generateSecret()
	}
	return &SessionManager{
		store: sessions.NewCookieStore([]byte(secret)),
	}
}

func generateSecret() string {
	b := make([]byte, 32)
	rand.Read(b)
	return base64.StdEncoding.EncodeToString(b)
}

// ViewerID returns the viewer id from the session cookie, minting and
// persisting a fresh one when the cookie is missing or unreadable.
func (sm *SessionManager) ViewerID(w http.ResponseWriter, r *http.Request) string {
	session, err := sm.store.Get(r, SessionName)
	if err != nil {
		slog.Warn("failed to decode session, reissuing", "error", err, "host", r.Host)
		session, _ = sm.store.New(r, SessionName)
	}

	if raw, ok := session.Values[ViewerIDKey]; ok {
		if id, ok := raw.(string); ok && id != "" {
			return id
		}
	}

	id := uuid.NewString()
	session.Values[ViewerIDKey] = id
	session.Values[SessionCreatedKey] = time.Now().Unix()

	isHTTPS := r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https"

	session.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		// The overlay is iframed by the host platform, so the cookie must
		// ride along on cross-site requests.
		SameSite: http.SameSiteNoneMode,
		Secure:   isHTTPS,
	}

	if err := session.Save(r, w); err != nil {
		slog.Warn("failed to save viewer session", "error", err)
	}
	return id
}

// PeekViewerID returns the viewer id without minting one. The second return
// is false when no valid session cookie is present.
func (sm *SessionManager) PeekViewerID(r *http.Request) (string, bool) {
	session, err := sm.store.Get(r, SessionName)
	if err != nil {
		return "", false
	}
	raw, ok := session.Values[ViewerIDKey]
	if !ok {
		return "", false
	}
	id, ok := raw.(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// ClearSession drops the viewer cookie.
func (sm *SessionManager) ClearSession(w http.ResponseWriter, r *http.Request) error {
	session, _ := sm.store.Get(r, SessionName)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
