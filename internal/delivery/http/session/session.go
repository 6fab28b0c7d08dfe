// Package session manages the browser cookie session used by page routes.
// API clients authenticate with bearer tokens; the cookie session only exists
// so server-rendered pages can route a returning browser to the right place.
package session

import (
	"net/http"

	"epro/config"
	"epro/internal/domain/entity"
	"epro/internal/errors"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
)

const (
	defaultCookieName = "epro_session"
	defaultMaxAge     = 12 * 60 * 60 // seconds

	keyProfileID = "profile_id"
	keyRole      = "role"
)

// Manager reads and writes the login session cookie.
type Manager struct {
	store      sessions.Store
	cookieName string
}

// NewManager builds the cookie session manager from config.
func NewManager(cfg *config.Config) (*Manager, error) {
	if cfg == nil || cfg.Session == nil || cfg.Session.AuthKey == "" {
		return nil, errors.New("session auth key must be provided")
	}

	cookieName := cfg.Session.CookieName
	if cookieName == "" {
		cookieName = defaultCookieName
	}
	maxAge := cfg.Session.MaxAge
	if maxAge <= 0 {
		maxAge = defaultMaxAge
	}

	store := sessions.NewCookieStore([]byte(cfg.Session.AuthKey))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{store: store, cookieName: cookieName}, nil
}

// SetLogin records the subject in the session cookie.
func (m *Manager) SetLogin(c echo.Context, profileID uuid.UUID, role entity.Role) error {
	sess, err := m.store.Get(c.Request(), m.cookieName)
	if err != nil {
		// A corrupt cookie yields a fresh session; overwrite it.
		sess, _ = m.store.New(c.Request(), m.cookieName)
	}

	sess.Values[keyProfileID] = profileID.String()
	sess.Values[keyRole] = role.String()

	return sess.Save(c.Request(), c.Response())
}

// Clear drops the session cookie.
func (m *Manager) Clear(c echo.Context) error {
	sess, err := m.store.Get(c.Request(), m.cookieName)
	if err != nil {
		return nil
	}

	sess.Options.MaxAge = -1
	sess.Values = make(map[any]any)

	return sess.Save(c.Request(), c.Response())
}

// Login returns the subject stored in the session cookie. The second return
// is false when no valid login is present.
func (m *Manager) Login(c echo.Context) (uuid.UUID, entity.Role, bool) {
	sess, err := m.store.Get(c.Request(), m.cookieName)
	if err != nil {
		return uuid.Nil, "", false
	}

	idStr, ok := sess.Values[keyProfileID].(string)
	if !ok {
		return uuid.Nil, "", false
	}
	profileID, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, "", false
	}

	roleStr, ok := sess.Values[keyRole].(string)
	if !ok {
		return uuid.Nil, "", false
	}
	role := entity.Role(roleStr)
	if !role.IsValid() {
		return uuid.Nil, "", false
	}

	return profileID, role, true
}
