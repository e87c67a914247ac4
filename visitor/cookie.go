package visitor

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const sessionName = "worldoftea-session"

// CookieSessions loads visitor sessions from signed cookies.
type CookieSessions struct {
	store *sessions.CookieStore
}

// NewCookieSessions returns sessions signed with secret. The cookies last a year
// and are not readable from scripts.
func NewCookieSessions(secret string) *CookieSessions {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   365 * 24 * 3600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &CookieSessions{store: store}
}

// A Session is the cookie session of a single request. Changes made through
// Visitor are only sent to the client by Save.
type Session struct {
	session *sessions.Session
	visitor *Visitor
	dirty   bool
}

// Load returns the session of the request. A cookie that cannot be decoded, for
// instance after a secret rotation, yields a fresh session along with the error.
func (c *CookieSessions) Load(r *http.Request) (*Session, error) {
	session, err := c.store.Get(r, sessionName)
	s := &Session{session: session}
	s.visitor = New(s)

	return s, err
}

func (s *Session) Visitor() *Visitor {
	return s.visitor
}

// Save writes the session cookie if it was modified. It must be called before
// the response header is written.
func (s *Session) Save(r *http.Request, w http.ResponseWriter) error {
	if !s.dirty {
		return nil
	}
	return s.session.Save(r, w)
}

func (s *Session) Get(key string) (string, bool) {
	v, ok := s.session.Values[key].(string)
	return v, ok
}

func (s *Session) Set(key string, value string) {
	if old, ok := s.Get(key); ok && old == value {
		return
	}
	s.session.Values[key] = value
	s.dirty = true
}

func (s *Session) Delete(key string) {
	if _, ok := s.session.Values[key]; !ok {
		return
	}
	delete(s.session.Values, key)
	s.dirty = true
}
