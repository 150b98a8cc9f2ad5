package oauth

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
	samesite "github.com/hybridtheory/samesite-cookie-support"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	stateCookieName = "oauth2_state"
	stateSize       = 32
)

// StateTimeout is how long a user has to come back from the provider.
const StateTimeout = time.Minute * 2

var (
	ErrStateExpired  = errors.New("oauth2 state expired")
	ErrStateMismatch = errors.New("oauth2 state mismatch")
)

// StateStore keeps the CSRF state of an authorization request in a signed
// cookie between the redirect and the callback.
type StateStore struct {
	Codec  *securecookie.SecureCookie
	Secure bool
}

func NewStateStore(hashKey, blockKey []byte, secure bool) *StateStore {
	cdc := securecookie.New(hashKey, blockKey)
	cdc.MaxAge(int(StateTimeout.Seconds()))
	return &StateStore{Codec: cdc, Secure: secure}
}

// Issue generates a new state and sets its cookie.
func (s *StateStore) Issue(w http.ResponseWriter, r *http.Request) (string, error) {
	state, err := gonanoid.New(stateSize)
	if err != nil {
		return "", fmt.Errorf("could not generate oauth2 state: %w", err)
	}

	value, err := s.Codec.Encode(stateCookieName, state)
	if err != nil {
		return "", fmt.Errorf("could not cookie encode oauth2 state: %w", err)
	}

	http.SetCookie(w, s.cookie(r, value, time.Now().Add(StateTimeout)))
	return state, nil
}

// Verify compares the received state against the cookie and clears it.
func (s *StateStore) Verify(w http.ResponseWriter, r *http.Request, received string) error {
	c, err := r.Cookie(stateCookieName)
	if err == http.ErrNoCookie {
		return ErrStateExpired
	}

	if err != nil {
		return fmt.Errorf("could not read oauth2 state cookie: %w", err)
	}

	expired := s.cookie(r, "", time.Unix(0, 0))
	expired.MaxAge = -1
	http.SetCookie(w, expired)

	var state string
	if err := s.Codec.Decode(stateCookieName, c.Value, &state); err != nil {
		return ErrStateMismatch
	}

	if received == "" || received != state {
		return ErrStateMismatch
	}

	return nil
}

func (s *StateStore) cookie(r *http.Request, value string, expires time.Time) *http.Cookie {
	c := &http.Cookie{
		Name:     stateCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		Secure:   s.Secure,
		HttpOnly: true,
	}
	if samesite.IsSameSiteCookieSupported(r.UserAgent()) {
		c.SameSite = http.SameSiteLaxMode
	}
	return c
}
