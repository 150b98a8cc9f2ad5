package http

import (
	"fmt"
	"net/http"
	"time"
)

const (
	sessionCookieName = "session"
	sessionTimeout    = time.Hour * 24 * 14
)

type sessionUser struct {
	Provider    string `json:"provider"`
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
}

func (h *handler) setSession(w http.ResponseWriter, user sessionUser) error {
	value, err := h.cookieCodec.Encode(sessionCookieName, user)
	if err != nil {
		return fmt.Errorf("could not cookie encode session: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().Add(sessionTimeout),
		Secure:   h.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (h *handler) authUser(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(sessionCookieName)
	if err != nil {
		h.respondErr(w, errUnauthenticated)
		return
	}

	var user sessionUser
	if err := h.cookieCodec.Decode(sessionCookieName, c.Value, &user); err != nil {
		h.respondErr(w, errUnauthenticated)
		return
	}

	h.respond(w, user, http.StatusOK)
}

func (h *handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   h.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}
