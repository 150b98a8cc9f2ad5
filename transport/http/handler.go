package http

import (
	"net/http"

	"github.com/go-kit/log"
	"github.com/gorilla/securecookie"
	"github.com/matryer/way"

	"github.com/theflokk/flokk/transport"
)

type handler struct {
	auths       map[string]transport.Authenticator
	logger      log.Logger
	cookieCodec *securecookie.SecureCookie
	secure      bool
}

// New provides an http.Handler that mounts every authenticator under
// /auth/{name} and /auth/{name}/callback.
func New(auths []transport.Authenticator, logger log.Logger, cdc *securecookie.SecureCookie, promHandler http.Handler, secure bool) http.Handler {
	h := &handler{
		auths:       make(map[string]transport.Authenticator, len(auths)),
		logger:      logger,
		cookieCodec: cdc,
		secure:      secure,
	}

	for _, auth := range auths {
		h.auths[auth.Name()] = auth
	}

	r := way.NewRouter()
	r.HandleFunc("GET", "/auth/:provider", h.authenticate)
	r.HandleFunc("GET", "/auth/:provider/callback", h.authenticate)
	r.HandleFunc("GET", "/api/auth_user", h.authUser)
	r.HandleFunc("POST", "/api/logout", h.logout)
	if promHandler != nil {
		r.Handle("GET", "/api/prom", promHandler)
	}

	return r
}
