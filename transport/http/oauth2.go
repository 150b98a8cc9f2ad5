package http

import (
	"net/http"
	"strconv"

	"github.com/go-kit/log/level"
	"github.com/matryer/way"

	"github.com/theflokk/flokk"
)

func (h *handler) authenticate(w http.ResponseWriter, r *http.Request) {
	auth, ok := h.auths[way.Param(r.Context(), "provider")]
	if !ok {
		h.respondErr(w, errProviderNotFound)
		return
	}

	var opts flokk.AuthenticateOptions
	if s := r.URL.Query().Get("register"); s != "" {
		register, err := strconv.ParseBool(s)
		if err != nil {
			h.respondErr(w, errBadRequest)
			return
		}
		opts.Register = register
	}

	res, err := auth.Authenticate(w, r, opts)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	if res.Redirected {
		return
	}

	user := sessionUser{
		Provider:    res.Profile.Provider,
		ID:          res.Profile.ID,
		Username:    res.Profile.Username,
		DisplayName: res.Profile.DisplayName,
	}
	if err := h.setSession(w, user); err != nil {
		h.respondErr(w, err)
		return
	}

	_ = level.Info(h.logger).Log("msg", "user logged in", "provider", user.Provider, "id", user.ID)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
