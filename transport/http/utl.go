package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-kit/log/level"

	"github.com/theflokk/flokk"
	"github.com/theflokk/flokk/oauth"
)

var (
	errBadRequest       = errors.New("bad request")
	errProviderNotFound = errors.New("provider not found")
	errUnauthenticated  = flokk.ErrUnauthenticated
)

func (h *handler) respond(w http.ResponseWriter, v interface{}, statusCode int) {
	b, err := json.Marshal(v)
	if err != nil {
		h.respondErr(w, fmt.Errorf("could not json marshal http response body: %w", err))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_, err = w.Write(b)
	if err != nil && !errors.Is(err, context.Canceled) {
		_ = level.Error(h.logger).Log("msg", "could not write down http response", "err", err)
	}
}

func (h *handler) respondErr(w http.ResponseWriter, err error) {
	statusCode := err2code(err)
	if statusCode == http.StatusInternalServerError {
		_ = level.Error(h.logger).Log("err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if statusCode == http.StatusBadGateway {
		_ = level.Warn(h.logger).Log("err", err)
	}

	http.Error(w, err.Error(), statusCode)
}

func err2code(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case err == errBadRequest:
		return http.StatusBadRequest
	case err == errProviderNotFound:
		return http.StatusNotFound
	case errors.Is(err, flokk.ErrInvalidArgument):
		return http.StatusUnprocessableEntity
	case errors.Is(err, flokk.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, flokk.ErrUnauthenticated) ||
		errors.Is(err, oauth.ErrStateMismatch) ||
		errors.Is(err, oauth.ErrStateExpired):
		return http.StatusUnauthorized
	case errors.Is(err, flokk.ErrInternalOAuth) ||
		errors.Is(err, flokk.ErrParse):
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
