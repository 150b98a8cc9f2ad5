package flokk_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/theflokk/flokk"
	"github.com/theflokk/flokk/testutil"
)

func newFlokkServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if r.PostForm.Get("code") != "good-code" || r.PostForm.Get("client_secret") != "secret" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "access-token",
			"refresh_token": "refresh-token",
			"token_type":    "Bearer",
			"expires_in":    3600,
		})
	})
	mux.HandleFunc("/account", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer access-token" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"href":"https://api.theflokk.com/users/1","username":"CamShaft","id":"1","name":"Cameron Bytheway","email":[{"href":"cameron@nujii.com"},{"href":"cameron@theflokk.com"}]}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestStrategy_loginFlow(t *testing.T) {
	srv := newFlokkServer(t)

	verify := func(_ context.Context, _, _ string, p flokk.Profile) (any, error) {
		return p.Username, nil
	}
	s, err := flokk.New(flokk.Config{
		ClientID:     "ABC123",
		ClientSecret: "secret",
		CallbackURL:  "http://localhost:3000/auth/flokk/callback",
		ProfileURL:   srv.URL + "/account",
	}, verify, flokk.WithHTTPClient(srv.Client()))
	testutil.AssertEqual(t, nil, err, "new strategy")

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/auth/flokk", nil)
	res, err := s.Authenticate(w, r, flokk.AuthenticateOptions{Host: srv.URL, Register: true})
	testutil.AssertEqual(t, nil, err, "redirect error")
	testutil.AssertEqual(t, true, res.Redirected, "redirected")

	location, err := url.Parse(w.Header().Get("Location"))
	testutil.AssertEqual(t, nil, err, "parse location")
	testutil.AssertEqual(t, srv.URL+"/authorize", location.Scheme+"://"+location.Host+location.Path, "authorization endpoint")

	q := location.Query()
	testutil.AssertEqual(t, "code", q.Get("response_type"), "response type")
	testutil.AssertEqual(t, "ABC123", q.Get("client_id"), "client id")
	testutil.AssertEqual(t, "http://localhost:3000/auth/flokk/callback", q.Get("redirect_uri"), "redirect uri")
	testutil.AssertEqual(t, "true", q.Get("register"), "register")

	state := q.Get("state")
	testutil.AssertTrue(t, state != "", "state")

	cookies := w.Result().Cookies()
	testutil.AssertEqual(t, 1, len(cookies), "state cookie")

	t.Run("bad_code", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/auth/flokk/callback?code=bad-code&state="+url.QueryEscape(state), nil)
		r.AddCookie(cookies[0])
		_, err := s.Authenticate(w, r, flokk.AuthenticateOptions{Host: srv.URL})
		testutil.AssertTrue(t, errors.Is(err, flokk.ErrInternalOAuth), "internal oauth error")
		testutil.AssertEqual(t, "failed to obtain access token", err.Error(), "error message")
	})

	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodGet, "/auth/flokk/callback?code=good-code&state="+url.QueryEscape(state), nil)
	r.AddCookie(cookies[0])
	res, err = s.Authenticate(w, r, flokk.AuthenticateOptions{Host: srv.URL})
	testutil.AssertEqual(t, nil, err, "callback error")
	testutil.AssertEqual(t, "CamShaft", res.User, "user")
	testutil.AssertEqual(t, "refresh-token", res.Token.RefreshToken, "refresh token")
	testutil.AssertEqual(t, []flokk.Email{
		{Value: "cameron@nujii.com"},
		{Value: "cameron@theflokk.com"},
	}, res.Profile.Emails, "emails")
}
