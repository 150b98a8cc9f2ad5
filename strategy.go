//go:generate go run -mod mod github.com/matryer/moq -rm -stub -out delegate_mock.go . Delegate

package flokk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gorilla/securecookie"
	"golang.org/x/oauth2"

	"github.com/theflokk/flokk/oauth"
)

// Delegate is the OAuth2 client capability the strategy drives. Every call
// receives the base site explicitly.
type Delegate interface {
	AuthCodeURL(site, state string, params url.Values) (string, error)
	Exchange(ctx context.Context, site, code string) (*oauth2.Token, error)
	Get(ctx context.Context, rawurl, accessToken string) ([]byte, error)
}

// StateStore persists the CSRF state between redirect and callback.
type StateStore interface {
	Issue(w http.ResponseWriter, r *http.Request) (string, error)
	Verify(w http.ResponseWriter, r *http.Request, received string) error
}

// VerifyFunc resolves the application user for a Flokk login.
// Returning a nil user and a nil error rejects the login.
type VerifyFunc func(ctx context.Context, accessToken, refreshToken string, profile Profile) (any, error)

type AuthenticateOptions struct {
	// Host overrides the configured host for this call only.
	Host string
	// Register asks Flokk to show account creation instead of login.
	Register bool
	// Scope overrides the configured scope for this call only.
	Scope []string
}

// Result of Authenticate. Redirected is set when the response was already
// written with a redirect to Flokk.
type Result struct {
	Redirected bool
	User       any
	Profile    Profile
	Token      *oauth2.Token
}

type Strategy struct {
	cfg      Config
	verify   VerifyFunc
	delegate Delegate
	state    StateStore
	logger   log.Logger
}

type Option func(*Strategy)

func WithDelegate(d Delegate) Option {
	return func(s *Strategy) {
		s.delegate = d
	}
}

func WithStateStore(store StateStore) Option {
	return func(s *Strategy) {
		s.state = store
	}
}

func WithLogger(logger log.Logger) Option {
	return func(s *Strategy) {
		s.logger = logger
	}
}

// WithHTTPClient sets the client used by the default delegate.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Strategy) {
		if client, ok := s.delegate.(*oauth.Client); ok {
			client.HTTPClient = c
		}
	}
}

// New builds the strategy. Without WithStateStore, state is kept in a
// cookie signed with a random key, so callbacks must reach the same process.
func New(cfg Config, verify VerifyFunc, opts ...Option) (*Strategy, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if verify == nil {
		return nil, InvalidArgumentError("flokk: verify func required")
	}

	cfg = cfg.withDefaults()
	s := &Strategy{
		cfg:    cfg,
		verify: verify,
		delegate: &oauth.Client{
			ClientID:         cfg.ClientID,
			ClientSecret:     cfg.ClientSecret,
			RedirectURL:      cfg.CallbackURL,
			AuthorizationURL: cfg.AuthorizationURL,
			TokenURL:         cfg.TokenURL,
			Scopes:           cfg.Scope,
		},
		logger: log.NewNopLogger(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.state == nil {
		s.state = oauth.NewStateStore(randomKey(), randomKey(), strings.HasPrefix(cfg.CallbackURL, "https://"))
	}

	return s, nil
}

// Name is always "flokk".
func (s *Strategy) Name() string {
	return Name
}

// AuthorizationParams returns the Flokk specific query params of the
// authorization redirect. Only register is forwarded.
func (s *Strategy) AuthorizationParams(opts AuthenticateOptions) url.Values {
	params := url.Values{}
	if opts.Register {
		params.Set("register", "true")
	}
	return params
}

// Authenticate drives one step of the login. Without a code it redirects the
// user agent to Flokk; on the callback it exchanges the code, loads the
// profile and calls the verify func.
func (s *Strategy) Authenticate(w http.ResponseWriter, r *http.Request, opts AuthenticateOptions) (Result, error) {
	site := s.site(opts)
	q := r.URL.Query()

	if code := q.Get("error"); code != "" {
		return Result{}, &AuthorizationError{
			Code:        code,
			Description: q.Get("error_description"),
			URI:         q.Get("error_uri"),
		}
	}

	if q.Has("code") {
		return s.callback(w, r, site)
	}

	state, err := s.state.Issue(w, r)
	if err != nil {
		return Result{}, err
	}

	params := s.AuthorizationParams(opts)
	if opts.Scope != nil {
		params.Set("scope", strings.Join(opts.Scope, " "))
	}

	location, err := s.delegate.AuthCodeURL(site, state, params)
	if err != nil {
		return Result{}, fmt.Errorf("could not build flokk authorization url: %w", err)
	}

	_ = level.Debug(s.logger).Log("msg", "redirecting to flokk", "site", site, "register", opts.Register)

	http.Redirect(w, r, location, http.StatusFound)
	return Result{Redirected: true}, nil
}

func (s *Strategy) callback(w http.ResponseWriter, r *http.Request, site string) (Result, error) {
	var out Result

	q := r.URL.Query()
	if err := s.state.Verify(w, r, q.Get("state")); err != nil {
		return out, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	ctx := r.Context()
	token, err := s.delegate.Exchange(ctx, site, q.Get("code"))
	if err != nil {
		return out, &InternalOAuthError{Message: "failed to obtain access token", Err: err}
	}

	profile, err := s.UserProfile(ctx, token.AccessToken)
	if err != nil {
		_ = level.Debug(s.logger).Log("msg", "could not load flokk profile", "err", err)
		return out, err
	}

	user, err := s.verify(ctx, token.AccessToken, token.RefreshToken, profile)
	if err != nil {
		return out, err
	}

	if user == nil {
		return out, ErrUnauthenticated
	}

	out.User = user
	out.Profile = profile
	out.Token = token
	return out, nil
}

// UserProfile fetches the Flokk account of the access token owner.
func (s *Strategy) UserProfile(ctx context.Context, accessToken string) (Profile, error) {
	body, err := s.delegate.Get(ctx, s.cfg.ProfileURL, accessToken)
	if err != nil {
		return Profile{}, &InternalOAuthError{Message: "failed to fetch user profile", Err: err}
	}

	return ParseProfile(body)
}

func (s *Strategy) site(opts AuthenticateOptions) string {
	if opts.Host != "" {
		return strings.TrimSuffix(opts.Host, "/")
	}
	return s.cfg.Host
}

func randomKey() []byte {
	return securecookie.GenerateRandomKey(32)
}
