package oauth

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"
)

// maxBodySize caps the resource responses read by Get.
const maxBodySize = 1 << 20

// Client performs the OAuth 2.0 exchanges against a provider. Endpoint URLs
// may be relative; they are appended to the site given to each call, path
// included, so one Client can serve several provider hosts concurrently.
type Client struct {
	ClientID         string
	ClientSecret     string
	RedirectURL      string
	AuthorizationURL string
	TokenURL         string
	Scopes           []string
	HTTPClient       *http.Client
}

// StatusError is returned by Get for non 2xx responses.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected response status: %d", e.StatusCode)
}

// Config builds the oauth2 configuration for the given site.
func (c *Client) Config(site string) (*oauth2.Config, error) {
	authURL, err := resolve(site, c.AuthorizationURL)
	if err != nil {
		return nil, fmt.Errorf("resolve authorization url: %w", err)
	}

	tokenURL, err := resolve(site, c.TokenURL)
	if err != nil {
		return nil, fmt.Errorf("resolve token url: %w", err)
	}

	return &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		RedirectURL:  c.RedirectURL,
		Endpoint: oauth2.Endpoint{
			AuthURL:   authURL,
			TokenURL:  tokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
		Scopes: c.Scopes,
	}, nil
}

// AuthCodeURL returns the authorization redirect URL with the extra
// provider specific params appended.
func (c *Client) AuthCodeURL(site, state string, params url.Values) (string, error) {
	cfg, err := c.Config(site)
	if err != nil {
		return "", err
	}

	opts := make([]oauth2.AuthCodeOption, 0, len(params))
	for key, values := range params {
		if len(values) == 0 {
			continue
		}
		opts = append(opts, oauth2.SetAuthURLParam(key, values[0]))
	}

	return cfg.AuthCodeURL(state, opts...), nil
}

func (c *Client) Exchange(ctx context.Context, site, code string) (*oauth2.Token, error) {
	cfg, err := c.Config(site)
	if err != nil {
		return nil, err
	}

	token, err := cfg.Exchange(c.context(ctx), code)
	if err != nil {
		return nil, fmt.Errorf("exchange oauth2 code: %w", err)
	}

	return token, nil
}

// Get fetches a protected resource using the access token as a bearer
// token and returns the response body.
func (c *Client) Get(ctx context.Context, rawurl, accessToken string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawurl, nil)
	if err != nil {
		return nil, fmt.Errorf("create resource request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	resp, err := oauth2.NewClient(c.context(ctx), src).Do(req)
	if err != nil {
		return nil, fmt.Errorf("do resource request: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read resource response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: body}
	}

	return body, nil
}

func (c *Client) context(ctx context.Context) context.Context {
	if c.HTTPClient == nil {
		return ctx
	}
	return context.WithValue(ctx, oauth2.HTTPClient, c.HTTPClient)
}

func resolve(site, ref string) (string, error) {
	refURL, err := url.Parse(ref)
	if err != nil {
		return "", err
	}

	if refURL.IsAbs() {
		return refURL.String(), nil
	}

	siteURL, err := url.Parse(site)
	if err != nil {
		return "", err
	}

	if !siteURL.IsAbs() {
		return "", fmt.Errorf("site %q is not an absolute url", site)
	}

	out := siteURL.JoinPath(refURL.Path)
	if refURL.RawQuery != "" {
		out.RawQuery = refURL.RawQuery
	}
	return out.String(), nil
}
