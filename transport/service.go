//go:generate go run -mod mod github.com/matryer/moq -rm -stub -out authenticator_mock.go . Authenticator

package transport

import (
	"net/http"

	"github.com/theflokk/flokk"
)

// Authenticator is a login strategy mounted by the HTTP transport.
type Authenticator interface {
	Name() string
	Authenticate(w http.ResponseWriter, r *http.Request, opts flokk.AuthenticateOptions) (flokk.Result, error)
}

var _ Authenticator = (*flokk.Strategy)(nil)
