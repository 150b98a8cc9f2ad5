package transport

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/theflokk/flokk"
)

const (
	OutcomeRedirect = "redirect"
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeError    = "error"
)

var (
	reqDur_Authenticate = promauto.NewHistogramVec(prometheus.HistogramOpts{Name: "authenticate_request_duration_ms"}, []string{"strategy"})
	reqCnt_Authenticate = promauto.NewCounterVec(prometheus.CounterOpts{Name: "authenticate_requests_total"}, []string{"strategy", "outcome"})
)

type AuthenticatorWithInstrumentation struct {
	Next Authenticator
}

func (mw *AuthenticatorWithInstrumentation) Name() string {
	return mw.Next.Name()
}

func (mw *AuthenticatorWithInstrumentation) Authenticate(w http.ResponseWriter, r *http.Request, opts flokk.AuthenticateOptions) (res flokk.Result, err error) {
	name := mw.Next.Name()
	defer func(begin time.Time) {
		reqDur_Authenticate.WithLabelValues(name).Observe(float64(time.Since(begin)) / float64(time.Millisecond))
		reqCnt_Authenticate.WithLabelValues(name, Outcome(res, err)).Inc()
	}(time.Now())
	return mw.Next.Authenticate(w, r, opts)
}

// Outcome classifies the result of an authenticate call.
func Outcome(res flokk.Result, err error) string {
	switch {
	case err == nil && res.Redirected:
		return OutcomeRedirect
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, flokk.ErrUnauthenticated) ||
		errors.Is(err, flokk.ErrPermissionDenied):
		return OutcomeFailure
	}
	return OutcomeError
}
