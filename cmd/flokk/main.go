package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gorilla/securecookie"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/theflokk/flokk"
	"github.com/theflokk/flokk/transport"
	httptransport "github.com/theflokk/flokk/transport/http"
)

func main() {
	_ = godotenv.Load()

	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	if err := run(logger); err != nil {
		_ = level.Error(logger).Log("err", err)
		os.Exit(1)
	}
}

func run(logger log.Logger) error {
	var (
		port         = intEnv("PORT", 3000)
		originStr    = env("ORIGIN", fmt.Sprintf("http://localhost:%d", port))
		clientID     = env("FLOKK_CLIENT_ID", "")
		clientSecret = env("FLOKK_CLIENT_SECRET", "")
		flokkHost    = env("FLOKK_HOST", flokk.DefaultHost)
		scope        = env("FLOKK_SCOPE", "")
		sessionKey   = env("SESSION_KEY", "supersecretkeyyoushouldnotcommit")
	)

	if clientID == "" || clientSecret == "" {
		return errors.New("FLOKK_CLIENT_ID and FLOKK_CLIENT_SECRET are required")
	}

	origin, err := url.Parse(originStr)
	if err != nil || !origin.IsAbs() {
		return fmt.Errorf("invalid origin url %q", originStr)
	}

	cfg := flokk.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		CallbackURL:  origin.JoinPath("/auth", flokk.Name, "callback").String(),
		Host:         flokkHost,
	}
	if scope != "" {
		cfg.Scope = strings.Fields(scope)
	}

	strategy, err := flokk.New(cfg, verify(logger), flokk.WithLogger(log.With(logger, "component", "strategy")))
	if err != nil {
		return fmt.Errorf("could not create flokk strategy: %w", err)
	}

	cdc := securecookie.New([]byte(sessionKey), nil)
	handler := httptransport.New(
		[]transport.Authenticator{&transport.AuthenticatorWithInstrumentation{Next: strategy}},
		log.With(logger, "component", "http"),
		cdc,
		promhttp.Handler(),
		origin.Scheme == "https",
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler,
		ReadHeaderTimeout: time.Second * 5,
		ReadTimeout:       time.Second * 15,
		WriteTimeout:      time.Second * 15,
		IdleTimeout:       time.Second * 30,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_ = level.Info(logger).Log("msg", "accepting connections", "addr", srv.Addr, "origin", origin)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("could not listen and serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		_ = level.Info(logger).Log("msg", "shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// verify accepts every Flokk account. Applications look up or create their
// own user here.
func verify(logger log.Logger) flokk.VerifyFunc {
	return func(_ context.Context, _, _ string, profile flokk.Profile) (any, error) {
		_ = level.Debug(logger).Log("msg", "verified flokk profile", "id", profile.ID, "emails", len(profile.Emails))
		return profile.ID, nil
	}
}

func env(key, fallbackValue string) string {
	s, ok := os.LookupEnv(key)
	if !ok {
		return fallbackValue
	}
	return s
}

func intEnv(key string, fallbackValue int) int {
	s, ok := os.LookupEnv(key)
	if !ok {
		return fallbackValue
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return fallbackValue
	}
	return i
}
