// Package app wires the registry, fetcher and session from settings.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/douglarek/feedreader/config"
	"github.com/douglarek/feedreader/feed"
	"github.com/gocraft/dbr/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	_ "modernc.org/sqlite"
)

type App struct {
	DB       *dbr.Connection
	Registry *feed.Registry
	Session  *feed.Session

	metrics *http.Server
}

func New(settings config.Settings) (*App, error) {
	db, err := dbr.Open("sqlite", settings.DBFile, nil)
	if err != nil {
		return nil, fmt.Errorf("cannot open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	registry, err := feed.NewRegistry(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	opts := []feed.FetcherOption{
		feed.WithTimeout(settings.FetchTimeout),
		feed.WithUserAgent(settings.UserAgent),
	}
	if settings.HostInterval > 0 {
		opts = append(opts, feed.WithRateLimiter(feed.NewHostRateLimiter(settings.HostInterval)))
	}

	a := &App{
		DB:       db,
		Registry: registry,
		Session:  feed.NewSession(registry, feed.NewFetcher(opts...)),
	}
	if settings.MetricsAddr != "" {
		a.serveMetrics(settings.MetricsAddr)
	}
	return a, nil
}

func (a *App) serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	a.metrics = &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		slog.Info("[app.serveMetrics]: serving metrics", "addr", addr)
		if err := a.metrics.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("[app.serveMetrics]: metrics server stopped", "error", err)
		}
	}()
}

func (a *App) Close() error {
	if a.metrics != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.metrics.Shutdown(ctx); err != nil {
			slog.Error("[app.Close]: cannot stop metrics server", "error", err)
		}
	}
	return a.DB.Close()
}

// ErrorMessage turns a core error into a user-facing message.
func ErrorMessage(err error) string {
	var fe *feed.FetchError
	switch {
	case errors.Is(err, feed.ErrInvalidInput):
		return "Name and URL must not be empty."
	case errors.Is(err, feed.ErrDuplicateSource):
		return "A feed source with this name or URL already exists."
	case errors.Is(err, feed.ErrNotFound):
		return "No such feed source."
	case errors.Is(err, feed.ErrInvalidSource):
		return "Invalid feed source: the address did not return an RSS or Atom feed."
	case errors.Is(err, feed.ErrFeedTooLarge):
		return "The feed is too large to load."
	case errors.As(err, &fe):
		return "Could not retrieve the feed, please try again: " + fe.Err.Error()
	default:
		return "Error: " + err.Error()
	}
}
