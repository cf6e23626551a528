package feed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

const (
	resultOK            = "ok"
	resultNotFound      = "not_found"
	resultNetwork       = "network"
	resultInvalidSource = "invalid_source"
	resultError         = "error"
)

// SourceResolver maps a feed name to its URL.
type SourceResolver interface {
	ResolveURL(ctx context.Context, name string) (string, error)
}

// EntryFetcher retrieves and parses the feed at a URL.
type EntryFetcher interface {
	Fetch(ctx context.Context, url string) ([]RawEntry, error)
}

// Session runs load operations: registry lookup, fetch, normalize.
type Session struct {
	sources SourceResolver
	fetcher EntryFetcher
}

func NewSession(sources SourceResolver, fetcher EntryFetcher) *Session {
	return &Session{sources: sources, fetcher: fetcher}
}

// Load returns the items of the named feed in feed order. It fails with
// ErrNotFound before any network access when the name is unknown, and with an
// error matching ErrInvalidSource when the payload is not a feed. It never
// returns a partial list and does not touch read-state.
func (s *Session) Load(ctx context.Context, name string) ([]Item, error) {
	start := time.Now()
	items, err := s.load(ctx, name)
	result := resultOK
	switch {
	case err == nil:
	case errors.Is(err, ErrNotFound):
		result = resultNotFound
	case errors.Is(err, ErrInvalidSource):
		result = resultInvalidSource
	case errors.As(err, new(*FetchError)):
		result = resultNetwork
	default:
		result = resultError
	}
	recordLoad(result, time.Since(start).Seconds(), len(items))
	return items, err
}

func (s *Session) load(ctx context.Context, name string) ([]Item, error) {
	url, err := s.sources.ResolveURL(ctx, name)
	if err != nil {
		return nil, err
	}

	entries, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		slog.Error("[feed.Load]: cannot fetch feed", "name", name, "url", url, "error", err)
		if IsMalformed(err) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSource, err)
		}
		return nil, err
	}

	items := Normalize(entries)
	slog.Debug("[feed.Load]: loaded feed", "name", name, "items", len(items))
	return items, nil
}

// LoadAsync runs Load on its own goroutine and delivers exactly one result.
// Loads are independent of each other, including loads of the same name.
func (s *Session) LoadAsync(ctx context.Context, name string) <-chan LoadResult {
	ch := make(chan LoadResult, 1)
	go func() {
		items, err := s.Load(ctx, name)
		ch <- LoadResult{Name: name, Items: items, Err: err}
	}()
	return ch
}

// Filter returns items in their original order, dropping read items when
// hideRead is set.
func Filter(items []Item, hideRead bool, state ReadChecker) []Item {
	if !hideRead || state == nil {
		return items
	}
	visible := Visible(items, hideRead, state)
	out := make([]Item, 0, len(visible))
	for _, i := range visible {
		out = append(out, items[i])
	}
	return out
}

// Visible returns the batch positions of the items Filter keeps, in order.
func Visible(items []Item, hideRead bool, state ReadChecker) []int {
	out := make([]int, 0, len(items))
	for i, it := range items {
		if hideRead && state != nil && state.IsRead(it.Link) {
			continue
		}
		out = append(out, i)
	}
	return out
}
