package feed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

const (
	DefaultFetchTimeout = 20 * time.Second
	DefaultUserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/94.0.4606.81 Safari/537.36"

	DefaultMaxFeedSize = 16 << 20
)

var ErrFeedTooLarge = errors.New("feed too large")

// Fetcher retrieves feed documents over HTTP and parses them with gofeed.
type Fetcher struct {
	client    *http.Client
	parser    *gofeed.Parser
	timeout   time.Duration
	userAgent string
	limiter   *HostRateLimiter
	maxSize   int64
}

type FetcherOption func(*Fetcher)

func WithTimeout(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		if d > 0 {
			f.timeout = d
		}
	}
}

func WithUserAgent(ua string) FetcherOption {
	return func(f *Fetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

func WithHTTPClient(c *http.Client) FetcherOption {
	return func(f *Fetcher) { f.client = c }
}

// WithMaxSize caps the size of a retrieved feed document.
func WithMaxSize(n int64) FetcherOption {
	return func(f *Fetcher) {
		if n > 0 {
			f.maxSize = n
		}
	}
}

// WithRateLimiter spaces requests per host; nil disables limiting.
func WithRateLimiter(l *HostRateLimiter) FetcherOption {
	return func(f *Fetcher) { f.limiter = l }
}

func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		parser:    gofeed.NewParser(),
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
		maxSize:   DefaultMaxFeedSize,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.client == nil {
		f.client = &http.Client{Timeout: f.timeout}
	}
	return f
}

// Fetch returns the entries of the feed at url in document order.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]RawEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	body, err := f.retrieve(ctx, url)
	if err != nil {
		return nil, &FetchError{Kind: FetchNetwork, URL: url, Err: err}
	}

	fd, err := f.parser.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, &FetchError{Kind: FetchMalformed, URL: url, Err: err}
	}
	slog.Debug("[feed.Fetch]: parsed feed", "url", url, "type", fd.FeedType, "items", len(fd.Items))

	entries := make([]RawEntry, 0, len(fd.Items))
	for _, item := range fd.Items {
		if item == nil {
			entries = append(entries, RawEntry{})
			continue
		}
		entries = append(entries, rawEntry(item))
	}
	return entries, nil
}

func (f *Fetcher) retrieve(ctx context.Context, url string) ([]byte, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, url); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, gofeed.HTTPError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > f.maxSize {
		return nil, fmt.Errorf("%w: exceeds %d bytes", ErrFeedTooLarge, f.maxSize)
	}
	return body, nil
}

func rawEntry(item *gofeed.Item) RawEntry {
	e := RawEntry{
		Title:       item.Title,
		Link:        item.Link,
		Published:   item.Published,
		Updated:     item.Updated,
		Description: item.Description,
	}
	if item.DublinCoreExt != nil && len(item.DublinCoreExt.Date) > 0 {
		e.PubDate = item.DublinCoreExt.Date[0]
	}
	return e
}
