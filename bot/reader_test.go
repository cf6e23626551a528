package bot

import (
	"context"
	"strings"
	"testing"

	"github.com/gocraft/dbr/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/douglarek/feedreader/feed"
)

type stubFetcher struct {
	entries []feed.RawEntry
	err     error
}

func (f stubFetcher) Fetch(context.Context, string) ([]feed.RawEntry, error) {
	return f.entries, f.err
}

func newTestReader(t *testing.T, f feed.EntryFetcher) *reader {
	t.Helper()
	db, err := dbr.Open("sqlite", ":memory:", nil)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	registry, err := feed.NewRegistry(db)
	require.NoError(t, err)
	return newReader(registry, feed.NewSession(registry, f))
}

var testEntries = []feed.RawEntry{
	{Title: "First", Link: "http://x/1", Published: "2006-01-02T15:04:05Z", Description: "<p>one</p>"},
	{Title: "No link", Description: ""},
	{Title: "Third", Link: "http://x/3"},
}

func TestReaderSources(t *testing.T) {
	ctx := context.Background()
	r := newTestReader(t, stubFetcher{})

	assert.Contains(t, r.list(ctx), "No feed sources yet")
	assert.Equal(t, ":newspaper2: Added **Example**", r.add(ctx, " Example ", "http://x/feed.xml"))
	assert.Contains(t, r.add(ctx, "Example", "http://y/feed.xml"), "already exists")
	assert.Contains(t, r.add(ctx, "", "http://y/feed.xml"), "must not be empty")
	assert.Contains(t, r.list(ctx), "- **Example** <http://x/feed.xml>")
	assert.Contains(t, r.remove(ctx, "Missing"), "No such feed source")
	assert.Equal(t, ":newspaper2: Removed **Example**", r.remove(ctx, "Example"))
}

func TestReaderLoadAndView(t *testing.T) {
	ctx := context.Background()
	r := newTestReader(t, stubFetcher{entries: testEntries})
	r.add(ctx, "Example", "http://x/feed.xml")

	assert.Contains(t, r.view("c1", 1), "Load a feed first")

	out := r.load(ctx, "c1", "Example", false)
	assert.Contains(t, out, "**`1` First (2006-01-02 15:04)**")
	assert.Contains(t, out, "**`2` No link (unknown)**")
	assert.Contains(t, out, "**`3` Third (unknown)**")

	detail := r.view("c1", 1)
	assert.Contains(t, detail, "**First**")
	assert.Contains(t, detail, "one")
	assert.Contains(t, detail, "http://x/1")

	detail = r.view("c1", 2)
	assert.Contains(t, detail, "No summary available.")
	assert.Contains(t, detail, "This item has no link.")

	assert.Contains(t, r.view("c1", 4), "between 1 and 3")

	out = r.load(ctx, "c1", "Example", false)
	assert.Contains(t, out, "\n`1` First (2006-01-02 15:04)\n")
	assert.Contains(t, out, "**`2` No link (unknown)**")

	out = r.load(ctx, "c1", "Example", true)
	assert.NotContains(t, out, "First")
	assert.Contains(t, out, "`3` Third")

	// other channels have their own read-state
	out = r.load(ctx, "c2", "Example", true)
	assert.Contains(t, out, "**`1` First")

	r.reset("c1")
	out = r.load(ctx, "c1", "Example", true)
	assert.Contains(t, out, "**`1` First")
}

func TestReaderLoadErrors(t *testing.T) {
	ctx := context.Background()
	malformed := &feed.FetchError{Kind: feed.FetchMalformed, URL: "http://x", Err: assert.AnError}
	r := newTestReader(t, stubFetcher{err: malformed})
	r.add(ctx, "Page", "http://x")

	assert.Contains(t, r.load(ctx, "c1", "Missing", false), "No such feed source")
	assert.Contains(t, r.load(ctx, "c1", "Page", false), "Invalid feed source")
}

func TestRenderItemsAllHidden(t *testing.T) {
	state := feed.NewTracker()
	state.MarkRead("http://x/1")
	items := []feed.Item{{Title: "a", Link: "http://x/1"}}
	assert.Equal(t, ":newspaper2: **N** has no items to show.", renderItems("N", items, true, state))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short"))

	long := strings.Repeat("line ☃\n", 500)
	got := truncate(long)
	assert.LessOrEqual(t, len(got), maxMessageLen)
	assert.True(t, strings.HasSuffix(got, "\n…"))
}
