package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/douglarek/feedreader/feed"
)

type mapResolver map[string]string

func (m mapResolver) ResolveURL(_ context.Context, name string) (string, error) {
	if u, ok := m[name]; ok {
		return u, nil
	}
	return "", feed.ErrNotFound
}

type stubFetcher []feed.RawEntry

func (f stubFetcher) Fetch(context.Context, string) ([]feed.RawEntry, error) {
	return f, nil
}

func init() {
	color.NoColor = true
}

func TestRunReader(t *testing.T) {
	session := feed.NewSession(mapResolver{"Example": "http://x/feed.xml"}, stubFetcher{
		{Title: "First", Link: "http://x/1", Description: "<p>hello</p>"},
		{Title: "Second"},
	})

	in := strings.NewReader("1\nh\n9\nbogus\nh\nq\n")
	var out bytes.Buffer
	require.NoError(t, runReader(context.Background(), in, &out, session, "Example"))

	got := out.String()
	assert.Contains(t, got, "  1  unknown           First\n")
	assert.Contains(t, got, "hello\n\nhttp://x/1\n")
	assert.Contains(t, got, `unknown command "9"`)
	assert.Contains(t, got, `unknown command "bogus"`)

	// after viewing item 1 and hiding read items only item 2 is listed
	hidden := got[strings.Index(got, "> Example")+2:]
	hidden = hidden[:strings.Index(hidden, "> ")]
	assert.NotContains(t, hidden, "First")
	assert.Contains(t, hidden, "  2  unknown           Second\n")
}

func TestRunReaderNotFound(t *testing.T) {
	session := feed.NewSession(mapResolver{}, stubFetcher{})
	var out bytes.Buffer
	require.NoError(t, runReader(context.Background(), strings.NewReader(""), &out, session, "Missing"))
	assert.Contains(t, out.String(), "No such feed source.")
}
