package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/douglarek/feedreader/app"
	"github.com/douglarek/feedreader/feed"
)

const maxMessageLen = 2000

// view is the reader state of one channel: the last loaded batch and the
// items viewed since the view was opened.
type view struct {
	mu    sync.Mutex
	items []feed.Item
	read  *feed.Tracker
}

type reader struct {
	registry *feed.Registry
	session  *feed.Session

	mu    sync.Mutex
	views map[string]*view // keyed by channel id
}

func newReader(registry *feed.Registry, session *feed.Session) *reader {
	return &reader{
		registry: registry,
		session:  session,
		views:    make(map[string]*view),
	}
}

// viewFor opens the channel's view on first use with an empty read set.
func (r *reader) viewFor(channelID string) *view {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.views[channelID]
	if !ok {
		v = &view{read: feed.NewTracker()}
		r.views[channelID] = v
	}
	return v
}

func (r *reader) list(ctx context.Context) string {
	sources, err := r.registry.Sources(ctx)
	if err != nil {
		slog.Error("[bot.list]: cannot list sources", "error", err)
		return ":robot: " + app.ErrorMessage(err)
	}
	if len(sources) == 0 {
		return ":newspaper2: No feed sources yet, add one with `/reader add`."
	}
	var b strings.Builder
	b.WriteString(":newspaper2: Your feed sources:\n")
	for _, s := range sources {
		fmt.Fprintf(&b, "- **%s** <%s>\n", s.Name, s.URL)
	}
	return truncate(b.String())
}

func (r *reader) add(ctx context.Context, name, url string) string {
	if err := r.registry.Add(ctx, name, url); err != nil {
		return ":robot: " + app.ErrorMessage(err)
	}
	return fmt.Sprintf(":newspaper2: Added **%s**", strings.TrimSpace(name))
}

func (r *reader) remove(ctx context.Context, name string) string {
	if err := r.registry.Remove(ctx, name); err != nil {
		return ":robot: " + app.ErrorMessage(err)
	}
	return fmt.Sprintf(":newspaper2: Removed **%s**", name)
}

func (r *reader) load(ctx context.Context, channelID, name string, hideRead bool) string {
	res := <-r.session.LoadAsync(ctx, name)
	if res.Err != nil {
		return ":robot: " + app.ErrorMessage(res.Err)
	}

	v := r.viewFor(channelID)
	v.mu.Lock()
	v.items = res.Items
	v.mu.Unlock()

	return renderItems(name, res.Items, hideRead, v.read)
}

func (r *reader) view(channelID string, index int) string {
	v := r.viewFor(channelID)
	v.mu.Lock()
	defer v.mu.Unlock()

	if len(v.items) == 0 {
		return ":robot: Load a feed first with `/reader load`."
	}
	if index < 1 || index > len(v.items) {
		return fmt.Sprintf(":robot: Item number must be between 1 and %d.", len(v.items))
	}

	it := v.items[index-1]
	v.read.MarkRead(it.Link)

	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n%s\n\n", it.Title, it.PublishedAt)
	summary := it.PlainSummary()
	if summary == "" {
		summary = feed.PlainText(feed.NoSummary)
	}
	b.WriteString(summary)
	b.WriteString("\n\n")
	if it.HasLink() {
		b.WriteString(it.Link)
	} else {
		b.WriteString("This item has no link.")
	}
	return truncate(b.String())
}

func (r *reader) reset(channelID string) string {
	r.viewFor(channelID).read.Reset()
	return ":newspaper2: All items are unread again."
}

// renderItems lists items in feed order; unread items are bold. Numbers
// refer to positions in the full batch so view works with hidden items too.
func renderItems(name string, items []feed.Item, hideRead bool, state *feed.Tracker) string {
	visible := feed.Visible(items, hideRead, state)
	if len(visible) == 0 {
		return fmt.Sprintf(":newspaper2: **%s** has no items to show.", name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, ":newspaper2: **%s**\n", name)
	for _, i := range visible {
		it := items[i]
		line := fmt.Sprintf("`%d` %s (%s)", i+1, it.Title, it.PublishedAt)
		if !state.IsRead(it.Link) {
			line = "**" + line + "**"
		}
		b.WriteString(line + "\n")
	}
	return truncate(b.String())
}

func truncate(s string) string {
	if len(s) <= maxMessageLen {
		return s
	}
	n := maxMessageLen - len("…")
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	cut := s[:n]
	if i := strings.LastIndexByte(cut, '\n'); i > 0 {
		cut = cut[:i+1]
	}
	return cut + "…"
}
