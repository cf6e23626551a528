package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/douglarek/feedreader/feed"
)

type printer struct {
	out    io.Writer
	bold   *color.Color
	faint  *color.Color
	header *color.Color
}

func newPrinter(out io.Writer) *printer {
	return &printer{
		out:    out,
		bold:   color.New(color.Bold),
		faint:  color.New(color.Faint),
		header: color.New(color.FgCyan, color.Bold),
	}
}

func (p *printer) source(name, url string) {
	fmt.Fprintf(p.out, "%s\t%s\n", p.bold.Sprint(name), url)
}

// items prints the visible items numbered by their position in the full
// batch. Unread items are bold.
func (p *printer) items(name string, items []feed.Item, hideRead bool, state *feed.Tracker) int {
	p.header.Fprintln(p.out, name)
	visible := feed.Visible(items, hideRead, state)
	for _, i := range visible {
		it := items[i]
		line := fmt.Sprintf("%3d  %-16s  %s", i+1, it.PublishedAt, it.Title)
		if state.IsRead(it.Link) {
			p.faint.Fprintln(p.out, line)
		} else {
			p.bold.Fprintln(p.out, line)
		}
	}
	if len(visible) == 0 {
		fmt.Fprintln(p.out, "no items to show")
	}
	return len(visible)
}

func (p *printer) detail(it feed.Item) {
	p.header.Fprintln(p.out, it.Title)
	fmt.Fprintln(p.out, it.PublishedAt)
	fmt.Fprintln(p.out)
	summary := it.PlainSummary()
	if summary == "" {
		summary = feed.PlainText(feed.NoSummary)
	}
	fmt.Fprintln(p.out, summary)
	fmt.Fprintln(p.out)
	if it.HasLink() {
		fmt.Fprintln(p.out, it.Link)
	} else {
		fmt.Fprintln(p.out, "This item has no link.")
	}
}
