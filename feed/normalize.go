package feed

import "strings"

const (
	NoTitle   = "no title"
	NoSummary = "<p>No summary available.</p>"
)

// Normalize maps raw entries to items one for one, in order. Missing fields
// degrade to placeholders; no entry is dropped.
func Normalize(entries []RawEntry) []Item {
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, normalizeEntry(e))
	}
	return items
}

func normalizeEntry(e RawEntry) Item {
	title := e.Title
	if strings.TrimSpace(title) == "" {
		title = NoTitle
	}
	return Item{
		Title:       title,
		Link:        strings.TrimSpace(e.Link),
		PublishedAt: ResolveDate(e.Published, e.Updated, e.PubDate),
		Summary:     e.Description,
	}
}

// DetailHTML returns the summary markup, or a placeholder when there is none.
func (it Item) DetailHTML() string {
	if strings.TrimSpace(it.Summary) == "" {
		return NoSummary
	}
	return it.Summary
}
