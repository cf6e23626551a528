package feed

// RawEntry is one lightly parsed entry of a fetched feed document. Empty
// strings mean the field was absent.
type RawEntry struct {
	Title       string
	Link        string
	Published   string
	Updated     string
	PubDate     string // alternate date field, e.g. dc:date
	Description string // raw markup
}

// Item is the normalized form of a feed entry handed to presentation.
type Item struct {
	Title       string
	Link        string
	PublishedAt Timestamp
	Summary     string // raw markup, possibly empty
}

// HasLink reports whether the item can be opened or tracked as read.
func (it Item) HasLink() bool {
	return it.Link != ""
}

// LoadResult carries the outcome of an asynchronous load.
type LoadResult struct {
	Name  string
	Items []Item
	Err   error
}
