package feed

import "fmt"

// FeedSource is a named feed registered by the user.
type FeedSource struct {
	ID   int
	Name string `db:"name"`
	URL  string `db:"url"` // a rss or feed url
}

var (
	tableName = "rss_feeds"
	initTable = fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT UNIQUE NOT NULL,
	url TEXT UNIQUE NOT NULL
);`, tableName)
)
