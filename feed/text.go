package feed

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var blockTags = "p, div, br, li, tr, h1, h2, h3, h4, h5, h6, blockquote, pre"

// PlainSummary degrades the summary markup to plain text. Images are dropped
// and block elements become line breaks.
func (it Item) PlainSummary() string {
	return PlainText(it.Summary)
}

func PlainText(markup string) string {
	if strings.TrimSpace(markup) == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return strings.TrimSpace(markup)
	}
	doc.Find("img, script, style").Remove()
	doc.Find(blockTags).Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	lines := strings.Split(doc.Text(), "\n")
	out := lines[:0]
	for _, l := range lines {
		if l = strings.Join(strings.Fields(l), " "); l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}
