package feed

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/araddon/dateparse"
)

const (
	DateLayout  = "2006-01-02 15:04"
	UnknownDate = "unknown"

	maxDateWords = 24
)

// Timestamp is a resolved publication date. The zero value is Unknown.
type Timestamp struct {
	t     time.Time
	known bool
}

var Unknown = Timestamp{}

func At(t time.Time) Timestamp {
	return Timestamp{t: t, known: true}
}

func (ts Timestamp) Known() bool     { return ts.known }
func (ts Timestamp) Time() time.Time { return ts.t }

// String renders the time in its parsed location at minute precision.
func (ts Timestamp) String() string {
	if !ts.known {
		return UnknownDate
	}
	return ts.t.Format(DateLayout)
}

// ResolveDate returns the first candidate that parses, or Unknown.
func ResolveDate(candidates ...string) Timestamp {
	for _, c := range candidates {
		if t, ok := fuzzyParse(c); ok {
			return At(t)
		}
	}
	return Unknown
}

// fuzzyParse tries the whole string, then runs of its words from longest to
// shortest and left to right, so a date surrounded by other text is found.
func fuzzyParse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" || !hasDigit(s) {
		return time.Time{}, false
	}
	if m := clockSuffix.FindStringSubmatch(s); m != nil {
		if hour, minute, ok := clock(m[2], m[3], m[4]); ok {
			d, ok := fuzzyParse(m[1])
			if !ok {
				return time.Time{}, false
			}
			return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, d.Location()), true
		}
	}
	if t, ok := parseDate(s); ok {
		return t, true
	}

	words := strings.Fields(s)
	if len(words) > maxDateWords {
		words = words[:maxDateWords]
	}
	for n := len(words); n > 0; n-- {
		for i := 0; i+n <= len(words); i++ {
			w := strings.Trim(strings.Join(words[i:i+n], " "), "()[]<>{}\"'.,;")
			if w == "" || !hasDigit(w) || (n == 1 && isNumber(w)) {
				continue
			}
			if t, ok := parseDate(w); ok {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

func hasDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

func isNumber(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) }) < 0
}

// clockSuffix matches a trailing "at 4pm" or "at 16:30" clause, which
// dateparse misreads as minutes.
var clockSuffix = regexp.MustCompile(`(?i)^(.*\d.*?),?\s+at\s+(\d{1,2})(?::(\d{2}))?\s*([ap]\.?m\.?)?$`)

// parseDate parses s as a full date. Results without a year are partial
// parses of a time or fraction and do not count.
func parseDate(s string) (time.Time, bool) {
	t, err := parseAny(s)
	if err != nil || t.Year() == 0 {
		return time.Time{}, false
	}
	return t, true
}

func clock(h, m, meridiem string) (hour, minute int, ok bool) {
	hour, _ = strconv.Atoi(h)
	if m != "" {
		minute, _ = strconv.Atoi(m)
	}
	if minute > 59 {
		return 0, 0, false
	}
	switch strings.ToLower(strings.ReplaceAll(meridiem, ".", "")) {
	case "":
		return hour, minute, hour <= 23
	case "am":
		return hour % 12, minute, hour >= 1 && hour <= 12
	default:
		return hour%12 + 12, minute, hour >= 1 && hour <= 12
	}
}

// dateparse panics on some malformed input.
func parseAny(s string) (t time.Time, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("dateparse: %v", r)
		}
	}()
	return dateparse.ParseAny(s)
}
