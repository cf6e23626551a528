package feed

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput    = errors.New("name and url must not be empty")
	ErrDuplicateSource = errors.New("feed source already exists")
	ErrNotFound        = errors.New("feed source not found")
	ErrInvalidSource   = errors.New("invalid feed source")
)

// FetchErrorKind tells a transport failure apart from an unparseable payload.
type FetchErrorKind int

const (
	FetchNetwork FetchErrorKind = iota
	FetchMalformed
)

func (k FetchErrorKind) String() string {
	switch k {
	case FetchNetwork:
		return "network"
	case FetchMalformed:
		return "malformed"
	default:
		return fmt.Sprintf("FetchErrorKind(%d)", int(k))
	}
}

// FetchError is returned by Fetcher.Fetch.
type FetchError struct {
	Kind FetchErrorKind
	URL  string
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s (%s): %v", e.URL, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsMalformed reports whether err is a FetchError for a payload that is not a feed.
func IsMalformed(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Kind == FetchMalformed
}
