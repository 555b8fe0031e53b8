package fetcher

import (
	"errors"
	"fmt"
)

var (
	// ErrStatusNotOK is returned when http response had non-2xx status.
	ErrStatusNotOK = errors.New("response status is not 2xx")
	// ErrUnknownFileType is returned before any network call when feed URL
	// has no recognized extension.
	ErrUnknownFileType = errors.New("unknown feed file type, expected .xml or .csv")
)

// FetchError is returned when both the direct request and the relay
// fallback failed. Its message is safe to show to the user.
type FetchError struct {
	URL string
	Err error
}

// Error returns error message.
func (e *FetchError) Error() string {
	return fmt.Sprintf("can't fetch feed from %q: %s", e.URL, e.Err)
}

// Unwrap returns underlying error.
func (e *FetchError) Unwrap() error {
	return e.Err
}
