package decoder

import (
	"errors"
	"fmt"
)

// ErrNoOffers is returned when a well-formed document without any shop
// header contains no recognizable product-like elements after trying
// every location strategy.
var ErrNoOffers = errors.New("no product elements found in feed")

// ParseError reports malformed feed markup. Its message is safe to show
// to the user.
type ParseError struct {
	Err error
}

// Error returns error message.
func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed XML: %s", e.Err)
}

// Unwrap returns underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
