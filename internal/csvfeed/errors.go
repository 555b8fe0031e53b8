package csvfeed

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyFile is returned when the supplier file has no content rows at all.
var ErrEmptyFile = errors.New("csv file is empty")

// FormatError reports a header row missing required columns. Its message
// names the missing columns and is safe to show to the user.
type FormatError struct {
	Missing []string
}

// Error returns error message.
func (e *FormatError) Error() string {
	return fmt.Sprintf("csv header is missing required columns: %s", strings.Join(e.Missing, ", "))
}
