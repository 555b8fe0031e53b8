package platform

import (
	"errors"
)

// ErrAlreadyRunning is an error returned when run can't be started because previous run is not finished yet.
var ErrAlreadyRunning = errors.New("parsing already running for this shop")

// ErrNotFound is an error returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")
