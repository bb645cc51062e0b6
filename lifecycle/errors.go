package lifecycle

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the report is not in the expected partition
	ErrNotFound = errors.New("report not found")
	// ErrInvalidStatus is returned when the requested status is not allowed
	// from the report's current partition
	ErrInvalidStatus = errors.New("invalid status")
	// ErrTerminal is returned for any transition out of Completed or Cancelled
	ErrTerminal = fmt.Errorf("%w: report is already closed", ErrInvalidStatus)
	// ErrMissingReporter is returned when the report has no reportedBy, there
	// would be nobody to notify
	ErrMissingReporter = errors.New("report has no reporter")
	// ErrInvalidReport is returned when a submission lacks required fields
	ErrInvalidReport = errors.New("invalid report")
)
