package leave

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/alpacahq/bizday/calendar"
)

var (
	// ErrInvalidDate is returned for a date that is not a valid YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date")
	// ErrReversedRange is returned when the end date precedes the start date.
	ErrReversedRange = errors.New("end date must not precede start date")
)

// NoBusinessDaysError is returned for a range made only of weekends and
// holidays.
type NoBusinessDaysError struct {
	Excluded []calendar.Date
}

func (e *NoBusinessDaysError) Error() string {
	return fmt.Sprintf("no business days in the requested range (excluded: %s)", joinDates(e.Excluded))
}

// InsufficientBalanceError is returned when a request needs more business
// days than the requester has left.
type InsufficientBalanceError struct {
	Requested int
	Remaining float64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("requested %d business days but only %g remain", e.Requested, e.Remaining)
}

// IsValidationError reports whether err is a user-correctable validation
// failure rather than a system fault.
func IsValidationError(err error) bool {
	switch errors.Cause(err).(type) {
	case *NoBusinessDaysError, *InsufficientBalanceError:
		return true
	}
	cause := errors.Cause(err)
	return cause == ErrInvalidDate || cause == ErrReversedRange
}

func joinDates(ds []calendar.Date) string {
	keys := make([]string, len(ds))
	for i := range ds {
		keys[i] = ds[i].Key()
	}
	return strings.Join(keys, ", ")
}
