// Package leave validates leave requests against the business-day
// calendar before they are submitted for approval.
package leave

import (
	"github.com/pkg/errors"

	"github.com/alpacahq/bizday/calendar"
	"github.com/alpacahq/bizday/metrics"
	"github.com/alpacahq/bizday/utils/log"
)

// BalanceSource returns the remaining leave entitlement, in days, of an
// employee.
type BalanceSource interface {
	Remaining(employeeID string) (float64, error)
}

// StaticBalance is a BalanceSource that returns the same balance for
// every employee.
type StaticBalance float64

func (b StaticBalance) Remaining(string) (float64, error) {
	return float64(b), nil
}

// Request is a leave request as submitted by the HR application.
type Request struct {
	EmployeeID string
	Start      string
	End        string
}

// Result is the business-day breakdown of a valid request.
type Result struct {
	Start        calendar.Date
	End          calendar.Date
	BusinessDays int
	Excluded     []calendar.Date
}

// Validator checks leave requests against a calendar service and a
// balance source.
type Validator struct {
	cal      *calendar.Service
	balances BalanceSource
}

// NewValidator creates a validator. A nil cal uses calendar.Default.
func NewValidator(cal *calendar.Service, balances BalanceSource) *Validator {
	if cal == nil {
		cal = calendar.Default
	}
	return &Validator{cal: cal, balances: balances}
}

// Breakdown parses and checks the range without consulting any balance.
func (v *Validator) Breakdown(start, end string) (*Result, error) {
	s, err := parseDate(start)
	if err != nil {
		return nil, err
	}
	e, err := parseDate(end)
	if err != nil {
		return nil, err
	}
	if e.Before(s) {
		return nil, errors.Wrapf(ErrReversedRange, "%s to %s", s, e)
	}

	return &Result{
		Start:        s,
		End:          e,
		BusinessDays: v.cal.CountBusinessDays(s, e),
		Excluded:     v.cal.ListNonBusinessDays(s, e),
	}, nil
}

// Validate returns the breakdown of req, or an error describing why the
// request cannot be submitted.
func (v *Validator) Validate(req Request) (*Result, error) {
	res, err := v.validate(req)
	metrics.LeaveValidationsTotal.WithLabelValues(outcome(err)).Inc()
	return res, err
}

func (v *Validator) validate(req Request) (*Result, error) {
	res, err := v.Breakdown(req.Start, req.End)
	if err != nil {
		return nil, err
	}
	if res.BusinessDays == 0 {
		return nil, &NoBusinessDaysError{Excluded: res.Excluded}
	}

	remaining, err := v.balances.Remaining(req.EmployeeID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get the leave balance of %s", req.EmployeeID)
	}
	if float64(res.BusinessDays) > remaining {
		return nil, &InsufficientBalanceError{Requested: res.BusinessDays, Remaining: remaining}
	}

	log.Debug("leave request %s %s-%s: %d business days, %d excluded",
		req.EmployeeID, res.Start, res.End, res.BusinessDays, len(res.Excluded))
	return res, nil
}

func parseDate(s string) (calendar.Date, error) {
	d, err := calendar.ParseDate(s)
	if err != nil {
		return calendar.Date{}, errors.Wrap(ErrInvalidDate, err.Error())
	}
	return d, nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case IsValidationError(err):
		return "rejected"
	default:
		return "error"
	}
}
