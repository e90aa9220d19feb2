package leave

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alpacahq/bizday/calendar"
)

type mockBalances struct {
	remaining map[string]float64
	err       error
}

func (m *mockBalances) Remaining(id string) (float64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.remaining[id], nil
}

func newValidator(b BalanceSource) *Validator {
	return NewValidator(calendar.NewService(calendar.NewCache()), b)
}

func TestValidateOK(t *testing.T) {
	t.Parallel()
	v := newValidator(&mockBalances{remaining: map[string]float64{"emp001": 10}})

	res, err := v.Validate(Request{EmployeeID: "emp001", Start: "2025-05-01", End: "2025-05-09"})
	require.Nil(t, err)
	assert.Equal(t, 5, res.BusinessDays)
	assert.Equal(t, []calendar.Date{
		{Year: 2025, Month: time.May, Day: 3},
		{Year: 2025, Month: time.May, Day: 4},
		{Year: 2025, Month: time.May, Day: 5},
		{Year: 2025, Month: time.May, Day: 6},
	}, res.Excluded)
}

func TestValidateRejections(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		req     Request
		balance float64
		check   func(t *testing.T, err error)
	}{
		"ng/ malformed start": {
			req: Request{Start: "2025-5-1", End: "2025-05-09"},
			check: func(t *testing.T, err error) {
				assert.Equal(t, ErrInvalidDate, errors.Cause(err))
			},
		},
		"ng/ impossible end": {
			req: Request{Start: "2025-02-01", End: "2025-02-30"},
			check: func(t *testing.T, err error) {
				assert.Equal(t, ErrInvalidDate, errors.Cause(err))
			},
		},
		"ng/ end before start": {
			req: Request{Start: "2025-05-09", End: "2025-05-01"},
			check: func(t *testing.T, err error) {
				assert.Equal(t, ErrReversedRange, errors.Cause(err))
				assert.Contains(t, err.Error(), "end date must not precede start date")
			},
		},
		"ng/ only holidays": {
			req:     Request{Start: "2023-05-03", End: "2023-05-05"},
			balance: 10,
			check: func(t *testing.T, err error) {
				nb, ok := err.(*NoBusinessDaysError)
				require.True(t, ok)
				assert.Len(t, nb.Excluded, 3)
				assert.Contains(t, err.Error(), "2023-05-03, 2023-05-04, 2023-05-05")
			},
		},
		"ng/ balance exceeded": {
			req:     Request{Start: "2025-05-07", End: "2025-05-16"},
			balance: 7.5,
			check: func(t *testing.T, err error) {
				ib, ok := err.(*InsufficientBalanceError)
				require.True(t, ok)
				assert.Equal(t, 8, ib.Requested)
				assert.Equal(t, 7.5, ib.Remaining)
			},
		},
	}
	for name := range tests {
		tt := tests[name]
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			v := newValidator(StaticBalance(tt.balance))
			res, err := v.Validate(tt.req)
			assert.Nil(t, res)
			require.NotNil(t, err)
			assert.True(t, IsValidationError(err))
			tt.check(t, err)
		})
	}
}

func TestValidateBalanceFailure(t *testing.T) {
	t.Parallel()
	v := newValidator(&mockBalances{err: errors.New("balance service unavailable")})

	_, err := v.Validate(Request{EmployeeID: "emp002", Start: "2025-05-07", End: "2025-05-07"})
	require.NotNil(t, err)
	assert.False(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "emp002")
}

func TestBreakdownAcrossYears(t *testing.T) {
	t.Parallel()
	v := newValidator(nil)
	res, err := v.Breakdown("2025-12-29", "2026-01-05")
	require.Nil(t, err)
	assert.Equal(t, 5, res.BusinessDays)
	assert.Len(t, res.Excluded, 3)
}

func TestNewValidatorDefaultsCalendar(t *testing.T) {
	t.Parallel()
	v := NewValidator(nil, StaticBalance(1))
	assert.True(t, v.cal == calendar.Default)
}
