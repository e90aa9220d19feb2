// Package calendar provides the business-day calendar used by leave
// requests and calendar screens. It reproduces the Japanese national
// holiday calendar, including substitute holidays and citizen's holidays,
// and answers point and range questions on top of a per-year cache.
package calendar

import (
	"time"
)

// maxScanDays bounds the search for the nearest business day.
const maxScanDays = 366

// Default answers queries against a process-wide cache.
var Default = NewService(NewCache())

// DayStatus describes one day of a month grid.
type DayStatus struct {
	Date        Date
	Weekend     bool
	Holiday     bool
	Kind        HolidayKind
	Name        string
	BusinessDay bool
}

// Service answers business-day questions using a Cache.
type Service struct {
	cache *Cache
}

// NewService creates a service over cache.
func NewService(cache *Cache) *Service {
	return &Service{cache: cache}
}

// IsWeekend reports whether d is a Saturday or a Sunday.
func IsWeekend(d Date) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Holidays returns the cached holiday set of year.
func (s *Service) Holidays(year int) *HolidaySet {
	return s.cache.Get(year)
}

// IsHoliday reports whether d is a holiday of its year.
func (s *Service) IsHoliday(d Date) bool {
	return s.cache.Get(d.Year).Contains(d)
}

// IsBusinessDay reports whether d is neither a weekend nor a holiday.
func (s *Service) IsBusinessDay(d Date) bool {
	return !IsWeekend(d) && !s.IsHoliday(d)
}

// CountBusinessDays returns the number of business days in [start, end].
// A reversed range has no days and counts 0.
func (s *Service) CountBusinessDays(start, end Date) int {
	n := 0
	for d := start; !d.After(end); d = d.AddDays(1) {
		if s.IsBusinessDay(d) {
			n++
		}
	}
	return n
}

// ListNonBusinessDays returns the weekends and holidays in [start, end]
// in ascending order.
func (s *Service) ListNonBusinessDays(start, end Date) []Date {
	var out []Date
	for d := start; !d.After(end); d = d.AddDays(1) {
		if !s.IsBusinessDay(d) {
			out = append(out, d)
		}
	}
	return out
}

// NextBusinessDay returns the first business day on or after d.
func (s *Service) NextBusinessDay(d Date) Date {
	return s.scan(d, 1)
}

// PreviousBusinessDay returns the last business day on or before d.
func (s *Service) PreviousBusinessDay(d Date) Date {
	return s.scan(d, -1)
}

func (s *Service) scan(d Date, step int) Date {
	for i := 0; i < maxScanDays; i++ {
		if s.IsBusinessDay(d) {
			return d
		}
		d = d.AddDays(step)
	}
	return d
}

// AddBusinessDays returns the date n business days after d, or before d
// when n is negative. d itself is never counted.
func (s *Service) AddBusinessDays(d Date, n int) Date {
	step := 1
	if n < 0 {
		step, n = -1, -n
	}
	for n > 0 {
		d = d.AddDays(step)
		if s.IsBusinessDay(d) {
			n--
		}
	}
	return d
}

// Month returns the status of every day of the month, for rendering a
// calendar grid.
func (s *Service) Month(year int, month time.Month) []DayStatus {
	first := NewDate(year, month, 1)
	set := s.cache.Get(first.Year)
	out := make([]DayStatus, 0, first.DaysInMonth())
	for d := first; d.Month == first.Month && d.Year == first.Year; d = d.AddDays(1) {
		h := set.days[d.Key()]
		weekend := IsWeekend(d)
		holiday := h.Kind != 0
		out = append(out, DayStatus{
			Date:        d,
			Weekend:     weekend,
			Holiday:     holiday,
			Kind:        h.Kind,
			Name:        h.Name,
			BusinessDay: !weekend && !holiday,
		})
	}
	return out
}
