package calendar

import "sort"

// HolidayKind names the rule that made a day a holiday.
type HolidayKind int

const (
	Fixed HolidayKind = iota + 1
	Moveable
	Equinox
	Substitute
	Citizens
)

func (k HolidayKind) String() string {
	switch k {
	case Fixed:
		return "fixed"
	case Moveable:
		return "moveable"
	case Equinox:
		return "equinox"
	case Substitute:
		return "substitute"
	case Citizens:
		return "citizens"
	}
	return "none"
}

// Holiday is a single member of a HolidaySet.
type Holiday struct {
	Date Date
	Name string
	Kind HolidayKind
}

// HolidaySet is the immutable set of non-working days of one year.
// It is keyed by the YYYY-MM-DD form of each date.
type HolidaySet struct {
	year int
	days map[string]Holiday
}

func newHolidaySet(year int, holidays map[string]Holiday) *HolidaySet {
	return &HolidaySet{year: year, days: holidays}
}

// Year returns the year the set was built for.
func (s *HolidaySet) Year() int {
	return s.year
}

// Contains reports whether d is a holiday in the set.
func (s *HolidaySet) Contains(d Date) bool {
	_, ok := s.days[d.Key()]
	return ok
}

// Kind returns the rule that produced d, or 0 if d is not in the set.
func (s *HolidaySet) Kind(d Date) HolidayKind {
	return s.days[d.Key()].Kind
}

// Len returns the number of holidays in the set.
func (s *HolidaySet) Len() int {
	return len(s.days)
}

// Holidays returns every member in ascending date order.
func (s *HolidaySet) Holidays() []Holiday {
	out := make([]Holiday, 0, len(s.days))
	for _, h := range s.days {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// Dates returns every holiday date in ascending order.
func (s *HolidaySet) Dates() []Date {
	hs := s.Holidays()
	out := make([]Date, len(hs))
	for i := range hs {
		out[i] = hs[i].Date
	}
	return out
}
