package calendar

import (
	"math"
	"time"
)

// fixedRule is a holiday observed on the same month and day every year.
type fixedRule struct {
	Name  string
	Month time.Month
	Day   int
}

// weekdayRule is a holiday observed on the nth Monday of a month.
type weekdayRule struct {
	Name  string
	Month time.Month
	N     int
}

// equinoxRule approximates the day of an equinox in its month.
type equinoxRule struct {
	Name     string
	Month    time.Month
	Base     float64
	Fallback int
}

var fixedRules = []fixedRule{
	{"New Year's Day", time.January, 1},
	{"National Foundation Day", time.February, 11},
	{"Emperor's Birthday", time.February, 23},
	{"Showa Day", time.April, 29},
	{"Constitution Memorial Day", time.May, 3},
	{"Greenery Day", time.May, 4},
	{"Children's Day", time.May, 5},
	{"Mountain Day", time.August, 11},
	{"Culture Day", time.November, 3},
	{"Labor Thanksgiving Day", time.November, 23},
	// former Emperor's Birthday, still a non-working day for existing schedules
	{"Legacy Emperor's Birthday", time.December, 23},
}

var weekdayRules = []weekdayRule{
	{"Coming of Age Day", time.January, 2},
	{"Marine Day", time.July, 3},
	{"Respect for the Aged Day", time.September, 3},
	{"Sports Day", time.October, 2},
}

const (
	equinoxRate      = 0.242194
	equinoxEpoch     = 1980
	equinoxFirstYear = 1900
	equinoxLastYear  = 2099
)

var equinoxRules = []equinoxRule{
	{"Vernal Equinox Day", time.March, 20.8431, 20},
	{"Autumnal Equinox Day", time.September, 23.2488, 23},
}

// nthMonday returns the day of month of the nth Monday of the month,
// and false when the month has fewer than n Mondays.
func nthMonday(year int, month time.Month, n int) (int, bool) {
	first := int(NewDate(year, month, 1).Weekday())
	day := 1 + (8-first)%7 + 7*(n-1)
	if day > daysIn(year, month) {
		return 0, false
	}
	return day, true
}

// equinoxDay returns the day of month of the equinox described by r.
// The linear approximation is only trusted inside [1900, 2099].
func equinoxDay(year int, r equinoxRule) int {
	if year < equinoxFirstYear || year > equinoxLastYear {
		return r.Fallback
	}
	y := float64(year - equinoxEpoch)
	return int(math.Floor(r.Base + equinoxRate*y - math.Floor(y/4)))
}
