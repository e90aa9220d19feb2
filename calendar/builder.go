package calendar

import (
	"time"

	"github.com/alpacahq/bizday/utils/log"
)

// Build computes the complete set of non-working days of year.
//
// The rules are applied as layers, each reading a snapshot of the layer
// below it: the base holidays (fixed, nth-Monday and equinox days), then
// substitute holidays for base holidays falling on Sunday, then citizen's
// holidays for weekdays sandwiched between two holidays.
func Build(year int) *HolidaySet {
	if year < equinoxFirstYear || year > equinoxLastYear {
		log.Debug("year %d is outside [%d, %d], using fallback equinox days",
			year, equinoxFirstYear, equinoxLastYear)
	}
	base := baseHolidays(year)
	substituted := withSubstitutes(year, base)
	return newHolidaySet(year, withCitizensHolidays(year, substituted))
}

func baseHolidays(year int) map[string]Holiday {
	days := map[string]Holiday{}
	for _, h := range fixedHolidays(year) {
		add(days, h)
	}
	for _, h := range moveableHolidays(year) {
		add(days, h)
	}
	for _, h := range equinoxHolidays(year) {
		add(days, h)
	}
	return days
}

func fixedHolidays(year int) []Holiday {
	out := make([]Holiday, 0, len(fixedRules))
	for _, r := range fixedRules {
		out = append(out, Holiday{Date: Date{year, r.Month, r.Day}, Name: r.Name, Kind: Fixed})
	}
	return out
}

func moveableHolidays(year int) []Holiday {
	out := make([]Holiday, 0, len(weekdayRules))
	for _, r := range weekdayRules {
		if day, ok := nthMonday(year, r.Month, r.N); ok {
			out = append(out, Holiday{Date: Date{year, r.Month, day}, Name: r.Name, Kind: Moveable})
		}
	}
	return out
}

func equinoxHolidays(year int) []Holiday {
	out := make([]Holiday, 0, len(equinoxRules))
	for _, r := range equinoxRules {
		out = append(out, Holiday{
			Date: Date{year, r.Month, equinoxDay(year, r)},
			Name: r.Name,
			Kind: Equinox,
		})
	}
	return out
}

// withSubstitutes returns base plus a substitute holiday for every base
// holiday that falls on a Sunday. The substitute is the first following
// Monday through Saturday of the same year that is not a base holiday.
// base is not modified.
func withSubstitutes(year int, base map[string]Holiday) map[string]Holiday {
	out := copyDays(base)
	for _, h := range base {
		if h.Date.Weekday() != time.Sunday {
			continue
		}
		for d := h.Date.AddDays(1); d.Year == year; d = d.AddDays(1) {
			if d.Weekday() == time.Sunday {
				continue
			}
			if _, ok := base[d.Key()]; ok {
				continue
			}
			add(out, Holiday{Date: d, Name: "Substitute Holiday", Kind: Substitute})
			break
		}
	}
	return out
}

// withCitizensHolidays returns days plus every weekday of year that is not
// already a holiday but whose previous and next days both are. Membership
// is checked against days only, so a citizen's holiday never completes
// another one in the same sweep. days is not modified.
func withCitizensHolidays(year int, days map[string]Holiday) map[string]Holiday {
	out := copyDays(days)
	holiday := func(d Date) bool {
		if d.Year != year {
			return false
		}
		_, ok := days[d.Key()]
		return ok
	}

	for d := (Date{year, time.January, 1}); d.Year == year; d = d.AddDays(1) {
		if IsWeekend(d) || holiday(d) {
			continue
		}
		if holiday(d.AddDays(-1)) && holiday(d.AddDays(1)) {
			add(out, Holiday{Date: d, Name: "Citizen's Holiday", Kind: Citizens})
		}
	}
	return out
}

// add keeps the first kind recorded for a date.
func add(days map[string]Holiday, h Holiday) {
	if _, ok := days[h.Date.Key()]; !ok {
		days[h.Date.Key()] = h
	}
}

func copyDays(days map[string]Holiday) map[string]Holiday {
	out := make(map[string]Holiday, len(days)+4)
	for k, v := range days {
		out[k] = v
	}
	return out
}
