package domain

import "strings"

// DayOrder is the canonical week, Monday through Sunday, using the
// Mongolian day names that appear in the EduPage exports. Every day
// axis is sorted by position in this slice.
var DayOrder = []string{
	"Даваа",
	"Мягмар",
	"Лхагва",
	"Пүрэв",
	"Баасан",
	"Бямба",
	"Ням",
}

// dayAliases maps lower-cased day tokens to their canonical form.
// Covers Mongolian full names plus English full names and the
// abbreviations EduPage emits on narrow layouts.
var dayAliases = map[string]string{
	"даваа":     "Даваа",
	"мон":       "Даваа",
	"mon":       "Даваа",
	"monday":    "Даваа",
	"мягмар":    "Мягмар",
	"tue":       "Мягмар",
	"tues":      "Мягмар",
	"tuesday":   "Мягмар",
	"лхагва":    "Лхагва",
	"wed":       "Лхагва",
	"wednesday": "Лхагва",
	"пүрэв":     "Пүрэв",
	"thu":       "Пүрэв",
	"thur":      "Пүрэв",
	"thursday":  "Пүрэв",
	"баасан":    "Баасан",
	"fri":       "Баасан",
	"friday":    "Баасан",
	"бямба":     "Бямба",
	"sat":       "Бямба",
	"saturday":  "Бямба",
	"ням":       "Ням",
	"sun":       "Ням",
	"sunday":    "Ням",
}

// CanonicalDay maps a cleaned (whitespace-collapsed) day token to its
// canonical form. The lookup is case-insensitive. Unrecognised labels
// are passed through unchanged with ok=false so that unknown columns
// are retained rather than dropped.
func CanonicalDay(label string) (day string, ok bool) {
	if canonical, found := dayAliases[strings.ToLower(label)]; found {
		return canonical, true
	}
	return label, false
}

// DayIndex returns the position of a canonical day within DayOrder,
// or -1 when the label is not one of the seven canonical days.
func DayIndex(day string) int {
	for i, d := range DayOrder {
		if d == day {
			return i
		}
	}
	return -1
}
