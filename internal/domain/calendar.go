package domain

import (
	"time"

	"github.com/ncruces/go-strftime"
)

// DayFraction is the quarter of the day a time falls into.
type DayFraction int

// Day fractions, six hours each.
const (
	Dawn DayFraction = iota
	Morning
	Afternoon
	Night
)

// DayFractionOf classifies t by its hour.
func DayFractionOf(t time.Time) DayFraction {
	switch hour := t.Hour(); {
	case hour < 6:
		return Dawn
	case hour < 12:
		return Morning
	case hour < 18:
		return Afternoon
	default:
		return Night
	}
}

// FormatCalendar formats t as `(Mon) Jan 02nd`.
func FormatCalendar(t time.Time) string {
	return strftime.Format("(%a) %b %d", t) + DayOrdinal(t.Day())
}

// FormatClock formats t as `15h04m`.
func FormatClock(t time.Time) string {
	return strftime.Format("%Hh%Mm", t)
}

// DayOrdinal returns the English ordinal suffix of a day of the month.
func DayOrdinal(day int) string {
	if day%100 >= 11 && day%100 <= 13 {
		return "th"
	}

	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
