package models

import "fmt"

// Day-of-week indices used across the weekly board. The board models one
// generic recurring week; no calendar dates are involved.
const (
	Sunday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// DayNames maps a day index to its display name.
var DayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// TimeSlot is a point in the recurring weekly grid.
type TimeSlot struct {
	Day    int `json:"day"`
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// AddMinutes returns a new slot advanced by the given number of minutes,
// carrying minutes into hours. Hours past 23 are not carried into the next
// day; callers that care about the midnight boundary must check
// MinutesOfDay before placing a session.
func (t TimeSlot) AddMinutes(minutes int) TimeSlot {
	total := t.Minute + minutes
	return TimeSlot{
		Day:    t.Day,
		Hour:   t.Hour + total/60,
		Minute: total % 60,
	}
}

// Before reports whether t is strictly earlier than other within the same
// day, comparing (hour, minute) lexicographically. Day is ignored.
func (t TimeSlot) Before(other TimeSlot) bool {
	if t.Hour != other.Hour {
		return t.Hour < other.Hour
	}
	return t.Minute < other.Minute
}

// MinutesOfDay returns the slot position as minutes since 00:00.
func (t TimeSlot) MinutesOfDay() int {
	return t.Hour*60 + t.Minute
}

// Clock renders the slot time in 12-hour display form, e.g. "2:30 PM".
func (t TimeSlot) Clock() string {
	hour := t.Hour % 12
	if hour == 0 {
		hour = 12
	}
	suffix := "AM"
	if t.Hour >= 12 {
		suffix = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", hour, t.Minute, suffix)
}

// Valid reports whether every field is inside the weekly grid.
func (t TimeSlot) Valid() bool {
	return t.Day >= 0 && t.Day <= 6 && t.Hour >= 0 && t.Hour <= 23 && t.Minute >= 0 && t.Minute <= 59
}

// Overlaps tests two half-open intervals [aStart, aEnd) and [bStart, bEnd)
// for overlap. Intervals on different days never overlap. Zero-length or
// inverted intervals overlap nothing, including themselves.
func Overlaps(aStart, aEnd, bStart, bEnd TimeSlot) bool {
	if aStart.Day != bStart.Day {
		return false
	}
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
