package domain

import "time"

// DaySchedule is the opening pattern of one weekday.
// When Enabled is false the TimeSlots are kept but ignored for availability.
type DaySchedule struct {
	Enabled   bool
	TimeSlots []TimeSlot
}

// IsOpen returns true if the day is enabled and has at least one slot
func (d DaySchedule) IsOpen() bool {
	return d.Enabled && len(d.TimeSlots) > 0
}

// WeeklySchedule holds exactly one DaySchedule per weekday
type WeeklySchedule struct {
	Monday    DaySchedule
	Tuesday   DaySchedule
	Wednesday DaySchedule
	Thursday  DaySchedule
	Friday    DaySchedule
	Saturday  DaySchedule
	Sunday    DaySchedule
}

// Weekdays lists the days in the order they are presented (Monday first)
var Weekdays = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// Day returns the schedule for the given weekday
func (w *WeeklySchedule) Day(weekday time.Weekday) DaySchedule {
	switch weekday {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	default:
		return DaySchedule{Enabled: false}
	}
}

// SetDay replaces the schedule for the given weekday
func (w *WeeklySchedule) SetDay(weekday time.Weekday, day DaySchedule) {
	switch weekday {
	case time.Monday:
		w.Monday = day
	case time.Tuesday:
		w.Tuesday = day
	case time.Wednesday:
		w.Wednesday = day
	case time.Thursday:
		w.Thursday = day
	case time.Friday:
		w.Friday = day
	case time.Saturday:
		w.Saturday = day
	case time.Sunday:
		w.Sunday = day
	}
}

// WeekdayName returns the lowercase english name used in documents and APIs ("monday")
func WeekdayName(weekday time.Weekday) string {
	switch weekday {
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	case time.Saturday:
		return "saturday"
	default:
		return "sunday"
	}
}
