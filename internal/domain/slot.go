package domain

import "time"

// AvailabilitySlot is a concrete [StartTime, EndTime) pair on a specific date. Never persisted.
type AvailabilitySlot struct {
	StartTime time.Time
	EndTime   time.Time
}

// Contains returns true if [start, end] lies fully inside the slot
func (s AvailabilitySlot) Contains(start, end time.Time) bool {
	return !start.Before(s.StartTime) && !end.After(s.EndTime)
}
