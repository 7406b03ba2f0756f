package domain

import (
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// TimeSlot represents a contiguous wall-clock interval within one calendar day
type TimeSlot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}

// NewTimeSlot parses "HH:MM" bounds and checks that start is before end
func NewTimeSlot(start, end string) (TimeSlot, error) {
	startTime, err := types.NewTimeStringFromString(start)
	if err != nil {
		return TimeSlot{}, fmt.Errorf("%w: start %q: %v", ErrMalformedTimeSlot, start, err)
	}
	endTime, err := types.NewTimeStringFromString(end)
	if err != nil {
		return TimeSlot{}, fmt.Errorf("%w: end %q: %v", ErrMalformedTimeSlot, end, err)
	}

	slot := TimeSlot{StartTime: startTime, EndTime: endTime}
	if err := slot.Validate(); err != nil {
		return TimeSlot{}, err
	}
	return slot, nil
}

// MustTimeSlot is NewTimeSlot that panics on error
func MustTimeSlot(start, end string) TimeSlot {
	slot, err := NewTimeSlot(start, end)
	if err != nil {
		panic(err)
	}
	return slot
}

// Validate returns ErrMalformedTimeSlot unless StartTime < EndTime
func (s TimeSlot) Validate() error {
	if !s.StartTime.IsBefore(s.EndTime) {
		return fmt.Errorf("%w: start %s is not before end %s", ErrMalformedTimeSlot, s.StartTime, s.EndTime)
	}
	return nil
}

// Overlaps returns true if the slots share at least one minute.
// Adjacent slots (10:00-11:00 and 11:00-12:00) do not overlap.
func (s TimeSlot) Overlaps(other TimeSlot) bool {
	return s.StartTime.IsBefore(other.EndTime) && other.StartTime.IsBefore(s.EndTime)
}

// String formats the slot as HH:MM-HH:MM
func (s TimeSlot) String() string {
	return s.StartTime.String() + "-" + s.EndTime.String()
}
