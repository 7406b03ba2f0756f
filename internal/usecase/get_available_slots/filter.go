package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// toSlots конвертирует слоты движка, при upcomingOnly отбрасывает начавшиеся к моменту now
func toSlots(slots []domain.AvailabilitySlot, upcomingOnly bool, now time.Time) []Slot {
	result := make([]Slot, 0, len(slots))
	for _, s := range slots {
		if upcomingOnly && s.StartTime.Before(now) {
			continue
		}
		result = append(result, Slot{StartTime: s.StartTime, EndTime: s.EndTime})
	}
	return result
}
