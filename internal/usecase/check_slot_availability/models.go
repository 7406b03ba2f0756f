package check_slot_availability

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Request проверяемый интервал
type Request struct {
	Start time.Time
	End   time.Time
}

// Response результат проверки
type Response struct {
	Start     time.Time
	End       time.Time
	Date      domain.Date // Календарная дата начала интервала в зоне расписания
	Available bool
}
