package get_effective_schedule

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Request модель запроса действующего расписания
type Request struct {
	Date domain.Date
}

// Response действующее расписание на дату
type Response struct {
	Date        domain.Date
	Tier        string
	Closed      bool
	Description string
	Windows     []Window
}

// Window рабочий интервал, привязанный к дате
type Window struct {
	TimeSlot  domain.TimeSlot // Исходный интервал HH:MM-HH:MM
	StartTime time.Time
	EndTime   time.Time
}
