package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Request модель запроса на получение слотов
type Request struct {
	Date                   domain.Date // Календарная дата в зоне расписания
	SessionDurationMinutes *int        // nil - длительность из конфигурации
	UpcomingOnly           bool        // Скрыть слоты, которые уже начались
}

// Response модель ответа со списком слотов
type Response struct {
	Date                   domain.Date
	SessionDurationMinutes int
	Tier                   string // Уровень расписания, определивший день
	Closed                 bool
	Description            string
	Slots                  []Slot
}

// Slot модель слота приема
type Slot struct {
	StartTime time.Time
	EndTime   time.Time
}
