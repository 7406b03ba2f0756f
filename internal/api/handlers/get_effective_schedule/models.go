package get_effective_schedule

import (
	"time"

	getEffectiveSchedule "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_effective_schedule"
)

// EffectiveScheduleResponse HTTP response model
type EffectiveScheduleResponse struct {
	Date        string   `json:"date"`
	Tier        string   `json:"tier"`
	Closed      bool     `json:"closed"`
	Description string   `json:"description,omitempty"`
	Windows     []Window `json:"windows"`
}

// Window рабочий интервал дня
type Window struct {
	StartTime string `json:"startTime"` // HH:MM
	EndTime   string `json:"endTime"`   // HH:MM
	Start     string `json:"start"`     // RFC3339
	End       string `json:"end"`       // RFC3339
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getEffectiveSchedule.Response) *EffectiveScheduleResponse {
	windows := make([]Window, len(resp.Windows))
	for i, w := range resp.Windows {
		windows[i] = Window{
			StartTime: w.TimeSlot.StartTime.String(),
			EndTime:   w.TimeSlot.EndTime.String(),
			Start:     w.StartTime.Format(time.RFC3339),
			End:       w.EndTime.Format(time.RFC3339),
		}
	}

	return &EffectiveScheduleResponse{
		Date:        resp.Date.String(),
		Tier:        resp.Tier,
		Closed:      resp.Closed,
		Description: resp.Description,
		Windows:     windows,
	}
}
