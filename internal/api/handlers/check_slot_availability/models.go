package check_slot_availability

import (
	"time"

	checkSlotAvailability "github.com/m04kA/SMC-ScheduleService/internal/usecase/check_slot_availability"
)

// SlotAvailabilityResponse HTTP response model
type SlotAvailabilityResponse struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Date      string `json:"date"`
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkSlotAvailability.Response) *SlotAvailabilityResponse {
	return &SlotAvailabilityResponse{
		Start:     resp.Start.Format(time.RFC3339),
		End:       resp.End.Format(time.RFC3339),
		Date:      resp.Date.String(),
		Available: resp.Available,
	}
}

// ToUseCaseRequest разбирает start/end в формате RFC3339
func ToUseCaseRequest(startStr, endStr string) (*checkSlotAvailability.Request, error) {
	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		return nil, err
	}

	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		return nil, err
	}

	return &checkSlotAvailability.Request{Start: start, End: end}, nil
}
