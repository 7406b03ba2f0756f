package get_available_slots

import (
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: %w", ErrInvalidInput, ErrMissingDate)
	}

	if req.SessionDurationMinutes != nil {
		if err := domain.ValidateSessionDuration(*req.SessionDurationMinutes); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
	}

	return nil
}
