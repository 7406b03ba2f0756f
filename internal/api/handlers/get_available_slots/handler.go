package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate     = "дата обязательна"
	msgInvalidParams   = "некорректные параметры: date в формате YYYY-MM-DD, sessionDuration целое число минут, upcoming true/false"
	msgInvalidDuration = "длительность сессии должна быть от 1 до 1440 минут"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/slots
// Query params: date (required, YYYY-MM-DD), sessionDuration (опционально, минуты), upcoming (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /availability/slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr, query.Get("sessionDuration"), query.Get("upcoming"))
	if err != nil {
		h.logger.Warn("GET /availability/slots - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if errors.Is(err, getAvailableSlots.ErrInvalidInput) {
			h.logger.Warn("GET /availability/slots - Invalid input: date=%s, error=%v", dateStr, err)
			handlers.RespondBadRequest(w, invalidInputMessage(err))
			return
		}

		h.logger.Error("GET /availability/slots - Failed to get slots: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /availability/slots - Slots retrieved successfully: date=%s, tier=%s, slots_count=%d",
		dateStr, result.Tier, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// invalidInputMessage подбирает текст ошибки по причине отказа use case
func invalidInputMessage(err error) string {
	switch {
	case errors.Is(err, getAvailableSlots.ErrMissingDate):
		return msgMissingDate
	case errors.Is(err, domain.ErrInvalidSessionDuration):
		return msgInvalidDuration
	default:
		return msgInvalidParams
	}
}
