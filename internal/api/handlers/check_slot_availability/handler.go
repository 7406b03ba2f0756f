package check_slot_availability

import (
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
)

const (
	msgMissingParams = "параметры start и end обязательны"
	msgInvalidParams = "некорректный формат времени, ожидается RFC3339"
)

type Handler struct {
	useCase CheckSlotAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckSlotAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/check
// Query params: start, end (required, RFC3339)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	startStr, endStr := query.Get("start"), query.Get("end")
	if startStr == "" || endStr == "" {
		h.logger.Warn("GET /availability/check - Missing start or end")
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	useCaseReq, err := ToUseCaseRequest(startStr, endStr)
	if err != nil {
		h.logger.Warn("GET /availability/check - Invalid time format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.logger.Error("GET /availability/check - Failed to check slot: start=%s, end=%s, error=%v", startStr, endStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /availability/check - Slot checked: start=%s, end=%s, available=%t",
		startStr, endStr, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
