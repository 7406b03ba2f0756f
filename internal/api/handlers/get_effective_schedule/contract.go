package get_effective_schedule

import (
	"context"

	getEffectiveSchedule "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_effective_schedule"
)

type GetEffectiveScheduleUseCase interface {
	Execute(ctx context.Context, req *getEffectiveSchedule.Request) (*getEffectiveSchedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
