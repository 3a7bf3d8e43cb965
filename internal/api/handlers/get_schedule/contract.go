package get_schedule

import (
	"context"

	getSchedule "github.com/m04kA/TurfBookingService/internal/usecase/get_schedule"
)

// GetScheduleUseCase builds the reconciled day schedule.
type GetScheduleUseCase interface {
	Execute(ctx context.Context, req *getSchedule.Request) (*getSchedule.Response, error)
}

// Logger is the logging surface the handler needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
