package update_schedule

import (
	"context"

	"github.com/elietedasilvas/BLZ-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	ReplaceDay(ctx context.Context, req *models.ReplaceDayRequest) (*models.DayScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
