package get_schedule

import (
	"context"

	"github.com/elietedasilvas/BLZ-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetWeek(ctx context.Context, professionalID int64) (*models.WeekScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
