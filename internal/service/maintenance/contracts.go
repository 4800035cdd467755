package maintenance

import (
	"context"
	"time"

	"github.com/elietedasilvas/BLZ-BookingService/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	CompleteFinished(ctx context.Context, today time.Time, now types.TimeString) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
