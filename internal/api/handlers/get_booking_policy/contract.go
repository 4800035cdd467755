package get_booking_policy

import (
	"context"

	"github.com/elietedasilvas/BLZ-BookingService/internal/service/policy/models"
)

type PolicyService interface {
	Get(ctx context.Context, professionalID int64) (*models.PolicyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
