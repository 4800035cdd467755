package policy

import (
	"context"

	"github.com/elietedasilvas/BLZ-BookingService/internal/domain"
	"github.com/elietedasilvas/BLZ-BookingService/internal/integrations/catalogservice"
)

// PolicyRepository интерфейс репозитория политик бронирования
type PolicyRepository interface {
	GetByProfessional(ctx context.Context, professionalID *int64) (*domain.BookingPolicy, error)
	GetWithFallback(ctx context.Context, professionalID int64) (*domain.BookingPolicy, error)
	Upsert(ctx context.Context, policy *domain.BookingPolicy) (*domain.BookingPolicy, error)
}

// CatalogServiceClient интерфейс клиента для CatalogService
type CatalogServiceClient interface {
	GetProfessional(ctx context.Context, professionalID int64) (*catalogservice.Professional, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
