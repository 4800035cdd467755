package get_available_slots

import (
	"fmt"
	"time"

	"github.com/elietedasilvas/BLZ-BookingService/internal/integrations/catalogservice"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата подходит для просмотра слотов
func validateDate(requestDate time.Time, now time.Time, advanceBookingDays int) error {
	if isDateInPast(requestDate, now) {
		return ErrDateInPast
	}

	// Если advanceBookingDays = 0, нет ограничений на дату
	if advanceBookingDays == 0 {
		return nil
	}

	maxDate := dayStart(now).AddDate(0, 0, advanceBookingDays)

	if dayStart(requestDate).After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}

// validateService проверяет, что услуга активна, выполняется мастером и имеет
// корректную длительность
func validateService(service *catalogservice.Service, professionalID int64) error {
	if service.DurationMinutes <= 0 {
		return fmt.Errorf("%w: service id=%d has duration %d", ErrInvalidServiceDuration, service.ID, service.DurationMinutes)
	}

	for _, id := range service.ProfessionalIDs {
		if id == professionalID {
			return nil
		}
	}

	return ErrServiceNotOffered
}
