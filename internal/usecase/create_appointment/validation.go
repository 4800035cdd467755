package create_appointment

import (
	"fmt"
	"time"

	"github.com/elietedasilvas/BLZ-BookingService/internal/domain"
	"github.com/elietedasilvas/BLZ-BookingService/internal/integrations/catalogservice"
	"github.com/elietedasilvas/BLZ-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateService проверяет, что услуга выполняется мастером и имеет
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

// validateDate проверяет, что дата подходит для записи
func validateDate(date time.Time, now time.Time, advanceBookingDays int) error {
	if isDateInPast(date, now) {
		return ErrDateInPast
	}

	// Если advanceBookingDays = 0, нет ограничений на дату
	if advanceBookingDays == 0 {
		return nil
	}

	maxDate := dayStart(now).AddDate(0, 0, advanceBookingDays)

	if dayStart(date).After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}

// validateNotice проверяет, что запись не нарушает minBookingNoticeMinutes
func validateNotice(date time.Time, startTime types.TimeString, now time.Time, minNoticeMinutes int) error {
	// Если дата записи не сегодня, проверка не нужна
	if !isSameDay(date, now) {
		return nil
	}

	currentTime := types.NewTimeString(now)
	minAllowedTime, err := currentTime.AddMinutes(minNoticeMinutes)
	if err != nil {
		return fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, minNoticeMinutes)
	}

	if startTime.IsBefore(minAllowedTime) {
		return fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, minNoticeMinutes)
	}

	return nil
}

// resolveEndTime вычисляет конец записи и проверяет, что интервал
// [start, end) целиком помещается в одно из окон доступности.
// Интервал за пределами суток или не покрытый ни одним окном - ErrOutOfWindow.
func resolveEndTime(windows []*domain.AvailabilityWindow, start types.TimeString, durationMinutes int) (types.TimeString, error) {
	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return "", ErrOutOfWindow
	}

	for _, window := range windows {
		if window.Contains(start, end) {
			return end, nil
		}
	}

	return "", ErrOutOfWindow
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	return dayStart(date).Before(dayStart(now))
}

// dayStart возвращает начало календарного дня значения, нормализованное в UTC.
// Дата запроса парсится как полночь UTC, а текущее время может быть в локальной
// зоне - сравнивать моменты напрямую нельзя, только календарные дни
func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// getServicePrice извлекает цену из услуги.
// Если цена не указана (nil), возвращает 0.0
func getServicePrice(service *catalogservice.Service) float64 {
	if service.Price == nil {
		return 0.0
	}
	return *service.Price
}
