package reschedule_appointment

import (
	"fmt"
	"time"

	"github.com/elietedasilvas/BLZ-BookingService/internal/domain"
	"github.com/elietedasilvas/BLZ-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
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

	return nil
}

// validateDate проверяет, что новая дата подходит для записи
func validateDate(date time.Time, now time.Time, advanceBookingDays int) error {
	if isDateInPast(date, now) {
		return ErrDateInPast
	}

	if advanceBookingDays == 0 {
		return nil
	}

	maxDate := dayStart(now).AddDate(0, 0, advanceBookingDays)

	if dayStart(date).After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}

// validateNotice проверяет, что перенос не нарушает minBookingNoticeMinutes
func validateNotice(date time.Time, startTime types.TimeString, now time.Time, minNoticeMinutes int) error {
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

// resolveEndTime вычисляет новый конец записи и проверяет, что интервал
// [start, end) целиком помещается в одно из окон доступности
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

// excludeAppointment убирает из списка запись с указанным ID:
// при переносе запись не должна конфликтовать сама с собой
func excludeAppointment(appointments []*domain.Appointment, id int64) []*domain.Appointment {
	filtered := make([]*domain.Appointment, 0, len(appointments))
	for _, appt := range appointments {
		if appt.ID != id {
			filtered = append(filtered, appt)
		}
	}
	return filtered
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
