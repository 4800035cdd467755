package reschedule_appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("reschedule_appointment: appointment not found")

	// ErrAccessDenied возвращается, когда запись принадлежит другому клиенту
	ErrAccessDenied = errors.New("reschedule_appointment: access denied")

	// ErrCannotReschedule возвращается, когда текущий статус записи
	// не допускает перенос (завершена или отменена)
	ErrCannotReschedule = errors.New("reschedule_appointment: appointment cannot be rescheduled")

	// ErrDateInPast возвращается при попытке переноса на прошедшую дату
	ErrDateInPast = errors.New("reschedule_appointment: date is in the past")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceBookingDays
	ErrDateTooFarInFuture = errors.New("reschedule_appointment: date is too far in the future")

	// ErrProfessionalUnavailable возвращается, когда у мастера нет окон
	// доступности в запрошенный день
	ErrProfessionalUnavailable = errors.New("reschedule_appointment: professional is unavailable on this date")

	// ErrOutOfWindow возвращается, когда новый интервал не помещается
	// целиком ни в одно окно доступности
	ErrOutOfWindow = errors.New("reschedule_appointment: requested time is outside availability windows")

	// ErrSlotTaken возвращается, когда новый слот занят другой записью
	ErrSlotTaken = errors.New("reschedule_appointment: slot is already taken")

	// ErrTooLateToBook возвращается при нарушении minBookingNoticeMinutes
	ErrTooLateToBook = errors.New("reschedule_appointment: too late to book this slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_appointment: internal error")
)
