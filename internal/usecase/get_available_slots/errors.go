package get_available_slots

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда мастер не найден
	ErrProfessionalNotFound = errors.New("get_available_slots: professional not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrServiceNotOffered возвращается, когда мастер не выполняет услугу
	ErrServiceNotOffered = errors.New("get_available_slots: service is not offered by this professional")

	// ErrInvalidServiceDuration возвращается при неположительной длительности
	// услуги - это порча данных каталога, не заглушается дефолтом
	ErrInvalidServiceDuration = errors.New("get_available_slots: invalid service duration")

	// ErrDateInPast возвращается при запросе слотов на прошедшую дату
	ErrDateInPast = errors.New("get_available_slots: date is in the past")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceBookingDays
	ErrDateTooFarInFuture = errors.New("get_available_slots: date is too far in the future")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrUpstreamUnavailable возвращается при недоступности внешних сервисов
	ErrUpstreamUnavailable = errors.New("get_available_slots: upstream unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
