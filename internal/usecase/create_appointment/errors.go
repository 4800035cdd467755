package create_appointment

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда мастер не найден
	ErrProfessionalNotFound = errors.New("create_appointment: professional not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrServiceNotOffered возвращается, когда мастер не выполняет услугу
	ErrServiceNotOffered = errors.New("create_appointment: service is not offered by this professional")

	// ErrInvalidServiceDuration возвращается при неположительной длительности услуги
	ErrInvalidServiceDuration = errors.New("create_appointment: invalid service duration")

	// ErrDateInPast возвращается при попытке записи на прошедшую дату
	ErrDateInPast = errors.New("create_appointment: date is in the past")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceBookingDays
	ErrDateTooFarInFuture = errors.New("create_appointment: date is too far in the future")

	// ErrProfessionalUnavailable возвращается, когда у мастера нет окон
	// доступности в запрошенный день
	ErrProfessionalUnavailable = errors.New("create_appointment: professional is unavailable on this date")

	// ErrOutOfWindow возвращается, когда запрошенный интервал не помещается
	// целиком ни в одно окно доступности
	ErrOutOfWindow = errors.New("create_appointment: requested time is outside availability windows")

	// ErrSlotTaken возвращается, когда слот занят на момент записи.
	// Ожидаемый исход гонки, а не сбой: клиент должен заново запросить
	// свободные слоты и выбрать другой. Автоматических ретраев нет.
	ErrSlotTaken = errors.New("create_appointment: slot is already taken")

	// ErrTooLateToBook возвращается при нарушении minBookingNoticeMinutes
	ErrTooLateToBook = errors.New("create_appointment: too late to book this slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrUpstreamUnavailable возвращается при недоступности внешних сервисов
	ErrUpstreamUnavailable = errors.New("create_appointment: upstream unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
