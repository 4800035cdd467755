package schedule

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда мастер не найден
	ErrProfessionalNotFound = errors.New("professional not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidDayOfWeek возвращается при некорректном дне недели
	ErrInvalidDayOfWeek = errors.New("invalid day of week")

	// ErrInvalidWindow возвращается при некорректном окне доступности
	ErrInvalidWindow = errors.New("invalid availability window")

	// ErrOverlappingWindows возвращается, когда окна одного дня пересекаются
	ErrOverlappingWindows = errors.New("availability windows overlap")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrUpstreamUnavailable возвращается при недоступности внешних сервисов
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
