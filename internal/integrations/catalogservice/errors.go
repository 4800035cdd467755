package catalogservice

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда мастер не найден в каталоге
	ErrProfessionalNotFound = errors.New("catalog: professional not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("catalog: service not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("catalogservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("catalogservice client: invalid response")

	// ErrUnavailable возвращается, когда CatalogService недоступен по
	// инфраструктурным причинам (timeout, connection refused, 5xx).
	// Пробрасывается наверх как есть, не маскируется под бизнес-ошибку.
	ErrUnavailable = errors.New("catalogservice client: upstream unavailable")
)
