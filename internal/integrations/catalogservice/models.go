package catalogservice

// Professional модель мастера из CatalogService
type Professional struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"` // Специализация (barber, hairdresser, manicurist, ...)
	Active bool   `json:"active"`
}

// Service модель услуги из CatalogService
type Service struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	DurationMinutes int      `json:"duration_minutes"`
	Price           *float64 `json:"price"`
	Active          bool     `json:"active"`
	// Мастера, выполняющие услугу
	ProfessionalIDs []int64 `json:"professional_ids"`
}

// ErrorResponse модель ошибки от CatalogService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
