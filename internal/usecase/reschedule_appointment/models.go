package reschedule_appointment

import (
	"time"

	"github.com/elietedasilvas/BLZ-BookingService/pkg/types"
)

// Request модель запроса на перенос записи
type Request struct {
	AppointmentID int64            // ID переносимой записи
	ClientID      int64            // ID клиента-владельца (для проверки доступа)
	Date          time.Time        // Новая дата записи
	StartTime     types.TimeString // Новое время начала
}

// Response модель ответа с перенесенной записью
type Response struct {
	ID              int64            // ID записи
	ClientID        int64            // ID клиента
	ProfessionalID  int64            // ID мастера
	ServiceID       int64            // ID услуги
	Date            time.Time        // Новая дата записи
	StartTime       types.TimeString // Новое время начала
	EndTime         types.TimeString // Новое время окончания
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус записи (rescheduled)

	ServiceName  string  // Название услуги
	ServicePrice float64 // Цена услуги
	Notes        *string // Пожелания
}
