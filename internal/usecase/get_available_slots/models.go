package get_available_slots

import (
	"time"

	"github.com/elietedasilvas/BLZ-BookingService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ProfessionalID int64     // ID мастера
	ServiceID      int64     // ID услуги (определяет длительность слота)
	Date           time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком свободных слотов
type Response struct {
	Date            time.Time     // Дата, на которую запрашивались слоты
	ProfessionalID  int64         // ID мастера
	ServiceID       int64         // ID услуги
	DurationMinutes int           // Длительность слота
	Slots           []domain.Slot // Свободные слоты в порядке времени начала
}
