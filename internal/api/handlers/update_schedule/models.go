package update_schedule

import (
	"github.com/elietedasilvas/BLZ-BookingService/internal/service/schedule/models"
)

// UpdateScheduleRequest HTTP request model.
// Окна дня заменяются целиком, пустой список делает день выходным
type UpdateScheduleRequest struct {
	Windows []WindowInput `json:"windows"`
}

// WindowInput окно доступности
type WindowInput struct {
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "13:00"
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateScheduleRequest) ToServiceRequest(userID, professionalID int64, dayOfWeek int) *models.ReplaceDayRequest {
	windows := make([]models.WindowInput, 0, len(r.Windows))
	for _, w := range r.Windows {
		windows = append(windows, models.WindowInput{
			StartTime: w.StartTime,
			EndTime:   w.EndTime,
		})
	}

	return &models.ReplaceDayRequest{
		UserID:         userID,
		ProfessionalID: professionalID,
		DayOfWeek:      dayOfWeek,
		Windows:        windows,
	}
}
