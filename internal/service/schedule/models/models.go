package models

import (
	"github.com/elietedasilvas/BLZ-BookingService/internal/domain"
)

// Request модели

// WindowInput окно доступности во входных данных
type WindowInput struct {
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "13:00"
}

// ReplaceDayRequest запрос на замену расписания одного дня недели.
// Набор окон заменяется целиком: пустой список делает день выходным
type ReplaceDayRequest struct {
	UserID         int64         `json:"userId"`
	ProfessionalID int64         `json:"professionalId"`
	DayOfWeek      int           `json:"dayOfWeek"` // 0 = воскресенье .. 6 = суббота
	Windows        []WindowInput `json:"windows"`
}

// Response модели

// WindowResponse окно доступности в ответе
type WindowResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// DayScheduleResponse расписание одного дня недели
type DayScheduleResponse struct {
	DayOfWeek int              `json:"dayOfWeek"`
	Windows   []WindowResponse `json:"windows"`
}

// WeekScheduleResponse недельное расписание мастера.
// Дни без окон присутствуют с пустым списком
type WeekScheduleResponse struct {
	ProfessionalID int64                 `json:"professionalId"`
	Days           []DayScheduleResponse `json:"days"`
}

// Методы конвертации

// FromDomainWindows группирует окна по дням недели в недельное расписание
func FromDomainWindows(professionalID int64, windows []*domain.AvailabilityWindow) *WeekScheduleResponse {
	days := make([]DayScheduleResponse, 7)
	for i := range days {
		days[i] = DayScheduleResponse{
			DayOfWeek: i,
			Windows:   []WindowResponse{},
		}
	}

	for _, w := range windows {
		if w.DayOfWeek < 0 || w.DayOfWeek > 6 {
			continue
		}
		days[w.DayOfWeek].Windows = append(days[w.DayOfWeek].Windows, WindowResponse{
			StartTime: w.StartTime.String(),
			EndTime:   w.EndTime.String(),
		})
	}

	return &WeekScheduleResponse{
		ProfessionalID: professionalID,
		Days:           days,
	}
}

// FromDomainDayWindows конвертирует окна одного дня в DTO
func FromDomainDayWindows(dayOfWeek int, windows []*domain.AvailabilityWindow) *DayScheduleResponse {
	result := make([]WindowResponse, 0, len(windows))
	for _, w := range windows {
		result = append(result, WindowResponse{
			StartTime: w.StartTime.String(),
			EndTime:   w.EndTime.String(),
		})
	}
	return &DayScheduleResponse{
		DayOfWeek: dayOfWeek,
		Windows:   result,
	}
}
