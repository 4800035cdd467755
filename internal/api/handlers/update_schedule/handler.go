package update_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/elietedasilvas/BLZ-BookingService/internal/api/handlers"
	"github.com/elietedasilvas/BLZ-BookingService/internal/api/middleware"
	"github.com/elietedasilvas/BLZ-BookingService/internal/service/schedule"
)

const (
	msgInvalidProfessionalID = "некорректный ID мастера"
	msgInvalidDayOfWeek      = "некорректный день недели, ожидается число от 0 (воскресенье) до 6 (суббота)"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidWindow         = "некорректное окно доступности"
	msgOverlappingWindows    = "окна доступности пересекаются"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgForbidden             = "доступ запрещен"
	msgProfessionalNotFound  = "мастер не найден"
	msgUpstreamUnavailable   = "сервис каталога временно недоступен"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/professionals/{professionalId}/schedule/{dayOfWeek}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем professionalId из URL
	professionalIDStr := vars["professionalId"]
	professionalID, err := strconv.ParseInt(professionalIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /professionals/{id}/schedule/{day} - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	// Извлекаем dayOfWeek из URL
	dayOfWeekStr := vars["dayOfWeek"]
	dayOfWeek, err := strconv.Atoi(dayOfWeekStr)
	if err != nil {
		h.logger.Warn("PUT /professionals/{id}/schedule/{day} - Invalid day of week: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDayOfWeek)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /professionals/{id}/schedule/{day} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /professionals/{id}/schedule/{day} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Заменяем расписание дня (сервис сам проверит права доступа и окна)
	result, err := h.service.ReplaceDay(r.Context(), req.ToServiceRequest(userID, professionalID, dayOfWeek))
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrProfessionalNotFound):
			h.logger.Warn("PUT /professionals/{id}/schedule/{day} - Professional not found: professional_id=%d", professionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("PUT /professionals/{id}/schedule/{day} - Access denied: professional_id=%d, user_id=%d",
				professionalID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrInvalidDayOfWeek):
			h.logger.Warn("PUT /professionals/{id}/schedule/{day} - Invalid day of week: %d", dayOfWeek)
			handlers.RespondBadRequest(w, msgInvalidDayOfWeek)

		case errors.Is(err, schedule.ErrInvalidWindow):
			h.logger.Warn("PUT /professionals/{id}/schedule/{day} - Invalid window: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, schedule.ErrOverlappingWindows):
			h.logger.Warn("PUT /professionals/{id}/schedule/{day} - Overlapping windows: professional_id=%d, day=%d",
				professionalID, dayOfWeek)
			handlers.RespondBadRequest(w, msgOverlappingWindows)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /professionals/{id}/schedule/{day} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, schedule.ErrUpstreamUnavailable):
			h.logger.Error("PUT /professionals/{id}/schedule/{day} - Catalog unavailable: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgUpstreamUnavailable)

		default:
			h.logger.Error("PUT /professionals/{id}/schedule/{day} - Failed to update schedule: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /professionals/{id}/schedule/{day} - Schedule updated successfully: professional_id=%d, day=%d, windows=%d",
		professionalID, dayOfWeek, len(result.Windows))
	handlers.RespondJSON(w, http.StatusOK, result)
}
