package update_booking_policy

import (
	"errors"
	"net/http"

	"github.com/elietedasilvas/BLZ-BookingService/internal/api/handlers"
	"github.com/elietedasilvas/BLZ-BookingService/internal/api/middleware"
	"github.com/elietedasilvas/BLZ-BookingService/internal/service/policy"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgForbidden            = "доступ запрещен"
	msgProfessionalNotFound = "мастер не найден"
	msgUpstreamUnavailable  = "сервис каталога временно недоступен"
)

type Handler struct {
	service PolicyService
	logger  Logger
}

func NewHandler(service PolicyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/booking-policies
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /booking-policies - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req UpdatePolicyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /booking-policies - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Создаем или обновляем политику (сервис сам проверит права доступа)
	result, err := h.service.Upsert(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, policy.ErrAccessDenied):
			h.logger.Warn("PUT /booking-policies - Access denied: user_id=%d, professional_id=%v", userID, req.ProfessionalID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, policy.ErrProfessionalNotFound):
			h.logger.Warn("PUT /booking-policies - Professional not found: professional_id=%v", req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, policy.ErrInvalidInput):
			h.logger.Warn("PUT /booking-policies - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, policy.ErrUpstreamUnavailable):
			h.logger.Error("PUT /booking-policies - Catalog unavailable: error=%v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgUpstreamUnavailable)

		default:
			h.logger.Error("PUT /booking-policies - Failed to upsert policy: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /booking-policies - Policy upserted successfully: user_id=%d, professional_id=%v",
		userID, req.ProfessionalID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
