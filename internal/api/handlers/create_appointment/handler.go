package create_appointment

import (
	"errors"
	"net/http"

	"github.com/elietedasilvas/BLZ-BookingService/internal/api/handlers"
	"github.com/elietedasilvas/BLZ-BookingService/internal/api/middleware"
	createAppointment "github.com/elietedasilvas/BLZ-BookingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody      = "некорректное тело запроса"
	msgInvalidDateOrTime       = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID           = "отсутствует ID пользователя"
	msgSlotTaken               = "выбранный временной слот уже занят"
	msgProfessionalNotFound    = "мастер не найден"
	msgServiceNotFound         = "услуга не найдена"
	msgServiceNotOffered       = "мастер не выполняет эту услугу"
	msgProfessionalUnavailable = "мастер не принимает в выбранную дату"
	msgOutOfWindow             = "запрошенное время вне часов работы мастера"
	msgDateInPast              = "дата записи в прошлом"
	msgDateTooFar              = "дата записи слишком далеко в будущем"
	msgTooLateToBook           = "слишком поздно для записи на этот слот"
	msgUpstreamUnavailable     = "сервис каталога временно недоступен"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем clientID из контекста (через middleware Auth)
	clientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(clientID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken: client_id=%d, professional_id=%d, date=%s, start=%s",
				clientID, req.ProfessionalID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createAppointment.ErrProfessionalNotFound):
			h.logger.Warn("POST /appointments - Professional not found: professional_id=%d", req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrServiceNotOffered),
			errors.Is(err, createAppointment.ErrInvalidServiceDuration):
			h.logger.Warn("POST /appointments - Service not offered: professional_id=%d, service_id=%d",
				req.ProfessionalID, req.ServiceID)
			handlers.RespondBadRequest(w, msgServiceNotOffered)

		case errors.Is(err, createAppointment.ErrProfessionalUnavailable):
			h.logger.Warn("POST /appointments - Professional unavailable: professional_id=%d, date=%s",
				req.ProfessionalID, req.Date)
			handlers.RespondBadRequest(w, msgProfessionalUnavailable)

		case errors.Is(err, createAppointment.ErrOutOfWindow):
			h.logger.Warn("POST /appointments - Out of availability window: professional_id=%d, date=%s, start=%s",
				req.ProfessionalID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgOutOfWindow)

		case errors.Is(err, createAppointment.ErrDateInPast):
			h.logger.Warn("POST /appointments - Date in past: client_id=%d, date=%s", clientID, req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createAppointment.ErrDateTooFarInFuture):
			h.logger.Warn("POST /appointments - Date too far in future: client_id=%d, date=%s", clientID, req.Date)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createAppointment.ErrTooLateToBook):
			h.logger.Warn("POST /appointments - Too late to book: client_id=%d, date=%s, start=%s",
				clientID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, createAppointment.ErrUpstreamUnavailable):
			h.logger.Error("POST /appointments - Catalog unavailable: error=%v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgUpstreamUnavailable)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: client_id=%d, professional_id=%d, error=%v",
				clientID, req.ProfessionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, client_id=%d, professional_id=%d",
		result.ID, clientID, req.ProfessionalID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
