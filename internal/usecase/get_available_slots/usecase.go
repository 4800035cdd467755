package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/elietedasilvas/BLZ-BookingService/internal/domain"
	catalogClient "github.com/elietedasilvas/BLZ-BookingService/internal/integrations/catalogservice"
	policyRepo "github.com/elietedasilvas/BLZ-BookingService/internal/infra/storage/policy"
)

// UseCase use case для получения свободных слотов мастера.
// Это путь чтения: результат не обязан быть транзакционно согласован с
// конкурентными бронированиями - показанный слот может быть занят мгновением
// позже, это ловится проверкой на пути записи.
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	policyRepo      PolicyRepository
	catalogClient   CatalogServiceClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	policyRepo PolicyRepository,
	catalogClient CatalogServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		policyRepo:      policyRepo,
		catalogClient:   catalogClient,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: professional=%d, service=%d, date=%s",
		req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем существование мастера
	if _, err := uc.catalogClient.GetProfessional(ctx, req.ProfessionalID); err != nil {
		return nil, uc.mapCatalogError("GetAvailableSlots", "professional", req.ProfessionalID, err, ErrProfessionalNotFound)
	}

	// 4. Получаем услугу (длительность читается свежей при каждом расчёте)
	service, err := uc.catalogClient.GetService(ctx, req.ServiceID)
	if err != nil {
		return nil, uc.mapCatalogError("GetAvailableSlots", "service", req.ServiceID, err, ErrServiceNotFound)
	}

	// 5. Проверяем услугу: активность мастера, длительность
	if err := validateService(service, req.ProfessionalID); err != nil {
		uc.logger.Warn("GetAvailableSlots: service id=%d validation failed: %v", req.ServiceID, err)
		return nil, err
	}

	// 6. Получаем политику бронирования (персональная -> общесалонная -> дефолты)
	policy, err := uc.policyRepo.GetWithFallback(ctx, req.ProfessionalID)
	if err != nil && !errors.Is(err, policyRepo.ErrPolicyNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get booking policy: %v", err)
		return nil, fmt.Errorf("%w: failed to get booking policy: %v", ErrInternal, err)
	}
	if policy == nil {
		policy = domain.DefaultBookingPolicy()
	}

	// 7. Валидация даты с учетом политики
	if err := validateDate(req.Date, now, policy.AdvanceBookingDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 8. Получаем окна доступности на день недели запрошенной даты
	dayOfWeek := domain.DayOfWeekFromDate(req.Date)
	windows, err := uc.scheduleRepo.GetByProfessionalAndDay(ctx, req.ProfessionalID, dayOfWeek)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get availability windows: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability windows: %v", ErrInternal, err)
	}

	// Мастер не принимает в этот день - пустой список, не ошибка
	if len(windows) == 0 {
		uc.logger.Info("GetAvailableSlots: professional=%d has no availability on day_of_week=%d",
			req.ProfessionalID, dayOfWeek)
		return uc.response(req, service.DurationMinutes, []domain.Slot{}), nil
	}

	// 9. Нарезаем окна на слоты длительностью услуги
	slots, err := generateSlots(windows, service.DurationMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, err
	}

	// 10. Фильтруем по минимальному времени до записи (актуально для сегодняшней даты)
	slots, err = filterByNotice(slots, req.Date, now, policy.MinBookingNoticeMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to apply booking notice: %v", err)
		return nil, fmt.Errorf("%w: failed to apply booking notice: %v", ErrInternal, err)
	}

	// 11. Получаем активные записи мастера на эту дату
	filter := domain.ProfessionalAppointmentsFilter{
		ProfessionalID:  req.ProfessionalID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false, // Только активные записи
	}

	appointments, err := uc.appointmentRepo.GetByProfessionalWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 12. Убираем занятые слоты
	free := filterFreeSlots(slots, appointments)

	uc.logger.Info("GetAvailableSlots: %d free of %d slots for professional=%d, date=%s",
		len(free), len(slots), req.ProfessionalID, req.Date.Format(domain.DateFormat))

	return uc.response(req, service.DurationMinutes, free), nil
}

func (uc *UseCase) response(req *Request, durationMinutes int, slots []domain.Slot) *Response {
	return &Response{
		Date:            req.Date,
		ProfessionalID:  req.ProfessionalID,
		ServiceID:       req.ServiceID,
		DurationMinutes: durationMinutes,
		Slots:           slots,
	}
}

// mapCatalogError транслирует ошибки клиента каталога в ошибки usecase:
// not found - бизнес-ошибка, недоступность - инфраструктурная, остальное - internal
func (uc *UseCase) mapCatalogError(op, entity string, id int64, err, notFound error) error {
	switch {
	case errors.Is(err, catalogClient.ErrProfessionalNotFound), errors.Is(err, catalogClient.ErrServiceNotFound):
		uc.logger.Warn("%s: %s id=%d not found", op, entity, id)
		return notFound
	case errors.Is(err, catalogClient.ErrUnavailable):
		uc.logger.Error("%s: catalog unavailable while fetching %s id=%d: %v", op, entity, id, err)
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	default:
		uc.logger.Error("%s: failed to get %s id=%d: %v", op, entity, id, err)
		return fmt.Errorf("%w: failed to get %s: %v", ErrInternal, entity, err)
	}
}
