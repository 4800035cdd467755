package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/elietedasilvas/BLZ-BookingService/internal/domain"
	appointmentRepo "github.com/elietedasilvas/BLZ-BookingService/internal/infra/storage/appointment"
	catalogClient "github.com/elietedasilvas/BLZ-BookingService/internal/integrations/catalogservice"
	policyRepo "github.com/elietedasilvas/BLZ-BookingService/internal/infra/storage/policy"
)

// UseCase use case для создания записи к мастеру.
// Это путь записи: проверка занятости и вставка выполняются в одной
// serializable-транзакции, поэтому из двух конкурентных бронирований одного
// слота ровно одно завершается успешно. Exclusion constraint в БД страхует
// от пересечений на случай обхода приложения.
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	policyRepo      PolicyRepository
	catalogClient   CatalogServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	policyRepo PolicyRepository,
	catalogClient CatalogServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		policyRepo:      policyRepo,
		catalogClient:   catalogClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%d, professional=%d, service=%d, date=%s, start=%s",
		req.ClientID, req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем существование мастера
	if _, err := uc.catalogClient.GetProfessional(ctx, req.ProfessionalID); err != nil {
		return nil, uc.mapCatalogError("CreateAppointment", "professional", req.ProfessionalID, err, ErrProfessionalNotFound)
	}

	// 4. Получаем услугу (длительность и цена фиксируются на момент записи)
	service, err := uc.catalogClient.GetService(ctx, req.ServiceID)
	if err != nil {
		return nil, uc.mapCatalogError("CreateAppointment", "service", req.ServiceID, err, ErrServiceNotFound)
	}

	// 5. Проверяем услугу: выполняется ли мастером, длительность
	if err := validateService(service, req.ProfessionalID); err != nil {
		uc.logger.Warn("CreateAppointment: service id=%d validation failed: %v", req.ServiceID, err)
		return nil, err
	}

	// 6. Проверка занятости и вставка атомарно, в serializable-транзакции.
	// Чтение записей внутри транзакции берет FOR UPDATE на строки конкурентов.
	var created *domain.Appointment

	txErr := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Политика бронирования (персональная -> общесалонная -> дефолты)
		policy, err := uc.policyRepo.GetWithFallback(txCtx, req.ProfessionalID)
		if err != nil && !errors.Is(err, policyRepo.ErrPolicyNotFound) {
			return fmt.Errorf("%w: failed to get booking policy: %v", ErrInternal, err)
		}
		if policy == nil {
			policy = domain.DefaultBookingPolicy()
		}

		// 6.2. Валидация даты с учетом политики
		if err := validateDate(req.Date, now, policy.AdvanceBookingDays); err != nil {
			return err
		}

		// 6.3. Минимальное время до записи
		if err := validateNotice(req.Date, req.StartTime, now, policy.MinBookingNoticeMinutes); err != nil {
			return err
		}

		// 6.4. Окна доступности на день недели запрошенной даты
		dayOfWeek := domain.DayOfWeekFromDate(req.Date)
		windows, err := uc.scheduleRepo.GetByProfessionalAndDay(txCtx, req.ProfessionalID, dayOfWeek)
		if err != nil {
			return fmt.Errorf("%w: failed to get availability windows: %v", ErrInternal, err)
		}
		if len(windows) == 0 {
			return ErrProfessionalUnavailable
		}

		// 6.5. Интервал должен целиком помещаться в одно из окон
		endTime, err := resolveEndTime(windows, req.StartTime, service.DurationMinutes)
		if err != nil {
			return err
		}

		// 6.6. Активные записи мастера на эту дату (с блокировкой строк)
		filter := domain.ProfessionalAppointmentsFilter{
			ProfessionalID:  req.ProfessionalID,
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false,
		}

		appointments, err := uc.appointmentRepo.GetByProfessionalWithFilter(txCtx, filter)
		if err != nil {
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 6.7. Проверка пересечений - та же, что на пути чтения слотов
		if !domain.IsIntervalFree(req.StartTime, endTime, appointments) {
			return ErrSlotTaken
		}

		// 6.8. Вставка записи
		appt := &domain.Appointment{
			ClientID:        req.ClientID,
			ProfessionalID:  req.ProfessionalID,
			ServiceID:       req.ServiceID,
			Date:            req.Date,
			StartTime:       req.StartTime,
			EndTime:         endTime,
			DurationMinutes: service.DurationMinutes,
			Status:          domain.StatusScheduled,
			ServiceName:     service.Name,
			ServicePrice:    getServicePrice(service),
			Notes:           req.Notes,
		}

		created, err = uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			// Exclusion constraint сработал - конкурент успел первым
			if errors.Is(err, appointmentRepo.ErrSlotConflict) {
				return ErrSlotTaken
			}
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		return nil
	})

	if txErr != nil {
		if isBusinessError(txErr) {
			uc.logger.Warn("CreateAppointment: rejected: %v", txErr)
		} else {
			uc.logger.Error("CreateAppointment: transaction failed: %v", txErr)
		}
		return nil, txErr
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d for client=%d, professional=%d, %s %s-%s",
		created.ID, created.ClientID, created.ProfessionalID,
		created.Date.Format(domain.DateFormat), created.StartTime, created.EndTime)

	return uc.response(created), nil
}

func (uc *UseCase) response(appt *domain.Appointment) *Response {
	return &Response{
		ID:              appt.ID,
		ClientID:        appt.ClientID,
		ProfessionalID:  appt.ProfessionalID,
		ServiceID:       appt.ServiceID,
		Date:            appt.Date,
		StartTime:       appt.StartTime,
		EndTime:         appt.EndTime,
		DurationMinutes: appt.DurationMinutes,
		Status:          string(appt.Status),
		ServiceName:     appt.ServiceName,
		ServicePrice:    appt.ServicePrice,
		Notes:           appt.Notes,
		CreatedAt:       appt.CreatedAt,
		UpdatedAt:       appt.UpdatedAt,
	}
}

// isBusinessError отделяет ожидаемые бизнес-отказы от инфраструктурных сбоев
func isBusinessError(err error) bool {
	return errors.Is(err, ErrSlotTaken) ||
		errors.Is(err, ErrDateInPast) ||
		errors.Is(err, ErrDateTooFarInFuture) ||
		errors.Is(err, ErrTooLateToBook) ||
		errors.Is(err, ErrOutOfWindow) ||
		errors.Is(err, ErrProfessionalUnavailable)
}

// mapCatalogError транслирует ошибки клиента каталога в ошибки usecase
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
