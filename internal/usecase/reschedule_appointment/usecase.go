package reschedule_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/elietedasilvas/BLZ-BookingService/internal/domain"
	appointmentRepo "github.com/elietedasilvas/BLZ-BookingService/internal/infra/storage/appointment"
	policyRepo "github.com/elietedasilvas/BLZ-BookingService/internal/infra/storage/policy"
)

// UseCase use case для переноса записи на другую дату и время.
// Перенос - это UPDATE существующей строки, а не удаление со вставкой:
// ID записи и история сохраняются. Проверка нового слота и обновление
// выполняются в одной serializable-транзакции, как при создании.
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	policyRepo      PolicyRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	policyRepo PolicyRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		policyRepo:      policyRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case переноса записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleAppointment: appointment=%d, client=%d, date=%s, start=%s",
		req.AppointmentID, req.ClientID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	var rescheduled *domain.Appointment

	txErr := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3. Получаем запись и проверяем доступ
		appt, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		if appt.ClientID != req.ClientID {
			return ErrAccessDenied
		}

		if !appt.CanBeRescheduled() {
			return fmt.Errorf("%w: status is %s", ErrCannotReschedule, appt.Status)
		}

		// 4. Политика бронирования (персональная -> общесалонная -> дефолты)
		policy, err := uc.policyRepo.GetWithFallback(txCtx, appt.ProfessionalID)
		if err != nil && !errors.Is(err, policyRepo.ErrPolicyNotFound) {
			return fmt.Errorf("%w: failed to get booking policy: %v", ErrInternal, err)
		}
		if policy == nil {
			policy = domain.DefaultBookingPolicy()
		}

		// 5. Валидация новой даты и времени до записи
		if err := validateDate(req.Date, now, policy.AdvanceBookingDays); err != nil {
			return err
		}
		if err := validateNotice(req.Date, req.StartTime, now, policy.MinBookingNoticeMinutes); err != nil {
			return err
		}

		// 6. Окна доступности на день недели новой даты
		dayOfWeek := domain.DayOfWeekFromDate(req.Date)
		windows, err := uc.scheduleRepo.GetByProfessionalAndDay(txCtx, appt.ProfessionalID, dayOfWeek)
		if err != nil {
			return fmt.Errorf("%w: failed to get availability windows: %v", ErrInternal, err)
		}
		if len(windows) == 0 {
			return ErrProfessionalUnavailable
		}

		// 7. Новый интервал с прежней длительностью услуги
		endTime, err := resolveEndTime(windows, req.StartTime, appt.DurationMinutes)
		if err != nil {
			return err
		}

		// 8. Активные записи мастера на новую дату (с блокировкой строк),
		// без самой переносимой записи
		filter := domain.ProfessionalAppointmentsFilter{
			ProfessionalID:  appt.ProfessionalID,
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false,
		}

		appointments, err := uc.appointmentRepo.GetByProfessionalWithFilter(txCtx, filter)
		if err != nil {
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		others := excludeAppointment(appointments, appt.ID)
		if !domain.IsIntervalFree(req.StartTime, endTime, others) {
			return ErrSlotTaken
		}

		// 9. Обновляем запись
		if err := uc.appointmentRepo.Reschedule(txCtx, appt.ID, req.Date, req.StartTime, endTime); err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotConflict) {
				return ErrSlotTaken
			}
			return fmt.Errorf("%w: failed to reschedule appointment: %v", ErrInternal, err)
		}

		appt.Date = req.Date
		appt.StartTime = req.StartTime
		appt.EndTime = endTime
		appt.Status = domain.StatusRescheduled
		rescheduled = appt

		return nil
	})

	if txErr != nil {
		if isBusinessError(txErr) {
			uc.logger.Warn("RescheduleAppointment: rejected: %v", txErr)
		} else {
			uc.logger.Error("RescheduleAppointment: transaction failed: %v", txErr)
		}
		return nil, txErr
	}

	uc.logger.Info("RescheduleAppointment: appointment id=%d moved to %s %s-%s",
		rescheduled.ID, rescheduled.Date.Format(domain.DateFormat), rescheduled.StartTime, rescheduled.EndTime)

	return uc.response(rescheduled), nil
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
	}
}

// isBusinessError отделяет ожидаемые бизнес-отказы от инфраструктурных сбоев
func isBusinessError(err error) bool {
	return errors.Is(err, ErrAppointmentNotFound) ||
		errors.Is(err, ErrAccessDenied) ||
		errors.Is(err, ErrCannotReschedule) ||
		errors.Is(err, ErrSlotTaken) ||
		errors.Is(err, ErrDateInPast) ||
		errors.Is(err, ErrDateTooFarInFuture) ||
		errors.Is(err, ErrTooLateToBook) ||
		errors.Is(err, ErrOutOfWindow) ||
		errors.Is(err, ErrProfessionalUnavailable)
}
