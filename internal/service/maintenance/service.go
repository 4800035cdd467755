package maintenance

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/elietedasilvas/BLZ-BookingService/pkg/types"
)

// Service фоновые задачи обслуживания записей.
// Единственная задача - перевод подтвержденных записей, время которых
// прошло, в статус completed. Запускается по cron-расписанию из конфига
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
	cron            *cron.Cron
}

// NewService создает новый экземпляр сервиса фоновых задач
func NewService(
	appointmentRepo AppointmentRepository,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
		cron:            cron.New(),
	}
}

// Start регистрирует задачи по расписанию и запускает планировщик.
// Пустое расписание выключает задачу
func (s *Service) Start(completeFinishedSchedule string) error {
	if completeFinishedSchedule == "" {
		s.logger.Info("Maintenance: complete_finished job disabled")
		return nil
	}

	_, err := s.cron.AddFunc(completeFinishedSchedule, func() {
		if err := s.CompleteFinishedAppointments(context.Background()); err != nil {
			s.logger.Error("Maintenance: complete_finished job failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("maintenance: invalid schedule %q: %w", completeFinishedSchedule, err)
	}

	s.cron.Start()
	s.logger.Info("Maintenance: complete_finished job scheduled at %q", completeFinishedSchedule)
	return nil
}

// Stop останавливает планировщик и дожидается завершения запущенных задач
func (s *Service) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Maintenance: scheduler stopped")
}

// CompleteFinishedAppointments переводит подтвержденные записи, время
// которых уже прошло, в статус completed
func (s *Service) CompleteFinishedAppointments(ctx context.Context) error {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	updated, err := s.appointmentRepo.CompleteFinished(ctx, today, types.NewTimeString(now))
	if err != nil {
		return fmt.Errorf("maintenance: failed to complete finished appointments: %w", err)
	}

	if updated > 0 {
		s.logger.Info("Maintenance: marked %d appointments as completed", updated)
	}
	return nil
}
