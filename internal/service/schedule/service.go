package schedule

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/elietedasilvas/BLZ-BookingService/internal/domain"
	catalogClient "github.com/elietedasilvas/BLZ-BookingService/internal/integrations/catalogservice"
	"github.com/elietedasilvas/BLZ-BookingService/internal/service/schedule/models"
	"github.com/elietedasilvas/BLZ-BookingService/pkg/types"
)

// Service сервис для работы с недельным расписанием мастеров.
// Корректность набора окон (отсортированы, не пересекаются) обеспечивается
// здесь, при редактировании: генератор слотов полагается на это и окна
// не нормализует.
type Service struct {
	scheduleRepo  ScheduleRepository
	catalogClient CatalogServiceClient
	txManager     TransactionManager
	logger        Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	scheduleRepo ScheduleRepository,
	catalogClient CatalogServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo:  scheduleRepo,
		catalogClient: catalogClient,
		txManager:     txManager,
		logger:        logger,
	}
}

// GetWeek получает недельное расписание мастера
// Публичный метод - доступен всем
func (s *Service) GetWeek(ctx context.Context, professionalID int64) (*models.WeekScheduleResponse, error) {
	s.logger.Info("GetWeek: fetching schedule for professional=%d", professionalID)

	if professionalID <= 0 {
		return nil, fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	if _, err := s.catalogClient.GetProfessional(ctx, professionalID); err != nil {
		return nil, s.mapCatalogError("GetWeek", professionalID, err)
	}

	windows, err := s.scheduleRepo.GetByProfessional(ctx, professionalID)
	if err != nil {
		s.logger.Error("GetWeek: repository error for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: GetWeek - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetWeek: successfully fetched %d windows for professional=%d", len(windows), professionalID)
	return models.FromDomainWindows(professionalID, windows), nil
}

// ReplaceDay заменяет расписание одного дня недели целиком.
// Пустой список окон делает день выходным. Доступно только самому мастеру.
// Старые окна удаляются и новые вставляются в одной транзакции, чтобы
// конкурентный расчёт слотов не увидел полупустой день
func (s *Service) ReplaceDay(ctx context.Context, req *models.ReplaceDayRequest) (*models.DayScheduleResponse, error) {
	s.logger.Info("ReplaceDay: replacing schedule for professional=%d, day_of_week=%d, windows=%d",
		req.ProfessionalID, req.DayOfWeek, len(req.Windows))

	if req.ProfessionalID <= 0 {
		return nil, fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	if req.UserID != req.ProfessionalID {
		s.logger.Warn("ReplaceDay: access denied for user=%d to professional=%d", req.UserID, req.ProfessionalID)
		return nil, ErrAccessDenied
	}

	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		s.logger.Warn("ReplaceDay: invalid day_of_week=%d", req.DayOfWeek)
		return nil, fmt.Errorf("%w: %d", ErrInvalidDayOfWeek, req.DayOfWeek)
	}

	if _, err := s.catalogClient.GetProfessional(ctx, req.ProfessionalID); err != nil {
		return nil, s.mapCatalogError("ReplaceDay", req.ProfessionalID, err)
	}

	windows, err := s.buildWindows(req)
	if err != nil {
		s.logger.Warn("ReplaceDay: window validation failed for professional=%d: %v", req.ProfessionalID, err)
		return nil, err
	}

	txErr := s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.scheduleRepo.ReplaceDay(txCtx, req.ProfessionalID, req.DayOfWeek, windows)
	})
	if txErr != nil {
		s.logger.Error("ReplaceDay: repository error for professional=%d: %v", req.ProfessionalID, txErr)
		return nil, fmt.Errorf("%w: ReplaceDay - repository error: %v", ErrInternal, txErr)
	}

	s.logger.Info("ReplaceDay: successfully replaced schedule for professional=%d, day_of_week=%d",
		req.ProfessionalID, req.DayOfWeek)
	return models.FromDomainDayWindows(req.DayOfWeek, windows), nil
}

// buildWindows валидирует входные окна и конвертирует их в domain модели.
// Требования: корректный формат времени, start < end, окна одного дня
// не пересекаются (встык - допустимо). Результат отсортирован по началу
func (s *Service) buildWindows(req *models.ReplaceDayRequest) ([]*domain.AvailabilityWindow, error) {
	windows := make([]*domain.AvailabilityWindow, 0, len(req.Windows))

	for _, input := range req.Windows {
		start, err := types.NewTimeStringFromString(input.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid startTime %q: %v", ErrInvalidWindow, input.StartTime, err)
		}

		end, err := types.NewTimeStringFromString(input.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid endTime %q: %v", ErrInvalidWindow, input.EndTime, err)
		}

		if !start.IsBefore(end) {
			return nil, fmt.Errorf("%w: startTime %s must be before endTime %s", ErrInvalidWindow, start, end)
		}

		windows = append(windows, &domain.AvailabilityWindow{
			ProfessionalID: req.ProfessionalID,
			DayOfWeek:      req.DayOfWeek,
			StartTime:      start,
			EndTime:        end,
		})
	}

	sort.Slice(windows, func(i, j int) bool {
		return windows[i].StartTime.IsBefore(windows[j].StartTime)
	})

	// Окна встык допустимы, пересечение - нет
	for i := 1; i < len(windows); i++ {
		if windows[i].StartTime.IsBefore(windows[i-1].EndTime) {
			return nil, fmt.Errorf("%w: %s-%s and %s-%s",
				ErrOverlappingWindows,
				windows[i-1].StartTime, windows[i-1].EndTime,
				windows[i].StartTime, windows[i].EndTime)
		}
	}

	return windows, nil
}

// mapCatalogError транслирует ошибки клиента каталога в ошибки сервиса
func (s *Service) mapCatalogError(op string, professionalID int64, err error) error {
	switch {
	case errors.Is(err, catalogClient.ErrProfessionalNotFound):
		s.logger.Warn("%s: professional id=%d not found", op, professionalID)
		return ErrProfessionalNotFound
	case errors.Is(err, catalogClient.ErrUnavailable):
		s.logger.Error("%s: catalog unavailable while fetching professional id=%d: %v", op, professionalID, err)
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	default:
		s.logger.Error("%s: failed to get professional id=%d: %v", op, professionalID, err)
		return fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}
}
