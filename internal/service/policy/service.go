package policy

import (
	"context"
	"errors"
	"fmt"

	"github.com/elietedasilvas/BLZ-BookingService/internal/domain"
	policyRepo "github.com/elietedasilvas/BLZ-BookingService/internal/infra/storage/policy"
	catalogClient "github.com/elietedasilvas/BLZ-BookingService/internal/integrations/catalogservice"
	"github.com/elietedasilvas/BLZ-BookingService/internal/service/policy/models"
)

// roleManager роль администратора салона в каталоге.
// Менеджер управляет общесалонной политикой и политиками любых мастеров
const roleManager = "manager"

// Service сервис для работы с политиками бронирования
type Service struct {
	policyRepo    PolicyRepository
	catalogClient CatalogServiceClient
	logger        Logger
}

// NewService создает новый экземпляр сервиса политик
func NewService(
	policyRepo PolicyRepository,
	catalogClient CatalogServiceClient,
	logger Logger,
) *Service {
	return &Service{
		policyRepo:    policyRepo,
		catalogClient: catalogClient,
		logger:        logger,
	}
}

// Get получает действующую политику мастера.
// Публичный метод: возвращает персональную политику, при её отсутствии -
// общесалонную, при отсутствии обеих - значения по умолчанию
func (s *Service) Get(ctx context.Context, professionalID int64) (*models.PolicyResponse, error) {
	s.logger.Info("Get: fetching booking policy for professional=%d", professionalID)

	if professionalID <= 0 {
		return nil, fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	policy, err := s.policyRepo.GetWithFallback(ctx, professionalID)
	if err != nil {
		if errors.Is(err, policyRepo.ErrPolicyNotFound) {
			s.logger.Info("Get: no policy configured for professional=%d, using defaults", professionalID)
			return models.FromDomainPolicy(domain.DefaultBookingPolicy()), nil
		}
		s.logger.Error("Get: repository error for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Get: successfully fetched booking policy for professional=%d", professionalID)
	return models.FromDomainPolicy(policy), nil
}

// Upsert создает или обновляет политику бронирования.
// Персональную политику меняет сам мастер или менеджер салона,
// общесалонную - только менеджер
func (s *Service) Upsert(ctx context.Context, req *models.UpsertPolicyRequest) (*models.PolicyResponse, error) {
	s.logger.Info("Upsert: upserting booking policy, professional=%v by user=%d", req.ProfessionalID, req.UserID)

	if err := s.validatePolicyData(req.AdvanceBookingDays, req.MinBookingNoticeMinutes); err != nil {
		s.logger.Warn("Upsert: validation failed: %v", err)
		return nil, err
	}

	if err := s.checkManageAccess(ctx, req); err != nil {
		return nil, err
	}

	// Для персональной политики мастер должен существовать в каталоге
	if req.ProfessionalID != nil {
		if _, err := s.catalogClient.GetProfessional(ctx, *req.ProfessionalID); err != nil {
			return nil, s.mapCatalogError("Upsert", *req.ProfessionalID, err)
		}
	}

	saved, err := s.policyRepo.Upsert(ctx, req.ToDomainPolicy())
	if err != nil {
		s.logger.Error("Upsert: repository error for professional=%v: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: successfully upserted booking policy id=%d", saved.ID)
	return models.FromDomainPolicy(saved), nil
}

// Вспомогательные методы

// validatePolicyData проверяет значения политики на допустимые границы
func (s *Service) validatePolicyData(advanceBookingDays, minBookingNoticeMinutes int) error {
	if advanceBookingDays < domain.MinAdvanceBookingDays || advanceBookingDays > domain.MaxAdvanceBookingDays {
		return fmt.Errorf("%w: advanceBookingDays must be between %d and %d",
			ErrInvalidInput, domain.MinAdvanceBookingDays, domain.MaxAdvanceBookingDays)
	}

	if minBookingNoticeMinutes < domain.MinBookingNoticeMinutes || minBookingNoticeMinutes > domain.MaxBookingNoticeMinutes {
		return fmt.Errorf("%w: minBookingNoticeMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinBookingNoticeMinutes, domain.MaxBookingNoticeMinutes)
	}

	return nil
}

// checkManageAccess проверяет права на изменение политики
func (s *Service) checkManageAccess(ctx context.Context, req *models.UpsertPolicyRequest) error {
	// Мастер может менять собственную политику
	if req.ProfessionalID != nil && *req.ProfessionalID == req.UserID {
		return nil
	}

	// Остальное (чужая или общесалонная политика) - только менеджер
	user, err := s.catalogClient.GetProfessional(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrProfessionalNotFound) {
			s.logger.Warn("checkManageAccess: user=%d is not a catalog professional", req.UserID)
			return ErrAccessDenied
		}
		return s.mapCatalogError("checkManageAccess", req.UserID, err)
	}

	if user.Role != roleManager {
		s.logger.Warn("checkManageAccess: user=%d has role=%s, manager required", req.UserID, user.Role)
		return ErrAccessDenied
	}

	return nil
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
