package policy

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/elietedasilvas/BLZ-BookingService/internal/domain"
	"github.com/elietedasilvas/BLZ-BookingService/pkg/dbmetrics"
	"github.com/elietedasilvas/BLZ-BookingService/pkg/psqlbuilder"
)

var policyColumns = []string{
	"id",
	"professional_id",
	"advance_booking_days",
	"min_booking_notice_minutes",
	"created_at",
	"updated_at",
}

// Repository репозиторий политик бронирования
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория политик
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByProfessional получает политику для professionalID.
// professionalID = nil означает общесалонную политику.
func (r *Repository) GetByProfessional(ctx context.Context, professionalID *int64) (*domain.BookingPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(policyColumns...).
		From("booking_policies")

	if professionalID == nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"professional_id": nil})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"professional_id": *professionalID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessional - build select query: %v", ErrBuildQuery, err)
	}

	var policy domain.BookingPolicy
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&policy.ID,
		&policy.ProfessionalID,
		&policy.AdvanceBookingDays,
		&policy.MinBookingNoticeMinutes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPolicyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessional - scan policy: %v", ErrScanRow, err)
	}

	policy.CreatedAt = createdAt.Time
	policy.UpdatedAt = updatedAt.Time

	return &policy, nil
}

// GetWithFallback получает политику с учётом иерархии приоритетов:
// 1. Персональная политика мастера
// 2. Общесалонная политика (professional_id IS NULL)
// Если ни одной записи нет, возвращает ErrPolicyNotFound - вызывающая сторона
// подставляет значения по умолчанию.
func (r *Repository) GetWithFallback(ctx context.Context, professionalID int64) (*domain.BookingPolicy, error) {
	policy, err := r.GetByProfessional(ctx, &professionalID)
	if err == nil {
		return policy, nil
	}
	if err != ErrPolicyNotFound {
		return nil, fmt.Errorf("%w: GetWithFallback - professional level: %v", ErrExecQuery, err)
	}

	policy, err = r.GetByProfessional(ctx, nil)
	if err == nil {
		return policy, nil
	}
	if err != ErrPolicyNotFound {
		return nil, fmt.Errorf("%w: GetWithFallback - salon level: %v", ErrExecQuery, err)
	}

	return nil, ErrPolicyNotFound
}

// upsertConflictTarget возвращает конфликтную цель для уровня политики.
// Оба уникальных индекса на booking_policies частичные, поэтому цель
// обязана повторять предикат индекса - иначе Postgres индекс не подберет
// и ON CONFLICT отклоняется
func upsertConflictTarget(professionalID *int64) string {
	if professionalID == nil {
		return "((professional_id IS NULL)) WHERE professional_id IS NULL"
	}
	return "(professional_id) WHERE professional_id IS NOT NULL"
}

// Upsert создает или обновляет политику для professionalID
// (nil = общесалонная политика)
func (r *Repository) Upsert(ctx context.Context, policy *domain.BookingPolicy) (*domain.BookingPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_policies").
		Columns("professional_id", "advance_booking_days", "min_booking_notice_minutes").
		Values(policy.ProfessionalID, policy.AdvanceBookingDays, policy.MinBookingNoticeMinutes).
		Suffix(fmt.Sprintf(`ON CONFLICT %s DO UPDATE SET
			advance_booking_days = EXCLUDED.advance_booking_days,
			min_booking_notice_minutes = EXCLUDED.min_booking_notice_minutes,
			updated_at = NOW()
			RETURNING id, created_at, updated_at`, upsertConflictTarget(policy.ProfessionalID))).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&policy.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	policy.CreatedAt = createdAt.Time
	policy.UpdatedAt = updatedAt.Time

	return policy, nil
}
