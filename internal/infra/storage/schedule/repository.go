package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/elietedasilvas/BLZ-BookingService/internal/domain"
	"github.com/elietedasilvas/BLZ-BookingService/pkg/dbmetrics"
	"github.com/elietedasilvas/BLZ-BookingService/pkg/psqlbuilder"
)

var windowColumns = []string{
	"id",
	"professional_id",
	"day_of_week",
	"start_time",
	"end_time",
	"created_at",
	"updated_at",
}

// Repository репозиторий недельного расписания мастеров
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByProfessionalAndDay получает окна доступности мастера на день недели
// (0 = воскресенье .. 6 = суббота). Пустой список - валидный результат:
// мастер в этот день не принимает.
func (r *Repository) GetByProfessionalAndDay(ctx context.Context, professionalID int64, dayOfWeek int) ([]*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(windowColumns...).
		From("professional_schedule").
		Where(squirrel.Eq{
			"professional_id": professionalID,
			"day_of_week":     dayOfWeek,
		}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessionalAndDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessionalAndDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanWindows(rows)
}

// GetByProfessional получает все окна доступности мастера за неделю
func (r *Repository) GetByProfessional(ctx context.Context, professionalID int64) ([]*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(windowColumns...).
		From("professional_schedule").
		Where(squirrel.Eq{"professional_id": professionalID}).
		OrderBy("day_of_week ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessional - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessional - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanWindows(rows)
}

// ReplaceDay заменяет окна доступности мастера на день недели целиком:
// удаляет все существующие окна дня и вставляет новый набор. Частичных
// обновлений нет. Вызывается внутри транзакции (см. service/schedule).
func (r *Repository) ReplaceDay(ctx context.Context, professionalID int64, dayOfWeek int, windows []*domain.AvailabilityWindow) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("professional_schedule").
		Where(squirrel.Eq{
			"professional_id": professionalID,
			"day_of_week":     dayOfWeek,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceDay - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceDay - execute delete: %v", ErrExecQuery, err)
	}

	if len(windows) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("professional_schedule").
		Columns("professional_id", "day_of_week", "start_time", "end_time")

	for _, w := range windows {
		insertBuilder = insertBuilder.Values(professionalID, dayOfWeek, w.StartTime, w.EndTime)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceDay - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceDay - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// DeleteByProfessional удаляет всё расписание мастера.
// Используется при удалении мастера из каталога.
func (r *Repository) DeleteByProfessional(ctx context.Context, professionalID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("professional_schedule").
		Where(squirrel.Eq{"professional_id": professionalID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByProfessional - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByProfessional - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// scanWindows сканирует результаты запроса в слайс окон доступности
func (r *Repository) scanWindows(rows *sql.Rows) ([]*domain.AvailabilityWindow, error) {
	windows := make([]*domain.AvailabilityWindow, 0)

	for rows.Next() {
		var w domain.AvailabilityWindow
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&w.ID,
			&w.ProfessionalID,
			&w.DayOfWeek,
			&w.StartTime,
			&w.EndTime,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanWindows - scan row: %v", ErrScanRow, err)
		}

		w.CreatedAt = createdAt.Time
		w.UpdatedAt = updatedAt.Time

		windows = append(windows, &w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanWindows - rows error: %v", ErrScanRow, err)
	}

	return windows, nil
}
