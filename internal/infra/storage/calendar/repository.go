package calendar

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/saltylife/SL-RentalService/internal/domain"
	"github.com/saltylife/SL-RentalService/pkg/dbmetrics"
	"github.com/saltylife/SL-RentalService/pkg/psqlbuilder"
	"github.com/saltylife/SL-RentalService/pkg/types"
)

// Repository репозиторий календарных блокировок: ручные даты владельца и
// даты, импортированные из внешних календарей по подключениям.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория календаря
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListManualBlocks возвращает все вручную заблокированные даты
func (r *Repository) ListManualBlocks(ctx context.Context) ([]types.DateString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("day").
		From("blocked_dates").
		OrderBy("day ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListManualBlocks - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListManualBlocks - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanDates(rows, "ListManualBlocks")
}

// AddManualBlock добавляет ручную блокировку даты (повтор - не ошибка)
func (r *Repository) AddManualBlock(ctx context.Context, day types.DateString) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_dates").
		Columns("day").
		Values(day).
		Suffix("ON CONFLICT (day) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AddManualBlock - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: AddManualBlock - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// RemoveManualBlock снимает ручную блокировку даты
func (r *Repository) RemoveManualBlock(ctx context.Context, day types.DateString) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_dates").
		Where(squirrel.Eq{"day": day}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: RemoveManualBlock - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: RemoveManualBlock - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: RemoveManualBlock - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBlockNotFound
	}

	return nil
}

// ListImportedDates возвращает объединение импортированных дат всех подключений
func (r *Repository) ListImportedDates(ctx context.Context) ([]types.DateString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT day").
		From("imported_dates").
		OrderBy("day ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListImportedDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListImportedDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanDates(rows, "ListImportedDates")
}

// GetConnection получает подключение внешнего календаря по ID
func (r *Repository) GetConnection(ctx context.Context, id string) (*domain.CalendarConnection, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"platform",
		"url",
		"status",
		"last_sync_at",
		"created_at",
		"updated_at",
	).
		From("calendar_connections").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetConnection - build select query: %v", ErrBuildQuery, err)
	}

	conn, err := scanConnection(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrConnectionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetConnection - scan connection: %v", ErrScanRow, err)
	}

	dates, err := r.listConnectionDates(ctx, conn.ID)
	if err != nil {
		return nil, err
	}
	conn.ImportedDates = dates

	return conn, nil
}

// ListConnections возвращает все подключения внешних календарей с их датами
func (r *Repository) ListConnections(ctx context.Context) ([]*domain.CalendarConnection, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"platform",
		"url",
		"status",
		"last_sync_at",
		"created_at",
		"updated_at",
	).
		From("calendar_connections").
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListConnections - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListConnections - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	connections := make([]*domain.CalendarConnection, 0)
	for rows.Next() {
		conn, err := scanConnection(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListConnections - scan row: %v", ErrScanRow, err)
		}
		connections = append(connections, conn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListConnections - rows error: %v", ErrScanRow, err)
	}

	for _, conn := range connections {
		dates, err := r.listConnectionDates(ctx, conn.ID)
		if err != nil {
			return nil, err
		}
		conn.ImportedDates = dates
	}

	return connections, nil
}

// UpdateConnectionStatus обновляет только статус подключения.
// Импортированные даты не трогаются - это важно для пометки error после
// неудачной синхронизации: старые блокировки должны сохраниться.
func (r *Repository) UpdateConnectionStatus(ctx context.Context, id string, status domain.ConnectionStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("calendar_connections").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateConnectionStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateConnectionStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateConnectionStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrConnectionNotFound
	}

	return nil
}

// ReplaceImported целиком заменяет импортированные даты подключения.
// Замена деструктивная: DELETE + INSERT, чтобы даты, пропавшие из внешнего
// календаря, не оставались заблокированными. Вызывается внутри транзакции.
func (r *Repository) ReplaceImported(ctx context.Context, id string, dates []types.DateString, syncedAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("imported_dates").
		Where(squirrel.Eq{"connection_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceImported - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceImported - execute delete: %v", ErrExecQuery, err)
	}

	if len(dates) > 0 {
		insertBuilder := psqlbuilder.Insert("imported_dates").Columns("connection_id", "day")
		for _, day := range dates {
			insertBuilder = insertBuilder.Values(id, day)
		}
		insertQuery, insertArgs, err := insertBuilder.
			Suffix("ON CONFLICT (connection_id, day) DO NOTHING").
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: ReplaceImported - build insert query: %v", ErrBuildQuery, err)
		}
		if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("%w: ReplaceImported - execute insert: %v", ErrExecQuery, err)
		}
	}

	updateQuery, updateArgs, err := psqlbuilder.Update("calendar_connections").
		Set("status", domain.ConnectionConnected).
		Set("last_sync_at", syncedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceImported - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, updateQuery, updateArgs...)
	if err != nil {
		return fmt.Errorf("%w: ReplaceImported - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ReplaceImported - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrConnectionNotFound
	}

	return nil
}

// listConnectionDates возвращает импортированные даты одного подключения
func (r *Repository) listConnectionDates(ctx context.Context, id string) ([]types.DateString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("day").
		From("imported_dates").
		Where(squirrel.Eq{"connection_id": id}).
		OrderBy("day ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: listConnectionDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listConnectionDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanDates(rows, "listConnectionDates")
}

// scanConnection сканирует строку подключения (без импортированных дат)
func scanConnection(row interface{ Scan(...interface{}) error }) (*domain.CalendarConnection, error) {
	var conn domain.CalendarConnection
	var lastSyncAt sql.NullTime
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&conn.ID,
		&conn.Platform,
		&conn.URL,
		&conn.Status,
		&lastSyncAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if lastSyncAt.Valid {
		t := lastSyncAt.Time
		conn.LastSyncAt = &t
	}
	conn.CreatedAt = createdAt.Time
	conn.UpdatedAt = updatedAt.Time

	return &conn, nil
}

// scanDates сканирует одноколоночный результат в слайс дат
func scanDates(rows *sql.Rows, method string) ([]types.DateString, error) {
	dates := make([]types.DateString, 0)
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, fmt.Errorf("%w: %s - scan day: %v", ErrScanRow, method, err)
		}
		dates = append(dates, types.DateString(day))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}
	return dates, nil
}
