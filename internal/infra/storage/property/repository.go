package property

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/saltylife/SL-RentalService/internal/domain"
	"github.com/saltylife/SL-RentalService/pkg/dbmetrics"
	"github.com/saltylife/SL-RentalService/pkg/psqlbuilder"
	"github.com/saltylife/SL-RentalService/pkg/types"
)

// Repository репозиторий конфигурации объекта.
// Конфигурация принадлежит внешнему сервису листинга, здесь только чтение.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetConfig получает конфигурацию объекта вместе с таблицей праздничных правил.
// Сервис обслуживает один объект - строка конфигурации одна.
func (r *Repository) GetConfig(ctx context.Context) (*domain.PropertyConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"base_price",
		"cleaning_fee",
		"min_nights",
		"weekend_mult",
		"booking_mode",
		"hold_minutes",
		"allow_instant_confirm",
		"plan",
		"whatsapp",
		"created_at",
		"updated_at",
	).
		From("property_config").
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetConfig - build select query: %v", ErrBuildQuery, err)
	}

	var cfg domain.PropertyConfig
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.ID,
		&cfg.Name,
		&cfg.BasePrice,
		&cfg.CleaningFee,
		&cfg.MinNights,
		&cfg.WeekendMult,
		&cfg.BookingMode,
		&cfg.HoldMinutes,
		&cfg.AllowInstantConfirm,
		&cfg.Plan,
		&cfg.WhatsApp,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetConfig - scan config: %v", ErrScanRow, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	holidays, err := r.listHolidayRules(ctx)
	if err != nil {
		return nil, err
	}
	cfg.Holidays = holidays

	return &cfg, nil
}

// listHolidayRules читает таблицу праздничных правил в порядке position.
// Порядок load-bearing: движок цен берет первое совпавшее правило.
func (r *Repository) listHolidayRules(ctx context.Context) (domain.HolidayTable, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"name",
		"start_date",
		"end_date",
		"multiplier",
	).
		From("holiday_rules").
		OrderBy("position ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: listHolidayRules - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listHolidayRules - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	table := make(domain.HolidayTable, 0)
	for rows.Next() {
		var rule domain.HolidayRule
		var start, end string

		if err := rows.Scan(&rule.Name, &start, &end, &rule.Multiplier); err != nil {
			return nil, fmt.Errorf("%w: listHolidayRules - scan row: %v", ErrScanRow, err)
		}

		rule.Start = types.DateString(start)
		rule.End = types.DateString(end)
		table = append(table, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: listHolidayRules - rows error: %v", ErrScanRow, err)
	}

	return table, nil
}
