package inquiry

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/saltylife/SL-RentalService/internal/domain"
	"github.com/saltylife/SL-RentalService/pkg/dbmetrics"
	"github.com/saltylife/SL-RentalService/pkg/psqlbuilder"
	"github.com/saltylife/SL-RentalService/pkg/types"
)

// Repository репозиторий запросов на проверку доступности.
// Ядро только создает записи; чтение и смена статуса - для inbox-коллаборатора.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория запросов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись запроса (write-once со стороны ядра)
func (r *Repository) Create(ctx context.Context, inq *domain.Inquiry) (*domain.Inquiry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("inquiries").
		Columns(
			"id",
			"check_in",
			"check_out",
			"guests",
			"estimate",
			"status",
		).
		Values(
			inq.ID,
			inq.CheckIn,
			inq.CheckOut,
			inq.Guests,
			inq.Estimate,
			inq.Status,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	inq.CreatedAt = createdAt.Time
	return inq, nil
}

// List возвращает запросы, опционально фильтруя по статусу
func (r *Repository) List(ctx context.Context, status *domain.InquiryStatus) ([]*domain.Inquiry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"check_in",
		"check_out",
		"guests",
		"estimate",
		"status",
		"created_at",
	).
		From("inquiries").
		OrderBy("created_at DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	inquiries := make([]*domain.Inquiry, 0)
	for rows.Next() {
		var inq domain.Inquiry
		var checkIn, checkOut string
		var createdAt sql.NullTime

		err := rows.Scan(
			&inq.ID,
			&checkIn,
			&checkOut,
			&inq.Guests,
			&inq.Estimate,
			&inq.Status,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		inq.CheckIn = types.DateString(checkIn)
		inq.CheckOut = types.DateString(checkOut)
		inq.CreatedAt = createdAt.Time
		inquiries = append(inquiries, &inq)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return inquiries, nil
}
