package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"courier-management/internal/entities"
	"courier-management/internal/repository"
	"courier-management/internal/service/delivery"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const deliveryColumns = "id, courier_id, status, scheduled_date, created_by_user_id, created_at, updated_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	deliveryModifyDB := FromDomainModify(&deliveryModify)

	query := `
		INSERT INTO deliveries (courier_id, status, scheduled_date, created_by_user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + deliveryColumns

	var deliveryDB DeliveryDB
	err := r.querier.QueryRow(
		ctx,
		query,
		deliveryModifyDB.CourierID,
		deliveryModifyDB.Status,
		deliveryModifyDB.ScheduledDate,
		deliveryModifyDB.CreatedByUserID,
	).Scan(
		&deliveryDB.ID,
		&deliveryDB.CourierID,
		&deliveryDB.Status,
		&deliveryDB.ScheduledDate,
		&deliveryDB.CreatedByUserID,
		&deliveryDB.CreatedAt,
		&deliveryDB.UpdatedAt,
	)
	if err != nil {
		// Частичный уникальный индекс (courier_id, scheduled_date) по
		// неотмененным доставкам: два конкурентных прогона генерации не
		// вставят одну пару дважды.
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, delivery.ErrDeliveryExists
		}
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	return ToDomain(&deliveryDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Delivery, error) {
	query := `
		SELECT ` + deliveryColumns + `
		FROM deliveries
		WHERE id = $1
	`

	var deliveryDB DeliveryDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&deliveryDB.ID,
		&deliveryDB.CourierID,
		&deliveryDB.Status,
		&deliveryDB.ScheduledDate,
		&deliveryDB.CreatedByUserID,
		&deliveryDB.CreatedAt,
		&deliveryDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository get error: %w", err)
	}

	return ToDomain(&deliveryDB), nil
}

func (r *Repository) List(ctx context.Context, filter entities.DeliveryFilter) ([]entities.Delivery, error) {
	builder := qb.
		Select("id", "courier_id", "status", "scheduled_date", "created_by_user_id", "created_at", "updated_at").
		From("deliveries")

	// фильтры конъюнктивные, отсутствующие не ограничивают
	if filter.Date != nil {
		builder = builder.Where(sq.Eq{"scheduled_date": *filter.Date})
	}
	if filter.CourierID != nil {
		builder = builder.Where(sq.Eq{"courier_id": *filter.CourierID})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}

	builder = builder.OrderBy("scheduled_date ASC", "id ASC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}
	defer rows.Close()

	deliveries := make([]entities.Delivery, 0)
	for rows.Next() {
		var deliveryDB DeliveryDB
		err := rows.Scan(
			&deliveryDB.ID,
			&deliveryDB.CourierID,
			&deliveryDB.Status,
			&deliveryDB.ScheduledDate,
			&deliveryDB.CreatedByUserID,
			&deliveryDB.CreatedAt,
			&deliveryDB.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected delivery repository list scan error: %w", err)
		}
		deliveries = append(deliveries, *ToDomain(&deliveryDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list rows error: %w", err)
	}

	return deliveries, nil
}

func (r *Repository) Update(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	deliveryModifyDB := FromDomainModify(&deliveryModify)

	builder := qb.
		Update("deliveries")

	// опциональные поля патча
	if deliveryModifyDB.CourierID != nil {
		builder = builder.Set("courier_id", deliveryModifyDB.CourierID)
	}
	if deliveryModifyDB.Status != nil {
		builder = builder.Set("status", deliveryModifyDB.Status)
	}
	if deliveryModifyDB.ScheduledDate != nil {
		builder = builder.Set("scheduled_date", deliveryModifyDB.ScheduledDate)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": deliveryModifyDB.ID}).
		Suffix("RETURNING " + deliveryColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	var deliveryDB DeliveryDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&deliveryDB.ID,
		&deliveryDB.CourierID,
		&deliveryDB.Status,
		&deliveryDB.ScheduledDate,
		&deliveryDB.CreatedByUserID,
		&deliveryDB.CreatedAt,
		&deliveryDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, delivery.ErrDeliveryExists
		}
		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	return ToDomain(&deliveryDB), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM deliveries WHERE id = $1
	`
	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected delivery repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return delivery.ErrDeliveryNotFound
	}

	return nil
}

func (r *Repository) ExistsActiveOnDate(ctx context.Context, courierID int64, date time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM deliveries
			WHERE courier_id = $1
			  AND scheduled_date = $2
			  AND status <> 'cancelled'
		)
	`

	var exists bool
	err := r.querier.QueryRow(ctx, query, courierID, date).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected delivery repository exists error: %w", err)
	}

	return exists, nil
}

func (r *Repository) CancelActiveByCourier(ctx context.Context, courierID int64) (int64, error) {
	query := `
		UPDATE deliveries
		SET status = 'cancelled',
		    updated_at = NOW()
		WHERE courier_id = $1
		  AND status IN ('pending', 'assigned', 'in_progress')
	`

	result, err := r.querier.Exec(ctx, query, courierID)
	if err != nil {
		return 0, fmt.Errorf("unexpected delivery repository cancel by courier error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) CancelPendingBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		UPDATE deliveries
		SET status = 'cancelled',
		    updated_at = NOW()
		WHERE status = 'pending'
		  AND scheduled_date < $1
	`

	result, err := r.querier.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("unexpected delivery repository cancel overdue error: %w", err)
	}

	return result.RowsAffected(), nil
}
