// Package repository is the Postgres-backed order store, used when a
// database DSN is configured.
package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/merchstudio/customizer/internal/adapter/storage"
	"github.com/merchstudio/customizer/internal/core/domain"
)

const ordersTable = "orders"

var orderColumns = []string{
	"id", "product_type", "material", "color", "custom_text", "image_url",
	"base_price", "total_price", "created_at", "updated_at",
}

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

func (or *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	statement := or.db.QueryBuilder.Insert(ordersTable).
		Columns(orderColumns...).
		Values(order.ID, order.ProductType, order.Material, order.Color,
			order.CustomText, order.ImageURL,
			order.BasePrice, order.TotalPrice,
			order.CreatedAt, order.UpdatedAt)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = or.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return order, nil
}

func (or *Repository) ReadOrder(ctx context.Context, id string) (*domain.Order, error) {
	statement := or.db.QueryBuilder.
		Select(orderColumns...).
		From(ordersTable).
		Where(sq.Eq{"id": id})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order := domain.Order{}

	err = or.db.QueryRow(ctx, sql, args...).Scan(
		&order.ID,
		&order.ProductType,
		&order.Material,
		&order.Color,
		&order.CustomText,
		&order.ImageURL,
		&order.BasePrice,
		&order.TotalPrice,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}

	return &order, nil
}

func (or *Repository) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	statement := or.db.QueryBuilder.
		Select(orderColumns...).
		From(ordersTable).
		OrderBy("created_at", "id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := or.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order := domain.Order{}
		err = rows.Scan(
			&order.ID,
			&order.ProductType,
			&order.Material,
			&order.Color,
			&order.CustomText,
			&order.ImageURL,
			&order.BasePrice,
			&order.TotalPrice,
			&order.CreatedAt,
			&order.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func (or *Repository) UpdateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	statement := or.db.QueryBuilder.Update(ordersTable).
		Set("material", order.Material).
		Set("color", order.Color).
		Set("custom_text", order.CustomText).
		Set("image_url", order.ImageURL).
		Set("base_price", order.BasePrice).
		Set("total_price", order.TotalPrice).
		Set("updated_at", order.UpdatedAt).
		Where(sq.Eq{"id": order.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	tag, err := or.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrOrderNotFound
	}

	return order, nil
}

func (or *Repository) DeleteOrder(ctx context.Context, id string) error {
	statement := or.db.QueryBuilder.Delete(ordersTable).
		Where(sq.Eq{"id": id})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := or.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOrderNotFound
	}

	return nil
}
