package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/djajbladi/poultry-backend/internal/domain"
)

func (r *Repos) InsertStockItem(ctx context.Context, s *domain.StockItem) error {
	return r.db.QueryRowxContext(ctx, `
		INSERT INTO stock_items (type, name, quantity, unit, created_by_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		s.Type, s.Name, s.Quantity, s.Unit, s.CreatedByID,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func (r *Repos) GetStockItem(ctx context.Context, id int64) (*domain.StockItem, error) {
	var s domain.StockItem
	err := r.db.GetContext(ctx, &s, `
		SELECT id, type, name, quantity, unit, created_by_id, created_at, updated_at
		FROM stock_items WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repos) ListStockItems(ctx context.Context) ([]domain.StockItem, error) {
	var out []domain.StockItem
	err := r.db.SelectContext(ctx, &out, `
		SELECT id, type, name, quantity, unit, created_by_id, created_at, updated_at
		FROM stock_items ORDER BY type, name`)
	return out, err
}
