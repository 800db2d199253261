package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/djajbladi/poultry-backend/internal/domain"
)

func (r *Repos) InsertBuilding(ctx context.Context, b *domain.Building) error {
	return r.db.QueryRowxContext(ctx, `
		INSERT INTO buildings (name, max_capacity, image_url, created_by_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		b.Name, b.MaxCapacity, b.ImageURL, b.CreatedByID,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *Repos) GetBuilding(ctx context.Context, id int64) (*domain.Building, error) {
	var b domain.Building
	err := r.db.GetContext(ctx, &b, `
		SELECT id, name, max_capacity, image_url, created_by_id, created_at, updated_at
		FROM buildings WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Repos) ListBuildings(ctx context.Context) ([]domain.Building, error) {
	var out []domain.Building
	err := r.db.SelectContext(ctx, &out, `
		SELECT id, name, max_capacity, image_url, created_by_id, created_at, updated_at
		FROM buildings ORDER BY id`)
	return out, err
}
