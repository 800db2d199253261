package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type StockType string

const (
	StockFeed    StockType = "Feed"
	StockVaccine StockType = "Vaccine"
	StockVitamin StockType = "Vitamin"
)

func (t StockType) Valid() bool {
	switch t {
	case StockFeed, StockVaccine, StockVitamin:
		return true
	}
	return false
}

type StockItem struct {
	ID          int64           `db:"id" json:"id"`
	Type        StockType       `db:"type" json:"type"`
	Name        *string         `db:"name" json:"name,omitempty"`
	Quantity    decimal.Decimal `db:"quantity" json:"quantity"`
	Unit        string          `db:"unit" json:"unit"`
	CreatedByID *int64          `db:"created_by_id" json:"createdById,omitempty"`
	CreatedAt   time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updatedAt"`
}
