package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BatchStatus string

const (
	BatchActive    BatchStatus = "Active"
	BatchCompleted BatchStatus = "Completed"
	BatchArchived  BatchStatus = "Archived"
)

// Batch is a cohort of chickens managed as a unit. ChickenCount is the
// current headcount and is the denominator for per-chicken consumption.
type Batch struct {
	ID            int64               `db:"id" json:"id"`
	BatchNumber   string              `db:"batch_number" json:"batchNumber"`
	ChickenCount  int                 `db:"chicken_count" json:"chickenCount"`
	ArrivalDate   Date                `db:"arrival_date" json:"arrivalDate"`
	Strain        *string             `db:"strain" json:"strain,omitempty"`
	PurchasePrice decimal.NullDecimal `db:"purchase_price" json:"purchasePrice,omitempty"`
	BuildingID    *int64              `db:"building_id" json:"buildingId,omitempty"`
	BuildingName  *string             `db:"building_name" json:"buildingName,omitempty"`
	Status        BatchStatus         `db:"status" json:"status"`
	Notes         *string             `db:"notes" json:"notes,omitempty"`
	CreatedByID   int64               `db:"created_by_id" json:"createdById"`
	CreatedAt     time.Time           `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time           `db:"updated_at" json:"updatedAt"`
}

type Building struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	MaxCapacity int       `db:"max_capacity" json:"maxCapacity"`
	ImageURL    *string   `db:"image_url" json:"imageUrl,omitempty"`
	CreatedByID *int64    `db:"created_by_id" json:"createdById,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}
