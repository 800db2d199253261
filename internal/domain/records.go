package domain

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// FeedingRecord is one feed distribution for a batch. Rows are materialized
// with batch and actor columns joined upfront so nothing downstream has to
// reach back into the database.
type FeedingRecord struct {
	ID             int64           `db:"id" json:"id"`
	BatchID        int64           `db:"batch_id" json:"batchId"`
	BatchNumber    string          `db:"batch_number" json:"batchNumber"`
	ChickenCount   int             `db:"chicken_count" json:"-"`
	FeedType       string          `db:"feed_type" json:"feedType"`
	Quantity       decimal.Decimal `db:"quantity" json:"quantity"`
	FeedingDate    Date            `db:"feeding_date" json:"feedingDate"`
	Notes          *string         `db:"notes" json:"notes,omitempty"`
	RecordedByID   int64           `db:"recorded_by_id" json:"recordedById"`
	RecordedByName string          `db:"recorded_by_name" json:"recordedByName"`
	CreatedAt      time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updatedAt"`
}

// DailyMortalityRecord counts deaths for one batch on one day. At most one
// row per (batch, day) exists, enforced by a unique constraint at creation.
type DailyMortalityRecord struct {
	ID             int64     `db:"id" json:"id"`
	BatchID        int64     `db:"batch_id" json:"batchId"`
	BatchNumber    string    `db:"batch_number" json:"batchNumber"`
	ChickenCount   int       `db:"chicken_count" json:"-"`
	RecordDate     Date      `db:"record_date" json:"recordDate"`
	MortalityCount int       `db:"mortality_count" json:"mortalityCount"`
	Notes          *string   `db:"notes" json:"notes,omitempty"`
	RecordedByID   int64     `db:"recorded_by_id" json:"recordedById"`
	RecordedByName string    `db:"recorded_by_name" json:"recordedByName"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `db:"updated_at" json:"updatedAt"`
}

// ApprovalStatus is the workflow state of a health record that requires
// admin sign-off. The empty value means the record never entered the
// workflow (auto-accepted).
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "PENDING_APPROVAL"
	ApprovalApproved ApprovalStatus = "APPROVED"
	ApprovalRejected ApprovalStatus = "REJECTED"
)

func (s ApprovalStatus) Value() (driver.Value, error) {
	if s == "" {
		return nil, nil
	}
	return string(s), nil
}

func (s *ApprovalStatus) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*s = ""
	case string:
		*s = ApprovalStatus(v)
	case []byte:
		*s = ApprovalStatus(v)
	default:
		return fmt.Errorf("cannot scan %T into ApprovalStatus", src)
	}
	return nil
}

// HealthRecord is a veterinary examination of a batch. Expensive treatments
// and reported diseases require admin approval before being finalized; the
// transition to APPROVED or REJECTED is terminal.
type HealthRecord struct {
	ID               int64               `db:"id" json:"id"`
	BatchID          int64               `db:"batch_id" json:"batchId"`
	BatchNumber      string              `db:"batch_number" json:"batchNumber"`
	VeterinarianID   int64               `db:"veterinarian_id" json:"veterinarianId"`
	VeterinarianName string              `db:"veterinarian_name" json:"veterinarianName"`
	Diagnosis        string              `db:"diagnosis" json:"diagnosis"`
	Treatment        *string             `db:"treatment" json:"treatment,omitempty"`
	ExaminationDate  Date                `db:"examination_date" json:"examinationDate"`
	NextVisitDate    NullDate            `db:"next_visit_date" json:"nextVisitDate,omitempty"`
	MortalityCount   int                 `db:"mortality_count" json:"mortalityCount"`
	TreatmentCost    decimal.NullDecimal `db:"treatment_cost" json:"treatmentCost,omitempty"`
	RequiresApproval bool                `db:"requires_approval" json:"requiresApproval"`
	ApprovalStatus   ApprovalStatus      `db:"approval_status" json:"approvalStatus,omitempty"`
	ApprovedByID     *int64              `db:"approved_by_id" json:"approvedById,omitempty"`
	ApprovedByName   *string             `db:"approved_by_name" json:"approvedByName,omitempty"`
	ApprovedAt       *time.Time          `db:"approved_at" json:"approvedAt,omitempty"`
	Notes            *string             `db:"notes" json:"notes,omitempty"`
	CreatedAt        time.Time           `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time           `db:"updated_at" json:"updatedAt"`
}
