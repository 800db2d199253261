package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BatchDailySummary is one dashboard row per (batch, day): total feed
// consumed, deaths, who recorded, and whether consumption looks abnormal
// relative to the batch headcount. Derived, never persisted.
type BatchDailySummary struct {
	BatchID             int64           `json:"batchId"`
	BatchNumber         string          `json:"batchNumber"`
	Date                Date            `json:"date"`
	TotalQuantityEaten  decimal.Decimal `json:"totalQuantityEaten"`
	MortalityCount      int             `json:"mortalityCount"`
	RecordedByName      string          `json:"recordedByName"`
	AbnormalConsumption bool            `json:"abnormalConsumption"`
}

// HealthAlertSummary is one pending-approval health record projected for
// the supervision dashboard.
type HealthAlertSummary struct {
	HealthRecordID   int64               `json:"healthRecordId"`
	BatchID          int64               `json:"batchId"`
	BatchNumber      string              `json:"batchNumber"`
	Diagnosis        string              `json:"diagnosis"`
	Treatment        *string             `json:"treatment,omitempty"`
	TreatmentCost    decimal.NullDecimal `json:"treatmentCost,omitempty"`
	ExaminationDate  Date                `json:"examinationDate"`
	VeterinarianName string              `json:"veterinarianName"`
	CreatedAt        time.Time           `json:"createdAt"`
}

type SupervisionDashboard struct {
	StartDate      Date                 `json:"startDate"`
	EndDate        Date                 `json:"endDate"`
	BatchSummaries []BatchDailySummary  `json:"batchSummaries"`
	PendingAlerts  []HealthAlertSummary `json:"pendingAlerts"`
}
