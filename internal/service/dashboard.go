package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/djajbladi/poultry-backend/internal/apperr"
	"github.com/djajbladi/poultry-backend/internal/domain"
)

type DashboardStore interface {
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListFeedingBetween(ctx context.Context, start, end domain.Date) ([]domain.FeedingRecord, error)
	ListMortalityBetween(ctx context.Context, start, end domain.Date) ([]domain.DailyMortalityRecord, error)
	ListPendingHealth(ctx context.Context) ([]domain.HealthRecord, error)
}

// DashboardService assembles the admin supervision view: one summary row
// per (batch, day) merged from feeding and mortality records, plus the
// pending health-approval alerts.
type DashboardService struct {
	store        DashboardStore
	maxRangeDays int
}

func NewDashboardService(store DashboardStore, maxRangeDays int) *DashboardService {
	return &DashboardService{store: store, maxRangeDays: maxRangeDays}
}

func (s *DashboardService) Supervision(ctx context.Context, adminEmail string, start, end domain.Date) (*domain.SupervisionDashboard, error) {
	admin, err := resolveUser(ctx, s.store, adminEmail)
	if err != nil {
		return nil, err
	}
	if admin.Role != domain.RoleAdmin {
		return nil, apperr.Forbiddenf("only Admin can access the supervision dashboard")
	}
	if err := validateDateRange(start, end, s.maxRangeDays); err != nil {
		return nil, err
	}

	feedings, err := s.store.ListFeedingBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	mortalities, err := s.store.ListMortalityBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	pending, err := s.store.ListPendingHealth(ctx)
	if err != nil {
		return nil, err
	}

	dashboard := BuildSupervisionDashboard(start, end, feedings, mortalities, pending)
	return &dashboard, nil
}

// perChickenThreshold is the daily per-chicken feed intake above which
// consumption is flagged, in the same unit as FeedingRecord.Quantity.
var perChickenThreshold = decimal.New(5, -1)

// BuildSupervisionDashboard merges feeding and mortality records into one
// summary row per (batch, day) and projects pending health alerts. It is a
// pure function over already-loaded snapshots: no I/O, inputs unmodified.
//
// The feeding pass claims keys first, so a day with both record kinds shows
// the feeding actor. Keys seen only in mortality records are emitted in a
// second pass with the feed total for that day (zero when none).
func BuildSupervisionDashboard(start, end domain.Date,
	feedings []domain.FeedingRecord,
	mortalities []domain.DailyMortalityRecord,
	pending []domain.HealthRecord) domain.SupervisionDashboard {

	quantityByKey := make(map[string]decimal.Decimal)
	for _, f := range feedings {
		k := dayKey(f.BatchID, f.FeedingDate)
		quantityByKey[k] = quantityByKey[k].Add(f.Quantity)
	}
	mortalityByKey := make(map[string]int)
	for _, m := range mortalities {
		k := dayKey(m.BatchID, m.RecordDate)
		mortalityByKey[k] += m.MortalityCount
	}

	summaries := make([]domain.BatchDailySummary, 0, len(quantityByKey))
	seen := make(map[string]bool)

	for _, f := range feedings {
		k := dayKey(f.BatchID, f.FeedingDate)
		if seen[k] {
			continue
		}
		seen[k] = true
		total := quantityByKey[k]
		mortality := mortalityByKey[k]
		summaries = append(summaries, domain.BatchDailySummary{
			BatchID:             f.BatchID,
			BatchNumber:         f.BatchNumber,
			Date:                f.FeedingDate,
			TotalQuantityEaten:  total.Round(2),
			MortalityCount:      mortality,
			RecordedByName:      f.RecordedByName,
			AbnormalConsumption: abnormalConsumption(f.ChickenCount, total, mortality),
		})
	}

	for _, m := range mortalities {
		k := dayKey(m.BatchID, m.RecordDate)
		if seen[k] {
			continue
		}
		seen[k] = true
		total := quantityByKey[k]
		summaries = append(summaries, domain.BatchDailySummary{
			BatchID:             m.BatchID,
			BatchNumber:         m.BatchNumber,
			Date:                m.RecordDate,
			TotalQuantityEaten:  total.Round(2),
			MortalityCount:      m.MortalityCount,
			RecordedByName:      m.RecordedByName,
			AbnormalConsumption: abnormalConsumption(m.ChickenCount, total, m.MortalityCount),
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		if !summaries[i].Date.Equal(summaries[j].Date.Time) {
			return summaries[i].Date.After(summaries[j].Date.Time)
		}
		return summaries[i].BatchNumber < summaries[j].BatchNumber
	})

	alerts := make([]domain.HealthAlertSummary, 0, len(pending))
	for _, h := range pending {
		if h.ApprovalStatus != domain.ApprovalPending {
			continue
		}
		alerts = append(alerts, domain.HealthAlertSummary{
			HealthRecordID:   h.ID,
			BatchID:          h.BatchID,
			BatchNumber:      h.BatchNumber,
			Diagnosis:        h.Diagnosis,
			Treatment:        h.Treatment,
			TreatmentCost:    h.TreatmentCost,
			ExaminationDate:  h.ExaminationDate,
			VeterinarianName: h.VeterinarianName,
			CreatedAt:        h.CreatedAt,
		})
	}

	return domain.SupervisionDashboard{
		StartDate:      start,
		EndDate:        end,
		BatchSummaries: summaries,
		PendingAlerts:  alerts,
	}
}

func dayKey(batchID int64, date domain.Date) string {
	return fmt.Sprintf("%d|%s", batchID, date)
}

// abnormalConsumption flags a day when per-chicken intake exceeds the
// threshold or deaths exceed 1% of the headcount (integer division, so the
// 1% floor truncates). A missing or non-positive headcount never flags.
func abnormalConsumption(chickenCount int, totalQuantity decimal.Decimal, mortality int) bool {
	if chickenCount <= 0 {
		return false
	}
	perChicken := totalQuantity.DivRound(decimal.NewFromInt(int64(chickenCount)), 4)
	return perChicken.GreaterThan(perChickenThreshold) || mortality > chickenCount/100
}
