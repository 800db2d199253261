package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/djajbladi/poultry-backend/internal/apperr"
	"github.com/djajbladi/poultry-backend/internal/domain"
)

type mockHealthStore struct {
	mock.Mock
}

func (m *mockHealthStore) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockHealthStore) GetBatch(ctx context.Context, id int64) (*domain.Batch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Batch), args.Error(1)
}

func (m *mockHealthStore) InsertHealth(ctx context.Context, h *domain.HealthRecord) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *mockHealthStore) GetHealth(ctx context.Context, id int64) (*domain.HealthRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HealthRecord), args.Error(1)
}

func (m *mockHealthStore) SetHealthApproval(ctx context.Context, id int64, status domain.ApprovalStatus, approvedByID int64, approvedAt time.Time) error {
	args := m.Called(ctx, id, status, approvedByID, approvedAt)
	return args.Error(0)
}

func (m *mockHealthStore) ListPendingHealth(ctx context.Context) ([]domain.HealthRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HealthRecord), args.Error(1)
}

var approvalThreshold = decimal.NewFromInt(5000)

func vetUser() *domain.User {
	return &domain.User{ID: 5, FullName: "Dr. Sofia", Email: "vet@farm.ma", Role: domain.RoleVeterinaire}
}

func activeBatch() *domain.Batch {
	return &domain.Batch{ID: 1, BatchNumber: "B-001", ChickenCount: 1000, Status: domain.BatchActive}
}

func healthRequest() HealthRecordCreateRequest {
	return HealthRecordCreateRequest{
		BatchID:         1,
		Diagnosis:       "routine checkup",
		ExaminationDate: domain.Today(),
	}
}

func TestHealthCreateWithoutApproval(t *testing.T) {
	store := new(mockHealthStore)
	store.On("GetUserByEmail", mock.Anything, "vet@farm.ma").Return(vetUser(), nil)
	store.On("GetBatch", mock.Anything, int64(1)).Return(activeBatch(), nil)
	store.On("InsertHealth", mock.Anything, mock.Anything).Return(nil)

	svc := NewHealthService(store, approvalThreshold)
	req := healthRequest()
	req.TreatmentCost = decimal.NullDecimal{Decimal: decimal.NewFromInt(4999), Valid: true}

	record, err := svc.Create(context.Background(), "vet@farm.ma", req)

	require.NoError(t, err)
	assert.False(t, record.RequiresApproval)
	assert.Empty(t, string(record.ApprovalStatus))
	assert.Equal(t, "Dr. Sofia", record.VeterinarianName)
	assert.Equal(t, "B-001", record.BatchNumber)
}

func TestHealthCreateExpensiveTreatmentNeedsApproval(t *testing.T) {
	store := new(mockHealthStore)
	store.On("GetUserByEmail", mock.Anything, "vet@farm.ma").Return(vetUser(), nil)
	store.On("GetBatch", mock.Anything, int64(1)).Return(activeBatch(), nil)
	store.On("InsertHealth", mock.Anything, mock.Anything).Return(nil)

	svc := NewHealthService(store, approvalThreshold)
	req := healthRequest()
	// The threshold itself counts as expensive.
	req.TreatmentCost = decimal.NullDecimal{Decimal: decimal.NewFromInt(5000), Valid: true}

	record, err := svc.Create(context.Background(), "vet@farm.ma", req)

	require.NoError(t, err)
	assert.True(t, record.RequiresApproval)
	assert.Equal(t, domain.ApprovalPending, record.ApprovalStatus)
}

func TestHealthCreateDiseaseNeedsApproval(t *testing.T) {
	store := new(mockHealthStore)
	store.On("GetUserByEmail", mock.Anything, "vet@farm.ma").Return(vetUser(), nil)
	store.On("GetBatch", mock.Anything, int64(1)).Return(activeBatch(), nil)
	store.On("InsertHealth", mock.Anything, mock.Anything).Return(nil)

	svc := NewHealthService(store, approvalThreshold)
	req := healthRequest()
	req.Diagnosis = "newcastle disease"
	req.IsDiseaseReported = true

	record, err := svc.Create(context.Background(), "vet@farm.ma", req)

	require.NoError(t, err)
	assert.True(t, record.RequiresApproval)
	assert.Equal(t, domain.ApprovalPending, record.ApprovalStatus)
}

func TestHealthCreateRejectsWorker(t *testing.T) {
	store := new(mockHealthStore)
	store.On("GetUserByEmail", mock.Anything, "worker@farm.ma").
		Return(&domain.User{ID: 2, Role: domain.RoleOuvrier}, nil)

	svc := NewHealthService(store, approvalThreshold)
	_, err := svc.Create(context.Background(), "worker@farm.ma", healthRequest())

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Forbidden))
}

func TestHealthCreateValidation(t *testing.T) {
	store := new(mockHealthStore)
	store.On("GetUserByEmail", mock.Anything, "vet@farm.ma").Return(vetUser(), nil)
	svc := NewHealthService(store, approvalThreshold)

	t.Run("blank diagnosis", func(t *testing.T) {
		req := healthRequest()
		req.Diagnosis = "   "
		_, err := svc.Create(context.Background(), "vet@farm.ma", req)
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.Invalid))
	})

	t.Run("future examination date", func(t *testing.T) {
		req := healthRequest()
		tomorrow := domain.Today()
		tomorrow.Time = tomorrow.AddDate(0, 0, 1)
		req.ExaminationDate = tomorrow
		_, err := svc.Create(context.Background(), "vet@farm.ma", req)
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.Invalid))
	})

	t.Run("negative treatment cost", func(t *testing.T) {
		req := healthRequest()
		req.TreatmentCost = decimal.NullDecimal{Decimal: decimal.NewFromInt(-1), Valid: true}
		_, err := svc.Create(context.Background(), "vet@farm.ma", req)
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.Invalid))
	})
}

func TestHealthCreateInactiveBatch(t *testing.T) {
	store := new(mockHealthStore)
	store.On("GetUserByEmail", mock.Anything, "vet@farm.ma").Return(vetUser(), nil)
	completed := activeBatch()
	completed.Status = domain.BatchCompleted
	store.On("GetBatch", mock.Anything, int64(1)).Return(completed, nil)

	svc := NewHealthService(store, approvalThreshold)
	_, err := svc.Create(context.Background(), "vet@farm.ma", healthRequest())

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Invalid))
}

func adminUser() *domain.User {
	return &domain.User{ID: 1, FullName: "Hamid", Email: "admin@farm.ma", Role: domain.RoleAdmin}
}

func pendingRecord() *domain.HealthRecord {
	return &domain.HealthRecord{
		ID:               9,
		BatchID:          1,
		BatchNumber:      "B-001",
		Diagnosis:        "newcastle disease",
		RequiresApproval: true,
		ApprovalStatus:   domain.ApprovalPending,
	}
}

func TestHealthApprove(t *testing.T) {
	store := new(mockHealthStore)
	store.On("GetUserByEmail", mock.Anything, "admin@farm.ma").Return(adminUser(), nil)
	store.On("GetHealth", mock.Anything, int64(9)).Return(pendingRecord(), nil)
	store.On("SetHealthApproval", mock.Anything, int64(9), domain.ApprovalApproved, int64(1), mock.Anything).Return(nil)

	svc := NewHealthService(store, approvalThreshold)
	record, err := svc.Approve(context.Background(), 9, "admin@farm.ma")

	require.NoError(t, err)
	assert.Equal(t, domain.ApprovalApproved, record.ApprovalStatus)
	require.NotNil(t, record.ApprovedByName)
	assert.Equal(t, "Hamid", *record.ApprovedByName)
	require.NotNil(t, record.ApprovedAt)
	store.AssertExpectations(t)
}

func TestHealthRejectNonAdmin(t *testing.T) {
	store := new(mockHealthStore)
	store.On("GetUserByEmail", mock.Anything, "vet@farm.ma").Return(vetUser(), nil)

	svc := NewHealthService(store, approvalThreshold)
	_, err := svc.Reject(context.Background(), 9, "vet@farm.ma")

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Forbidden))
}

func TestHealthApprovalIsTerminal(t *testing.T) {
	store := new(mockHealthStore)
	store.On("GetUserByEmail", mock.Anything, "admin@farm.ma").Return(adminUser(), nil)
	approved := pendingRecord()
	approved.ApprovalStatus = domain.ApprovalApproved
	store.On("GetHealth", mock.Anything, int64(9)).Return(approved, nil)

	svc := NewHealthService(store, approvalThreshold)
	_, err := svc.Reject(context.Background(), 9, "admin@farm.ma")

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Invalid))
}

func TestHealthApproveWithoutApprovalFlag(t *testing.T) {
	store := new(mockHealthStore)
	store.On("GetUserByEmail", mock.Anything, "admin@farm.ma").Return(adminUser(), nil)
	routine := pendingRecord()
	routine.RequiresApproval = false
	routine.ApprovalStatus = ""
	store.On("GetHealth", mock.Anything, int64(9)).Return(routine, nil)

	svc := NewHealthService(store, approvalThreshold)
	_, err := svc.Approve(context.Background(), 9, "admin@farm.ma")

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Invalid))
}

func TestHealthApproveMissingRecord(t *testing.T) {
	store := new(mockHealthStore)
	store.On("GetUserByEmail", mock.Anything, "admin@farm.ma").Return(adminUser(), nil)
	store.On("GetHealth", mock.Anything, int64(404)).Return(nil, nil)

	svc := NewHealthService(store, approvalThreshold)
	_, err := svc.Approve(context.Background(), 404, "admin@farm.ma")

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}
