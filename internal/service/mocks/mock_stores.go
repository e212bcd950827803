package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vendorhub/vendor-approval-api/internal/database"
	"github.com/vendorhub/vendor-approval-api/internal/models"
)

// MockApplicationStore is a mock implementation of the vendor application store
type MockApplicationStore struct {
	mock.Mock
}

func (m *MockApplicationStore) Create(ctx context.Context, app *models.VendorApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockApplicationStore) GetByID(ctx context.Context, applicationID string) (*models.VendorApplication, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VendorApplication), args.Error(1)
}

func (m *MockApplicationStore) List(ctx context.Context) ([]models.VendorApplication, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.VendorApplication), args.Error(1)
}

func (m *MockApplicationStore) ListByStatuses(ctx context.Context, statuses []models.ApplicationStatus) ([]models.VendorApplication, error) {
	args := m.Called(ctx, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.VendorApplication), args.Error(1)
}

func (m *MockApplicationStore) ListByUserID(ctx context.Context, userID string) ([]models.VendorApplication, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.VendorApplication), args.Error(1)
}

func (m *MockApplicationStore) UpdateStatusWithTx(ctx context.Context, tx *database.Transaction, update *models.StatusUpdate) error {
	args := m.Called(ctx, tx, update)
	return args.Error(0)
}

// MockHistoryStore is a mock implementation of the approval history store
type MockHistoryStore struct {
	mock.Mock
}

func (m *MockHistoryStore) CreateWithTx(ctx context.Context, tx *database.Transaction, record *models.ApprovalHistoryRecord) error {
	args := m.Called(ctx, tx, record)
	return args.Error(0)
}

func (m *MockHistoryStore) ListByApplicationID(ctx context.Context, applicationID string) ([]models.ApprovalHistoryRecord, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ApprovalHistoryRecord), args.Error(1)
}

// MockEmployeeStore is a mock implementation of the employee store
type MockEmployeeStore struct {
	mock.Mock
}

func (m *MockEmployeeStore) GetByID(ctx context.Context, employeeID string) (*models.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Employee), args.Error(1)
}

// MockEmployeeLookup is a mock implementation of the employee directory
type MockEmployeeLookup struct {
	mock.Mock
}

func (m *MockEmployeeLookup) GetEmployee(ctx context.Context, employeeID string) (*models.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Employee), args.Error(1)
}
