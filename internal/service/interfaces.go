package service

import (
	"context"

	"github.com/vendorhub/vendor-approval-api/internal/database"
	"github.com/vendorhub/vendor-approval-api/internal/models"
)

// ApplicationStore is the persistence contract for vendor applications
type ApplicationStore interface {
	Create(ctx context.Context, app *models.VendorApplication) error
	GetByID(ctx context.Context, applicationID string) (*models.VendorApplication, error)
	List(ctx context.Context) ([]models.VendorApplication, error)
	ListByStatuses(ctx context.Context, statuses []models.ApplicationStatus) ([]models.VendorApplication, error)
	ListByUserID(ctx context.Context, userID string) ([]models.VendorApplication, error)
	UpdateStatusWithTx(ctx context.Context, tx *database.Transaction, update *models.StatusUpdate) error
}

// HistoryStore is the persistence contract for the approval history ledger
type HistoryStore interface {
	CreateWithTx(ctx context.Context, tx *database.Transaction, record *models.ApprovalHistoryRecord) error
	ListByApplicationID(ctx context.Context, applicationID string) ([]models.ApprovalHistoryRecord, error)
}

// VendorStore is the persistence contract for provisioned vendors
type VendorStore interface {
	CreateWithTx(ctx context.Context, tx *database.Transaction, vendor *models.Vendor) error
	GetByApplicationID(ctx context.Context, applicationID string) (*models.Vendor, error)
}

// EmployeeStore reads employees from the database
type EmployeeStore interface {
	GetByID(ctx context.Context, employeeID string) (*models.Employee, error)
}

// EmployeeLookup resolves actors to employees
type EmployeeLookup interface {
	GetEmployee(ctx context.Context, employeeID string) (*models.Employee, error)
}

// TxRunner runs a unit of work inside one database transaction
type TxRunner interface {
	WithTransaction(ctx context.Context, fn func(*database.Transaction) error) error
}
