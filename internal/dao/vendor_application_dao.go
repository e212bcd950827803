package dao

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/vendorhub/vendor-approval-api/internal/database"
	"github.com/vendorhub/vendor-approval-api/internal/models"
)

const applicationColumns = `
	id, user_id, business_name, business_type, contact_person, contact_mobile,
	contact_email, business_address, application_data, application_status,
	current_approval_stage, reviewed_by, reviewed_at, review_note_kind, review_note,
	created_at, updated_at`

// VendorApplicationDAO handles database operations for vendor applications
type VendorApplicationDAO struct {
	db *database.DB
}

// NewVendorApplicationDAO creates a new VendorApplicationDAO instance
func NewVendorApplicationDAO(db *database.DB) *VendorApplicationDAO {
	return &VendorApplicationDAO{db: db}
}

// Create inserts a new vendor application
func (dao *VendorApplicationDAO) Create(ctx context.Context, app *models.VendorApplication) error {
	ctx, cancel := dao.db.WithTimeout(ctx)
	defer cancel()

	query := dao.db.Rebind(`
		INSERT INTO vendor_applications (` + applicationColumns + `
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)

	_, err := dao.db.ExecContext(
		ctx,
		query,
		app.ID,
		app.UserID,
		app.BusinessName,
		app.BusinessType,
		app.ContactPerson,
		app.ContactMobile,
		app.ContactEmail,
		app.BusinessAddress,
		app.ApplicationData,
		app.ApplicationStatus,
		app.CurrentApprovalStage,
		app.ReviewedBy,
		app.ReviewedAt,
		app.ReviewNoteKind,
		app.ReviewNoteText,
		app.CreatedAt,
		app.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create vendor application: %w", database.WrapTimeout(err))
	}

	return nil
}

// GetByID retrieves a vendor application by ID
func (dao *VendorApplicationDAO) GetByID(ctx context.Context, applicationID string) (*models.VendorApplication, error) {
	ctx, cancel := dao.db.WithTimeout(ctx)
	defer cancel()

	query := dao.db.Rebind(`SELECT ` + applicationColumns + ` FROM vendor_applications WHERE id = ?`)

	var app models.VendorApplication
	if err := dao.db.GetContext(ctx, &app, query, applicationID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("vendor application %s: %w", applicationID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get vendor application: %w", database.WrapTimeout(err))
	}

	return &app, nil
}

// List retrieves every vendor application, newest first
func (dao *VendorApplicationDAO) List(ctx context.Context) ([]models.VendorApplication, error) {
	ctx, cancel := dao.db.WithTimeout(ctx)
	defer cancel()

	query := `SELECT ` + applicationColumns + ` FROM vendor_applications ORDER BY created_at DESC`

	apps := []models.VendorApplication{}
	if err := dao.db.SelectContext(ctx, &apps, query); err != nil {
		return nil, fmt.Errorf("failed to list vendor applications: %w", database.WrapTimeout(err))
	}

	return apps, nil
}

// ListByStatuses retrieves vendor applications whose status is in statuses, newest first
func (dao *VendorApplicationDAO) ListByStatuses(ctx context.Context, statuses []models.ApplicationStatus) ([]models.VendorApplication, error) {
	apps := []models.VendorApplication{}
	if len(statuses) == 0 {
		return apps, nil
	}

	ctx, cancel := dao.db.WithTimeout(ctx)
	defer cancel()

	query, args, err := sqlx.In(`SELECT `+applicationColumns+`
		FROM vendor_applications
		WHERE application_status IN (?)
		ORDER BY created_at DESC`, statuses)
	if err != nil {
		return nil, fmt.Errorf("failed to build status filter: %w", err)
	}

	if err := dao.db.SelectContext(ctx, &apps, dao.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list vendor applications by status: %w", database.WrapTimeout(err))
	}

	return apps, nil
}

// ListByUserID retrieves the applications owned by one applicant, newest first
func (dao *VendorApplicationDAO) ListByUserID(ctx context.Context, userID string) ([]models.VendorApplication, error) {
	ctx, cancel := dao.db.WithTimeout(ctx)
	defer cancel()

	query := dao.db.Rebind(`SELECT ` + applicationColumns + `
		FROM vendor_applications
		WHERE user_id = ?
		ORDER BY created_at DESC`)

	apps := []models.VendorApplication{}
	if err := dao.db.SelectContext(ctx, &apps, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list vendor applications by user: %w", database.WrapTimeout(err))
	}

	return apps, nil
}

// UpdateStatusWithTx moves an application to a new status only if it is still in the
// expected status. A miss returns ErrStatusConflict.
func (dao *VendorApplicationDAO) UpdateStatusWithTx(ctx context.Context, tx *database.Transaction, update *models.StatusUpdate) error {
	var noteKind, noteText *string
	if update.Note != nil {
		kind := string(update.Note.Kind)
		noteKind, noteText = &kind, &update.Note.Text
	}

	query := tx.Rebind(`
		UPDATE vendor_applications
		SET application_status = ?, current_approval_stage = ?,
		    reviewed_by = COALESCE(?, reviewed_by), reviewed_at = COALESCE(?, reviewed_at),
		    review_note_kind = ?, review_note = ?, updated_at = ?
		WHERE id = ? AND application_status = ?
	`)

	result, err := tx.ExecContext(
		ctx,
		query,
		update.NewStatus,
		update.NewStage,
		update.ReviewedBy,
		update.ReviewedAt,
		noteKind,
		noteText,
		update.UpdatedAt,
		update.ApplicationID,
		update.ExpectedStatus,
	)
	if err != nil {
		return fmt.Errorf("failed to update application status: %w", database.WrapTimeout(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("application %s no longer %s: %w", update.ApplicationID, update.ExpectedStatus, ErrStatusConflict)
	}

	return nil
}
