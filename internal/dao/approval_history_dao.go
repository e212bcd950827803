package dao

import (
	"context"
	"fmt"

	"github.com/vendorhub/vendor-approval-api/internal/database"
	"github.com/vendorhub/vendor-approval-api/internal/models"
)

// ApprovalHistoryDAO handles database operations for the approval history ledger.
// Rows are only ever inserted and read.
type ApprovalHistoryDAO struct {
	db *database.DB
}

// NewApprovalHistoryDAO creates a new ApprovalHistoryDAO instance
func NewApprovalHistoryDAO(db *database.DB) *ApprovalHistoryDAO {
	return &ApprovalHistoryDAO{db: db}
}

// CreateWithTx appends a history record using a transaction
func (dao *ApprovalHistoryDAO) CreateWithTx(ctx context.Context, tx *database.Transaction, record *models.ApprovalHistoryRecord) error {
	query := tx.Rebind(`
		INSERT INTO vendor_approval_history (
			id, application_id, approved_by, approval_stage, action,
			comments, document_verification, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)

	_, err := tx.ExecContext(
		ctx,
		query,
		record.ID,
		record.ApplicationID,
		record.ApprovedBy,
		record.ApprovalStage,
		record.Action,
		record.Comments,
		record.DocumentVerification,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create approval history with transaction: %w", database.WrapTimeout(err))
	}

	return nil
}

// ListByApplicationID retrieves all history records of an application, newest first
func (dao *ApprovalHistoryDAO) ListByApplicationID(ctx context.Context, applicationID string) ([]models.ApprovalHistoryRecord, error) {
	ctx, cancel := dao.db.WithTimeout(ctx)
	defer cancel()

	query := dao.db.Rebind(`
		SELECT id, application_id, approved_by, approval_stage, action,
		       comments, document_verification, created_at
		FROM vendor_approval_history
		WHERE application_id = ?
		ORDER BY created_at DESC, id DESC
	`)

	records := []models.ApprovalHistoryRecord{}
	if err := dao.db.SelectContext(ctx, &records, query, applicationID); err != nil {
		return nil, fmt.Errorf("failed to get approval history: %w", database.WrapTimeout(err))
	}

	return records, nil
}
