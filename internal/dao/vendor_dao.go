package dao

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vendorhub/vendor-approval-api/internal/database"
	"github.com/vendorhub/vendor-approval-api/internal/models"
)

const vendorColumns = `
	id, application_id, user_id, partner_type, business_name, business_type,
	contact_person, contact_mobile, contact_email, address_line1, city, state,
	pincode, is_active, verification_status, created_at`

// VendorDAO handles database operations for provisioned vendors
type VendorDAO struct {
	db *database.DB
}

// NewVendorDAO creates a new VendorDAO instance
func NewVendorDAO(db *database.DB) *VendorDAO {
	return &VendorDAO{db: db}
}

// CreateWithTx provisions a vendor using a transaction. application_id is unique,
// so a second insert for the same application fails and rolls the transaction back.
func (dao *VendorDAO) CreateWithTx(ctx context.Context, tx *database.Transaction, vendor *models.Vendor) error {
	query := tx.Rebind(`
		INSERT INTO vendors (` + vendorColumns + `
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)

	_, err := tx.ExecContext(
		ctx,
		query,
		vendor.ID,
		vendor.ApplicationID,
		vendor.UserID,
		vendor.PartnerType,
		vendor.BusinessName,
		vendor.BusinessType,
		vendor.ContactPerson,
		vendor.ContactMobile,
		vendor.ContactEmail,
		vendor.AddressLine1,
		vendor.City,
		vendor.State,
		vendor.Pincode,
		vendor.IsActive,
		vendor.VerificationStatus,
		vendor.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create vendor with transaction: %w", database.WrapTimeout(err))
	}

	return nil
}

// GetByApplicationID retrieves the vendor provisioned from an application
func (dao *VendorDAO) GetByApplicationID(ctx context.Context, applicationID string) (*models.Vendor, error) {
	ctx, cancel := dao.db.WithTimeout(ctx)
	defer cancel()

	query := dao.db.Rebind(`SELECT ` + vendorColumns + ` FROM vendors WHERE application_id = ?`)

	var vendor models.Vendor
	if err := dao.db.GetContext(ctx, &vendor, query, applicationID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("vendor for application %s: %w", applicationID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get vendor: %w", database.WrapTimeout(err))
	}

	return &vendor, nil
}
