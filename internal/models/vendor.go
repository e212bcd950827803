package models

import (
	"time"
)

// VerificationStatusVerified marks a vendor provisioned through the approval workflow
const VerificationStatusVerified = "verified"

// Vendor represents the vendors table
type Vendor struct {
	ID                 string    `db:"id" json:"id"`
	ApplicationID      string    `db:"application_id" json:"application_id"`
	UserID             string    `db:"user_id" json:"user_id"`
	PartnerType        string    `db:"partner_type" json:"partner_type"`
	BusinessName       string    `db:"business_name" json:"business_name"`
	BusinessType       string    `db:"business_type" json:"business_type"`
	ContactPerson      string    `db:"contact_person" json:"contact_person"`
	ContactMobile      string    `db:"contact_mobile" json:"contact_mobile"`
	ContactEmail       string    `db:"contact_email" json:"contact_email"`
	AddressLine1       string    `db:"address_line1" json:"address_line1"`
	City               string    `db:"city" json:"city"`
	State              string    `db:"state" json:"state"`
	Pincode            string    `db:"pincode" json:"pincode"`
	IsActive           bool      `db:"is_active" json:"is_active"`
	VerificationStatus string    `db:"verification_status" json:"verification_status"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
}
