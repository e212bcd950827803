package models

import (
	"time"
)

// ApplicationStatus is the authoritative workflow state of a vendor application
type ApplicationStatus string

const (
	StatusPending                ApplicationStatus = "pending"
	StatusFOReview               ApplicationStatus = "fo_review"
	StatusManagerReview          ApplicationStatus = "manager_review"
	StatusDirectorReview         ApplicationStatus = "director_review"
	StatusAdminReview            ApplicationStatus = "admin_review"
	StatusApproved               ApplicationStatus = "approved"
	StatusRejected               ApplicationStatus = "rejected"
	StatusAdditionalInfoRequired ApplicationStatus = "additional_info_required"
	StatusOnHold                 ApplicationStatus = "on_hold"
)

// AllStatuses lists every known application status
var AllStatuses = []ApplicationStatus{
	StatusPending,
	StatusFOReview,
	StatusManagerReview,
	StatusDirectorReview,
	StatusAdminReview,
	StatusApproved,
	StatusRejected,
	StatusAdditionalInfoRequired,
	StatusOnHold,
}

// IsValid reports whether s is a known status
func (s ApplicationStatus) IsValid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// BusinessType classifies the applicant's business
type BusinessType string

const (
	BusinessTypeSpa            BusinessType = "spa"
	BusinessTypeSalon          BusinessType = "salon"
	BusinessTypeHomeService    BusinessType = "home_service"
	BusinessTypeHotelSpa       BusinessType = "hotel_spa"
	BusinessTypeWellnessCenter BusinessType = "wellness_center"
	BusinessTypeWellness       BusinessType = "wellness"
	BusinessTypeBeautician     BusinessType = "beautician"
)

// BusinessTypes lists accepted business types
var BusinessTypes = []BusinessType{
	BusinessTypeSpa,
	BusinessTypeSalon,
	BusinessTypeHomeService,
	BusinessTypeHotelSpa,
	BusinessTypeWellnessCenter,
	BusinessTypeWellness,
	BusinessTypeBeautician,
}

// PartnerType classifies the commercial relationship with the marketplace
type PartnerType string

const (
	PartnerTypeFranchise   PartnerType = "FRANCHISE"
	PartnerTypeAssociation PartnerType = "ASSOCIATION"
	PartnerTypeAggregator  PartnerType = "AGGREGATOR"
	PartnerTypeIndependent PartnerType = "INDEPENDENT"
)

// PartnerTypes lists accepted partner types
var PartnerTypes = []PartnerType{
	PartnerTypeFranchise,
	PartnerTypeAssociation,
	PartnerTypeAggregator,
	PartnerTypeIndependent,
}

// VendorApplication represents the vendor_applications table
type VendorApplication struct {
	ID                   string            `db:"id" json:"id"`
	UserID               string            `db:"user_id" json:"user_id"`
	BusinessName         string            `db:"business_name" json:"business_name"`
	BusinessType         BusinessType      `db:"business_type" json:"business_type"`
	ContactPerson        string            `db:"contact_person" json:"contact_person"`
	ContactMobile        string            `db:"contact_mobile" json:"contact_mobile"`
	ContactEmail         string            `db:"contact_email" json:"contact_email"`
	BusinessAddress      JSON              `db:"business_address" json:"business_address"`
	ApplicationData      JSON              `db:"application_data" json:"application_data"`
	ApplicationStatus    ApplicationStatus `db:"application_status" json:"application_status"`
	CurrentApprovalStage int               `db:"current_approval_stage" json:"current_approval_stage"`
	ReviewedBy           *string           `db:"reviewed_by" json:"reviewed_by,omitempty"`
	ReviewedAt           *time.Time        `db:"reviewed_at" json:"reviewed_at,omitempty"`
	ReviewNoteKind       *string           `db:"review_note_kind" json:"review_note_kind,omitempty"`
	ReviewNoteText       *string           `db:"review_note" json:"review_note,omitempty"`
	CreatedAt            time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time         `db:"updated_at" json:"updated_at"`
}

// ReviewNote returns the tagged note stored on the application, or nil when none is set
func (a *VendorApplication) ReviewNote() *ReviewNote {
	if a.ReviewNoteKind == nil || a.ReviewNoteText == nil {
		return nil
	}
	return &ReviewNote{Kind: NoteKind(*a.ReviewNoteKind), Text: *a.ReviewNoteText}
}

// BusinessAddress is the address document stored in business_address
type BusinessAddress struct {
	Line1     string   `json:"line1"`
	Line2     *string  `json:"line2,omitempty"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	Pincode   string   `json:"pincode"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// ApplicationData is the extended facts document stored in application_data
type ApplicationData struct {
	ApplicationNumber         string      `json:"application_number,omitempty"`
	PartnerType               PartnerType `json:"partner_type,omitempty"`
	GSTNumber                 *string     `json:"gst_number,omitempty"`
	PANNumber                 *string     `json:"pan_number,omitempty"`
	YearsInBusiness           *int        `json:"years_in_business,omitempty"`
	NumberOfStaff             *int        `json:"number_of_staff,omitempty"`
	Description               *string     `json:"description,omitempty"`
	Website                   *string     `json:"website,omitempty"`
	FranchiseFeePaid          *bool       `json:"franchise_fee_paid,omitempty"`
	FranchisePaymentReference *string     `json:"franchise_payment_reference,omitempty"`
	IsSelfRegistered          *bool       `json:"is_self_registered,omitempty"`
}

// StatusUpdate describes a conditional status change of one application
type StatusUpdate struct {
	ApplicationID  string
	ExpectedStatus ApplicationStatus
	NewStatus      ApplicationStatus
	NewStage       int
	ReviewedBy     *string
	ReviewedAt     *time.Time
	Note           *ReviewNote
	UpdatedAt      time.Time
}

// ApplicationSubmitRequest is the payload of an application submission
type ApplicationSubmitRequest struct {
	BusinessName    string          `json:"business_name" binding:"required"`
	BusinessType    BusinessType    `json:"business_type" binding:"required"`
	ContactPerson   string          `json:"contact_person" binding:"required"`
	ContactMobile   string          `json:"contact_mobile" binding:"required"`
	ContactEmail    string          `json:"contact_email" binding:"required,email"`
	BusinessAddress BusinessAddress `json:"business_address"`
	ApplicationData ApplicationData `json:"application_data"`
}

// ApplicationView is the flattened read-time projection of a VendorApplication
type ApplicationView struct {
	ID                        string            `json:"id"`
	UserID                    string            `json:"user_id"`
	BusinessName              string            `json:"business_name"`
	BusinessType              BusinessType      `json:"business_type"`
	ContactPerson             string            `json:"contact_person"`
	ContactMobile             string            `json:"contact_mobile"`
	ContactEmail              string            `json:"contact_email"`
	AddressLine1              string            `json:"address_line1"`
	AddressLine2              string            `json:"address_line2"`
	City                      string            `json:"city"`
	State                     string            `json:"state"`
	Pincode                   string            `json:"pincode"`
	Latitude                  *float64          `json:"latitude,omitempty"`
	Longitude                 *float64          `json:"longitude,omitempty"`
	ApplicationNumber         string            `json:"application_number"`
	PartnerType               string            `json:"partner_type"`
	GSTNumber                 *string           `json:"gst_number,omitempty"`
	PANNumber                 *string           `json:"pan_number,omitempty"`
	YearsInBusiness           *int              `json:"years_in_business,omitempty"`
	NumberOfStaff             *int              `json:"number_of_staff,omitempty"`
	Description               *string           `json:"description,omitempty"`
	Website                   *string           `json:"website,omitempty"`
	FranchiseFeePaid          *bool             `json:"franchise_fee_paid,omitempty"`
	FranchisePaymentReference *string           `json:"franchise_payment_reference,omitempty"`
	IsSelfRegistered          *bool             `json:"is_self_registered,omitempty"`
	ApplicationStatus         ApplicationStatus `json:"application_status"`
	Status                    ApplicationStatus `json:"status"`
	CurrentApprovalStage      int               `json:"current_approval_stage"`
	ReviewedBy                *string           `json:"reviewed_by,omitempty"`
	ReviewedAt                *time.Time        `json:"reviewed_at,omitempty"`
	RejectionReason           *string           `json:"rejection_reason,omitempty"`
	ReviewNote                *ReviewNote       `json:"review_note,omitempty"`
	AppliedDate               time.Time         `json:"applied_date"`
	CreatedAt                 time.Time         `json:"created_at"`
	UpdatedAt                 time.Time         `json:"updated_at"`
}
