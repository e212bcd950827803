package service

import (
	"strings"

	"github.com/vendorhub/vendor-approval-api/internal/models"
)

// NotAvailable is shown for address, partner and application number fields that were never supplied
const NotAvailable = "N/A"

// ProjectApplication flattens a stored application into the view returned to callers.
// Unreadable JSON documents are treated as missing.
func ProjectApplication(app *models.VendorApplication) models.ApplicationView {
	var address models.BusinessAddress
	if err := app.BusinessAddress.Decode(&address); err != nil {
		address = models.BusinessAddress{}
	}
	var data models.ApplicationData
	if err := app.ApplicationData.Decode(&data); err != nil {
		data = models.ApplicationData{}
	}

	view := models.ApplicationView{
		ID:                        app.ID,
		UserID:                    app.UserID,
		BusinessName:              app.BusinessName,
		BusinessType:              app.BusinessType,
		ContactPerson:             app.ContactPerson,
		ContactMobile:             app.ContactMobile,
		ContactEmail:              app.ContactEmail,
		AddressLine1:              orNotAvailable(address.Line1),
		City:                      orNotAvailable(address.City),
		State:                     orNotAvailable(address.State),
		Pincode:                   orNotAvailable(address.Pincode),
		Latitude:                  address.Latitude,
		Longitude:                 address.Longitude,
		ApplicationNumber:         orNotAvailable(data.ApplicationNumber),
		PartnerType:               orNotAvailable(string(data.PartnerType)),
		GSTNumber:                 data.GSTNumber,
		PANNumber:                 data.PANNumber,
		YearsInBusiness:           data.YearsInBusiness,
		NumberOfStaff:             data.NumberOfStaff,
		Description:               data.Description,
		Website:                   data.Website,
		FranchiseFeePaid:          data.FranchiseFeePaid,
		FranchisePaymentReference: data.FranchisePaymentReference,
		IsSelfRegistered:          data.IsSelfRegistered,
		ApplicationStatus:         app.ApplicationStatus,
		Status:                    app.ApplicationStatus,
		CurrentApprovalStage:      app.CurrentApprovalStage,
		ReviewedBy:                app.ReviewedBy,
		ReviewedAt:                app.ReviewedAt,
		ReviewNote:                app.ReviewNote(),
		AppliedDate:               app.CreatedAt,
		CreatedAt:                 app.CreatedAt,
		UpdatedAt:                 app.UpdatedAt,
	}

	if address.Line2 != nil {
		view.AddressLine2 = *address.Line2
	}
	if note := view.ReviewNote; note != nil && note.Kind == models.NoteKindRejected {
		reason := note.Text
		view.RejectionReason = &reason
	}

	return view
}

// ProjectApplications flattens a list of applications, keeping order
func ProjectApplications(apps []models.VendorApplication) []models.ApplicationView {
	views := make([]models.ApplicationView, 0, len(apps))
	for i := range apps {
		views = append(views, ProjectApplication(&apps[i]))
	}
	return views
}

func orNotAvailable(value string) string {
	if strings.TrimSpace(value) == "" {
		return NotAvailable
	}
	return value
}
