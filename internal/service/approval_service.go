package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vendorhub/vendor-approval-api/internal/dao"
	"github.com/vendorhub/vendor-approval-api/internal/database"
	"github.com/vendorhub/vendor-approval-api/internal/metrics"
	"github.com/vendorhub/vendor-approval-api/internal/models"
	"github.com/vendorhub/vendor-approval-api/internal/serviceerror"
	"github.com/vendorhub/vendor-approval-api/internal/workflow"
	"github.com/vendorhub/vendor-approval-api/pkg/utils"
)

// ApprovalService is the public operation set of the vendor approval workflow
type ApprovalService struct {
	applications ApplicationStore
	history      *HistoryService
	vendors      VendorStore
	reviewers    EmployeeLookup
	tx           TxRunner
	validator    *SubmissionValidator
	logger       *logrus.Logger
	now          func() time.Time
}

// NewApprovalService creates a new approval service instance. reviewers decides
// authorization and must read current employee flags, not a cache.
func NewApprovalService(
	applications ApplicationStore,
	history *HistoryService,
	vendors VendorStore,
	reviewers EmployeeLookup,
	tx TxRunner,
	validator *SubmissionValidator,
	logger *logrus.Logger,
) *ApprovalService {
	return &ApprovalService{
		applications: applications,
		history:      history,
		vendors:      vendors,
		reviewers:    reviewers,
		tx:           tx,
		validator:    validator,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// SubmitApplication records a new application owned by actorID in pending, stage 1
func (s *ApprovalService) SubmitApplication(ctx context.Context, actorID string, request *models.ApplicationSubmitRequest) (*models.ApplicationView, *serviceerror.ServiceError) {
	if actorID == "" {
		return nil, serviceerror.CustomServiceError(serviceerror.Unauthenticated, "Sign in to submit an application")
	}
	if err := s.validator.Validate(request); err != nil {
		return nil, serviceerror.CustomServiceError(serviceerror.ValidationError, err.Error())
	}

	now := s.now()
	data := request.ApplicationData
	if strings.TrimSpace(data.ApplicationNumber) == "" {
		data.ApplicationNumber = utils.GenerateApplicationNumber(now)
	}

	address, err := models.NewJSON(request.BusinessAddress)
	if err != nil {
		return nil, serviceerror.CustomServiceError(serviceerror.ValidationError, "business address could not be encoded")
	}
	extra, err := models.NewJSON(data)
	if err != nil {
		return nil, serviceerror.CustomServiceError(serviceerror.ValidationError, "application data could not be encoded")
	}

	app := &models.VendorApplication{
		ID:                   utils.GenerateID(),
		UserID:               actorID,
		BusinessName:         strings.TrimSpace(request.BusinessName),
		BusinessType:         request.BusinessType,
		ContactPerson:        strings.TrimSpace(request.ContactPerson),
		ContactMobile:        request.ContactMobile,
		ContactEmail:         request.ContactEmail,
		BusinessAddress:      address,
		ApplicationData:      extra,
		ApplicationStatus:    models.StatusPending,
		CurrentApprovalStage: workflow.FirstStage,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := s.applications.Create(ctx, app); err != nil {
		return nil, s.storeError(err, "submit application")
	}

	metrics.SubmissionsTotal.WithLabelValues(string(app.BusinessType)).Inc()
	s.logger.WithFields(logrus.Fields{
		"application_id": app.ID,
		"actor_id":       actorID,
		"business_type":  app.BusinessType,
	}).Info("Vendor application submitted")

	view := ProjectApplication(app)
	return &view, nil
}

// ListAllApplications returns every application, optionally filtered by status.
// Only admin levels may call it.
func (s *ApprovalService) ListAllApplications(ctx context.Context, level int, status string) ([]models.ApplicationView, *serviceerror.ServiceError) {
	if !workflow.CanViewAll(level) {
		return nil, serviceerror.CustomServiceError(serviceerror.Unauthorized, "Only admin reviewers can list all applications")
	}

	var (
		apps []models.VendorApplication
		err  error
	)
	if status != "" {
		parsed, parseErr := workflow.ParseStatus(status)
		if parseErr != nil {
			return nil, serviceerror.CustomServiceError(serviceerror.ValidationError, parseErr.Error())
		}
		apps, err = s.applications.ListByStatuses(ctx, []models.ApplicationStatus{parsed})
	} else {
		apps, err = s.applications.List(ctx)
	}
	if err != nil {
		return nil, s.storeError(err, "list applications")
	}

	return ProjectApplications(apps), nil
}

// ListMyApplications returns the applications owned by actorID
func (s *ApprovalService) ListMyApplications(ctx context.Context, actorID string) ([]models.ApplicationView, *serviceerror.ServiceError) {
	if actorID == "" {
		return nil, serviceerror.CustomServiceError(serviceerror.Unauthenticated, "Sign in to view your applications")
	}

	apps, err := s.applications.ListByUserID(ctx, actorID)
	if err != nil {
		return nil, s.storeError(err, "list my applications")
	}

	return ProjectApplications(apps), nil
}

// ListForLevel returns the review queue of a hierarchy level. Admin levels see everything.
func (s *ApprovalService) ListForLevel(ctx context.Context, level int) ([]models.ApplicationView, *serviceerror.ServiceError) {
	if !workflow.IsValidLevel(level) && !workflow.CanViewAll(level) {
		return nil, serviceerror.CustomServiceError(serviceerror.ValidationError, fmt.Sprintf("unknown hierarchy level %d", level))
	}

	var (
		apps []models.VendorApplication
		err  error
	)
	if workflow.CanViewAll(level) {
		apps, err = s.applications.List(ctx)
	} else {
		apps, err = s.applications.ListByStatuses(ctx, workflow.VisibleStatuses(level))
	}
	if err != nil {
		return nil, s.storeError(err, "list review queue")
	}

	return ProjectApplications(apps), nil
}

// ReviewerLevel resolves the hierarchy level of an active reviewer
func (s *ApprovalService) ReviewerLevel(ctx context.Context, actorID string) (int, *serviceerror.ServiceError) {
	reviewer, svcErr := s.resolveReviewer(ctx, actorID)
	if svcErr != nil {
		return 0, svcErr
	}
	return reviewer.HierarchyLevel, nil
}

// GetApplication returns one application to its owner or to any active reviewer
func (s *ApprovalService) GetApplication(ctx context.Context, actorID, applicationID string) (*models.ApplicationView, *serviceerror.ServiceError) {
	app, svcErr := s.loadReadable(ctx, actorID, applicationID)
	if svcErr != nil {
		return nil, svcErr
	}
	view := ProjectApplication(app)
	return &view, nil
}

// GetApprovalHistory returns the decisions on an application, newest first
func (s *ApprovalService) GetApprovalHistory(ctx context.Context, actorID, applicationID string) ([]models.HistoryEntry, *serviceerror.ServiceError) {
	if _, svcErr := s.loadReadable(ctx, actorID, applicationID); svcErr != nil {
		return nil, svcErr
	}

	entries, err := s.history.ListFor(ctx, applicationID)
	if err != nil {
		return nil, s.storeError(err, "get approval history")
	}
	return entries, nil
}

// GetProvisionedVendor returns the vendor created when the application was approved
func (s *ApprovalService) GetProvisionedVendor(ctx context.Context, actorID, applicationID string) (*models.Vendor, *serviceerror.ServiceError) {
	if _, svcErr := s.loadReadable(ctx, actorID, applicationID); svcErr != nil {
		return nil, svcErr
	}

	vendor, err := s.vendors.GetByApplicationID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return nil, serviceerror.CustomServiceError(serviceerror.NotFound, "No vendor has been provisioned for this application")
		}
		return nil, s.storeError(err, "get provisioned vendor")
	}
	return vendor, nil
}

// Approve advances the application to the next review stage, provisioning the
// vendor when the final stage is approved
func (s *ApprovalService) Approve(ctx context.Context, applicationID, actorID, comment string, documents map[string]bool) (*models.ApplicationView, *serviceerror.ServiceError) {
	return s.transition(ctx, transitionInput{
		action:        workflow.ActionApprove,
		applicationID: applicationID,
		actorID:       actorID,
		comment:       comment,
		documents:     documents,
	})
}

// Reject ends the application. reason is required and stored verbatim.
func (s *ApprovalService) Reject(ctx context.Context, applicationID, actorID, reason string) (*models.ApplicationView, *serviceerror.ServiceError) {
	if strings.TrimSpace(reason) == "" {
		return nil, serviceerror.CustomServiceError(serviceerror.ValidationError, "A rejection reason is required")
	}
	return s.transition(ctx, transitionInput{
		action:        workflow.ActionReject,
		applicationID: applicationID,
		actorID:       actorID,
		comment:       reason,
		note:          models.RejectedNote(reason),
	})
}

// RequestAdditionalInfo asks the applicant for more information. note is required.
func (s *ApprovalService) RequestAdditionalInfo(ctx context.Context, applicationID, actorID, note string) (*models.ApplicationView, *serviceerror.ServiceError) {
	if strings.TrimSpace(note) == "" {
		return nil, serviceerror.CustomServiceError(serviceerror.ValidationError, "A note describing the missing information is required")
	}
	return s.transition(ctx, transitionInput{
		action:        workflow.ActionRequestInfo,
		applicationID: applicationID,
		actorID:       actorID,
		comment:       note,
		note:          models.InfoRequiredNote(note),
	})
}

// PutOnHold pauses review of the application
func (s *ApprovalService) PutOnHold(ctx context.Context, applicationID, actorID, note string) (*models.ApplicationView, *serviceerror.ServiceError) {
	input := transitionInput{
		action:        workflow.ActionHold,
		applicationID: applicationID,
		actorID:       actorID,
		comment:       note,
	}
	if strings.TrimSpace(note) != "" {
		input.note = models.GeneralNote(note)
	}
	return s.transition(ctx, input)
}

// Resume returns a held application to the review stage it was paused at
func (s *ApprovalService) Resume(ctx context.Context, applicationID, actorID, comment string) (*models.ApplicationView, *serviceerror.ServiceError) {
	return s.transition(ctx, transitionInput{
		action:        workflow.ActionResume,
		applicationID: applicationID,
		actorID:       actorID,
		comment:       comment,
	})
}

// Resubmit lets the owning applicant send an application back to review after
// supplying the requested information
func (s *ApprovalService) Resubmit(ctx context.Context, applicationID, applicantID, comment string) (*models.ApplicationView, *serviceerror.ServiceError) {
	return s.transition(ctx, transitionInput{
		action:        workflow.ActionResubmit,
		applicationID: applicationID,
		actorID:       applicantID,
		comment:       comment,
		byApplicant:   true,
	})
}

type transitionInput struct {
	action        workflow.Action
	applicationID string
	actorID       string
	comment       string
	note          *models.ReviewNote
	documents     map[string]bool
	byApplicant   bool
}

func (s *ApprovalService) transition(ctx context.Context, in transitionInput) (*models.ApplicationView, *serviceerror.ServiceError) {
	logger := s.logger.WithFields(logrus.Fields{
		"application_id": in.applicationID,
		"actor_id":       in.actorID,
		"action":         in.action,
	})

	view, svcErr := s.applyTransition(ctx, in, logger)
	metrics.TransitionsTotal.WithLabelValues(string(in.action), transitionOutcome(svcErr)).Inc()
	if svcErr != nil {
		logger.WithField("error_code", svcErr.Code).Info("Application transition refused")
	}
	return view, svcErr
}

func (s *ApprovalService) applyTransition(ctx context.Context, in transitionInput, logger *logrus.Entry) (*models.ApplicationView, *serviceerror.ServiceError) {
	if in.actorID == "" {
		return nil, serviceerror.CustomServiceError(serviceerror.Unauthenticated, "Sign in to act on applications")
	}
	if in.applicationID == "" {
		return nil, serviceerror.CustomServiceError(serviceerror.ValidationError, "An application id is required")
	}

	app, svcErr := s.load(ctx, in.applicationID)
	if svcErr != nil {
		return nil, svcErr
	}

	if workflow.IsTerminal(app.ApplicationStatus) {
		return nil, serviceerror.CustomServiceError(serviceerror.InvalidTransition,
			fmt.Sprintf("The application is already %s", app.ApplicationStatus))
	}

	var reviewedBy *string
	if in.byApplicant {
		if app.UserID != in.actorID {
			return nil, serviceerror.CustomServiceError(serviceerror.Unauthorized, "Only the applicant can resubmit this application")
		}
	} else {
		reviewer, svcErr := s.resolveReviewer(ctx, in.actorID)
		if svcErr != nil {
			return nil, svcErr
		}
		if !workflow.Authorize(reviewer.HierarchyLevel, in.action, app.ApplicationStatus, app.CurrentApprovalStage) {
			return nil, serviceerror.CustomServiceError(serviceerror.Unauthorized,
				fmt.Sprintf("Level %d reviewers cannot act on applications in %s", reviewer.HierarchyLevel, app.ApplicationStatus))
		}
		reviewedBy = &in.actorID
	}

	plan, err := workflow.Plan(in.action, app.ApplicationStatus, app.CurrentApprovalStage)
	if err != nil {
		return nil, serviceerror.CustomServiceError(serviceerror.InvalidTransition,
			fmt.Sprintf("Cannot %s an application that is %s", strings.ReplaceAll(string(in.action), "_", " "), app.ApplicationStatus))
	}

	now := s.now()
	update := &models.StatusUpdate{
		ApplicationID:  app.ID,
		ExpectedStatus: plan.From,
		NewStatus:      plan.To,
		NewStage:       plan.ToStage,
		Note:           in.note,
		UpdatedAt:      now,
	}
	if reviewedBy != nil {
		update.ReviewedBy = reviewedBy
		update.ReviewedAt = &now
	}

	record, err := s.buildHistoryRecord(app.ID, in, plan, now)
	if err != nil {
		return nil, serviceerror.CustomServiceError(serviceerror.ValidationError, "document verification could not be encoded")
	}

	var vendor *models.Vendor
	if plan.Final {
		vendor = buildVendor(app, now)
	}

	err = s.tx.WithTransaction(ctx, func(tx *database.Transaction) error {
		if err := s.applications.UpdateStatusWithTx(ctx, tx, update); err != nil {
			return err
		}
		if err := s.history.Append(ctx, tx, record); err != nil {
			return err
		}
		if vendor != nil {
			if err := s.vendors.CreateWithTx(ctx, tx, vendor); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, s.storeError(err, string(in.action))
	}

	applyUpdate(app, update)
	if vendor != nil {
		metrics.VendorsProvisionedTotal.Inc()
		logger.WithField("vendor_id", vendor.ID).Info("Vendor provisioned from approved application")
	}
	logger.WithFields(logrus.Fields{
		"from_status": plan.From,
		"to_status":   plan.To,
		"stage":       plan.ToStage,
	}).Info("Application transitioned")

	view := ProjectApplication(app)
	return &view, nil
}

func (s *ApprovalService) buildHistoryRecord(applicationID string, in transitionInput, plan workflow.Transition, now time.Time) (*models.ApprovalHistoryRecord, error) {
	record := &models.ApprovalHistoryRecord{
		ID:            utils.GenerateOrderedID(),
		ApplicationID: applicationID,
		ApprovedBy:    in.actorID,
		ApprovalStage: plan.FromStage,
		Action:        plan.HistoryAction(),
		CreatedAt:     now,
	}
	if in.comment != "" {
		comment := in.comment
		record.Comments = &comment
	}
	if len(in.documents) > 0 {
		documents, err := models.NewJSON(in.documents)
		if err != nil {
			return nil, err
		}
		record.DocumentVerification = documents
	}
	return record, nil
}

func buildVendor(app *models.VendorApplication, now time.Time) *models.Vendor {
	var address models.BusinessAddress
	_ = app.BusinessAddress.Decode(&address)
	var data models.ApplicationData
	_ = app.ApplicationData.Decode(&data)

	partnerType := data.PartnerType
	if partnerType == "" {
		partnerType = models.PartnerTypeIndependent
	}

	return &models.Vendor{
		ID:                 utils.GenerateID(),
		ApplicationID:      app.ID,
		UserID:             app.UserID,
		PartnerType:        string(partnerType),
		BusinessName:       app.BusinessName,
		BusinessType:       string(app.BusinessType),
		ContactPerson:      app.ContactPerson,
		ContactMobile:      app.ContactMobile,
		ContactEmail:       app.ContactEmail,
		AddressLine1:       address.Line1,
		City:               address.City,
		State:              address.State,
		Pincode:            address.Pincode,
		IsActive:           true,
		VerificationStatus: models.VerificationStatusVerified,
		CreatedAt:          now,
	}
}

func applyUpdate(app *models.VendorApplication, update *models.StatusUpdate) {
	app.ApplicationStatus = update.NewStatus
	app.CurrentApprovalStage = update.NewStage
	app.UpdatedAt = update.UpdatedAt
	if update.ReviewedBy != nil {
		app.ReviewedBy = update.ReviewedBy
		app.ReviewedAt = update.ReviewedAt
	}
	app.ReviewNoteKind, app.ReviewNoteText = nil, nil
	if update.Note != nil {
		kind, text := string(update.Note.Kind), update.Note.Text
		app.ReviewNoteKind, app.ReviewNoteText = &kind, &text
	}
}

func (s *ApprovalService) load(ctx context.Context, applicationID string) (*models.VendorApplication, *serviceerror.ServiceError) {
	app, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return nil, s.storeError(err, "load application")
	}
	return app, nil
}

// loadReadable loads an application visible to its owner or to any active reviewer
func (s *ApprovalService) loadReadable(ctx context.Context, actorID, applicationID string) (*models.VendorApplication, *serviceerror.ServiceError) {
	if actorID == "" {
		return nil, serviceerror.CustomServiceError(serviceerror.Unauthenticated, "Sign in to view applications")
	}

	app, svcErr := s.load(ctx, applicationID)
	if svcErr != nil {
		return nil, svcErr
	}
	if app.UserID == actorID {
		return app, nil
	}
	if _, svcErr := s.resolveReviewer(ctx, actorID); svcErr != nil {
		return nil, svcErr
	}
	return app, nil
}

func (s *ApprovalService) resolveReviewer(ctx context.Context, actorID string) (*models.Employee, *serviceerror.ServiceError) {
	if actorID == "" {
		return nil, serviceerror.CustomServiceError(serviceerror.Unauthenticated, "Sign in to act on applications")
	}

	employee, err := s.reviewers.GetEmployee(ctx, actorID)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return nil, serviceerror.CustomServiceError(serviceerror.Unauthorized, "You are not registered as a reviewer")
		}
		return nil, s.storeError(err, "resolve reviewer")
	}
	if !employee.IsReviewer() {
		return nil, serviceerror.CustomServiceError(serviceerror.Unauthorized, "You are not allowed to review vendor applications")
	}
	return employee, nil
}

// storeError maps store failures onto the error taxonomy. Unknown failures keep
// their original message in the log only.
func (s *ApprovalService) storeError(err error, operation string) *serviceerror.ServiceError {
	switch {
	case errors.Is(err, dao.ErrNotFound):
		return serviceerror.CustomServiceError(serviceerror.NotFound, "Application not found")
	case errors.Is(err, dao.ErrStatusConflict):
		return serviceerror.CustomServiceError(serviceerror.ConcurrentModification,
			"The application was changed by someone else, refresh and retry")
	}

	entry := s.logger.WithError(err).WithField("operation", operation)
	if errors.Is(err, database.ErrStoreTimeout) {
		entry.Warn("Store call timed out")
	} else {
		entry.Error("Store call failed")
	}
	return serviceerror.New(serviceerror.StoreUnavailable)
}

func transitionOutcome(err *serviceerror.ServiceError) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case serviceerror.Is(err, serviceerror.ConcurrentModification):
		return metrics.OutcomeConflict
	case err.Type == serviceerror.ClientErrorType:
		return metrics.OutcomeRejected
	default:
		return metrics.OutcomeError
	}
}
