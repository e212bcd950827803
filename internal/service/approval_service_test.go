package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vendorhub/vendor-approval-api/internal/database"
	"github.com/vendorhub/vendor-approval-api/internal/models"
	"github.com/vendorhub/vendor-approval-api/internal/service/mocks"
	"github.com/vendorhub/vendor-approval-api/internal/serviceerror"
)

const applicantID = "user-applicant"

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func reviewer(id, name string, level int) *models.Employee {
	return &models.Employee{
		ID:                id,
		EmployeeID:        strings.ToUpper(id),
		Name:              name,
		Designation:       fmt.Sprintf("Level %d Reviewer", level),
		HierarchyLevel:    level,
		CanApproveVendors: true,
		IsActive:          true,
	}
}

func testEmployees() memEmployees {
	inactive := reviewer("emp-inactive", "Ina Active", 1)
	inactive.IsActive = false
	viewer := reviewer("emp-viewer", "Vic Viewer", 1)
	viewer.CanApproveVendors = false
	return memEmployees{
		"emp-fo":       reviewer("emp-fo", "Farah Officer", 1),
		"emp-fo-2":     reviewer("emp-fo-2", "Femi Officer", 1),
		"emp-manager":  reviewer("emp-manager", "Mona Manager", 2),
		"emp-director": reviewer("emp-director", "Dev Director", 3),
		"emp-admin":    reviewer("emp-admin", "Ada Admin", 4),
		"emp-super":    reviewer("emp-super", "Sam Super", 5),
		inactive.ID:    inactive,
		viewer.ID:      viewer,
	}
}

func newTestService(store *memStore, employees EmployeeLookup) *ApprovalService {
	validator, err := NewSubmissionValidator()
	if err != nil {
		panic(err)
	}
	logger := newTestLogger()
	svc := NewApprovalService(store, NewHistoryService(store, employees, logger), memVendors{store}, employees, store, validator, logger)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func validSubmitRequest() *models.ApplicationSubmitRequest {
	line2 := "Near the lake"
	return &models.ApplicationSubmitRequest{
		BusinessName:  "Lotus Day Spa",
		BusinessType:  models.BusinessTypeSpa,
		ContactPerson: "Priya Nair",
		ContactMobile: "+919876543210",
		ContactEmail:  "priya@lotus.example",
		BusinessAddress: models.BusinessAddress{
			Line1:   "12 MG Road",
			Line2:   &line2,
			City:    "Bengaluru",
			State:   "Karnataka",
			Pincode: "560001",
		},
		ApplicationData: models.ApplicationData{
			PartnerType: models.PartnerTypeFranchise,
		},
	}
}

// seedApplication stores an application in the given status and stage
func seedApplication(store *memStore, id string, status models.ApplicationStatus, stage int) {
	address, _ := models.NewJSON(models.BusinessAddress{Line1: "1 Main St", City: "Pune", State: "MH", Pincode: "411001"})
	data, _ := models.NewJSON(models.ApplicationData{ApplicationNumber: "APP00000001"})
	store.put(models.VendorApplication{
		ID:                   id,
		UserID:               applicantID,
		BusinessName:         "Seeded Salon",
		BusinessType:         models.BusinessTypeSalon,
		ContactPerson:        "Seed Owner",
		ContactMobile:        "9876543210",
		ContactEmail:         "seed@example.com",
		BusinessAddress:      address,
		ApplicationData:      data,
		ApplicationStatus:    status,
		CurrentApprovalStage: stage,
		CreatedAt:            fixedNow.Add(-time.Hour),
		UpdatedAt:            fixedNow.Add(-time.Hour),
	})
}

func assertServiceError(t *testing.T, err *serviceerror.ServiceError, base serviceerror.ServiceError) {
	t.Helper()
	require.NotNil(t, err, "expected %s", base.Error)
	assert.Equal(t, base.Code, err.Code, err.ErrorDescription)
}

func TestSubmitApplication_StartsPending(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store, testEmployees())

	view, err := svc.SubmitApplication(context.Background(), applicantID, validSubmitRequest())

	require.Nil(t, err)
	assert.Equal(t, models.StatusPending, view.ApplicationStatus)
	assert.Equal(t, 1, view.CurrentApprovalStage)
	assert.Equal(t, applicantID, view.UserID)
	assert.Equal(t, "Near the lake", view.AddressLine2)
	assert.Equal(t, "FRANCHISE", view.PartnerType)
	assert.Regexp(t, `^APP[0-9]{8}$`, view.ApplicationNumber)
	assert.Equal(t, fixedNow, view.AppliedDate)

	stored := store.get(view.ID)
	assert.Equal(t, models.StatusPending, stored.ApplicationStatus)
	assert.Empty(t, store.historyFor(view.ID))
}

func TestSubmitApplication_KeepsSuppliedApplicationNumber(t *testing.T) {
	svc := newTestService(newMemStore(), testEmployees())
	req := validSubmitRequest()
	req.ApplicationData.ApplicationNumber = "APP12345678"

	view, err := svc.SubmitApplication(context.Background(), applicantID, req)

	require.Nil(t, err)
	assert.Equal(t, "APP12345678", view.ApplicationNumber)
}

func TestSubmitApplication_Validation(t *testing.T) {
	svc := newTestService(newMemStore(), testEmployees())

	_, err := svc.SubmitApplication(context.Background(), "", validSubmitRequest())
	assertServiceError(t, err, serviceerror.Unauthenticated)

	req := validSubmitRequest()
	req.ContactEmail = "not-an-email"
	_, err = svc.SubmitApplication(context.Background(), applicantID, req)
	assertServiceError(t, err, serviceerror.ValidationError)

	req = validSubmitRequest()
	req.BusinessType = "car_wash"
	_, err = svc.SubmitApplication(context.Background(), applicantID, req)
	assertServiceError(t, err, serviceerror.ValidationError)

	req = validSubmitRequest()
	req.BusinessAddress.Pincode = "12"
	_, err = svc.SubmitApplication(context.Background(), applicantID, req)
	assertServiceError(t, err, serviceerror.ValidationError)

	_, err = svc.SubmitApplication(context.Background(), applicantID, nil)
	assertServiceError(t, err, serviceerror.ValidationError)
}

func TestApprove_FullPipelineProvisionsVendor(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store, testEmployees())
	ctx := context.Background()

	submitted, err := svc.SubmitApplication(ctx, applicantID, validSubmitRequest())
	require.Nil(t, err)

	steps := []struct {
		actor  string
		status models.ApplicationStatus
		stage  int
	}{
		{"emp-fo", models.StatusFOReview, 2},
		{"emp-fo", models.StatusManagerReview, 3},
		{"emp-manager", models.StatusDirectorReview, 4},
		{"emp-director", models.StatusAdminReview, 5},
		{"emp-admin", models.StatusApproved, 5},
	}
	for _, step := range steps {
		view, err := svc.Approve(ctx, submitted.ID, step.actor, "looks good", map[string]bool{"gst": true})
		require.Nil(t, err, "approve by %s", step.actor)
		assert.Equal(t, step.status, view.ApplicationStatus)
		assert.Equal(t, step.stage, view.CurrentApprovalStage)
		require.NotNil(t, view.ReviewedBy)
		assert.Equal(t, step.actor, *view.ReviewedBy)
	}

	assert.Len(t, store.historyFor(submitted.ID), 5)
	assert.Equal(t, 1, store.vendorCount())

	vendor, err := svc.GetProvisionedVendor(ctx, applicantID, submitted.ID)
	require.Nil(t, err)
	assert.Equal(t, "Lotus Day Spa", vendor.BusinessName)
	assert.Equal(t, "FRANCHISE", vendor.PartnerType)
	assert.Equal(t, "12 MG Road", vendor.AddressLine1)
	assert.True(t, vendor.IsActive)
	assert.Equal(t, models.VerificationStatusVerified, vendor.VerificationStatus)

	history, err := svc.GetApprovalHistory(ctx, applicantID, submitted.ID)
	require.Nil(t, err)
	require.Len(t, history, 5)
	assert.Equal(t, "emp-admin", history[0].ApprovedBy)
	assert.Equal(t, "Ada Admin", history[0].ActorName)
	assert.Equal(t, "Level 4 Reviewer", history[0].ActorDesignation)
	assert.Equal(t, 5, history[0].ApprovalStage)
	assert.Equal(t, models.ActionApproved, history[0].Action)
	assert.Equal(t, 1, history[4].ApprovalStage)
}

func TestApprove_VendorDefaultsToIndependent(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store, testEmployees())
	seedApplication(store, "app-1", models.StatusAdminReview, 5)

	_, err := svc.Approve(context.Background(), "app-1", "emp-super", "", nil)
	require.Nil(t, err)

	vendor, err := svc.GetProvisionedVendor(context.Background(), applicantID, "app-1")
	require.Nil(t, err)
	assert.Equal(t, "INDEPENDENT", vendor.PartnerType)
	assert.Equal(t, "Pune", vendor.City)
}

func TestApprove_WrongLevelIsUnauthorized(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store, testEmployees())
	seedApplication(store, "app-1", models.StatusPending, 1)

	for _, actor := range []string{"emp-manager", "emp-director", "emp-admin", "emp-super"} {
		_, err := svc.Approve(context.Background(), "app-1", actor, "", nil)
		assertServiceError(t, err, serviceerror.Unauthorized)
	}

	assert.Equal(t, models.StatusPending, store.get("app-1").ApplicationStatus)
	assert.Empty(t, store.historyFor("app-1"))
}

func TestTransitions_ActorResolution(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store, testEmployees())
	seedApplication(store, "app-1", models.StatusPending, 1)

	_, err := svc.Approve(context.Background(), "app-1", "", "", nil)
	assertServiceError(t, err, serviceerror.Unauthenticated)

	for _, actor := range []string{"emp-unknown", "emp-inactive", "emp-viewer", applicantID} {
		_, err = svc.Approve(context.Background(), "app-1", actor, "", nil)
		assertServiceError(t, err, serviceerror.Unauthorized)
	}

	_, err = svc.Approve(context.Background(), "missing", "emp-fo", "", nil)
	assertServiceError(t, err, serviceerror.NotFound)

	_, err = svc.Approve(context.Background(), "", "emp-fo", "", nil)
	assertServiceError(t, err, serviceerror.ValidationError)
}

func TestTerminalStatesAreAbsorbing(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store, testEmployees())
	seedApplication(store, "app-rejected", models.StatusRejected, 2)
	seedApplication(store, "app-approved", models.StatusApproved, 5)
	ctx := context.Background()

	for _, id := range []string{"app-rejected", "app-approved"} {
		before := store.get(id)

		_, err := svc.Approve(ctx, id, "emp-super", "", nil)
		assertServiceError(t, err, serviceerror.InvalidTransition)
		_, err = svc.Reject(ctx, id, "emp-super", "too late")
		assertServiceError(t, err, serviceerror.InvalidTransition)
		_, err = svc.RequestAdditionalInfo(ctx, id, "emp-super", "need more")
		assertServiceError(t, err, serviceerror.InvalidTransition)
		_, err = svc.PutOnHold(ctx, id, "emp-super", "")
		assertServiceError(t, err, serviceerror.InvalidTransition)
		_, err = svc.Resubmit(ctx, id, applicantID, "")
		assertServiceError(t, err, serviceerror.InvalidTransition)

		assert.Equal(t, before, store.get(id))
		assert.Empty(t, store.historyFor(id))
	}
}

func TestReject_StoresReasonVerbatim(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store, testEmployees())
	seedApplication(store, "app-1", models.StatusManagerReview, 3)
	reason := "  GST certificate expired.\nPlease reapply. "

	_, err := svc.Reject(context.Background(), "app-1", "emp-manager", "   ")
	assertServiceError(t, err, serviceerror.ValidationError)

	view, err := svc.Reject(context.Background(), "app-1", "emp-manager", reason)
	require.Nil(t, err)
	assert.Equal(t, models.StatusRejected, view.ApplicationStatus)
	assert.Equal(t, 3, view.CurrentApprovalStage)
	require.NotNil(t, view.RejectionReason)
	assert.Equal(t, reason, *view.RejectionReason)
	assert.Equal(t, models.NoteKindRejected, view.ReviewNote.Kind)

	history := store.historyFor("app-1")
	require.Len(t, history, 1)
	assert.Equal(t, models.ActionRejected, history[0].Action)
	assert.Equal(t, reason, *history[0].Comments)
	assert.Equal(t, 3, history[0].ApprovalStage)
}

func TestRequestInfoThenResubmit_ReturnsToSameStage(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store, testEmployees())
	seedApplication(store, "app-1", models.StatusDirectorReview, 4)
	ctx := context.Background()

	_, err := svc.RequestAdditionalInfo(ctx, "app-1", "emp-director", "")
	assertServiceError(t, err, serviceerror.ValidationError)

	view, err := svc.RequestAdditionalInfo(ctx, "app-1", "emp-director", "Upload the trade licence")
	require.Nil(t, err)
	assert.Equal(t, models.StatusAdditionalInfoRequired, view.ApplicationStatus)
	assert.Equal(t, 4, view.CurrentApprovalStage)
	assert.Equal(t, models.NoteKindInfoRequired, view.ReviewNote.Kind)
	assert.Nil(t, view.RejectionReason)

	_, err = svc.Approve(ctx, "app-1", "emp-director", "", nil)
	assertServiceError(t, err, serviceerror.Unauthorized)

	_, err = svc.Resubmit(ctx, "app-1", "someone-else", "")
	assertServiceError(t, err, serviceerror.Unauthorized)

	view, err = svc.Resubmit(ctx, "app-1", applicantID, "licence uploaded")
	require.Nil(t, err)
	assert.Equal(t, models.StatusDirectorReview, view.ApplicationStatus)
	assert.Equal(t, 4, view.CurrentApprovalStage)
	assert.Nil(t, view.ReviewNote)
	require.NotNil(t, view.ReviewedBy)
	assert.Equal(t, "emp-director", *view.ReviewedBy)

	history := store.historyFor("app-1")
	require.Len(t, history, 2)
	assert.Equal(t, models.ActionInfoRequested, history[0].Action)
	assert.Equal(t, models.ActionResubmitted, history[1].Action)
	assert.Equal(t, applicantID, history[1].ApprovedBy)
}

func TestHoldAndResume(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store, testEmployees())
	seedApplication(store, "app-1", models.StatusManagerReview, 3)
	ctx := context.Background()

	view, err := svc.PutOnHold(ctx, "app-1", "emp-manager", "")
	require.Nil(t, err)
	assert.Equal(t, models.StatusOnHold, view.ApplicationStatus)
	assert.Nil(t, view.ReviewNote)

	_, err = svc.PutOnHold(ctx, "app-1", "emp-manager", "")
	assertServiceError(t, err, serviceerror.Unauthorized)

	_, err = svc.Resume(ctx, "app-1", "emp-fo", "")
	assertServiceError(t, err, serviceerror.Unauthorized)

	view, err = svc.Resume(ctx, "app-1", "emp-manager", "back on track")
	require.Nil(t, err)
	assert.Equal(t, models.StatusManagerReview, view.ApplicationStatus)
	assert.Equal(t, 3, view.CurrentApprovalStage)

	_, err = svc.Resume(ctx, "app-1", "emp-manager", "")
	assertServiceError(t, err, serviceerror.InvalidTransition)

	history := store.historyFor("app-1")
	require.Len(t, history, 2)
	assert.Equal(t, models.ActionOnHold, history[0].Action)
	assert.Equal(t, models.ActionResumed, history[1].Action)
}

func TestPutOnHold_WithNote(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store, testEmployees())
	seedApplication(store, "app-1", models.StatusFOReview, 2)

	view, err := svc.PutOnHold(context.Background(), "app-1", "emp-fo", "waiting for site visit")
	require.Nil(t, err)
	require.NotNil(t, view.ReviewNote)
	assert.Equal(t, models.NoteKindNote, view.ReviewNote.Kind)
	assert.Equal(t, "waiting for site visit", view.ReviewNote.Text)
}

func TestTransition_StaleReadIsConcurrentModification(t *testing.T) {
	store := newMemStore()
	seedApplication(store, "app-1", models.StatusPending, 1)
	stale := &staleReadStore{memStore: store, snapshot: store.get("app-1")}
	logger := newTestLogger()
	validator, err := NewSubmissionValidator()
	require.NoError(t, err)
	employees := testEmployees()
	svc := NewApprovalService(stale, NewHistoryService(store, employees, logger), memVendors{store}, employees, store, validator, logger)

	_, svcErr := svc.Approve(context.Background(), "app-1", "emp-fo", "", nil)
	require.Nil(t, svcErr)

	_, svcErr = svc.Reject(context.Background(), "app-1", "emp-fo-2", "duplicate")
	assertServiceError(t, svcErr, serviceerror.ConcurrentModification)

	assert.Equal(t, models.StatusFOReview, store.get("app-1").ApplicationStatus)
	assert.Len(t, store.historyFor("app-1"), 1)
}

// staleReadStore always returns the application as it was first seen
type staleReadStore struct {
	*memStore
	snapshot models.VendorApplication
}

func (s *staleReadStore) GetByID(ctx context.Context, applicationID string) (*models.VendorApplication, error) {
	app := s.snapshot
	return &app, nil
}

func TestTransition_ConcurrentDecisionsKeepLedgerConsistent(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store, testEmployees())
	seedApplication(store, "app-1", models.StatusPending, 1)

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			actor := "emp-fo"
			if i%2 == 1 {
				actor = "emp-fo-2"
			}
			_, err := svc.Approve(context.Background(), "app-1", actor, "", nil)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				successes++
				return
			}
			assert.Contains(t, []string{
				serviceerror.ConcurrentModification.Code,
				serviceerror.Unauthorized.Code,
			}, err.Code)
		}(i)
	}
	wg.Wait()

	assert.GreaterOrEqual(t, successes, 1)
	assert.LessOrEqual(t, successes, 2)
	assert.Len(t, store.historyFor("app-1"), successes)
	assert.Equal(t, 1+successes, store.get("app-1").CurrentApprovalStage)
}

func TestTransition_HistoryFailureRollsBack(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store, testEmployees())
	seedApplication(store, "app-1", models.StatusPending, 1)
	store.failHistory = errors.New("disk full")

	_, err := svc.Approve(context.Background(), "app-1", "emp-fo", "", nil)
	assertServiceError(t, err, serviceerror.StoreUnavailable)

	assert.Equal(t, models.StatusPending, store.get("app-1").ApplicationStatus)
	assert.Nil(t, store.get("app-1").ReviewedBy)
}

func TestTransition_VendorFailureRollsBackFinalApproval(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store, testEmployees())
	seedApplication(store, "app-1", models.StatusAdminReview, 5)
	store.failVendor = errors.New("constraint violated")

	_, err := svc.Approve(context.Background(), "app-1", "emp-admin", "", nil)
	assertServiceError(t, err, serviceerror.StoreUnavailable)

	assert.Equal(t, models.StatusAdminReview, store.get("app-1").ApplicationStatus)
	assert.Empty(t, store.historyFor("app-1"))
	assert.Zero(t, store.vendorCount())
}

func TestTransition_StoreTimeoutIsUnavailable(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store, testEmployees())
	store.failGet = fmt.Errorf("get application: %w", database.ErrStoreTimeout)

	_, err := svc.Approve(context.Background(), "app-1", "emp-fo", "", nil)
	assertServiceError(t, err, serviceerror.StoreUnavailable)
}

func TestTransition_EmployeeLookupFailureIsUnavailable(t *testing.T) {
	store := newMemStore()
	seedApplication(store, "app-1", models.StatusPending, 1)
	lookup := &mocks.MockEmployeeLookup{}
	lookup.On("GetEmployee", mock.Anything, "emp-fo").Return(nil, errors.New("connection refused"))
	svc := newTestService(store, lookup)

	_, err := svc.Approve(context.Background(), "app-1", "emp-fo", "", nil)
	assertServiceError(t, err, serviceerror.StoreUnavailable)
	lookup.AssertExpectations(t)
}

func TestListAllApplications(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store, testEmployees())
	seedApplication(store, "app-1", models.StatusPending, 1)
	seedApplication(store, "app-2", models.StatusRejected, 2)
	ctx := context.Background()

	_, err := svc.ListAllApplications(ctx, 3, "")
	assertServiceError(t, err, serviceerror.Unauthorized)

	views, err := svc.ListAllApplications(ctx, 4, "")
	require.Nil(t, err)
	assert.Len(t, views, 2)

	views, err = svc.ListAllApplications(ctx, 5, "rejected")
	require.Nil(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "app-2", views[0].ID)

	_, err = svc.ListAllApplications(ctx, 4, "archived")
	assertServiceError(t, err, serviceerror.ValidationError)
}

func TestListForLevel(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store, testEmployees())
	seedApplication(store, "app-pending", models.StatusPending, 1)
	seedApplication(store, "app-fo", models.StatusFOReview, 2)
	seedApplication(store, "app-manager", models.StatusManagerReview, 3)
	seedApplication(store, "app-held", models.StatusOnHold, 2)
	ctx := context.Background()

	ids := func(views []models.ApplicationView) []string {
		out := make([]string, 0, len(views))
		for _, v := range views {
			out = append(out, v.ID)
		}
		return out
	}

	views, err := svc.ListForLevel(ctx, 1)
	require.Nil(t, err)
	assert.ElementsMatch(t, []string{"app-pending", "app-fo"}, ids(views))

	views, err = svc.ListForLevel(ctx, 2)
	require.Nil(t, err)
	assert.ElementsMatch(t, []string{"app-manager"}, ids(views))

	views, err = svc.ListForLevel(ctx, 3)
	require.Nil(t, err)
	assert.Empty(t, views)

	views, err = svc.ListForLevel(ctx, 4)
	require.Nil(t, err)
	assert.Len(t, views, 4)

	// levels above the defined ones still see everything, matching ListAllApplications
	views, err = svc.ListForLevel(ctx, 6)
	require.Nil(t, err)
	assert.Len(t, views, 4)

	_, err = svc.ListForLevel(ctx, 0)
	assertServiceError(t, err, serviceerror.ValidationError)
}

func TestListMyApplications(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store, testEmployees())
	seedApplication(store, "app-1", models.StatusPending, 1)

	views, err := svc.ListMyApplications(context.Background(), applicantID)
	require.Nil(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "app-1", views[0].ID)

	views, err = svc.ListMyApplications(context.Background(), "someone-else")
	require.Nil(t, err)
	assert.Empty(t, views)

	_, err = svc.ListMyApplications(context.Background(), "")
	assertServiceError(t, err, serviceerror.Unauthenticated)
}

func TestGetApplication_Access(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store, testEmployees())
	seedApplication(store, "app-1", models.StatusManagerReview, 3)
	ctx := context.Background()

	view, err := svc.GetApplication(ctx, applicantID, "app-1")
	require.Nil(t, err)
	assert.Equal(t, "APP00000001", view.ApplicationNumber)

	_, err = svc.GetApplication(ctx, "emp-fo", "app-1")
	assert.Nil(t, err)

	_, err = svc.GetApplication(ctx, "stranger", "app-1")
	assertServiceError(t, err, serviceerror.Unauthorized)

	_, err = svc.GetApplication(ctx, "", "app-1")
	assertServiceError(t, err, serviceerror.Unauthenticated)

	_, err = svc.GetApplication(ctx, applicantID, "missing")
	assertServiceError(t, err, serviceerror.NotFound)

	_, err = svc.GetApprovalHistory(ctx, "stranger", "app-1")
	assertServiceError(t, err, serviceerror.Unauthorized)

	_, err = svc.GetProvisionedVendor(ctx, applicantID, "app-1")
	assertServiceError(t, err, serviceerror.NotFound)
}

func TestReviewerLevel(t *testing.T) {
	svc := newTestService(newMemStore(), testEmployees())

	level, err := svc.ReviewerLevel(context.Background(), "emp-director")
	require.Nil(t, err)
	assert.Equal(t, 3, level)

	_, err = svc.ReviewerLevel(context.Background(), "emp-inactive")
	assertServiceError(t, err, serviceerror.Unauthorized)

	_, err = svc.ReviewerLevel(context.Background(), "")
	assertServiceError(t, err, serviceerror.Unauthenticated)
}
