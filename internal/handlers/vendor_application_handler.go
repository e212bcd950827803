package handlers

import (
	"context"
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/vendorhub/vendor-approval-api/internal/models"
	"github.com/vendorhub/vendor-approval-api/internal/serviceerror"
	"github.com/vendorhub/vendor-approval-api/internal/utils"
	pkgutils "github.com/vendorhub/vendor-approval-api/pkg/utils"
)

const maxNoteLength = 2000

// ApprovalAPI is the workflow surface the handlers call
type ApprovalAPI interface {
	SubmitApplication(ctx context.Context, actorID string, request *models.ApplicationSubmitRequest) (*models.ApplicationView, *serviceerror.ServiceError)
	ListAllApplications(ctx context.Context, level int, status string) ([]models.ApplicationView, *serviceerror.ServiceError)
	ListMyApplications(ctx context.Context, actorID string) ([]models.ApplicationView, *serviceerror.ServiceError)
	ListForLevel(ctx context.Context, level int) ([]models.ApplicationView, *serviceerror.ServiceError)
	ReviewerLevel(ctx context.Context, actorID string) (int, *serviceerror.ServiceError)
	GetApplication(ctx context.Context, actorID, applicationID string) (*models.ApplicationView, *serviceerror.ServiceError)
	GetApprovalHistory(ctx context.Context, actorID, applicationID string) ([]models.HistoryEntry, *serviceerror.ServiceError)
	GetProvisionedVendor(ctx context.Context, actorID, applicationID string) (*models.Vendor, *serviceerror.ServiceError)
	Approve(ctx context.Context, applicationID, actorID, comment string, documents map[string]bool) (*models.ApplicationView, *serviceerror.ServiceError)
	Reject(ctx context.Context, applicationID, actorID, reason string) (*models.ApplicationView, *serviceerror.ServiceError)
	RequestAdditionalInfo(ctx context.Context, applicationID, actorID, note string) (*models.ApplicationView, *serviceerror.ServiceError)
	PutOnHold(ctx context.Context, applicationID, actorID, note string) (*models.ApplicationView, *serviceerror.ServiceError)
	Resume(ctx context.Context, applicationID, actorID, comment string) (*models.ApplicationView, *serviceerror.ServiceError)
	Resubmit(ctx context.Context, applicationID, applicantID, comment string) (*models.ApplicationView, *serviceerror.ServiceError)
}

// VendorApplicationHandler handles vendor application HTTP requests
type VendorApplicationHandler struct {
	service ApprovalAPI
}

// NewVendorApplicationHandler creates a new vendor application handler instance
func NewVendorApplicationHandler(service ApprovalAPI) *VendorApplicationHandler {
	return &VendorApplicationHandler{service: service}
}

// SubmitApplication handles POST /applications
func (h *VendorApplicationHandler) SubmitApplication(c *gin.Context) {
	var request models.ApplicationSubmitRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.SendValidationError(c, "Invalid request body: "+err.Error())
		return
	}

	actor := utils.GetActorFromContext(c)
	view, svcErr := h.service.SubmitApplication(c.Request.Context(), actor.ID, &request)
	if svcErr != nil {
		utils.SendServiceError(c, svcErr)
		return
	}
	utils.SendCreatedResponse(c, view)
}

// ListApplications handles GET /applications, admin levels only
func (h *VendorApplicationHandler) ListApplications(c *gin.Context) {
	ctx := c.Request.Context()
	level, svcErr := h.service.ReviewerLevel(ctx, utils.GetActorFromContext(c).ID)
	if svcErr != nil {
		utils.SendServiceError(c, svcErr)
		return
	}

	views, svcErr := h.service.ListAllApplications(ctx, level, c.Query("status"))
	if svcErr != nil {
		utils.SendServiceError(c, svcErr)
		return
	}
	utils.SendOKResponse(c, views)
}

// ListMyApplications handles GET /applications/mine
func (h *VendorApplicationHandler) ListMyApplications(c *gin.Context) {
	views, svcErr := h.service.ListMyApplications(c.Request.Context(), utils.GetActorFromContext(c).ID)
	if svcErr != nil {
		utils.SendServiceError(c, svcErr)
		return
	}
	utils.SendOKResponse(c, views)
}

// ListQueue handles GET /applications/queue. Admins may pass ?level= to view another level's queue.
func (h *VendorApplicationHandler) ListQueue(c *gin.Context) {
	ctx := c.Request.Context()
	level, svcErr := h.service.ReviewerLevel(ctx, utils.GetActorFromContext(c).ID)
	if svcErr != nil {
		utils.SendServiceError(c, svcErr)
		return
	}

	if raw := c.Query("level"); raw != "" {
		requested, err := pkgutils.ParseHierarchyLevel(raw)
		if err != nil {
			utils.SendValidationError(c, err.Error())
			return
		}
		if requested != level && level < models.AdminHierarchyLevel {
			utils.SendServiceError(c, serviceerror.CustomServiceError(serviceerror.Unauthorized, "Only admin reviewers can view other queues"))
			return
		}
		level = requested
	}

	views, svcErr := h.service.ListForLevel(ctx, level)
	if svcErr != nil {
		utils.SendServiceError(c, svcErr)
		return
	}
	utils.SendOKResponse(c, views)
}

// GetApplication handles GET /applications/:id
func (h *VendorApplicationHandler) GetApplication(c *gin.Context) {
	applicationID, ok := applicationIDParam(c)
	if !ok {
		return
	}

	view, svcErr := h.service.GetApplication(c.Request.Context(), utils.GetActorFromContext(c).ID, applicationID)
	if svcErr != nil {
		utils.SendServiceError(c, svcErr)
		return
	}
	utils.SendOKResponse(c, view)
}

// GetApprovalHistory handles GET /applications/:id/history
func (h *VendorApplicationHandler) GetApprovalHistory(c *gin.Context) {
	applicationID, ok := applicationIDParam(c)
	if !ok {
		return
	}

	entries, svcErr := h.service.GetApprovalHistory(c.Request.Context(), utils.GetActorFromContext(c).ID, applicationID)
	if svcErr != nil {
		utils.SendServiceError(c, svcErr)
		return
	}
	utils.SendOKResponse(c, entries)
}

// GetVendor handles GET /applications/:id/vendor
func (h *VendorApplicationHandler) GetVendor(c *gin.Context) {
	applicationID, ok := applicationIDParam(c)
	if !ok {
		return
	}

	vendor, svcErr := h.service.GetProvisionedVendor(c.Request.Context(), utils.GetActorFromContext(c).ID, applicationID)
	if svcErr != nil {
		utils.SendServiceError(c, svcErr)
		return
	}
	utils.SendOKResponse(c, vendor)
}

// Approve handles POST /applications/:id/approve
func (h *VendorApplicationHandler) Approve(c *gin.Context) {
	applicationID, request, ok := bindTransition(c)
	if !ok {
		return
	}
	h.respond(c)(h.service.Approve(c.Request.Context(), applicationID, utils.GetActorFromContext(c).ID, request.Comment, request.DocumentVerification))
}

// Reject handles POST /applications/:id/reject
func (h *VendorApplicationHandler) Reject(c *gin.Context) {
	applicationID, request, ok := bindTransition(c)
	if !ok {
		return
	}
	h.respond(c)(h.service.Reject(c.Request.Context(), applicationID, utils.GetActorFromContext(c).ID, request.Reason))
}

// RequestAdditionalInfo handles POST /applications/:id/request-info
func (h *VendorApplicationHandler) RequestAdditionalInfo(c *gin.Context) {
	applicationID, request, ok := bindTransition(c)
	if !ok {
		return
	}
	h.respond(c)(h.service.RequestAdditionalInfo(c.Request.Context(), applicationID, utils.GetActorFromContext(c).ID, request.Note))
}

// PutOnHold handles POST /applications/:id/hold
func (h *VendorApplicationHandler) PutOnHold(c *gin.Context) {
	applicationID, request, ok := bindTransition(c)
	if !ok {
		return
	}
	h.respond(c)(h.service.PutOnHold(c.Request.Context(), applicationID, utils.GetActorFromContext(c).ID, request.Note))
}

// Resume handles POST /applications/:id/resume
func (h *VendorApplicationHandler) Resume(c *gin.Context) {
	applicationID, request, ok := bindTransition(c)
	if !ok {
		return
	}
	h.respond(c)(h.service.Resume(c.Request.Context(), applicationID, utils.GetActorFromContext(c).ID, request.Comment))
}

// Resubmit handles POST /applications/:id/resubmit
func (h *VendorApplicationHandler) Resubmit(c *gin.Context) {
	applicationID, request, ok := bindTransition(c)
	if !ok {
		return
	}
	h.respond(c)(h.service.Resubmit(c.Request.Context(), applicationID, utils.GetActorFromContext(c).ID, request.Comment))
}

func (h *VendorApplicationHandler) respond(c *gin.Context) func(*models.ApplicationView, *serviceerror.ServiceError) {
	return func(view *models.ApplicationView, svcErr *serviceerror.ServiceError) {
		if svcErr != nil {
			utils.SendServiceError(c, svcErr)
			return
		}
		utils.SendOKResponse(c, view)
	}
}

func applicationIDParam(c *gin.Context) (string, bool) {
	applicationID := c.Param("id")
	if err := pkgutils.ValidateApplicationID(applicationID); err != nil {
		utils.SendValidationError(c, err.Error())
		return "", false
	}
	return applicationID, true
}

// bindTransition reads the optional decision body. An empty body is allowed.
func bindTransition(c *gin.Context) (string, *models.TransitionRequest, bool) {
	applicationID, ok := applicationIDParam(c)
	if !ok {
		return "", nil, false
	}

	request := &models.TransitionRequest{}
	if err := c.ShouldBindJSON(request); err != nil && !errors.Is(err, io.EOF) {
		utils.SendValidationError(c, "Invalid request body: "+err.Error())
		return "", nil, false
	}

	request.Comment = pkgutils.SanitizeString(request.Comment)
	request.Note = pkgutils.SanitizeString(request.Note)
	for field, value := range map[string]string{"comment": request.Comment, "reason": request.Reason, "note": request.Note} {
		if err := pkgutils.ValidateMaxLength(field, value, maxNoteLength); err != nil {
			utils.SendValidationError(c, err.Error())
			return "", nil, false
		}
	}
	return applicationID, request, true
}
