package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendorhub/vendor-approval-api/internal/models"
	"github.com/vendorhub/vendor-approval-api/internal/serviceerror"
)

// Context keys set by the middleware chain
const (
	ActorIDKey       = "actorID"
	ActorRoleKey     = "actorRole"
	CorrelationIDKey = "correlationID"
)

// SendSuccessResponse sends a successful JSON envelope
func SendSuccessResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, models.NewSuccessResponse(data))
}

// SendCreatedResponse sends a 201 Created response
func SendCreatedResponse(c *gin.Context, data interface{}) {
	SendSuccessResponse(c, http.StatusCreated, data)
}

// SendOKResponse sends a 200 OK response
func SendOKResponse(c *gin.Context, data interface{}) {
	SendSuccessResponse(c, http.StatusOK, data)
}

// SendErrorResponse sends an error JSON envelope
func SendErrorResponse(c *gin.Context, statusCode int, errCode, message string) {
	c.JSON(statusCode, models.NewErrorResponse(errCode, message))
}

// SendServiceError maps a service error onto its HTTP status
func SendServiceError(c *gin.Context, err *serviceerror.ServiceError) {
	SendErrorResponse(c, serviceerror.HTTPStatus(err), err.Code, err.ErrorDescription)
}

// SendValidationError sends a 400 with the validation error code
func SendValidationError(c *gin.Context, details string) {
	SendServiceError(c, serviceerror.CustomServiceError(serviceerror.ValidationError, details))
}

// AbortWithServiceError writes the error and stops the handler chain
func AbortWithServiceError(c *gin.Context, err *serviceerror.ServiceError) {
	SendServiceError(c, err)
	c.Abort()
}

// GetActorFromContext returns the authenticated actor, or an empty actor when none is set
func GetActorFromContext(c *gin.Context) models.Actor {
	return models.Actor{
		ID:   c.GetString(ActorIDKey),
		Role: c.GetString(ActorRoleKey),
	}
}

// SetActor stores the authenticated actor in the Gin context
func SetActor(c *gin.Context, actor models.Actor) {
	c.Set(ActorIDKey, actor.ID)
	c.Set(ActorRoleKey, actor.Role)
}

// GetCorrelationIDFromContext extracts the correlation ID from context
func GetCorrelationIDFromContext(c *gin.Context) string {
	return c.GetString(CorrelationIDKey)
}
