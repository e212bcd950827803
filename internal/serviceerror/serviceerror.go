package serviceerror

import (
	"net/http"
)

type ServiceErrorType string

const (
	ClientErrorType ServiceErrorType = "client_error"
	ServerErrorType ServiceErrorType = "server_error"
)

type ServiceError struct {
	Code             string           `json:"code"`
	Type             ServiceErrorType `json:"type"`
	Error            string           `json:"error"`
	ErrorDescription string           `json:"error_description,omitempty"`
}

var (
	Unauthenticated = ServiceError{
		Type:             ClientErrorType,
		Code:             "VAE-4010",
		Error:            "unauthenticated",
		ErrorDescription: "Authentication is required",
	}

	Unauthorized = ServiceError{
		Type:             ClientErrorType,
		Code:             "VAE-4030",
		Error:            "unauthorized",
		ErrorDescription: "You are not allowed to perform this action",
	}

	NotFound = ServiceError{
		Type:             ClientErrorType,
		Code:             "VAE-4040",
		Error:            "not_found",
		ErrorDescription: "Application not found",
	}

	InvalidTransition = ServiceError{
		Type:             ClientErrorType,
		Code:             "VAE-4090",
		Error:            "invalid_transition",
		ErrorDescription: "The application cannot move to the requested status",
	}

	ConcurrentModification = ServiceError{
		Type:             ClientErrorType,
		Code:             "VAE-4091",
		Error:            "concurrent_modification",
		ErrorDescription: "The application was changed by someone else, refresh and retry",
	}

	ValidationError = ServiceError{
		Type:             ClientErrorType,
		Code:             "VAE-4000",
		Error:            "validation_error",
		ErrorDescription: "Validation failed",
	}

	StoreUnavailable = ServiceError{
		Type:             ServerErrorType,
		Code:             "VAE-5030",
		Error:            "store_unavailable",
		ErrorDescription: "The application store is unavailable, please retry",
	}
)

func CustomServiceError(baseError ServiceError, description string) *ServiceError {
	return &ServiceError{
		Type:             baseError.Type,
		Code:             baseError.Code,
		Error:            baseError.Error,
		ErrorDescription: description,
	}
}

// New returns a copy of a base error with its default description
func New(baseError ServiceError) *ServiceError {
	return CustomServiceError(baseError, baseError.ErrorDescription)
}

// Is reports whether err was derived from base
func Is(err *ServiceError, base ServiceError) bool {
	return err != nil && err.Code == base.Code
}

// HTTPStatus maps a service error to the HTTP status returned to callers
func HTTPStatus(err *ServiceError) int {
	if err == nil {
		return http.StatusOK
	}
	switch err.Code {
	case Unauthenticated.Code:
		return http.StatusUnauthorized
	case Unauthorized.Code:
		return http.StatusForbidden
	case NotFound.Code:
		return http.StatusNotFound
	case InvalidTransition.Code, ConcurrentModification.Code:
		return http.StatusConflict
	case ValidationError.Code:
		return http.StatusBadRequest
	case StoreUnavailable.Code:
		return http.StatusServiceUnavailable
	}
	if err.Type == ClientErrorType {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
