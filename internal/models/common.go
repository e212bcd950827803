package models

// Response is the envelope returned by every API operation
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Code    string      `json:"code,omitempty"`
}

// NewSuccessResponse creates a new success response
func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Success: true,
		Data:    data,
	}
}

// NewErrorResponse creates a new error response
func NewErrorResponse(code, message string) *Response {
	return &Response{
		Success: false,
		Error:   message,
		Code:    code,
	}
}

// Actor roles carried in bearer tokens
const (
	RoleApplicant = "applicant"
	RoleEmployee  = "employee"
	RoleAdmin     = "admin"
)

// Actor is the caller identity resolved by the authentication middleware
type Actor struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}
