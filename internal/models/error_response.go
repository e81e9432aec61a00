// server/internal/models/error_response.go
package models

import "net/http"

// ErrorResponse mang mã HTTP của loại lỗi nghiệp vụ (404/403/400/500).
// Caller phân nhánh theo StatusCode, không theo message text.
type ErrorResponse struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
}

// NewErrorResponse tạo một lỗi nghiệp vụ với mã và thông điệp.
func NewErrorResponse(statusCode int, message string) *ErrorResponse {
	return &ErrorResponse{
		StatusCode: statusCode,
		Message:    message,
	}
}

func (e *ErrorResponse) Error() string {
	return e.Message
}

// Các constructor tiện dụng theo taxonomy lỗi của hệ thống.

func NotFound(message string) *ErrorResponse {
	return NewErrorResponse(http.StatusNotFound, message)
}

func Unauthorized(message string) *ErrorResponse {
	return NewErrorResponse(http.StatusForbidden, message)
}

func BadRequest(message string) *ErrorResponse {
	return NewErrorResponse(http.StatusBadRequest, message)
}

func Internal(message string) *ErrorResponse {
	return NewErrorResponse(http.StatusInternalServerError, message)
}
