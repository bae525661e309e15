package errors

import (
	stderrors "errors"
)

// ErrorResponse is the JSON structure returned to clients. The message is
// always under the "error" key; the code and details are advisory extras.
type ErrorResponse struct {
	Error   string         `json:"error"`
	Code    ErrorCode      `json:"code,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// ToResponse converts an AppError to an ErrorResponse for JSON serialization.
// Client errors (4xx) stay flat, just the "error" message, so the wire
// response never reveals internal classification such as whether a token was
// expired, tampered with, or absent. Server errors keep their machine code
// and details for operators.
func (e *AppError) ToResponse() ErrorResponse {
	resp := ErrorResponse{Error: e.Message}
	if e.HTTPStatus >= 500 {
		resp.Code = e.Code
		resp.Details = e.Details
	}
	return resp
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
