package pkg

import "net/http"

// AppError is the error shape returned by the HTTP layer.
//
// Code is a stable machine-readable identifier, Message is meant for humans and
// HTTPStatus is the status the handler responds with. Err keeps the cause for logs;
// it is never serialized.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
	Details    []ErrorDetail
}

// ErrorDetail describes one offending input field.
type ErrorDetail struct {
	Field   string   `json:"field"`
	Rule    string   `json:"rule"`
	Message string   `json:"message"`
	Min     *int     `json:"min,omitempty"`
	Max     *int     `json:"max,omitempty"`
	Allowed []string `json:"allowed,omitempty"`
}

// HTTPError is the JSON body written for an AppError.
type HTTPError struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	}
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return NewDomainError(code, message, nil, httpStatus)
}

// NewValidationAppError builds the 400 response used for rejected input fields.
func NewValidationAppError(message string, details []ErrorDetail) *AppError {
	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}
