package dto

import "github.com/SscSPs/todo_backend/internal/apperrors"

// APIResponse is the envelope of every successful response.
type APIResponse struct {
	StatusCode int    `json:"statusCode"`
	Success    bool   `json:"success"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
}

// APIErrorResponse is the envelope of every failed response.
type APIErrorResponse struct {
	StatusCode int      `json:"statusCode"`
	Success    bool     `json:"success"`
	Message    string   `json:"message"`
	Errors     []string `json:"errors"`
}

// EmptyData serialises as {} for endpoints that return no payload.
type EmptyData struct{}

func NewAPIResponse(statusCode int, data any, message string) APIResponse {
	return APIResponse{
		StatusCode: statusCode,
		Success:    statusCode < 400,
		Data:       data,
		Message:    message,
	}
}

func NewAPIErrorResponse(appErr *apperrors.AppError) APIErrorResponse {
	errs := appErr.Errors
	if errs == nil {
		errs = []string{}
	}
	return APIErrorResponse{
		StatusCode: appErr.Code,
		Success:    false,
		Message:    appErr.Message,
		Errors:     errs,
	}
}
