// Package utilities contain utility code that use across the package
package utilities

import "careerhub-backend/internal/model"

// ErrorResponse type for swagger docs
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse type for swagger docs
type MessageResponse struct {
	Message string `json:"message"`
}

// CareerResponse is the success envelope returned by career write endpoints.
type CareerResponse struct {
	Message string        `json:"message"`
	Career  *model.Career `json:"career"`
}
