package utils

import "errors"

// ErrorResponse is a struct for error response
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// Image upload validation errors.
var (
	ErrNotAnImage    = errors.New("Please upload an image file")
	ErrImageTooLarge = errors.New("Image is too large")
)
