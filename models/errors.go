package models

import (
	"errors"
	"fmt"
)

var (
	ErrFoodNotFound    = errors.New("food not found")
	ErrInvalidCategory = errors.New("invalid category")
	ErrImageRequired   = errors.New("image is required")
	ErrInvalidImage    = errors.New("invalid file type. Only jpg, jpeg, png, gif, webp allowed")
	ErrImageTooLarge   = errors.New("file size exceeds maximum allowed size")
)

// ValidationError is raised before anything is sent to the food API.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ServiceError wraps any failed call to the food API. Status is zero for
// transport failures.
type ServiceError struct {
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Status != 0 {
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.Status, msg)
	}
	return fmt.Sprintf("%s: %s", e.Op, msg)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsServiceError(err error) bool {
	var se *ServiceError
	return errors.As(err, &se)
}
