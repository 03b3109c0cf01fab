package utils

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrUnsupportedMagnitude = errors.New("amount too large to express in words")
	ErrInvalidLineItem      = errors.New("invalid line item")
	ErrEmptyValue           = errors.New("empty value")
)

// LineItemError reports the first amount Summarize rejected.
type LineItemError struct {
	Index int
	Value string
}

func (e *LineItemError) Error() string {
	return fmt.Sprintf("invalid line item at index %d: %s", e.Index, e.Value)
}

func (e *LineItemError) Unwrap() error {
	return ErrInvalidLineItem
}

// AppError is an error carrying the HTTP status it should be reported with.
type AppError struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	Err     error    `json:"-"`
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

func NewBadRequestError(message string, err error) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: err}
}

func NewValidationError(message string, details []string) *AppError {
	return &AppError{Code: http.StatusUnprocessableEntity, Message: message, Details: details}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: http.StatusUnauthorized, Message: message}
}

func NewInternalError(message string, err error) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message, Err: err}
}
