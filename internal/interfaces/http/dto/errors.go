package dto

import (
	"net/http"
	"strings"
)

// Error code constants organized by category
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Validation error codes
const (
	// ErrCodeValidation is the base code for validation errors
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeValidationRequired is used when a required field is missing
	ErrCodeValidationRequired = "ERR_VALIDATION_REQUIRED"
	// ErrCodeValidationFormat is used when a field has invalid format
	ErrCodeValidationFormat = "ERR_VALIDATION_FORMAT"
	// ErrCodeValidationRange is used when a value is out of range
	ErrCodeValidationRange = "ERR_VALIDATION_RANGE"
)

// Authentication error codes
const (
	// ErrCodeUnauthorized is used when authentication is required but missing/invalid
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	// ErrCodeForbidden is used when the actor lacks permission
	ErrCodeForbidden = "ERR_FORBIDDEN"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeAlreadyExists is used when trying to create a duplicate resource
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
	// ErrCodeConflict is used for general resource conflicts
	ErrCodeConflict = "ERR_CONFLICT"
	// ErrCodeConcurrencyConflict is used when optimistic locking fails
	ErrCodeConcurrencyConflict = "ERR_CONCURRENCY_CONFLICT"
)

// Input error codes
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"
)

// Rate limiting error codes
const (
	// ErrCodeRateLimited is used when rate limit is exceeded
	ErrCodeRateLimited = "ERR_RATE_LIMITED"
)

// domainCodeHTTPStatus maps domain error codes to HTTP status codes.
// Codes absent from this table fall through to the prefix rules in
// GetHTTPStatus.
var domainCodeHTTPStatus = map[string]int{
	"NOT_FOUND":      http.StatusNotFound,
	"ALREADY_EXISTS": http.StatusConflict,
	"FORBIDDEN":      http.StatusForbidden,
	"UNAUTHORIZED":   http.StatusUnauthorized,

	// Budget ledger
	"INSUFFICIENT_BUDGET":  http.StatusBadRequest,
	"ADJUSTMENT_IMMUTABLE": http.StatusUnprocessableEntity,

	// Cart and checkout
	"EMPTY_CART":          http.StatusBadRequest,
	"PRODUCT_UNAVAILABLE": http.StatusBadRequest,
	"PRICE_CHANGED":       http.StatusConflict,

	// Order state machine
	"INVALID_STATUS_TRANSITION": http.StatusConflict,
	"REJECTION_NOTE_REQUIRED":   http.StatusUnprocessableEntity,
	"INVALID_STATUS":            http.StatusBadRequest,

	// Reconciliation
	"REVIEW_ALREADY_RESOLVED": http.StatusConflict,
	"SYNC_IN_PROGRESS":        http.StatusConflict,
	"CONCURRENCY_CONFLICT":    http.StatusConflict,

	// HR push-back sync
	"TABLE_NOT_CONFIGURED":    http.StatusUnprocessableEntity,
	"ORDER_NOT_DELIVERED":     http.StatusUnprocessableEntity,
	"ORDER_ALREADY_SYNCED":    http.StatusConflict,
	"ORDER_NOT_SYNCED":        http.StatusConflict,
	"NO_HIBOB_IDENTITY":       http.StatusUnprocessableEntity,
	"ORDER_EMPLOYEE_MISMATCH": http.StatusUnprocessableEntity,

	// API-level codes
	ErrCodeUnknown:             http.StatusInternalServerError,
	ErrCodeInternal:            http.StatusInternalServerError,
	ErrCodeValidation:          http.StatusBadRequest,
	ErrCodeValidationRequired:  http.StatusBadRequest,
	ErrCodeValidationFormat:    http.StatusBadRequest,
	ErrCodeValidationRange:     http.StatusBadRequest,
	ErrCodeUnauthorized:        http.StatusUnauthorized,
	ErrCodeForbidden:           http.StatusForbidden,
	ErrCodeNotFound:            http.StatusNotFound,
	ErrCodeAlreadyExists:       http.StatusConflict,
	ErrCodeConflict:            http.StatusConflict,
	ErrCodeConcurrencyConflict: http.StatusConflict,
	ErrCodeBadRequest:          http.StatusBadRequest,
	ErrCodeInvalidInput:        http.StatusBadRequest,
	ErrCodeInvalidJSON:         http.StatusBadRequest,
	ErrCodeRateLimited:         http.StatusTooManyRequests,
}

// GetHTTPStatus returns the HTTP status code for a domain error code.
// Unmapped INVALID_* and *_REQUIRED codes are treated as validation
// failures; anything else unknown is an internal error.
func GetHTTPStatus(code string) int {
	if status, ok := domainCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") || strings.HasSuffix(code, "_REQUIRED") {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
