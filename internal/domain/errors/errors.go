package errors

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccessDenied       = errors.New("access denied")

	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrInvalidRating     = errors.New("invalid rating")
	ErrInvalidTransition = errors.New("invalid status transition")

	// Order lifecycle precondition violations.
	ErrNotApproved    = errors.New("order not approved for capture")
	ErrNotCancellable = errors.New("order not eligible for cancellation")
	ErrNotRefundable  = errors.New("order not eligible for refund")
	ErrNoCaptureFound = errors.New("no capture found for order")

	// Review aggregate invariant violations.
	ErrDuplicateReview = errors.New("product already reviewed by user")
	ErrAuthorMismatch  = errors.New("review owned by another user")

	// External dependency failures.
	ErrProviderUnavailable = errors.New("payment provider unavailable")
)
