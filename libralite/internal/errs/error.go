package errs

import (
	"errors"
)

var (
	ErrItemNotFound       = errors.New("item not found")
	ErrItemAvailable      = errors.New("item is available, no hold needed")
	ErrItemUnavailable    = errors.New("item is not available")
	ErrItemReserved       = errors.New("item is reserved on the hold shelf for another member")
	ErrItemNotCheckedOut  = errors.New("item is not checked out")
	ErrItemMismatch       = errors.New("loan does not belong to this item")
	ErrLoanNotFound       = errors.New("loan not found")
	ErrAlreadyReturned    = errors.New("loan already returned")
	ErrMemberNotFound     = errors.New("member not found")
	ErrMemberNotApproved  = errors.New("member is not approved")
	ErrInvalidCredentials = errors.New("invalid library card number or pin")
	ErrTooManyAttempts    = errors.New("too many login attempts, try again later")

	ErrApplicationNotFound     = errors.New("application not found")
	ErrApplicationNotPending   = errors.New("application is not pending")
	ErrMissingPinHash          = errors.New("application has no pin")
	ErrCardAllocationExhausted = errors.New("could not allocate a unique library card number")
	ErrCardNumberTaken         = errors.New("library card number already in use")
	ErrEmailAlreadyMember      = errors.New("email already belongs to a member")
	ErrEmailApplicationPending = errors.New("an application for this email is already pending")

	ErrHoldNotFound          = errors.New("hold not found")
	ErrDuplicateHold         = errors.New("member already holds this item")
	ErrInvalidHoldTransition = errors.New("invalid hold status transition")
	ErrNotQueueHead          = errors.New("hold is not first in the queue")
	ErrNoActiveHolds         = errors.New("no active holds for item")
	ErrShelfEntryNotFound    = errors.New("hold shelf entry not found")
)

type ValidationErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}
