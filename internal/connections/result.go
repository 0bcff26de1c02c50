package connections

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusSuccess is the status code carried by every successful OperationResult.
const StatusSuccess = http.StatusOK

// UnknownErrorMessage is the fixed message attached to failures which could
// not be mapped to a structured remote error. Raw causes are logged by the
// connector and never surfaced to callers.
const UnknownErrorMessage = "An unknown error has occurred"

// ErrSuccessStatusWithError is returned by NewFailure when a caller tries to
// build a failure result carrying the success status code. This signals a
// bug in the calling code, not a runtime condition.
var ErrSuccessStatusWithError = errors.New("cannot build a failure result with the success status code")

// OperationError describes an error which occurred while performing a remote
// service operation. ErrorCode is nil when the failure reason carries no
// machine-readable code (e.g. an unexpected transport failure).
type OperationError struct {
	ErrorCode    *int64
	ErrorMessage string
}

// OperationResult is the success/failure envelope used uniformly across the
// connection layer. Exactly one of Result and Error is populated.
type OperationResult[T any] struct {
	StatusCode int
	Result     *T
	Error      *OperationError
}

// NewSuccess builds a successful result around the given payload.
func NewSuccess[T any](result T) OperationResult[T] {
	return OperationResult[T]{
		StatusCode: StatusSuccess,
		Result:     &result,
	}
}

// NewFailure builds a failure result for the given status code. Passing
// StatusSuccess fails with ErrSuccessStatusWithError.
func NewFailure[T any](statusCode int, opErr OperationError) (OperationResult[T], error) {
	if statusCode == StatusSuccess {
		return OperationResult[T]{}, fmt.Errorf("%w: %d", ErrSuccessStatusWithError, statusCode)
	}

	return OperationResult[T]{
		StatusCode: statusCode,
		Error:      &opErr,
	}, nil
}

// GenericFailure builds the 500 fallback result used for every failure
// which cannot be mapped to a structured remote error.
func GenericFailure[T any]() OperationResult[T] {
	return OperationResult[T]{
		StatusCode: http.StatusInternalServerError,
		Error:      &OperationError{ErrorMessage: UnknownErrorMessage},
	}
}

// Success reports whether the operation completed successfully.
func (r OperationResult[T]) Success() bool {
	return r.StatusCode == StatusSuccess
}
