package k8s

import "errors"

// ErrInvalidSelector is returned when a deployment selector cannot be rendered.
var ErrInvalidSelector = errors.New("invalid deployment selector")

// TooManyRequestsError marks a request rejected by API server throttling.
type TooManyRequestsError struct {
	cause error
}

func (e *TooManyRequestsError) Error() string {
	return "too many requests"
}

func (e *TooManyRequestsError) Unwrap() error {
	return e.cause
}

func (e *TooManyRequestsError) IsTooManyRequests() {}

// NotFoundError marks a resource that does not exist.
type NotFoundError struct {
	cause error
}

func (e *NotFoundError) Error() string {
	return "not found"
}

func (e *NotFoundError) Unwrap() error {
	return e.cause
}

func (e *NotFoundError) IsNotFound() {}
