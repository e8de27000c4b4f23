package httpserver

import "errors"

// ErrInvalidPathParam marks a namespace or resource name that is not a valid Kubernetes name.
var ErrInvalidPathParam = errors.New("invalid path parameter")
