package lifecycle

import "errors"

var (
	ErrListDeployments = errors.New("list deployments")
	ErrListPods        = errors.New("list pods")
	ErrGetDeployment   = errors.New("get deployment")
	ErrGetPod          = errors.New("get pod")
	ErrPatchDeployment = errors.New("patch deployment")
	ErrDeletePod       = errors.New("delete pod")

	// ErrTargetNotFound marks a directly addressed resource that does not exist.
	ErrTargetNotFound = errors.New("not found")

	// ErrThrottled marks a request rejected by the API server rate limiter.
	ErrThrottled = errors.New("too many requests")

	// ErrEmptySelector is returned when a deployment selector would match every pod.
	ErrEmptySelector = errors.New("deployment has an empty label selector")

	// ErrInvalidSelector is returned when a deployment selector cannot be turned into a pod query.
	ErrInvalidSelector = errors.New("deployment has an invalid label selector")
)
