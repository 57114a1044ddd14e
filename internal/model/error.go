package model

import "errors"

var (
	// ErrSkippableRecord marks an input row that the pipeline drops and counts.
	ErrSkippableRecord = errors.New("skippable record")

	ErrStoreUnavailable    = errors.New("store unavailable")
	ErrPolicyConfiguration = errors.New("policy configuration")
	ErrRunInProgress       = errors.New("analysis run in progress")
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrPartNotFound        = errors.New("part not found")
)
