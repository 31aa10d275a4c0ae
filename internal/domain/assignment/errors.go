package assignment

import "errors"

var (
	ErrNoAssignment = errors.New("no location assigned")
	ErrFetchFailed  = errors.New("failed to fetch assignment")
)
