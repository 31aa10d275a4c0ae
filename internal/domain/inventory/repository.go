package inventory

import "context"

// Repository submits requests to the backend.
type Repository interface {
	SubmitRequest(ctx context.Context, req Request) error
	SubmitReassignment(ctx context.Context, req ReassignmentRequest) error
}
