package inventory

import "context"

// Service validates and submits inventory and reassignment requests.
type Service interface {
	RequestItems(ctx context.Context, employeeID string, req ItemsRequest) (Request, error)
	RequestReassignment(ctx context.Context, employeeID string, req ReassignRequest) (ReassignmentRequest, error)
}
