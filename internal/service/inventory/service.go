package inventory

import (
	"context"
	"time"

	"github.com/atlasfield/fieldops-agent-go/internal/domain/inventory"
	"github.com/atlasfield/fieldops-agent-go/internal/domain/workplace"
	"github.com/google/uuid"
)

// RequestService validates and submits inventory and reassignment requests.
type RequestService struct {
	repo      inventory.Repository
	directory workplace.Directory
	now       func() time.Time
}

func NewRequestService(repo inventory.Repository, directory workplace.Directory) *RequestService {
	return &RequestService{
		repo:      repo,
		directory: directory,
		now:       time.Now,
	}
}

// RequestItems implements inventory.Service.
func (s *RequestService) RequestItems(ctx context.Context, employeeID string, req inventory.ItemsRequest) (inventory.Request, error) {
	if err := req.Validate(); err != nil {
		return inventory.Request{}, err
	}

	request := inventory.Request{
		ID:          uuid.NewString(),
		EmployeeID:  employeeID,
		Items:       req.Items,
		Notes:       req.Notes,
		RequestedAt: s.now(),
	}

	if err := s.repo.SubmitRequest(ctx, request); err != nil {
		return inventory.Request{}, err
	}
	return request, nil
}

// RequestReassignment implements inventory.Service. The target location must
// exist in the workplace directory.
func (s *RequestService) RequestReassignment(ctx context.Context, employeeID string, req inventory.ReassignRequest) (inventory.ReassignmentRequest, error) {
	if err := req.Validate(); err != nil {
		return inventory.ReassignmentRequest{}, err
	}
	if _, err := s.directory.Find(req.LocationID); err != nil {
		return inventory.ReassignmentRequest{}, err
	}

	request := inventory.ReassignmentRequest{
		ID:          uuid.NewString(),
		EmployeeID:  employeeID,
		LocationID:  req.LocationID,
		Reason:      req.Reason,
		RequestedAt: s.now(),
	}

	if err := s.repo.SubmitReassignment(ctx, request); err != nil {
		return inventory.ReassignmentRequest{}, err
	}
	return request, nil
}
