package rest

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/atlasfield/fieldops-agent-go/internal/api"
	"github.com/atlasfield/fieldops-agent-go/internal/domain/assignment"
)

type AssignmentRepository struct {
	client *api.Client
}

func NewAssignmentRepository(client *api.Client) *AssignmentRepository {
	return &AssignmentRepository{client: client}
}

type assignmentDTO struct {
	EmployeeID string        `json:"employee_id"`
	Location   *workplaceDTO `json:"workplace_location"`
	AssignedBy string        `json:"assigned_by"`
	AssignedAt time.Time     `json:"assigned_at"`
}

func (d assignmentDTO) toDomain() (*assignment.EmployeeAssignment, error) {
	if d.Location == nil {
		return nil, fmt.Errorf("assignment for %s missing workplace location", d.EmployeeID)
	}
	loc, err := d.Location.toDomain()
	if err != nil {
		return nil, err
	}
	return &assignment.EmployeeAssignment{
		EmployeeID: d.EmployeeID,
		Location:   loc,
		AssignedBy: d.AssignedBy,
		AssignedAt: d.AssignedAt,
	}, nil
}

// FetchMine implements assignment.Repository. A backend 404 means the
// employee simply has no active assignment.
func (r *AssignmentRepository) FetchMine(ctx context.Context) (*assignment.EmployeeAssignment, error) {
	return r.fetch(ctx, "/api/v1/assignments/my")
}

// FetchByEmployee implements assignment.Repository.
func (r *AssignmentRepository) FetchByEmployee(ctx context.Context, employeeID string) (*assignment.EmployeeAssignment, error) {
	return r.fetch(ctx, "/api/v1/assignments/"+url.PathEscape(employeeID))
}

func (r *AssignmentRepository) fetch(ctx context.Context, path string) (*assignment.EmployeeAssignment, error) {
	var dto *assignmentDTO
	if err := r.client.Get(ctx, path, &dto); err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", assignment.ErrFetchFailed, err)
	}
	if dto == nil {
		return nil, nil
	}
	return dto.toDomain()
}
