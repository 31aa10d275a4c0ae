package assignment

import (
	"time"

	"github.com/atlasfield/fieldops-agent-go/internal/domain/workplace"
)

// EmployeeAssignment is the employee's single active workplace assignment.
// Owned by the backend; the agent only holds a read-only cached copy.
type EmployeeAssignment struct {
	EmployeeID string
	Location   workplace.WorkplaceLocation
	AssignedBy string
	AssignedAt time.Time
}
