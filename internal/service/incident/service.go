package incident

import (
	"context"
	"fmt"
	"time"

	"github.com/atlasfield/fieldops-agent-go/internal/domain/incident"
	"github.com/atlasfield/fieldops-agent-go/internal/pkg/location"
	"github.com/google/uuid"
)

// ReporterService files incident reports stamped with the device position.
type ReporterService struct {
	repo    incident.Repository
	locator location.Provider
	now     func() time.Time
}

func NewReporterService(repo incident.Repository, locator location.Provider) *ReporterService {
	return &ReporterService{
		repo:    repo,
		locator: locator,
		now:     time.Now,
	}
}

// File implements incident.Service.
func (s *ReporterService) File(ctx context.Context, employeeID string, req incident.ReportRequest) (incident.Report, error) {
	if err := req.Validate(); err != nil {
		return incident.Report{}, err
	}

	pos, err := s.locator.Current(ctx)
	if err != nil {
		return incident.Report{}, fmt.Errorf("incident report needs a location fix: %w", err)
	}

	report := incident.Report{
		ID:          uuid.NewString(),
		EmployeeID:  employeeID,
		Category:    req.Category,
		Description: req.Description,
		Latitude:    pos.Latitude,
		Longitude:   pos.Longitude,
		OccurredAt:  s.now(),
	}

	if err := s.repo.Submit(ctx, report, req.Media); err != nil {
		return incident.Report{}, err
	}
	return report, nil
}
