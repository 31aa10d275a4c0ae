package rest

import (
	"context"
	"fmt"
	"time"

	"github.com/atlasfield/fieldops-agent-go/internal/api"
	"github.com/atlasfield/fieldops-agent-go/internal/domain/incident"
)

type IncidentRepository struct {
	client *api.Client
}

func NewIncidentRepository(client *api.Client) *IncidentRepository {
	return &IncidentRepository{client: client}
}

type incidentDTO struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employee_id"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// Submit implements incident.Repository. Media travels as multipart file
// parts next to the JSON "data" field.
func (r *IncidentRepository) Submit(ctx context.Context, report incident.Report, media []incident.Attachment) error {
	dto := incidentDTO{
		ID:          report.ID,
		EmployeeID:  report.EmployeeID,
		Category:    report.Category,
		Description: report.Description,
		Latitude:    report.Latitude,
		Longitude:   report.Longitude,
		OccurredAt:  report.OccurredAt,
	}

	files := make([]api.MultipartFile, 0, len(media))
	for _, m := range media {
		files = append(files, api.MultipartFile{
			Field:       "media",
			Filename:    m.Filename,
			ContentType: m.ContentType,
			Reader:      m.Reader,
		})
	}

	if err := r.client.PostMultipart(ctx, "/api/v1/incidents", dto, files, nil); err != nil {
		return fmt.Errorf("%w: %v", incident.ErrSubmitFailed, err)
	}
	return nil
}
