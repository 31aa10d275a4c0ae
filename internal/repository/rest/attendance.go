package rest

import (
	"context"
	"fmt"
	"time"

	"github.com/atlasfield/fieldops-agent-go/internal/api"
	"github.com/atlasfield/fieldops-agent-go/internal/domain/attendance"
)

type AttendanceSubmitter struct {
	client *api.Client
}

func NewAttendanceSubmitter(client *api.Client) *AttendanceSubmitter {
	return &AttendanceSubmitter{client: client}
}

type clockEventDTO struct {
	EmployeeID string    `json:"employee_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Timestamp  time.Time `json:"timestamp"`
}

func toClockEventDTO(sub attendance.Submission) clockEventDTO {
	return clockEventDTO{
		EmployeeID: sub.EmployeeID,
		Latitude:   sub.Latitude,
		Longitude:  sub.Longitude,
		Timestamp:  sub.At,
	}
}

// SubmitClockIn implements attendance.Submitter.
func (s *AttendanceSubmitter) SubmitClockIn(ctx context.Context, sub attendance.Submission) error {
	if err := s.client.Post(ctx, "/api/v1/attendance/clock-in", toClockEventDTO(sub), nil); err != nil {
		return fmt.Errorf("failed to submit clock-in: %w", err)
	}
	return nil
}

// SubmitClockOut implements attendance.Submitter.
func (s *AttendanceSubmitter) SubmitClockOut(ctx context.Context, sub attendance.Submission) error {
	if err := s.client.Post(ctx, "/api/v1/attendance/clock-out", toClockEventDTO(sub), nil); err != nil {
		return fmt.Errorf("failed to submit clock-out: %w", err)
	}
	return nil
}
