package incident

import "context"

// Service files incident reports: validates, stamps the device position and
// a client-generated ID, and submits.
type Service interface {
	File(ctx context.Context, employeeID string, req ReportRequest) (Report, error)
}
