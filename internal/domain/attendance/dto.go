package attendance

import "github.com/atlasfield/fieldops-agent-go/internal/domain/geofence"

// ========================================
// ATTENDANCE DTOs
// ========================================

type ClockResponse struct {
	Date     string               `json:"date"`
	Status   Status               `json:"status"`
	Record   Record               `json:"record"`
	Geofence geofence.CheckResult `json:"geofence"`
}

type TodayResponse struct {
	Date         string              `json:"date"`
	Status       Status              `json:"status"`
	Record       Record              `json:"record"`
	Availability ClockInAvailability `json:"clock_in"`
}

type CountdownResponse struct {
	RemainingMillis int64 `json:"remaining_millis"`
}
