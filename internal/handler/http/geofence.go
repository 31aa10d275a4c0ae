package http

import (
	"net/http"

	"github.com/atlasfield/fieldops-agent-go/internal/domain/geofence"
	"github.com/atlasfield/fieldops-agent-go/internal/handler/http/response"
)

type GeofenceHandler interface {
	Check(w http.ResponseWriter, r *http.Request)
}

type geofenceHandlerImpl struct {
	checker geofence.Checker
}

func NewGeofenceHandler(checker geofence.Checker) GeofenceHandler {
	return &geofenceHandlerImpl{
		checker: checker,
	}
}

// Check implements GeofenceHandler. A check never fails at the HTTP level;
// failure modes ride inside the result so the UI can render them inline.
func (h *geofenceHandlerImpl) Check(w http.ResponseWriter, r *http.Request) {
	var result geofence.CheckResult
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		result = h.checker.CheckEmployee(r.Context(), employeeID)
	} else {
		result = h.checker.CheckMine(r.Context())
	}
	response.Success(w, result)
}
