package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/atlasfield/fieldops-agent-go/internal/domain/incident"
	"github.com/atlasfield/fieldops-agent-go/internal/domain/user"
	"github.com/atlasfield/fieldops-agent-go/internal/handler/http/response"
)

type IncidentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
}

type incidentHandlerImpl struct {
	reporter incident.Service
	sessions user.SessionManager
}

func NewIncidentHandler(reporter incident.Service, sessions user.SessionManager) IncidentHandler {
	return &incidentHandlerImpl{
		reporter: reporter,
		sessions: sessions,
	}
}

// Create implements IncidentHandler.
func (h *incidentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	current, err := h.sessions.Current(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req incident.ReportRequest

	// Parse multipart form (max 20MB)
	if err := r.ParseMultipartForm(20 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	dataJSON := r.FormValue("data")
	if dataJSON == "" {
		response.BadRequest(w, "Field 'data' is required", nil)
		return
	}
	if err := json.Unmarshal([]byte(dataJSON), &req); err != nil {
		slog.Error("Failed to unmarshal JSON data", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Media attachments are optional.
	if r.MultipartForm != nil {
		for _, fh := range r.MultipartForm.File["media"] {
			file, err := fh.Open()
			if err != nil {
				slog.Error("Failed to open uploaded media", "error", err, "filename", fh.Filename)
				response.BadRequest(w, "Invalid file upload", nil)
				return
			}
			defer file.Close()
			req.Media = append(req.Media, incident.Attachment{
				Filename:    fh.Filename,
				ContentType: fh.Header.Get("Content-Type"),
				Reader:      file,
			})
		}
	}

	report, err := h.reporter.File(r.Context(), current.EmployeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Incident report filed", report)
}
