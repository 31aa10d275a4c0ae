package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

// Handlers collects everything the router mounts.
type Handlers struct {
	Session       SessionHandler
	Device        DeviceHandler
	Workplace     WorkplaceHandler
	Assignment    AssignmentHandler
	Geofence      GeofenceHandler
	Attendance    AttendanceHandler
	Incident      IncidentHandler
	Inventory     InventoryHandler
	PasswordReset PasswordResetHandler
}

func NewRouter(env, uiOrigin string, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "fieldops-agent"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{uiOrigin},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/session", func(r chi.Router) {
			r.Post("/login", h.Session.Login)
			r.Post("/logout", h.Session.Logout)
			r.Get("/me", h.Session.Me)
		})

		r.Route("/device", func(r chi.Router) {
			r.Post("/unlock", h.Device.Unlock)
			r.Post("/pin", h.Device.EnrollPIN)
		})

		r.Route("/workplaces", func(r chi.Router) {
			r.Get("/", h.Workplace.List)
			r.Post("/refresh", h.Workplace.Refresh)
		})

		r.Route("/assignment", func(r chi.Router) {
			r.Get("/", h.Assignment.Get)
			r.Post("/refresh", h.Assignment.Refresh)
		})

		r.Get("/geofence/check", h.Geofence.Check)

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/today", h.Attendance.Today)
			r.Post("/clock-in", h.Attendance.ClockIn)
			r.Post("/clock-out", h.Attendance.ClockOut)
			r.Get("/countdown", h.Attendance.Countdown)
		})

		r.Post("/incidents", h.Incident.Create)
		r.Post("/inventory/requests", h.Inventory.CreateRequest)
		r.Post("/reassignment/requests", h.Inventory.CreateReassignment)

		r.Route("/password-resets", func(r chi.Router) {
			r.Post("/", h.PasswordReset.Create)
			r.Get("/", h.PasswordReset.List)
		})
	})
	return r
}
