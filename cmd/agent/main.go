package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/atlasfield/fieldops-agent-go/internal/api"
	"github.com/atlasfield/fieldops-agent-go/internal/config"
	appHTTP "github.com/atlasfield/fieldops-agent-go/internal/handler/http"
	"github.com/atlasfield/fieldops-agent-go/internal/pkg/kvstore"
	"github.com/atlasfield/fieldops-agent-go/internal/pkg/location"
	"github.com/atlasfield/fieldops-agent-go/internal/repository/localstore"
	"github.com/atlasfield/fieldops-agent-go/internal/repository/rest"
	assignmentService "github.com/atlasfield/fieldops-agent-go/internal/service/assignment"
	attendanceService "github.com/atlasfield/fieldops-agent-go/internal/service/attendance"
	deviceService "github.com/atlasfield/fieldops-agent-go/internal/service/device"
	geofenceService "github.com/atlasfield/fieldops-agent-go/internal/service/geofence"
	incidentService "github.com/atlasfield/fieldops-agent-go/internal/service/incident"
	inventoryService "github.com/atlasfield/fieldops-agent-go/internal/service/inventory"
	sessionService "github.com/atlasfield/fieldops-agent-go/internal/service/session"
	workplaceService "github.com/atlasfield/fieldops-agent-go/internal/service/workplace"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	var store kvstore.Store
	switch cfg.Store.Type {
	case "file":
		store, err = kvstore.NewFileStore(cfg.Store.Path)
		if err != nil {
			log.Fatal("Failed to initialize file store:", err)
		}
	case "redis":
		store, err = kvstore.NewRedisStore(cfg.Store.RedisAddr, cfg.Store.RedisPassword, cfg.Store.RedisDB, cfg.Store.RedisPrefix)
		if err != nil {
			log.Fatal("Failed to connect to redis store:", err)
		}
	default:
		log.Fatal("Unsupported store type: ", cfg.Store.Type)
	}

	client := api.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)

	locator := location.Static{Position: location.Position{
		Latitude:  cfg.Location.Latitude,
		Longitude: cfg.Location.Longitude,
		Accuracy:  cfg.Location.Accuracy,
	}}

	authRepo := rest.NewAuthRepository(client)
	workplaceRepo := rest.NewWorkplaceRepository(client)
	assignmentRepo := rest.NewAssignmentRepository(client)
	attendanceSubmitter := rest.NewAttendanceSubmitter(client)
	incidentRepo := rest.NewIncidentRepository(client)
	inventoryRepo := rest.NewInventoryRepository(client)
	passwordResetRepo := rest.NewPasswordResetRepository(client)
	recordStore := localstore.NewAttendanceStore(store)

	ctx := context.Background()

	sessions := sessionService.NewManager(authRepo, store, client)
	if err := sessions.Restore(ctx); err != nil {
		log.Fatal("Failed to restore session state:", err)
	}

	directory := workplaceService.NewDirectoryService(workplaceRepo)
	directory.Refresh(ctx)

	resolver := assignmentService.NewResolverService(assignmentRepo, assignmentService.DefaultCacheTTL)
	checker := geofenceService.NewEvaluator(resolver, locator)

	tracker, err := attendanceService.NewTracker(ctx, recordStore, attendanceSubmitter, checker, cfg.Policy)
	if err != nil {
		log.Fatal("Failed to load attendance records:", err)
	}

	unlocker := deviceService.NewPINUnlocker(store)
	reporter := incidentService.NewReporterService(incidentRepo, locator)
	requests := inventoryService.NewRequestService(inventoryRepo, directory)

	handlers := appHTTP.Handlers{
		Session:       appHTTP.NewSessionHandler(sessions),
		Device:        appHTTP.NewDeviceHandler(unlocker),
		Workplace:     appHTTP.NewWorkplaceHandler(directory),
		Assignment:    appHTTP.NewAssignmentHandler(resolver),
		Geofence:      appHTTP.NewGeofenceHandler(checker),
		Attendance:    appHTTP.NewAttendanceHandler(tracker, sessions),
		Incident:      appHTTP.NewIncidentHandler(reporter, sessions),
		Inventory:     appHTTP.NewInventoryHandler(requests, sessions),
		PasswordReset: appHTTP.NewPasswordResetHandler(passwordResetRepo),
	}

	router := appHTTP.NewRouter(cfg.App.Env, cfg.App.UIOrigin, handlers)

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	fmt.Printf("Agent API listening at http://%s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
