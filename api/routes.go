package api

import (
	"github.com/gorilla/mux"
	"github.com/underdog-devs/mentorship-api/internal/config"
	"github.com/underdog-devs/mentorship-api/internal/db"
	"github.com/underdog-devs/mentorship-api/internal/repository/sqlite"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, d *db.DB) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// Repository
	repo := sqlite.New(d, logger)

	// Create handlers
	systemHandler := &SystemHandler{}
	authHandler := NewAuthHandler(cfg.AdminKeyHash, cfg.JWTSecret, cfg.TokenDuration)
	profilesHandler := NewProfilesHandler(repo)
	assignmentsHandler := NewAssignmentsHandler(repo, repo)
	actionsHandler := NewActionsHandler(repo, repo)
	applicationsHandler := NewApplicationsHandler(repo, repo)
	intakeHandler := NewIntakeHandler(repo, repo)

	// Open endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")
	r.HandleFunc("/v1/auth/token", authHandler.Token).Methods("POST")

	// API v1 Protected routes
	apiV1 := r.PathPrefix("/v1").Subrouter()
	apiV1.Use(JWTAuthMiddlewareWithSecret(cfg.JWTSecret))

	// Profile endpoints
	apiV1.HandleFunc("/profiles", profilesHandler.List).Methods("GET")
	apiV1.HandleFunc("/profile/{id}", profilesHandler.Get).Methods("GET")
	apiV1.HandleFunc("/profile", profilesHandler.Create).Methods("POST")
	apiV1.HandleFunc("/profile", profilesHandler.Update).Methods("PUT")
	apiV1.HandleFunc("/profile/{id}", profilesHandler.Delete).Methods("DELETE")

	// Assignment endpoints
	apiV1.HandleFunc("/assignments", assignmentsHandler.List).Methods("GET")
	apiV1.HandleFunc("/assignments/mentor/{id}", assignmentsHandler.ListByMentor).Methods("GET")
	apiV1.HandleFunc("/assignments/mentee/{id}", assignmentsHandler.ListByMentee).Methods("GET")
	apiV1.HandleFunc("/assignments/{id}", assignmentsHandler.Get).Methods("GET")
	apiV1.HandleFunc("/assignments", assignmentsHandler.Create).Methods("POST")
	apiV1.HandleFunc("/assignments/{id}", assignmentsHandler.Update).Methods("PUT")
	apiV1.HandleFunc("/assignments/{id}", assignmentsHandler.Delete).Methods("DELETE")

	// Action ticket endpoints
	apiV1.HandleFunc("/actions", actionsHandler.List).Methods("GET")
	apiV1.HandleFunc("/actions/{id}", actionsHandler.Get).Methods("GET")
	apiV1.HandleFunc("/actions", actionsHandler.Create).Methods("POST")
	apiV1.HandleFunc("/actions/{id}", actionsHandler.Update).Methods("PUT")
	apiV1.HandleFunc("/actions/{id}", actionsHandler.Delete).Methods("DELETE")

	// Application ticket endpoints
	apiV1.HandleFunc("/applications", applicationsHandler.List).Methods("GET")
	apiV1.HandleFunc("/applications/{id}", applicationsHandler.Get).Methods("GET")
	apiV1.HandleFunc("/application", applicationsHandler.Create).Methods("POST")
	apiV1.HandleFunc("/application/{id}", applicationsHandler.Update).Methods("PUT")

	// Mentor intake endpoints
	apiV1.HandleFunc("/intake/mentor", intakeHandler.List).Methods("GET")
	apiV1.HandleFunc("/intake/mentor/{id}", intakeHandler.Get).Methods("GET")
	apiV1.HandleFunc("/intake/mentor", intakeHandler.Create).Methods("POST")

	return r
}
