package api

import (
	"encoding/json"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/underdog-devs/mentorship-api/pkg/models"
	"github.com/underdog-devs/mentorship-api/pkg/repository"
)

type ApplicationsHandler struct {
	applications repository.ApplicationRepo
	profiles     repository.ProfileRepo
	validate     *validator.Validate
}

func NewApplicationsHandler(ar repository.ApplicationRepo, pr repository.ProfileRepo) *ApplicationsHandler {
	v := validator.New()
	// report errors under json field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &ApplicationsHandler{applications: ar, profiles: pr, validate: v}
}

type createApplicationRequest struct {
	ProfileID string `json:"profile_id" validate:"required"`
	Position  int64  `json:"position" validate:"required,min=1"`
	Notes     string `json:"application_notes" validate:"max=255"`
}

func (h *ApplicationsHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.applications.ListApplications(r.Context())
	if err != nil {
		logger.Error("list applications", slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "failed to list applications")
		return
	}
	if rows == nil {
		rows = []models.ApplicationTicket{}
	}

	writeJSON(w, rows, http.StatusOK)
}

func (h *ApplicationsHandler) Get(w http.ResponseWriter, r *http.Request) {
	a, ok := h.lookup(w, r)
	if !ok {
		return
	}

	writeJSON(w, a, http.StatusOK)
}

func (h *ApplicationsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		errs := map[string]string{}
		if ve, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range ve {
				errs[fe.Field()] = fe.Tag()
			}
		}
		writeJSON(w, map[string]any{
			"message": "application validation failed",
			"errors":  errs,
		}, http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	exists, err := h.profiles.ProfileExists(ctx, req.ProfileID)
	if err != nil {
		logger.Error("check profile", slog.String("profile_id", req.ProfileID), slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "failed to create application")
		return
	}
	if !exists {
		writeMessage(w, http.StatusBadRequest, "profile_id must reference an existing profile")
		return
	}

	roleOK, err := h.profiles.RoleExists(ctx, req.Position)
	if err != nil {
		logger.Error("check role", slog.Int64("position", req.Position), slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "failed to create application")
		return
	}
	if !roleOK {
		writeMessage(w, http.StatusBadRequest, "position must reference an existing role")
		return
	}

	a := &models.ApplicationTicket{
		ProfileID: req.ProfileID,
		Position:  req.Position,
		Notes:     req.Notes,
	}
	id, err := h.applications.CreateApplication(ctx, a)
	if err != nil {
		logger.Error("create application", slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "failed to create application")
		return
	}

	created, err := h.applications.GetApplication(ctx, id)
	if err != nil || created == nil {
		logger.Error("refetch application", slog.Int64("application_id", id), slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "failed to create application")
		return
	}

	writeJSON(w, map[string]any{
		"message":     "application submitted",
		"application": created,
	}, http.StatusCreated)
}

// Update flips approval and annotates notes; other columns are ignored.
func (h *ApplicationsHandler) Update(w http.ResponseWriter, r *http.Request) {
	existing, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	changes := map[string]any{}
	for _, col := range []string{"approved", "application_notes"} {
		if v, ok := body[col]; ok {
			changes[col] = v
		}
	}

	ctx := r.Context()
	n, err := h.applications.UpdateApplication(ctx, existing.ApplicationID, changes)
	if err != nil {
		logger.Error("update application", slog.Int64("application_id", existing.ApplicationID), slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "failed to update application")
		return
	}
	if n == 0 {
		writeMessage(w, http.StatusNotFound, "application id not found")
		return
	}

	updated, err := h.applications.GetApplication(ctx, existing.ApplicationID)
	if err != nil || updated == nil {
		logger.Error("refetch application", slog.Int64("application_id", existing.ApplicationID), slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "failed to update application")
		return
	}

	writeJSON(w, updated, http.StatusOK)
}

func (h *ApplicationsHandler) lookup(w http.ResponseWriter, r *http.Request) (*models.ApplicationTicket, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "application id not found")
		return nil, false
	}

	a, err := h.applications.GetApplication(r.Context(), id)
	if err != nil {
		logger.Error("get application", slog.Int64("application_id", id), slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "failed to get application")
		return nil, false
	}
	if a == nil {
		writeMessage(w, http.StatusNotFound, "application id not found")
		return nil, false
	}

	return a, true
}
