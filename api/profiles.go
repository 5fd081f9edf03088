package api

import (
	"encoding/json"
	"net/http"

	"log/slog"

	"github.com/gorilla/mux"
	"github.com/underdog-devs/mentorship-api/internal/validation"
	"github.com/underdog-devs/mentorship-api/pkg/models"
	"github.com/underdog-devs/mentorship-api/pkg/repository"
)

type ProfilesHandler struct {
	profiles repository.ProfileRepo
}

func NewProfilesHandler(pr repository.ProfileRepo) *ProfilesHandler {
	return &ProfilesHandler{profiles: pr}
}

type createProfileRequest struct {
	ProfileID      string  `json:"profile_id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Email          string  `json:"email"`
	RoleID         *int64  `json:"role_id"`
	IsActive       *bool   `json:"is_active"`
	ProgressID     *int64  `json:"progress_id"`
	ProgressStatus *string `json:"progress_status"`
}

func (h *ProfilesHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.profiles.ListProfiles(r.Context())
	if err != nil {
		logger.Error("list profiles", slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "failed to list profiles")
		return
	}
	if rows == nil {
		rows = []models.Profile{}
	}

	writeJSON(w, rows, http.StatusOK)
}

func (h *ProfilesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	p, err := h.profiles.GetProfile(r.Context(), id)
	if err != nil {
		logger.Error("get profile", slog.String("profile_id", id), slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "failed to get profile")
		return
	}
	if p == nil {
		writeNotFound(w, "ProfileNotFound")
		return
	}

	writeJSON(w, p, http.StatusOK)
}

func (h *ProfilesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if msg := validation.NewProfile(req.ProfileID, req.FirstName, req.LastName, req.Email); msg != "" {
		writeMessage(w, http.StatusBadRequest, msg)
		return
	}

	ctx := r.Context()

	if req.RoleID != nil {
		ok, err := h.profiles.RoleExists(ctx, *req.RoleID)
		if err != nil {
			logger.Error("check role", slog.Any("err", err))
			writeMessage(w, http.StatusInternalServerError, "failed to create profile")
			return
		}
		if !ok {
			writeMessage(w, http.StatusBadRequest, "role_id must reference an existing role")
			return
		}
	}

	exists, err := h.profiles.ProfileExists(ctx, req.ProfileID)
	if err != nil {
		logger.Error("check profile", slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "failed to create profile")
		return
	}
	if exists {
		writeMessage(w, http.StatusBadRequest, "profile_id already exists")
		return
	}

	p := &models.Profile{
		ProfileID:      req.ProfileID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		RoleID:         req.RoleID,
		IsActive:       req.IsActive,
		ProgressID:     req.ProgressID,
		ProgressStatus: req.ProgressStatus,
	}
	if err := h.profiles.CreateProfile(ctx, p); err != nil {
		logger.Error("create profile", slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "failed to create profile")
		return
	}

	created, err := h.profiles.GetProfile(ctx, req.ProfileID)
	if err != nil || created == nil {
		logger.Error("refetch profile", slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "failed to create profile")
		return
	}

	writeJSON(w, map[string]any{
		"message": "profile created",
		"profile": created,
	}, http.StatusCreated)
}

// Update applies a partial change set keyed on the profile_id in the body.
// Only supplied fields are validated and written.
func (h *ProfilesHandler) Update(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, _ := body["profile_id"].(string)
	if id == "" {
		writeMessage(w, http.StatusBadRequest, "profile_id is required")
		return
	}

	ctx := r.Context()

	existing, err := h.profiles.GetProfile(ctx, id)
	if err != nil {
		logger.Error("get profile", slog.String("profile_id", id), slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "failed to update profile")
		return
	}
	if existing == nil {
		writeNotFound(w, "ProfileNotFound")
		return
	}

	if msg := validation.ProfileChanges(body); msg != "" {
		writeMessage(w, http.StatusBadRequest, msg)
		return
	}

	if v, ok := body["role_id"]; ok {
		roleID, ok := v.(float64)
		if !ok {
			writeMessage(w, http.StatusBadRequest, "role_id must reference an existing role")
			return
		}
		found, err := h.profiles.RoleExists(ctx, int64(roleID))
		if err != nil {
			logger.Error("check role", slog.Any("err", err))
			writeMessage(w, http.StatusInternalServerError, "failed to update profile")
			return
		}
		if !found {
			writeMessage(w, http.StatusBadRequest, "role_id must reference an existing role")
			return
		}
	}

	if _, err := h.profiles.UpdateProfile(ctx, id, body); err != nil {
		logger.Error("update profile", slog.String("profile_id", id), slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "failed to update profile")
		return
	}

	updated, err := h.profiles.GetProfile(ctx, id)
	if err != nil || updated == nil {
		logger.Error("refetch profile", slog.String("profile_id", id), slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "failed to update profile")
		return
	}

	writeJSON(w, updated, http.StatusOK)
}

// Delete removes a profile that nothing references. Rows still pointed at by
// assignments, tickets, applications, or intake forms answer 409 to mirror
// the RESTRICT constraints.
func (h *ProfilesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	ctx := r.Context()

	existing, err := h.profiles.GetProfile(ctx, id)
	if err != nil {
		logger.Error("get profile", slog.String("profile_id", id), slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "failed to delete profile")
		return
	}
	if existing == nil {
		writeNotFound(w, "ProfileNotFound")
		return
	}

	referenced, err := h.profiles.ProfileReferenced(ctx, id)
	if err != nil {
		logger.Error("check references", slog.String("profile_id", id), slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "failed to delete profile")
		return
	}
	if referenced {
		writeMessage(w, http.StatusConflict, "profile is still referenced by other records")
		return
	}

	if _, err := h.profiles.DeleteProfile(ctx, id); err != nil {
		logger.Error("delete profile", slog.String("profile_id", id), slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "failed to delete profile")
		return
	}

	writeMessage(w, http.StatusOK, "profile deleted")
}
