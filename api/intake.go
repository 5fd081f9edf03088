package api

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"log/slog"

	"github.com/gorilla/mux"
	"github.com/qri-io/jsonschema"
	"github.com/underdog-devs/mentorship-api/pkg/models"
	"github.com/underdog-devs/mentorship-api/pkg/repository"
)

//go:embed intake_schema.json
var intakeSchemaJSON []byte

type IntakeHandler struct {
	intakes  repository.IntakeRepo
	profiles repository.ProfileRepo
	schema   *jsonschema.Schema
}

func NewIntakeHandler(ir repository.IntakeRepo, pr repository.ProfileRepo) *IntakeHandler {
	// the schema is an embedded asset; a parse failure is a programming error
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal(intakeSchemaJSON, rs); err != nil {
		panic(fmt.Sprintf("intake schema: %v", err))
	}
	return &IntakeHandler{intakes: ir, profiles: pr, schema: rs}
}

func (h *IntakeHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.intakes.ListIntakes(r.Context())
	if err != nil {
		logger.Error("list mentor intakes", slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "failed to list mentor intakes")
		return
	}
	if rows == nil {
		rows = []models.MentorIntake{}
	}

	writeJSON(w, rows, http.StatusOK)
}

func (h *IntakeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "mentor intake id not found")
		return
	}

	m, err := h.intakes.GetIntake(r.Context(), id)
	if err != nil {
		logger.Error("get mentor intake", slog.Int64("mentor_intake_id", id), slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "failed to get mentor intake")
		return
	}
	if m == nil {
		writeMessage(w, http.StatusNotFound, "mentor intake id not found")
		return
	}

	writeJSON(w, m, http.StatusOK)
}

// Create validates the submitted form against the embedded JSON schema before
// touching the database; the first violation is reported to the client.
func (h *IntakeHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx := r.Context()
	if msg := h.validateForm(ctx, body); msg != "" {
		writeMessage(w, http.StatusBadRequest, msg)
		return
	}

	var m models.MentorIntake
	if err := json.Unmarshal(body, &m); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	exists, err := h.profiles.ProfileExists(ctx, m.ProfileID)
	if err != nil {
		logger.Error("check profile", slog.String("profile_id", m.ProfileID), slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "failed to submit mentor intake")
		return
	}
	if !exists {
		writeMessage(w, http.StatusBadRequest, "profile_id must reference an existing profile")
		return
	}

	id, err := h.intakes.CreateIntake(ctx, &m)
	if err != nil {
		logger.Error("create mentor intake", slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "failed to submit mentor intake")
		return
	}

	created, err := h.intakes.GetIntake(ctx, id)
	if err != nil || created == nil {
		logger.Error("refetch mentor intake", slog.Int64("mentor_intake_id", id), slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "failed to submit mentor intake")
		return
	}

	writeJSON(w, map[string]any{
		"message": "mentor intake submitted",
		"intake":  created,
	}, http.StatusCreated)
}

func (h *IntakeHandler) validateForm(ctx context.Context, body []byte) string {
	keyErrs, err := h.schema.ValidateBytes(ctx, body)
	if err != nil {
		return "invalid request body"
	}
	if len(keyErrs) > 0 {
		ke := keyErrs[0]
		return fmt.Sprintf("%s: %s", ke.PropertyPath, ke.Message)
	}
	return ""
}
