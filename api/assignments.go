package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"log/slog"

	"github.com/gorilla/mux"
	"github.com/underdog-devs/mentorship-api/internal/validation"
	"github.com/underdog-devs/mentorship-api/pkg/models"
	"github.com/underdog-devs/mentorship-api/pkg/repository"
)

type AssignmentsHandler struct {
	assignments repository.AssignmentRepo
	profiles    repository.ProfileRepo
}

func NewAssignmentsHandler(ar repository.AssignmentRepo, pr repository.ProfileRepo) *AssignmentsHandler {
	return &AssignmentsHandler{assignments: ar, profiles: pr}
}

func (h *AssignmentsHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.assignments.ListAssignments(r.Context())
	if err != nil {
		logger.Error("list assignments", slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "failed to list assignments")
		return
	}
	if rows == nil {
		rows = []models.Assignment{}
	}

	writeJSON(w, rows, http.StatusOK)
}

func (h *AssignmentsHandler) Get(w http.ResponseWriter, r *http.Request) {
	a, ok := h.lookup(w, r)
	if !ok {
		return
	}

	writeJSON(w, a, http.StatusOK)
}

func (h *AssignmentsHandler) ListByMentor(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	rows, err := h.assignments.ListByMentor(r.Context(), id)
	if err != nil {
		logger.Error("list assignments by mentor", slog.String("mentor_id", id), slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "failed to list assignments")
		return
	}
	if len(rows) == 0 {
		writeNotFound(w, "Assignment Not Found, Check mentor ID")
		return
	}

	writeJSON(w, rows, http.StatusOK)
}

func (h *AssignmentsHandler) ListByMentee(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	rows, err := h.assignments.ListByMentee(r.Context(), id)
	if err != nil {
		logger.Error("list assignments by mentee", slog.String("mentee_id", id), slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "failed to list assignments")
		return
	}
	if len(rows) == 0 {
		writeNotFound(w, "Assignment Not Found, Check mentee ID")
		return
	}

	writeJSON(w, rows, http.StatusOK)
}

// Create inserts a new pairing from exactly {mentor_id, mentee_id}; extra
// fields in the body are ignored. Both ids must name existing profiles.
func (h *AssignmentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		body = nil
	}
	if msg := validation.NewAssignment(body); msg != "" {
		writeMessage(w, http.StatusBadRequest, msg)
		return
	}

	mentorID, _ := body["mentor_id"].(string)
	menteeID, _ := body["mentee_id"].(string)

	ctx := r.Context()
	if !h.profileExists(w, ctx, mentorID, "mentor_id") {
		return
	}
	if !h.profileExists(w, ctx, menteeID, "mentee_id") {
		return
	}

	a := &models.Assignment{MentorID: mentorID, MenteeID: menteeID}
	id, err := h.assignments.CreateAssignment(ctx, a)
	if err != nil {
		logger.Error("create assignment", slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "failed to create assignment")
		return
	}

	created, err := h.assignments.GetAssignment(ctx, id)
	if err != nil || created == nil {
		logger.Error("refetch assignment", slog.Int64("assignment_id", id), slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "failed to create assignment")
		return
	}

	writeJSON(w, created, http.StatusCreated)
}

func (h *AssignmentsHandler) Update(w http.ResponseWriter, r *http.Request) {
	existing, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx := r.Context()
	if v, ok := body["mentor_id"]; ok {
		s, _ := v.(string)
		if !h.profileExists(w, ctx, s, "mentor_id") {
			return
		}
	}
	if v, ok := body["mentee_id"]; ok {
		s, _ := v.(string)
		if !h.profileExists(w, ctx, s, "mentee_id") {
			return
		}
	}

	n, err := h.assignments.UpdateAssignment(ctx, existing.AssignmentID, body)
	if err != nil {
		logger.Error("update assignment", slog.Int64("assignment_id", existing.AssignmentID), slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "failed to update assignment")
		return
	}
	if n == 0 {
		writeMessage(w, http.StatusNotFound, "assignment not found")
		return
	}

	updated, err := h.assignments.GetAssignment(ctx, existing.AssignmentID)
	if err != nil {
		logger.Error("refetch assignment", slog.Int64("assignment_id", existing.AssignmentID), slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "failed to update assignment")
		return
	}
	if updated == nil {
		// deleted between update and refetch
		writeMessage(w, http.StatusNotFound, "assignment not found")
		return
	}

	writeJSON(w, map[string]any{
		"message": fmt.Sprintf("Assignment '%d' updated", updated.AssignmentID),
		"success": updated,
	}, http.StatusOK)
}

func (h *AssignmentsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	existing, ok := h.lookup(w, r)
	if !ok {
		return
	}

	deleted, err := h.assignments.DeleteAssignment(r.Context(), existing.AssignmentID)
	if err != nil {
		logger.Error("delete assignment", slog.Int64("assignment_id", existing.AssignmentID), slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "failed to delete assignment")
		return
	}
	if !deleted {
		writeMessage(w, http.StatusNotFound, "assignment not found")
		return
	}

	writeMessage(w, http.StatusOK, "assignment deleted")
}

// lookup resolves the {id} path variable to an assignment, answering 404 when
// the id does not parse or matches nothing.
func (h *AssignmentsHandler) lookup(w http.ResponseWriter, r *http.Request) (*models.Assignment, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "assignment not found")
		return nil, false
	}

	a, err := h.assignments.GetAssignment(r.Context(), id)
	if err != nil {
		logger.Error("get assignment", slog.Int64("assignment_id", id), slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "failed to get assignment")
		return nil, false
	}
	if a == nil {
		writeMessage(w, http.StatusNotFound, "assignment not found")
		return nil, false
	}

	return a, true
}

// profileExists answers 400 or 500 itself when the check fails; the caller
// only proceeds on true.
func (h *AssignmentsHandler) profileExists(w http.ResponseWriter, ctx context.Context, id, field string) bool {
	exists, err := h.profiles.ProfileExists(ctx, id)
	if err != nil {
		logger.Error("check profile", slog.String("profile_id", id), slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "failed to verify "+field)
		return false
	}
	if !exists {
		writeMessage(w, http.StatusBadRequest, field+" must reference an existing profile")
		return false
	}
	return true
}
