package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"log/slog"

	"github.com/gorilla/mux"
	"github.com/underdog-devs/mentorship-api/internal/validation"
	"github.com/underdog-devs/mentorship-api/pkg/models"
	"github.com/underdog-devs/mentorship-api/pkg/repository"
)

type ActionsHandler struct {
	actions  repository.ActionRepo
	profiles repository.ProfileRepo
}

func NewActionsHandler(ar repository.ActionRepo, pr repository.ProfileRepo) *ActionsHandler {
	return &ActionsHandler{actions: ar, profiles: pr}
}

type createActionRequest struct {
	SubmittedBy string `json:"submitted_by"`
	SubjectID   string `json:"subject_id"`
	Issue       string `json:"issue"`
	Strike      bool   `json:"strike"`
}

func (h *ActionsHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.actions.ListActions(r.Context())
	if err != nil {
		logger.Error("list action tickets", slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "failed to list action tickets")
		return
	}
	if rows == nil {
		rows = []models.ActionTicket{}
	}

	writeJSON(w, rows, http.StatusOK)
}

func (h *ActionsHandler) Get(w http.ResponseWriter, r *http.Request) {
	a, ok := h.lookup(w, r)
	if !ok {
		return
	}

	writeJSON(w, a, http.StatusOK)
}

func (h *ActionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if msg := validation.NewAction(req.SubmittedBy, req.SubjectID, req.Issue); msg != "" {
		writeMessage(w, http.StatusBadRequest, msg)
		return
	}

	ctx := r.Context()
	for _, ref := range []struct{ field, id string }{
		{"submitted_by", req.SubmittedBy},
		{"subject_id", req.SubjectID},
	} {
		exists, err := h.profiles.ProfileExists(ctx, ref.id)
		if err != nil {
			logger.Error("check profile", slog.String("profile_id", ref.id), slog.Any("err", err))
			writeMessage(w, http.StatusInternalServerError, "failed to create action ticket")
			return
		}
		if !exists {
			writeMessage(w, http.StatusBadRequest, ref.field+" must reference an existing profile")
			return
		}
	}

	// new tickets open in the pending state
	a := &models.ActionTicket{
		SubmittedBy: req.SubmittedBy,
		SubjectID:   req.SubjectID,
		Issue:       req.Issue,
		Pending:     true,
		Strike:      req.Strike,
	}
	id, err := h.actions.CreateAction(ctx, a)
	if err != nil {
		logger.Error("create action ticket", slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "failed to create action ticket")
		return
	}

	created, err := h.actions.GetAction(ctx, id)
	if err != nil || created == nil {
		logger.Error("refetch action ticket", slog.Int64("action_ticket_id", id), slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "failed to create action ticket")
		return
	}

	writeJSON(w, map[string]any{
		"message": "action ticket created successfully",
		"action":  created,
	}, http.StatusCreated)
}

// Update applies a partial change set and echoes the accepted fields back.
func (h *ActionsHandler) Update(w http.ResponseWriter, r *http.Request) {
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
	for _, col := range []string{"issue", "pending", "resolved", "strike", "comments"} {
		if v, ok := body[col]; ok {
			changes[col] = v
		}
	}

	n, err := h.actions.UpdateAction(r.Context(), existing.ActionTicketID, changes)
	if err != nil {
		logger.Error("update action ticket", slog.Int64("action_ticket_id", existing.ActionTicketID), slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "failed to update action ticket")
		return
	}
	if n == 0 {
		writeMessage(w, http.StatusNotFound, "action ticket id not found")
		return
	}

	writeJSON(w, map[string]any{"changes": changes}, http.StatusOK)
}

func (h *ActionsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	existing, ok := h.lookup(w, r)
	if !ok {
		return
	}

	deleted, err := h.actions.DeleteAction(r.Context(), existing.ActionTicketID)
	if err != nil {
		logger.Error("delete action ticket", slog.Int64("action_ticket_id", existing.ActionTicketID), slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "failed to delete action ticket")
		return
	}
	if !deleted {
		writeMessage(w, http.StatusNotFound, "action ticket id not found")
		return
	}

	writeMessage(w, http.StatusOK, "action ticket deleted")
}

func (h *ActionsHandler) lookup(w http.ResponseWriter, r *http.Request) (*models.ActionTicket, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "action ticket id not found")
		return nil, false
	}

	a, err := h.actions.GetAction(r.Context(), id)
	if err != nil {
		logger.Error("get action ticket", slog.Int64("action_ticket_id", id), slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "failed to get action ticket")
		return nil, false
	}
	if a == nil {
		writeMessage(w, http.StatusNotFound, "action ticket id not found")
		return nil, false
	}

	return a, true
}
