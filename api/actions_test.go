package api_test

import (
	"net/http"
	"testing"
)

func TestCreateActionTicket(t *testing.T) {
	srv, repo := newTestServer(t)
	seedProfile(t, repo, "7")
	seedProfile(t, repo, "10")

	status, body := doJSON(t, http.MethodPost, srv.URL+"/v1/actions", map[string]any{
		"submitted_by": "7",
		"subject_id":   "10",
		"issue":        "missed two sessions",
	})
	if status != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%v)", status, body)
	}
	if body["message"] != "action ticket created successfully" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
	created, ok := body["action"].(map[string]any)
	if !ok {
		t.Fatalf("expected created ticket: %v", body)
	}
	// new tickets open pending and unresolved
	if created["pending"] != true || created["resolved"] != false {
		t.Fatalf("wrong initial flags: %v", created)
	}
	if created["comments"] != nil {
		t.Fatalf("expected null comments: %v", created)
	}
}

func TestCreateActionTicketValidation(t *testing.T) {
	srv, repo := newTestServer(t)
	seedProfile(t, repo, "7")

	tests := []struct {
		name    string
		payload map[string]any
		want    string
	}{
		{"no submitter", map[string]any{"subject_id": "7", "issue": "x"}, "submitted_by is required"},
		{"no subject", map[string]any{"submitted_by": "7", "issue": "x"}, "subject_id is required"},
		{"no issue", map[string]any{"submitted_by": "7", "subject_id": "7"}, "issue is required"},
		{
			"unknown submitter",
			map[string]any{"submitted_by": "ghost", "subject_id": "7", "issue": "x"},
			"submitted_by must reference an existing profile",
		},
		{
			"unknown subject",
			map[string]any{"submitted_by": "7", "subject_id": "ghost", "issue": "x"},
			"subject_id must reference an existing profile",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, body := doJSON(t, http.MethodPost, srv.URL+"/v1/actions", tc.payload)
			if status != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d (%v)", status, body)
			}
			if body["message"] != tc.want {
				t.Fatalf("expected %q, got %v", tc.want, body["message"])
			}
		})
	}
}

func TestGetActionTicketNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, path := range []string{"/v1/actions/999", "/v1/actions/abc"} {
		status, body := doJSON(t, http.MethodGet, srv.URL+path, nil)
		if status != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", path, status)
		}
		if body["message"] != "action ticket id not found" {
			t.Fatalf("%s: unexpected message: %v", path, body["message"])
		}
	}
}

func TestUpdateActionTicket(t *testing.T) {
	srv, repo := newTestServer(t)
	seedProfile(t, repo, "7")
	seedProfile(t, repo, "10")

	status, _ := doJSON(t, http.MethodPost, srv.URL+"/v1/actions", map[string]any{
		"submitted_by": "7", "subject_id": "10", "issue": "late",
	})
	if status != http.StatusCreated {
		t.Fatalf("seed ticket: got %d", status)
	}

	status, body := doJSON(t, http.MethodPut, srv.URL+"/v1/actions/1", map[string]any{
		"pending":       false,
		"resolved":      true,
		"comments":      "handled offline",
		"unknown_field": "dropped",
	})
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d (%v)", status, body)
	}
	changes, ok := body["changes"].(map[string]any)
	if !ok {
		t.Fatalf("expected accepted changes echoed: %v", body)
	}
	if changes["resolved"] != true || changes["comments"] != "handled offline" {
		t.Fatalf("unexpected changes: %v", changes)
	}
	if _, present := changes["unknown_field"]; present {
		t.Fatalf("unknown field must be dropped: %v", changes)
	}

	// verify the row itself moved
	status, got := doJSON(t, http.MethodGet, srv.URL+"/v1/actions/1", nil)
	if status != http.StatusOK {
		t.Fatalf("get after update: %d", status)
	}
	if got["pending"] != false || got["resolved"] != true {
		t.Fatalf("update not persisted: %v", got)
	}
}

func TestDeleteActionTicket(t *testing.T) {
	srv, repo := newTestServer(t)
	seedProfile(t, repo, "7")
	seedProfile(t, repo, "10")

	status, _ := doJSON(t, http.MethodPost, srv.URL+"/v1/actions", map[string]any{
		"submitted_by": "7", "subject_id": "10", "issue": "late",
	})
	if status != http.StatusCreated {
		t.Fatalf("seed ticket: got %d", status)
	}

	status, body := doJSON(t, http.MethodDelete, srv.URL+"/v1/actions/1", nil)
	if status != http.StatusOK || body["message"] != "action ticket deleted" {
		t.Fatalf("expected 200 action ticket deleted, got %d %v", status, body)
	}

	status, body = doJSON(t, http.MethodDelete, srv.URL+"/v1/actions/1", nil)
	if status != http.StatusNotFound || body["message"] != "action ticket id not found" {
		t.Fatalf("expected 404, got %d %v", status, body)
	}
}
