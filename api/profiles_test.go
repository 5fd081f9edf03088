package api_test

import (
	"net/http"
	"testing"
)

func TestListProfilesEmpty(t *testing.T) {
	srv, _ := newTestServer(t)

	status, items := getList(t, srv.URL+"/v1/profiles")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty array, got %#v", items)
	}
}

func TestCreateAndGetProfile(t *testing.T) {
	srv, _ := newTestServer(t)

	payload := map[string]any{
		"profile_id": "00u13oned0U8XP8Mb4x7",
		"first_name": "User",
		"last_name":  "Mentor",
		"email":      "mentor@example.com",
		"role_id":    4,
	}
	status, body := doJSON(t, http.MethodPost, srv.URL+"/v1/profile", payload)
	if status != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%v)", status, body)
	}
	if body["message"] != "profile created" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
	created, ok := body["profile"].(map[string]any)
	if !ok {
		t.Fatalf("expected created profile in body: %v", body)
	}
	if created["profile_id"] != "00u13oned0U8XP8Mb4x7" {
		t.Fatalf("wrong profile returned: %v", created)
	}
	if created["updated"] == nil || created["updated"].(float64) == 0 {
		t.Fatalf("expected updated timestamp: %v", created)
	}

	status, body = doJSON(t, http.MethodGet, srv.URL+"/v1/profile/00u13oned0U8XP8Mb4x7", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if body["email"] != "mentor@example.com" {
		t.Fatalf("unexpected profile: %v", body)
	}
}

func TestCreateProfileValidation(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		name    string
		payload map[string]any
		want    string
	}{
		{
			"missing profile_id",
			map[string]any{"first_name": "User", "last_name": "Person", "email": "a@b.com"},
			"profile_id is required",
		},
		{
			"short first_name",
			map[string]any{"profile_id": "x", "first_name": "U", "last_name": "Person", "email": "a@b.com"},
			"first_name must be between 2-50 chars",
		},
		{
			"missing last_name",
			map[string]any{"profile_id": "x", "first_name": "User", "email": "a@b.com"},
			"last_name is required",
		},
		{
			"bad email",
			map[string]any{"profile_id": "x", "first_name": "User", "last_name": "Person", "email": "nope"},
			"email must be validly formatted",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, body := doJSON(t, http.MethodPost, srv.URL+"/v1/profile", tc.payload)
			if status != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", status)
			}
			if body["message"] != tc.want {
				t.Fatalf("expected %q, got %v", tc.want, body["message"])
			}
		})
	}
}

func TestCreateProfileDuplicate(t *testing.T) {
	srv, repo := newTestServer(t)
	seedProfile(t, repo, "7")

	payload := map[string]any{
		"profile_id": "7",
		"first_name": "User",
		"last_name":  "Person",
		"email":      "dup@example.com",
	}
	status, body := doJSON(t, http.MethodPost, srv.URL+"/v1/profile", payload)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if body["message"] != "profile_id already exists" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestCreateProfileUnknownRole(t *testing.T) {
	srv, _ := newTestServer(t)

	payload := map[string]any{
		"profile_id": "x",
		"first_name": "User",
		"last_name":  "Person",
		"email":      "a@b.com",
		"role_id":    42,
	}
	status, body := doJSON(t, http.MethodPost, srv.URL+"/v1/profile", payload)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if body["message"] != "role_id must reference an existing role" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestGetProfileNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	status, body := doJSON(t, http.MethodGet, srv.URL+"/v1/profile/missing", nil)
	if status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
	if body["error"] != "ProfileNotFound" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	srv, repo := newTestServer(t)
	seedProfile(t, repo, "7")

	status, body := doJSON(t, http.MethodPut, srv.URL+"/v1/profile", map[string]any{
		"profile_id": "7",
		"first_name": "Changed",
	})
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d (%v)", status, body)
	}
	if body["first_name"] != "Changed" {
		t.Fatalf("first_name not updated: %v", body)
	}
	// untouched fields survive
	if body["last_name"] != "Person" || body["email"] != "7@example.com" {
		t.Fatalf("unrelated fields changed: %v", body)
	}
}

func TestUpdateProfileErrors(t *testing.T) {
	srv, repo := newTestServer(t)
	seedProfile(t, repo, "7")

	// missing profile_id
	status, body := doJSON(t, http.MethodPut, srv.URL+"/v1/profile", map[string]any{"first_name": "X"})
	if status != http.StatusBadRequest || body["message"] != "profile_id is required" {
		t.Fatalf("expected 400 profile_id is required, got %d %v", status, body)
	}

	// unknown profile
	status, body = doJSON(t, http.MethodPut, srv.URL+"/v1/profile", map[string]any{
		"profile_id": "missing", "first_name": "Xy",
	})
	if status != http.StatusNotFound || body["error"] != "ProfileNotFound" {
		t.Fatalf("expected 404 ProfileNotFound, got %d %v", status, body)
	}

	// invalid supplied field
	status, body = doJSON(t, http.MethodPut, srv.URL+"/v1/profile", map[string]any{
		"profile_id": "7", "email": "nope",
	})
	if status != http.StatusBadRequest || body["message"] != "email must be validly formatted" {
		t.Fatalf("expected 400 email message, got %d %v", status, body)
	}

	// unknown role
	status, body = doJSON(t, http.MethodPut, srv.URL+"/v1/profile", map[string]any{
		"profile_id": "7", "role_id": 42,
	})
	if status != http.StatusBadRequest || body["message"] != "role_id must reference an existing role" {
		t.Fatalf("expected 400 role message, got %d %v", status, body)
	}
}

func TestDeleteProfile(t *testing.T) {
	srv, repo := newTestServer(t)
	seedProfile(t, repo, "free")

	status, body := doJSON(t, http.MethodDelete, srv.URL+"/v1/profile/free", nil)
	if status != http.StatusOK || body["message"] != "profile deleted" {
		t.Fatalf("expected 200 profile deleted, got %d %v", status, body)
	}

	// gone now
	status, body = doJSON(t, http.MethodDelete, srv.URL+"/v1/profile/free", nil)
	if status != http.StatusNotFound || body["error"] != "ProfileNotFound" {
		t.Fatalf("expected 404, got %d %v", status, body)
	}
}

func TestDeleteReferencedProfileConflicts(t *testing.T) {
	srv, repo := newTestServer(t)
	seedProfile(t, repo, "7")
	seedProfile(t, repo, "10")

	status, _ := doJSON(t, http.MethodPost, srv.URL+"/v1/assignments", map[string]any{
		"mentor_id": "7", "mentee_id": "10",
	})
	if status != http.StatusCreated {
		t.Fatalf("seed assignment: got %d", status)
	}

	status, body := doJSON(t, http.MethodDelete, srv.URL+"/v1/profile/7", nil)
	if status != http.StatusConflict {
		t.Fatalf("expected 409, got %d (%v)", status, body)
	}
	if body["message"] != "profile is still referenced by other records" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}
