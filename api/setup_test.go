package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"
	"github.com/underdog-devs/mentorship-api/api"
	dbfs "github.com/underdog-devs/mentorship-api/db"
	"github.com/underdog-devs/mentorship-api/internal/db"
	sqlite "github.com/underdog-devs/mentorship-api/internal/repository/sqlite"
	"github.com/underdog-devs/mentorship-api/pkg/models"
)

// newTestServer stands up the API over a fresh database with the real schema
// and no seed data. Routes are registered without the auth middleware so
// handler behavior can be exercised directly.
func newTestServer(t *testing.T) (*httptest.Server, *sqlite.SQLiteRepo) {
	t.Helper()
	ctx := context.Background()
	d, err := db.New(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("db.New: %v", err)
	}
	if err := db.Migrate(ctx, d, dbfs.Migrations, nil); err != nil {
		d.Close()
		t.Fatalf("db.Migrate: %v", err)
	}

	repo := sqlite.New(d, nil)

	ph := api.NewProfilesHandler(repo)
	ah := api.NewAssignmentsHandler(repo, repo)
	th := api.NewActionsHandler(repo, repo)
	aph := api.NewApplicationsHandler(repo, repo)
	ih := api.NewIntakeHandler(repo, repo)

	r := mux.NewRouter()
	r.HandleFunc("/v1/profiles", ph.List).Methods("GET")
	r.HandleFunc("/v1/profile/{id}", ph.Get).Methods("GET")
	r.HandleFunc("/v1/profile", ph.Create).Methods("POST")
	r.HandleFunc("/v1/profile", ph.Update).Methods("PUT")
	r.HandleFunc("/v1/profile/{id}", ph.Delete).Methods("DELETE")

	r.HandleFunc("/v1/assignments", ah.List).Methods("GET")
	r.HandleFunc("/v1/assignments/mentor/{id}", ah.ListByMentor).Methods("GET")
	r.HandleFunc("/v1/assignments/mentee/{id}", ah.ListByMentee).Methods("GET")
	r.HandleFunc("/v1/assignments/{id}", ah.Get).Methods("GET")
	r.HandleFunc("/v1/assignments", ah.Create).Methods("POST")
	r.HandleFunc("/v1/assignments/{id}", ah.Update).Methods("PUT")
	r.HandleFunc("/v1/assignments/{id}", ah.Delete).Methods("DELETE")

	r.HandleFunc("/v1/actions", th.List).Methods("GET")
	r.HandleFunc("/v1/actions/{id}", th.Get).Methods("GET")
	r.HandleFunc("/v1/actions", th.Create).Methods("POST")
	r.HandleFunc("/v1/actions/{id}", th.Update).Methods("PUT")
	r.HandleFunc("/v1/actions/{id}", th.Delete).Methods("DELETE")

	r.HandleFunc("/v1/applications", aph.List).Methods("GET")
	r.HandleFunc("/v1/applications/{id}", aph.Get).Methods("GET")
	r.HandleFunc("/v1/application", aph.Create).Methods("POST")
	r.HandleFunc("/v1/application/{id}", aph.Update).Methods("PUT")

	r.HandleFunc("/v1/intake/mentor", ih.List).Methods("GET")
	r.HandleFunc("/v1/intake/mentor/{id}", ih.Get).Methods("GET")
	r.HandleFunc("/v1/intake/mentor", ih.Create).Methods("POST")

	srv := httptest.NewServer(r)
	t.Cleanup(func() {
		srv.Close()
		d.Close()
	})
	return srv, repo
}

func seedProfile(t *testing.T, repo *sqlite.SQLiteRepo, id string) {
	t.Helper()
	p := &models.Profile{
		ProfileID: id,
		FirstName: "User",
		LastName:  "Person",
		Email:     id + "@example.com",
	}
	if err := repo.CreateProfile(context.Background(), p); err != nil {
		t.Fatalf("seed profile %s: %v", id, err)
	}
}

// doJSON issues a request with a JSON body and decodes the JSON response.
func doJSON(t *testing.T, method, url string, payload any) (int, map[string]any) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer res.Body.Close()

	var decoded map[string]any
	raw, _ := io.ReadAll(res.Body)
	if len(raw) > 0 {
		// list endpoints return arrays; callers that care decode themselves
		_ = json.Unmarshal(raw, &decoded)
	}
	return res.StatusCode, decoded
}

// getList issues a GET and decodes a JSON array response.
func getList(t *testing.T, url string) (int, []map[string]any) {
	t.Helper()
	res, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer res.Body.Close()

	var items []map[string]any
	raw, _ := io.ReadAll(res.Body)
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &items)
	}
	return res.StatusCode, items
}
