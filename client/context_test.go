package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func listHandler(data any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "data": data})
	}
}

// contentServer serves one project and a named profile; per-path overrides
// let individual tests break specific endpoints.
func contentServer(overrides map[string]http.HandlerFunc) *httptest.Server {
	mux := http.NewServeMux()
	handlers := map[string]http.HandlerFunc{
		"GET /profile":    listHandler(Profile{ID: "p1", Name: "Server Profile"}),
		"GET /projects":   listHandler([]Project{{ID: "proj-1", Title: "Server Project"}}),
		"GET /experience": listHandler([]Experience{}),
		"GET /education":  listHandler([]Education{}),
		"GET /courses":    listHandler([]Course{}),
		"GET /skills":     listHandler([]Skill{{ID: "skill-1", Name: "AutoCAD", Level: 95}}),
		"GET /interests":  listHandler([]Interest{}),
	}
	for pattern, handler := range overrides {
		handlers[pattern] = handler
	}
	for pattern, handler := range handlers {
		mux.HandleFunc(pattern, handler)
	}
	return httptest.NewServer(mux)
}

func failHandler(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, status, map[string]any{"ok": false, "message": "boom"})
	}
}

func TestLoadAllSuccess(t *testing.T) {
	ts := contentServer(nil)
	defer ts.Close()

	d := NewDataContext(ts.URL, ts.Client(), nil)
	d.Load(context.Background())

	if d.IsDemoMode() {
		t.Fatalf("demo mode after a fully successful load")
	}
	if !d.Loaded() {
		t.Fatalf("context not marked loaded")
	}
	if got := d.Profile().Name; got != "Server Profile" {
		t.Fatalf("profile name = %q, want server value", got)
	}
	projects := d.Projects()
	if len(projects) != 1 || projects[0].Title != "Server Project" {
		t.Fatalf("projects = %+v, want the server project", projects)
	}
}

func TestLoadPartialFailureEntersDemoMode(t *testing.T) {
	ts := contentServer(map[string]http.HandlerFunc{
		"GET /skills": failHandler(http.StatusInternalServerError),
	})
	defer ts.Close()

	d := NewDataContext(ts.URL, ts.Client(), nil)
	d.Load(context.Background())

	if !d.IsDemoMode() {
		t.Fatalf("expected demo mode when one endpoint fails")
	}
	// The failed kind falls back to bundled content; the rest keep server data.
	skills := d.Skills()
	defaults := DefaultSkills()
	if len(skills) != len(defaults) || skills[0].Name != defaults[0].Name {
		t.Fatalf("skills = %+v, want bundled defaults", skills)
	}
	if got := d.Profile().Name; got != "Server Profile" {
		t.Fatalf("profile name = %q, want server value despite demo mode", got)
	}
}

func TestDemoModeMutationsApplyLocally(t *testing.T) {
	ts := httptest.NewServer(failHandler(http.StatusInternalServerError))
	defer ts.Close()

	d := NewDataContext(ts.URL, ts.Client(), nil)
	d.Load(context.Background())
	if !d.IsDemoMode() {
		t.Fatalf("expected demo mode when every endpoint fails")
	}

	before := len(d.Projects())
	added, err := d.AddProject(context.Background(), Project{ID: "local-1", Title: "Local Project"})
	if err != nil {
		t.Fatalf("AddProject in demo mode failed: %v", err)
	}
	projects := d.Projects()
	if len(projects) != before+1 {
		t.Fatalf("len(projects) = %d, want %d", len(projects), before+1)
	}
	if projects[0].ID != added.ID {
		t.Fatalf("new project not prepended: first id = %q", projects[0].ID)
	}

	added.Title = "Renamed"
	if _, err := d.UpdateProject(context.Background(), added); err != nil {
		t.Fatalf("UpdateProject in demo mode failed: %v", err)
	}
	if got := d.Projects()[0].Title; got != "Renamed" {
		t.Fatalf("title after update = %q, want Renamed", got)
	}

	if err := d.DeleteProject(context.Background(), added.ID); err != nil {
		t.Fatalf("DeleteProject in demo mode failed: %v", err)
	}
	if len(d.Projects()) != before {
		t.Fatalf("delete did not remove the local project")
	}
}

func TestMutationFailurePropagatesOutsideDemoMode(t *testing.T) {
	ts := contentServer(map[string]http.HandlerFunc{
		"POST /projects": failHandler(http.StatusInternalServerError),
	})
	defer ts.Close()

	d := NewDataContext(ts.URL, ts.Client(), nil)
	d.Load(context.Background())
	if d.IsDemoMode() {
		t.Fatalf("unexpected demo mode")
	}

	before := len(d.Projects())
	_, err := d.AddProject(context.Background(), Project{Title: "Rejected"})
	if err == nil {
		t.Fatalf("expected error from failed remote create")
	}
	if len(d.Projects()) != before {
		t.Fatalf("failed remote create mutated local state")
	}
}

func TestLoginLifecycle(t *testing.T) {
	ts := contentServer(map[string]http.HandlerFunc{
		"POST /auth/login": func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				Password string `json:"password"`
			}
			_ = json.NewDecoder(r.Body).Decode(&req)
			if req.Password != "hunter2" {
				writeJSON(w, http.StatusUnauthorized, map[string]any{"ok": false, "message": "invalid password"})
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"ok": true, "token": "tok-123"})
		},
	})
	defer ts.Close()

	store := NewMemoryTokenStore()
	d := NewDataContext(ts.URL, ts.Client(), store)

	if d.Login(context.Background(), "wrong") {
		t.Fatalf("login with wrong password succeeded")
	}
	if d.IsAdmin() {
		t.Fatalf("failed login flipped admin state")
	}
	if store.Load() != "" {
		t.Fatalf("failed login stored a token")
	}

	if !d.Login(context.Background(), "hunter2") {
		t.Fatalf("login with correct password failed")
	}
	if !d.IsAdmin() {
		t.Fatalf("successful login did not flip admin state")
	}
	if store.Load() != "tok-123" {
		t.Fatalf("stored token = %q, want tok-123", store.Load())
	}

	d.Logout()
	if d.IsAdmin() || store.Load() != "" {
		t.Fatalf("logout did not clear the session")
	}
}

func TestUnauthorizedResponseClearsSession(t *testing.T) {
	ts := contentServer(map[string]http.HandlerFunc{
		"POST /projects": failHandler(http.StatusUnauthorized),
	})
	defer ts.Close()

	store := NewMemoryTokenStore()
	if err := store.Save("stale-token"); err != nil {
		t.Fatalf("failed to seed token store: %v", err)
	}
	d := NewDataContext(ts.URL, ts.Client(), store)
	if !d.IsAdmin() {
		t.Fatalf("stored token was not picked up")
	}
	d.Load(context.Background())

	_, err := d.AddProject(context.Background(), Project{Title: "x"})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
	if d.IsAdmin() {
		t.Fatalf("401 did not drop admin state")
	}
	if store.Load() != "" {
		t.Fatalf("401 did not clear the stored token")
	}
}

func TestResetReloadsFromScratch(t *testing.T) {
	ts := httptest.NewServer(failHandler(http.StatusInternalServerError))

	d := NewDataContext(ts.URL, ts.Client(), nil)
	d.Load(context.Background())
	if !d.IsDemoMode() {
		t.Fatalf("expected demo mode against a failing server")
	}
	ts.Close()

	healthy := contentServer(nil)
	defer healthy.Close()
	d.api.baseURL = healthy.URL

	d.Reset(context.Background())
	if d.IsDemoMode() {
		t.Fatalf("reset against a healthy server stayed in demo mode")
	}
	if got := d.Profile().Name; got != "Server Profile" {
		t.Fatalf("profile name after reset = %q, want server value", got)
	}
}
