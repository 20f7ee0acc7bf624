package api

import (
	"net/http"
	"testing"
)

func TestReferenceTemplatesEndpoints(t *testing.T) {
	app, _ := newTestApp(t)

	response := doJSON(t, app, http.MethodGet, "/api/reference/templates", "", nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("templates returned status %d", response.StatusCode)
	}
	var templates []struct {
		TypeKey    string `json:"type"`
		Duration   int    `json:"duration"`
		Milestones []struct {
			Name string `json:"name"`
		} `json:"milestones"`
	}
	decodeBody(t, response, &templates)
	if len(templates) != 4 {
		t.Fatalf("listed %d templates, want 4", len(templates))
	}

	response = doJSON(t, app, http.MethodGet, "/api/reference/templates/ivf-fresh", "", nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("template by synonym returned status %d", response.StatusCode)
	}
	var template struct {
		TypeKey string `json:"type"`
	}
	decodeBody(t, response, &template)
	if template.TypeKey != "IVF" {
		t.Errorf("ivf-fresh resolved to %q, want IVF", template.TypeKey)
	}

	response = doJSON(t, app, http.MethodGet, "/api/reference/templates/unknown", "", nil)
	response.Body.Close()
	if response.StatusCode != http.StatusNotFound {
		t.Errorf("unknown template returned %d, want 404", response.StatusCode)
	}
}

func TestReferenceRefreshRestoresInvalidatedStore(t *testing.T) {
	app, handler := newTestApp(t)
	token := registerTestUser(t, app, "claire@example.com")

	handler.reference.Invalidate()
	if len(handler.reference.Snapshot().Templates) != 0 {
		t.Fatal("invalidate left templates behind")
	}

	response := doJSON(t, app, http.MethodPost, "/api/reference/refresh", token, nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("refresh returned status %d", response.StatusCode)
	}
	var body struct {
		Refreshed bool `json:"refreshed"`
	}
	decodeBody(t, response, &body)
	if !body.Refreshed {
		t.Fatal("refresh reported failure against a healthy database")
	}
	if len(handler.reference.Snapshot().Templates) != 4 {
		t.Fatalf("store holds %d templates after refresh, want 4", len(handler.reference.Snapshot().Templates))
	}
}
