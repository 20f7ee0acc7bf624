package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/claire-lyons/folli/internal/db"
	"github.com/claire-lyons/folli/internal/reference"
	"github.com/gofiber/fiber/v2"
)

func newTestApp(t *testing.T) (*fiber.App, *Handler) {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "folli-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	repos := db.NewRepositories(database)
	store := reference.NewStore(repos.Reference.LoadSnapshot)
	if err := store.Refresh(); err != nil {
		t.Fatalf("load reference data: %v", err)
	}

	handler := NewHandler(repos, []byte("test-secret-key"), time.UTC, store)
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, handler
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, token string, payload interface{}) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		request.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return response
}

func decodeBody(t *testing.T, response *http.Response, target interface{}) {
	t.Helper()
	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func registerTestUser(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	response := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"email":    email,
		"password": "correct-horse-battery",
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("register returned status %d", response.StatusCode)
	}

	var body struct {
		Token string `json:"token"`
	}
	decodeBody(t, response, &body)
	if body.Token == "" {
		t.Fatal("register returned empty token")
	}
	return body.Token
}

// startTestCycle starts a cycle and returns its id.
func startTestCycle(t *testing.T, app *fiber.App, token string, cycleType string, startDate string) uint {
	t.Helper()

	response := doJSON(t, app, http.MethodPost, "/api/cycles", token, fiber.Map{
		"type":       cycleType,
		"start_date": startDate,
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("start cycle returned status %d", response.StatusCode)
	}

	var cycle struct {
		ID uint `json:"id"`
	}
	decodeBody(t, response, &cycle)
	if cycle.ID == 0 {
		t.Fatal("start cycle returned id 0")
	}
	return cycle.ID
}
