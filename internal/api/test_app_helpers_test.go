package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/constancia/internal/docstore"
	"github.com/terraincognita07/constancia/internal/services"
)

func newTestApp(t *testing.T) (*fiber.App, docstore.Store) {
	t.Helper()

	store := docstore.NewFileStore(filepath.Join(t.TempDir(), "constancia.json"))
	seedTestAdmin(t, store)

	handler := NewHandler(store, "test-secret", time.UTC, false, services.DefaultWeeklyGoals())
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	RegisterRoutes(app, handler)
	return app, store
}

func seedTestAdmin(t *testing.T, store docstore.Store) {
	t.Helper()

	document, revision, err := store.Load()
	if err != nil {
		t.Fatalf("load for admin seed failed: %v", err)
	}
	if _, err := services.NewSetupService(document).EnsureAdmin("admin", "admin123", time.Now()); err != nil {
		t.Fatalf("ensure admin failed: %v", err)
	}
	if _, err := store.Save(document, revision); err != nil {
		t.Fatalf("save admin seed failed: %v", err)
	}
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, authCookie string, payload any) *http.Response {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode request payload failed: %v", err)
		}
		body = bytes.NewReader(encoded)
	} else {
		body = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, path, body)
	request.Header.Set("Content-Type", "application/json")
	if authCookie != "" {
		request.Header.Set("Cookie", authCookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeBody(t *testing.T, response *http.Response, target any) {
	t.Helper()
	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body failed: %v", err)
	}
}

func expectStatus(t *testing.T, response *http.Response, expected int) {
	t.Helper()
	if response.StatusCode != expected {
		t.Fatalf("expected status %d, got %d", expected, response.StatusCode)
	}
}

func registerAndExtractCookie(t *testing.T, app *fiber.App, name string, password string) string {
	t.Helper()

	response := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     name,
		"password": password,
	})
	expectStatus(t, response, http.StatusCreated)
	response.Body.Close()
	return extractAuthCookie(t, response)
}

func loginAndExtractCookie(t *testing.T, app *fiber.App, name string, password string) string {
	t.Helper()

	response := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"name":     name,
		"password": password,
	})
	expectStatus(t, response, http.StatusOK)
	response.Body.Close()
	return extractAuthCookie(t, response)
}

func extractAuthCookie(t *testing.T, response *http.Response) string {
	t.Helper()

	for _, cookie := range response.Header.Values("Set-Cookie") {
		if strings.HasPrefix(cookie, authCookieName+"=") {
			return strings.SplitN(cookie, ";", 2)[0]
		}
	}
	t.Fatalf("expected auth cookie in response")
	return ""
}
