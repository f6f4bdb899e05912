package api

import (
	"net/http"
	"testing"
)

func TestNoteSaveOverwritesAndReads(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := registerAndExtractCookie(t, app, "ana", "secreto1")

	for _, text := range []string{"first draft", "final"} {
		response := doJSON(t, app, http.MethodPut, "/api/notes", cookie, map[string]string{"text": text})
		expectStatus(t, response, http.StatusOK)
		response.Body.Close()
	}

	response := doJSON(t, app, http.MethodGet, "/api/notes", cookie, nil)
	expectStatus(t, response, http.StatusOK)

	var payload struct {
		Text string `json:"text"`
	}
	decodeBody(t, response, &payload)
	if payload.Text != "final" {
		t.Fatalf("expected the overwrite to win, got %q", payload.Text)
	}
}

func TestDashboardPayloadShape(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := registerAndExtractCookie(t, app, "ana", "secreto1")

	response := doJSON(t, app, http.MethodGet, "/api/dashboard", cookie, nil)
	expectStatus(t, response, http.StatusOK)

	var payload struct {
		Status       string `json:"status"`
		Message      string `json:"message"`
		Motivational string `json:"motivational"`
		Streak       int    `json:"streak"`
		Weekly       []any  `json:"weekly"`
	}
	decodeBody(t, response, &payload)

	if payload.Status != "no_contacts" {
		t.Fatalf("expected no_contacts for a fresh user, got %q", payload.Status)
	}
	if payload.Message == "" || payload.Motivational == "" {
		t.Fatalf("expected non-empty messages, got %+v", payload)
	}
	if payload.Streak != 0 {
		t.Fatalf("expected streak 0 for a fresh user, got %d", payload.Streak)
	}
	if len(payload.Weekly) != 3 {
		t.Fatalf("expected weekly rows for the three kinds, got %d", len(payload.Weekly))
	}
}
