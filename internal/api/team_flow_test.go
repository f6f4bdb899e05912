package api

import (
	"net/http"
	"testing"
)

func TestTeamJoinApproveAndTree(t *testing.T) {
	app, _ := newTestApp(t)
	adminCookie := loginAndExtractCookie(t, app, "admin", "admin123")
	leaderCookie := registerAndExtractCookie(t, app, "lea", "secreto1")
	memberCookie := registerAndExtractCookie(t, app, "mia", "secreto1")

	response := doJSON(t, app, http.MethodPost, "/api/admin/promote", adminCookie, map[string]string{"user": "lea"})
	expectStatus(t, response, http.StatusOK)
	response.Body.Close()

	response = doJSON(t, app, http.MethodPost, "/api/team/join", memberCookie, map[string]string{"leader": "lea"})
	expectStatus(t, response, http.StatusOK)
	response.Body.Close()

	// Requesting again while pending stays idempotent.
	response = doJSON(t, app, http.MethodPost, "/api/team/join", memberCookie, map[string]string{"leader": "lea"})
	expectStatus(t, response, http.StatusOK)
	response.Body.Close()

	response = doJSON(t, app, http.MethodGet, "/api/team/pending", leaderCookie, nil)
	expectStatus(t, response, http.StatusOK)
	var pending struct {
		Pending []string `json:"pending"`
	}
	decodeBody(t, response, &pending)
	if len(pending.Pending) != 1 || pending.Pending[0] != "mia" {
		t.Fatalf("expected exactly one pending request from mia, got %v", pending.Pending)
	}

	response = doJSON(t, app, http.MethodPost, "/api/team/approve", leaderCookie, map[string]string{"member": "mia"})
	expectStatus(t, response, http.StatusOK)
	response.Body.Close()

	response = doJSON(t, app, http.MethodGet, "/api/team/tree", leaderCookie, nil)
	expectStatus(t, response, http.StatusOK)
	var tree struct {
		Tree []struct {
			Name  string `json:"name"`
			Depth int    `json:"depth"`
		} `json:"tree"`
	}
	decodeBody(t, response, &tree)
	if len(tree.Tree) != 2 {
		t.Fatalf("expected leader and member in tree, got %+v", tree.Tree)
	}
	if tree.Tree[0].Name != "lea" || tree.Tree[0].Depth != 0 {
		t.Fatalf("expected root lea at depth 0, got %+v", tree.Tree[0])
	}
	if tree.Tree[1].Name != "mia" || tree.Tree[1].Depth != 1 {
		t.Fatalf("expected mia at depth 1, got %+v", tree.Tree[1])
	}
}

func TestTeamJoinNonLeaderIsConflict(t *testing.T) {
	app, _ := newTestApp(t)
	registerAndExtractCookie(t, app, "tom", "secreto1")
	memberCookie := registerAndExtractCookie(t, app, "mia", "secreto1")

	response := doJSON(t, app, http.MethodPost, "/api/team/join", memberCookie, map[string]string{"leader": "tom"})
	expectStatus(t, response, http.StatusConflict)
	response.Body.Close()
}

func TestTeamApproveRequiresLeaderRole(t *testing.T) {
	app, _ := newTestApp(t)
	memberCookie := registerAndExtractCookie(t, app, "mia", "secreto1")

	response := doJSON(t, app, http.MethodPost, "/api/team/approve", memberCookie, map[string]string{"member": "x"})
	expectStatus(t, response, http.StatusForbidden)
	response.Body.Close()
}
