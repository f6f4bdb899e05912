package docstore

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/terraincognita07/constancia/internal/models"
)

func newFileStoreForTest(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "constancia.json"))
}

func TestFileStoreBootstrapsEmptyDocument(t *testing.T) {
	store := newFileStoreForTest(t)

	document, revision, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if revision != revisionMissing {
		t.Fatalf("expected missing-file revision, got %q", revision)
	}
	if document.Users == nil || document.ContactEvents == nil {
		t.Fatalf("expected bootstrapped document to be repaired")
	}
}

func TestFileStoreSaveThenLoadRoundTrips(t *testing.T) {
	store := newFileStoreForTest(t)

	document, revision, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	document.Notes["ana"] = "call the warm leads first"

	saved, err := store.Save(document, revision)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if saved == revisionMissing {
		t.Fatalf("expected a content revision after save")
	}

	reloaded, revision2, err := store.Load()
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if revision2 != saved {
		t.Fatalf("expected load revision %q to match save revision %q", revision2, saved)
	}
	if reloaded.Notes["ana"] != "call the warm leads first" {
		t.Fatalf("expected note to round-trip, got %q", reloaded.Notes["ana"])
	}
}

func TestFileStoreRejectsStaleRevision(t *testing.T) {
	store := newFileStoreForTest(t)

	document, revision, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if _, err := store.Save(document, revision); err != nil {
		t.Fatalf("first save failed: %v", err)
	}

	document.Notes["ana"] = "stale write"
	if _, err := store.Save(document, revision); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict on stale revision, got %v", err)
	}

	reloaded, _, err := store.Load()
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if _, present := reloaded.Notes["ana"]; present {
		t.Fatalf("expected stale write to leave stored document untouched")
	}
}

func TestFileStorePreservesForeignCollections(t *testing.T) {
	store := newFileStoreForTest(t)

	document, revision, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	document.Extra["tasks"] = []byte(`[{"title":"weekly sync"}]`)

	saved, err := store.Save(document, revision)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	reloaded, _, err := store.Load()
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if string(reloaded.Extra["tasks"]) != `[{"title":"weekly sync"}]` {
		t.Fatalf("expected tasks collection to survive round-trip, got %s", reloaded.Extra["tasks"])
	}

	reloaded.Notes["ana"] = "second generation"
	if _, err := store.Save(reloaded, saved); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	final, _, err := store.Load()
	if err != nil {
		t.Fatalf("final load failed: %v", err)
	}
	if string(final.Extra["tasks"]) != `[{"title":"weekly sync"}]` {
		t.Fatalf("expected tasks collection to survive a rewrite by another component")
	}
	if final.Notes["ana"] != "second generation" {
		t.Fatalf("expected second-generation note, got %q", final.Notes["ana"])
	}
}

func TestFileStoreDecodeKeepsTypedCollections(t *testing.T) {
	store := newFileStoreForTest(t)

	document, revision, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	document.Users["ana"] = &models.User{Role: models.RoleLeader, Members: []string{}, PendingRequests: []string{}}
	document.ContactEvents["ana"] = []models.EventEntry{{ID: "e1", Date: "2024-01-01", Count: 3}}

	if _, err := store.Save(document, revision); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	reloaded, _, err := store.Load()
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.Users["ana"] == nil || !reloaded.Users["ana"].IsLeader() {
		t.Fatalf("expected ana to stay a leader after round-trip")
	}
	if len(reloaded.ContactEvents["ana"]) != 1 || reloaded.ContactEvents["ana"][0].Count != 3 {
		t.Fatalf("expected contact entry to round-trip, got %+v", reloaded.ContactEvents["ana"])
	}
}
