// Package docstore persists the whole activity document as one blob behind
// an optimistic-concurrency check. Backends differ only in where the blob
// lives; the revision token is opaque to callers.
package docstore

import (
	"errors"

	"github.com/terraincognita07/constancia/internal/models"
)

// ErrConflict is returned by Save when the supplied revision is stale, i.e.
// another writer persisted a newer document since Load.
var ErrConflict = errors.New("document revision conflict")

// Revision is an opaque token identifying one persisted generation of the
// document.
type Revision string

type Store interface {
	// Load returns the current document, repaired to a complete shape, and
	// the revision token to pass back to Save. A missing backing record
	// yields an empty document, not an error.
	Load() (*models.Document, Revision, error)

	// Save persists the document if and only if revision still identifies
	// the current generation, and returns the new revision. A stale
	// revision fails with ErrConflict and leaves the stored document
	// untouched; the caller re-loads and retries or surfaces the conflict.
	Save(document *models.Document, revision Revision) (Revision, error)
}
