package docstore

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/terraincognita07/constancia/internal/models"
)

// revisionMissing marks "no file yet"; it is distinct from the hash of any
// stored content, so a Save racing against a concurrent bootstrap still
// conflicts.
const revisionMissing = Revision("")

// FileStore keeps the document as pretty-printed JSON in a single local
// file. The revision token is the SHA-256 of the stored bytes; writes go
// through a temp file and rename so a crash never leaves a half-written
// document behind.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (store *FileStore) Load() (*models.Document, Revision, error) {
	data, err := os.ReadFile(store.path)
	if os.IsNotExist(err) {
		return models.NewDocument(), revisionMissing, nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("read document file: %w", err)
	}

	document := models.NewDocument()
	if err := json.Unmarshal(data, document); err != nil {
		return nil, "", fmt.Errorf("decode document file: %w", err)
	}
	return document, contentRevision(data), nil
}

func (store *FileStore) Save(document *models.Document, revision Revision) (Revision, error) {
	current, err := store.currentRevision()
	if err != nil {
		return "", err
	}
	if current != revision {
		return "", fmt.Errorf("%w: file changed since load", ErrConflict)
	}

	encoded, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return "", fmt.Errorf("create document directory: %w", err)
	}

	temp, err := os.CreateTemp(filepath.Dir(store.path), ".constancia-*.json")
	if err != nil {
		return "", fmt.Errorf("create temp document: %w", err)
	}
	tempPath := temp.Name()
	if _, err := temp.Write(encoded); err != nil {
		temp.Close()
		os.Remove(tempPath)
		return "", fmt.Errorf("write temp document: %w", err)
	}
	if err := temp.Close(); err != nil {
		os.Remove(tempPath)
		return "", fmt.Errorf("close temp document: %w", err)
	}
	if err := os.Rename(tempPath, store.path); err != nil {
		os.Remove(tempPath)
		return "", fmt.Errorf("replace document file: %w", err)
	}

	return contentRevision(encoded), nil
}

func (store *FileStore) currentRevision() (Revision, error) {
	data, err := os.ReadFile(store.path)
	if os.IsNotExist(err) {
		return revisionMissing, nil
	}
	if err != nil {
		return "", fmt.Errorf("read document file: %w", err)
	}
	return contentRevision(data), nil
}

func contentRevision(data []byte) Revision {
	sum := sha256.Sum256(data)
	return Revision(hex.EncodeToString(sum[:]))
}
