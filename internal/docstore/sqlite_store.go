package docstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/terraincognita07/constancia/internal/models"
	"gorm.io/gorm"
)

const documentRowID = 1

type documentRow struct {
	ID       uint   `gorm:"primaryKey"`
	Payload  []byte `gorm:"not null"`
	Revision int64  `gorm:"not null"`
}

func (documentRow) TableName() string {
	return "documents"
}

// SQLiteStore keeps the document as a single row in sqlite. The revision is
// a monotonically increasing counter; Save is a compare-and-swap on it, so a
// stale writer fails with ErrConflict instead of silently overwriting a
// newer generation.
type SQLiteStore struct {
	database *gorm.DB
}

func NewSQLiteStore(database *gorm.DB) *SQLiteStore {
	return &SQLiteStore{database: database}
}

func (store *SQLiteStore) Load() (*models.Document, Revision, error) {
	var row documentRow
	err := store.database.First(&row, documentRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewDocument(), Revision("0"), nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("load document row: %w", err)
	}

	document := models.NewDocument()
	if err := json.Unmarshal(row.Payload, document); err != nil {
		return nil, "", fmt.Errorf("decode document row: %w", err)
	}
	return document, Revision(strconv.FormatInt(row.Revision, 10)), nil
}

func (store *SQLiteStore) Save(document *models.Document, revision Revision) (Revision, error) {
	current, err := strconv.ParseInt(string(revision), 10, 64)
	if err != nil {
		return "", fmt.Errorf("parse document revision %q: %w", revision, err)
	}

	payload, err := json.Marshal(document)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}

	next := current + 1
	err = store.database.Transaction(func(tx *gorm.DB) error {
		if current == 0 {
			var count int64
			if err := tx.Model(&documentRow{}).Where("id = ?", documentRowID).Count(&count).Error; err != nil {
				return fmt.Errorf("count document rows: %w", err)
			}
			if count == 0 {
				if err := tx.Create(&documentRow{ID: documentRowID, Payload: payload, Revision: next}).Error; err != nil {
					return fmt.Errorf("insert document row: %w", err)
				}
				return nil
			}
		}

		result := tx.Model(&documentRow{}).
			Where("id = ? AND revision = ?", documentRowID, current).
			Updates(map[string]any{"payload": payload, "revision": next})
		if result.Error != nil {
			return fmt.Errorf("update document row: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: stored revision is newer than %d", ErrConflict, current)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return Revision(strconv.FormatInt(next, 10)), nil
}
