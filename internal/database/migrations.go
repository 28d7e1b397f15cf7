package database

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/yukikurage/notes-api/internal/models"
	"gorm.io/gorm"
)

// AddIndexes adds the composite indexes used by collection listing.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		name    string
		columns string
	}{
		{"idx_notes_user_favourite", "user_id, is_favourite"},
		{"idx_notes_user_archived", "user_id, is_archived"},
		{"idx_notes_last_update", "last_update"},
	}

	migrator := db.Migrator()
	for _, idx := range indexes {
		if migrator.HasIndex(&models.Note{}, idx.name) {
			logrus.WithField("index", idx.name).Debug("Index already exists, skipping")
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON notes (%s)", idx.name, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		logrus.WithFields(logrus.Fields{
			"index":   idx.name,
			"columns": idx.columns,
		}).Info("Created index")
	}

	return nil
}
