package database

import (
	"gorm.io/gorm"
)

// MigrateLegacyBody folds the historical "description" column into idea_text.
// Older deployments stored the idea body under description; the application
// only reads idea_text, so the fallback happens once here at startup instead
// of being scattered through the read path. A no-op when the column is gone.
func MigrateLegacyBody(db *gorm.DB) error {
	if !db.Migrator().HasColumn("ideas", "description") {
		return nil
	}

	err := db.Exec(`
		UPDATE ideas
		SET idea_text = description
		WHERE (idea_text IS NULL OR idea_text = '')
		  AND description IS NOT NULL AND description <> ''
	`).Error
	if err != nil {
		return err
	}

	return db.Migrator().DropColumn("ideas", "description")
}
