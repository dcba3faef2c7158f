package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ideashelf/backend/internal/database"
	"github.com/ideashelf/backend/internal/models"
)

func openLegacyDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Idea{}, &models.Like{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return db
}

func TestMigrateLegacyBodyNoLegacyColumn(t *testing.T) {
	db := openLegacyDB(t)

	// Current schema has no description column; migration is a no-op
	assert.NoError(t, database.MigrateLegacyBody(db))
}

func TestMigrateLegacyBodyFoldsDescription(t *testing.T) {
	db := openLegacyDB(t)

	assert.NoError(t, db.Exec("ALTER TABLE ideas ADD COLUMN description TEXT").Error)

	user := &models.User{Username: "legacy", PasswordHash: "x"}
	assert.NoError(t, db.Create(user).Error)

	// A row shaped like the old schema: body under description only
	assert.NoError(t, db.Exec(
		"INSERT INTO ideas (user_id, product_name, idea_text, status, description) VALUES (?, ?, '', 'draft', ?)",
		user.ID, "Old widget", "legacy body",
	).Error)

	// A row already on the new schema keeps its body
	assert.NoError(t, db.Exec(
		"INSERT INTO ideas (user_id, product_name, idea_text, status, description) VALUES (?, ?, ?, 'draft', ?)",
		user.ID, "New widget", "new body", "stale copy",
	).Error)

	assert.NoError(t, database.MigrateLegacyBody(db))

	var bodies []string
	assert.NoError(t, db.Model(&models.Idea{}).Order("id").Pluck("idea_text", &bodies).Error)
	assert.Equal(t, []string{"legacy body", "new body"}, bodies)

	// The legacy column is gone, so the fallback can never diverge again
	assert.False(t, db.Migrator().HasColumn("ideas", "description"))
}
