package testutil

import (
	"testing"

	"gorm.io/gorm"

	"github.com/ideashelf/backend/internal/models"
	"github.com/ideashelf/backend/internal/policy"
	"github.com/ideashelf/backend/internal/utils"
)

// CreateTestUser inserts a user with a real Argon2id password hash and fails
// the test on error.
func CreateTestUser(t *testing.T, db *gorm.DB, username, password string, isAdmin bool) *models.User {
	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: passwordHash,
		IsAdmin:      isAdmin,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user %q: %v", username, err)
	}

	return user
}

// CreateTestIdea inserts a published idea owned by ownerID.
func CreateTestIdea(t *testing.T, db *gorm.DB, ownerID int64, productName, ideaText string) *models.Idea {
	idea := &models.Idea{
		UserID:      ownerID,
		ProductName: productName,
		IdeaText:    ideaText,
		Status:      models.StatusPublished,
	}
	if err := db.Create(idea).Error; err != nil {
		t.Fatalf("Failed to create test idea %q: %v", productName, err)
	}

	return idea
}

// ActorFor builds the policy actor corresponding to a stored user.
func ActorFor(user *models.User) *policy.Actor {
	return &policy.Actor{
		ID:       user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	}
}
