package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ideashelf/backend/internal/models"
)

type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

// InsertLike records a like for (userID, ideaID). Duplicate inserts hit the
// unique (user_id, idea_id) index and are dropped by the database, so
// concurrent repeats of the same like collapse to a single row.
func (r *LikeRepository) InsertLike(userID, ideaID int64) error {
	like := models.Like{UserID: userID, IdeaID: ideaID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error
}

// DeleteLike removes the like for (userID, ideaID) if present. Deleting a
// non-existent like is a no-op, not an error.
func (r *LikeRepository) DeleteLike(userID, ideaID int64) error {
	return r.db.Where("user_id = ? AND idea_id = ?", userID, ideaID).Delete(&models.Like{}).Error
}

func (r *LikeRepository) Exists(userID, ideaID int64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Like{}).
		Where("user_id = ? AND idea_id = ?", userID, ideaID).
		Count(&count).Error
	return count > 0, err
}

// CountForIdea recomputes the aggregate like count from the relation itself.
func (r *LikeRepository) CountForIdea(ideaID int64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).Where("idea_id = ?", ideaID).Count(&count).Error
	return count, err
}
