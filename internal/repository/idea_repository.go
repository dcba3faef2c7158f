package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ideashelf/backend/internal/models"
)

// viewColumns is the read-side projection shared by every idea query: the
// idea row plus author username, the like count recomputed from the likes
// relation, and the viewer's like state. viewerID 0 (anonymous) matches no
// like rows.
const viewColumns = `
	ideas.id, ideas.user_id, ideas.product_name, ideas.subtitle,
	ideas.idea_text, ideas.tags, ideas.status, ideas.created_at, ideas.updated_at,
	users.username AS author_username,
	(SELECT COUNT(*) FROM likes WHERE likes.idea_id = ideas.id) AS like_count,
	EXISTS(SELECT 1 FROM likes WHERE likes.idea_id = ideas.id AND likes.user_id = ?) AS liked_by_me`

type IdeaRepository struct {
	db *gorm.DB
}

func NewIdeaRepository(db *gorm.DB) *IdeaRepository {
	return &IdeaRepository{db: db}
}

func (r *IdeaRepository) CreateIdea(idea *models.Idea) error {
	return r.db.Create(idea).Error
}

func (r *IdeaRepository) GetIdeaByID(id int64) (*models.Idea, error) {
	var idea models.Idea
	err := r.db.Where("id = ?", id).First(&idea).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &idea, nil
}

func (r *IdeaRepository) GetView(id, viewerID int64) (*models.IdeaView, error) {
	var views []models.IdeaView
	err := r.db.Table("ideas").
		Select(viewColumns, viewerID).
		Joins("LEFT JOIN users ON users.id = ideas.user_id").
		Where("ideas.id = ?", id).
		Limit(1).
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, nil
	}
	return &views[0], nil
}

// ListViews returns all ideas newest-created-first. Filtering and sorting by
// keyword, tag or like-count is applied client-side over the full set.
func (r *IdeaRepository) ListViews(viewerID int64) ([]models.IdeaView, error) {
	var views []models.IdeaView
	err := r.db.Table("ideas").
		Select(viewColumns, viewerID).
		Joins("LEFT JOIN users ON users.id = ideas.user_id").
		Order("ideas.created_at DESC").
		Scan(&views).Error

	return views, err
}

// ListViewsByOwner returns one user's ideas newest-created-first.
func (r *IdeaRepository) ListViewsByOwner(ownerID, viewerID int64) ([]models.IdeaView, error) {
	var views []models.IdeaView
	err := r.db.Table("ideas").
		Select(viewColumns, viewerID).
		Joins("LEFT JOIN users ON users.id = ideas.user_id").
		Where("ideas.user_id = ?", ownerID).
		Order("ideas.created_at DESC").
		Scan(&views).Error

	return views, err
}

func (r *IdeaRepository) UpdateIdea(idea *models.Idea) error {
	return r.db.Save(idea).Error
}

// DeleteIdeaCascade removes an idea together with its likes in one
// transaction, preserving the no-dangling-likes invariant.
func (r *IdeaRepository) DeleteIdeaCascade(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("idea_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Idea{}).Error
	})
}
