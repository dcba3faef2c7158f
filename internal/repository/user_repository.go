package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ideashelf/backend/internal/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) GetUserByID(id int64) (*models.User, error) {
	var user models.User
	err := r.db.Where("id = ?", id).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) GetAllUsers() ([]*models.User, error) {
	var users []*models.User
	err := r.db.Order("created_at DESC").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUserCascade removes a user and everything that references them: likes
// on the user's ideas (anyone's), the user's own likes, the user's ideas, and
// finally the user row. The four steps run in one transaction so a mid-cascade
// fault leaves no orphaned rows.
func (r *UserRepository) DeleteUserCascade(userID int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var ideaIDs []int64
		if err := tx.Model(&models.Idea{}).Where("user_id = ?", userID).Pluck("id", &ideaIDs).Error; err != nil {
			return err
		}

		if len(ideaIDs) > 0 {
			if err := tx.Where("idea_id IN ?", ideaIDs).Delete(&models.Like{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", userID).Delete(&models.Like{}).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", userID).Delete(&models.Idea{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", userID).Delete(&models.User{}).Error
	})
}
