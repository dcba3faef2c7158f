package service

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ideashelf/backend/internal/apperr"
	"github.com/ideashelf/backend/internal/models"
	"github.com/ideashelf/backend/internal/policy"
	"github.com/ideashelf/backend/internal/repository"
	"github.com/ideashelf/backend/pkg/logger"
)

// IdeaInput carries the client-supplied fields for create and update. The
// owner is never part of the input; it comes from the actor on create and is
// immutable afterwards.
type IdeaInput struct {
	ProductName string
	Subtitle    string
	IdeaText    string
	Tags        string
	Status      string
}

type IdeaService struct {
	ideaRepo *repository.IdeaRepository
}

func NewIdeaService(ideaRepo *repository.IdeaRepository) *IdeaService {
	return &IdeaService{ideaRepo: ideaRepo}
}

// ParseID validates that raw is a well-formed positive integer id. It runs
// before any storage access so malformed ids never reach the database.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Validation("id", "invalid id")
	}
	return id, nil
}

// FormatID renders an id the way URLs carry it.
func FormatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func (s *IdeaService) Create(actor *policy.Actor, input IdeaInput) (int64, error) {
	if actor == nil {
		return 0, apperr.AuthenticationRequired("login required")
	}

	idea := &models.Idea{UserID: actor.ID}
	if err := applyInput(idea, input); err != nil {
		return 0, err
	}

	if err := s.ideaRepo.CreateIdea(idea); err != nil {
		logger.Log.Error("Failed to create idea",
			zap.Int64("user_id", actor.ID),
			zap.Error(err),
		)
		return 0, apperr.Storage(err)
	}

	logger.Log.Info("Idea created",
		zap.Int64("idea_id", idea.ID),
		zap.Int64("user_id", actor.ID),
	)

	return idea.ID, nil
}

// Get returns one idea as seen by the viewer (0 for anonymous).
func (s *IdeaService) Get(viewerID int64, rawID string) (*models.IdeaView, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}

	view, err := s.ideaRepo.GetView(id, viewerID)
	if err != nil {
		logger.Log.Error("Failed to read idea", zap.Int64("idea_id", id), zap.Error(err))
		return nil, apperr.Storage(err)
	}
	if view == nil {
		return nil, apperr.NotFound("not found")
	}

	view.Mine = viewerID != 0 && view.UserID == viewerID
	return view, nil
}

// List returns every idea, draft and published, newest first.
func (s *IdeaService) List(viewerID int64) ([]models.IdeaView, error) {
	views, err := s.ideaRepo.ListViews(viewerID)
	if err != nil {
		logger.Log.Error("Failed to list ideas", zap.Error(err))
		return nil, apperr.Storage(err)
	}
	return markMine(views, viewerID), nil
}

// ListMine returns the actor's own ideas for the my-page view.
func (s *IdeaService) ListMine(actor *policy.Actor) ([]models.IdeaView, error) {
	if actor == nil {
		return nil, apperr.AuthenticationRequired("login required")
	}

	views, err := s.ideaRepo.ListViewsByOwner(actor.ID, actor.ID)
	if err != nil {
		logger.Log.Error("Failed to list own ideas",
			zap.Int64("user_id", actor.ID),
			zap.Error(err),
		)
		return nil, apperr.Storage(err)
	}
	return markMine(views, actor.ID), nil
}

func (s *IdeaService) Update(actor *policy.Actor, rawID string, input IdeaInput) error {
	id, err := ParseID(rawID)
	if err != nil {
		return err
	}

	idea, err := s.ideaRepo.GetIdeaByID(id)
	if err != nil {
		logger.Log.Error("Failed to load idea for update", zap.Int64("idea_id", id), zap.Error(err))
		return apperr.Storage(err)
	}
	if idea == nil {
		return apperr.NotFound("not found")
	}

	if err := policy.CanMutate(actor, idea.UserID); err != nil {
		return err
	}

	if err := applyInput(idea, input); err != nil {
		return err
	}

	if err := s.ideaRepo.UpdateIdea(idea); err != nil {
		logger.Log.Error("Failed to update idea", zap.Int64("idea_id", id), zap.Error(err))
		return apperr.Storage(err)
	}

	logger.Log.Info("Idea updated",
		zap.Int64("idea_id", id),
		zap.Int64("actor_id", actor.ID),
	)

	return nil
}

func (s *IdeaService) Delete(actor *policy.Actor, rawID string) error {
	id, err := ParseID(rawID)
	if err != nil {
		return err
	}

	idea, err := s.ideaRepo.GetIdeaByID(id)
	if err != nil {
		logger.Log.Error("Failed to load idea for delete", zap.Int64("idea_id", id), zap.Error(err))
		return apperr.Storage(err)
	}
	if idea == nil {
		return apperr.NotFound("not found")
	}

	if err := policy.CanMutate(actor, idea.UserID); err != nil {
		return err
	}

	if err := s.ideaRepo.DeleteIdeaCascade(id); err != nil {
		logger.Log.Error("Failed to delete idea", zap.Int64("idea_id", id), zap.Error(err))
		return apperr.Storage(err)
	}

	logger.Log.Info("Idea deleted",
		zap.Int64("idea_id", id),
		zap.Int64("actor_id", actor.ID),
		zap.Bool("by_admin", actor.ID != idea.UserID),
	)

	return nil
}

// applyInput validates and normalizes the client fields onto idea.
func applyInput(idea *models.Idea, input IdeaInput) error {
	productName := strings.TrimSpace(input.ProductName)
	if productName == "" {
		return apperr.Validation("product_name", "missing fields")
	}

	ideaText := strings.TrimSpace(input.IdeaText)
	if ideaText == "" {
		return apperr.Validation("idea_text", "missing fields")
	}

	idea.ProductName = productName
	idea.IdeaText = ideaText
	idea.Subtitle = optionalString(strings.TrimSpace(input.Subtitle))
	idea.Tags = optionalString(NormalizeTags(input.Tags))
	idea.Status = models.NormalizeStatus(input.Status)

	return nil
}

// NormalizeTags trims each comma-separated tag and drops the empty ones,
// preserving order and duplicates. Empty input normalizes to "".
func NormalizeTags(raw string) string {
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return strings.Join(tags, ",")
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func markMine(views []models.IdeaView, viewerID int64) []models.IdeaView {
	if views == nil {
		views = []models.IdeaView{}
	}
	if viewerID != 0 {
		for i := range views {
			views[i].Mine = views[i].UserID == viewerID
		}
	}
	return views
}
