package service

import (
	"go.uber.org/zap"

	"github.com/ideashelf/backend/internal/apperr"
	"github.com/ideashelf/backend/internal/policy"
	"github.com/ideashelf/backend/internal/repository"
	"github.com/ideashelf/backend/pkg/logger"
)

// LikeResult is the response shape of every like mutation: the resulting
// state plus the aggregate count recomputed from the likes relation.
type LikeResult struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}

type LikeService struct {
	ideaRepo *repository.IdeaRepository
	likeRepo *repository.LikeRepository
}

func NewLikeService(ideaRepo *repository.IdeaRepository, likeRepo *repository.LikeRepository) *LikeService {
	return &LikeService{
		ideaRepo: ideaRepo,
		likeRepo: likeRepo,
	}
}

// Like records the actor's like on an idea. Liking an already-liked idea is
// a no-op; liking your own idea is forbidden regardless of prior state.
func (s *LikeService) Like(actor *policy.Actor, rawID string) (*LikeResult, error) {
	ideaID, ownerID, err := s.resolve(actor, rawID)
	if err != nil {
		return nil, err
	}

	if ownerID == actor.ID {
		return nil, apperr.AuthorizationDenied("cannot like your own idea")
	}

	if err := s.likeRepo.InsertLike(actor.ID, ideaID); err != nil {
		logger.Log.Error("Failed to insert like",
			zap.Int64("user_id", actor.ID),
			zap.Int64("idea_id", ideaID),
			zap.Error(err),
		)
		return nil, apperr.Storage(err)
	}

	return s.result(true, ideaID)
}

// Unlike removes the actor's like on an idea. Unliking an idea that was not
// liked is a no-op.
func (s *LikeService) Unlike(actor *policy.Actor, rawID string) (*LikeResult, error) {
	ideaID, _, err := s.resolve(actor, rawID)
	if err != nil {
		return nil, err
	}

	if err := s.likeRepo.DeleteLike(actor.ID, ideaID); err != nil {
		logger.Log.Error("Failed to delete like",
			zap.Int64("user_id", actor.ID),
			zap.Int64("idea_id", ideaID),
			zap.Error(err),
		)
		return nil, apperr.Storage(err)
	}

	return s.result(false, ideaID)
}

// Toggle is the deprecated single-endpoint contract: it flips the relation
// based on its current state by dispatching to Like or Unlike.
func (s *LikeService) Toggle(actor *policy.Actor, rawID string) (*LikeResult, error) {
	ideaID, _, err := s.resolve(actor, rawID)
	if err != nil {
		return nil, err
	}

	liked, err := s.likeRepo.Exists(actor.ID, ideaID)
	if err != nil {
		return nil, apperr.Storage(err)
	}

	if liked {
		return s.Unlike(actor, rawID)
	}
	return s.Like(actor, rawID)
}

// resolve validates the id, requires authentication and loads the idea's
// owner. Returns (ideaID, ownerID).
func (s *LikeService) resolve(actor *policy.Actor, rawID string) (int64, int64, error) {
	if actor == nil {
		return 0, 0, apperr.AuthenticationRequired("login required")
	}

	ideaID, err := ParseID(rawID)
	if err != nil {
		return 0, 0, err
	}

	idea, err := s.ideaRepo.GetIdeaByID(ideaID)
	if err != nil {
		logger.Log.Error("Failed to load idea for like", zap.Int64("idea_id", ideaID), zap.Error(err))
		return 0, 0, apperr.Storage(err)
	}
	if idea == nil {
		return 0, 0, apperr.NotFound("not found")
	}

	return ideaID, idea.UserID, nil
}

func (s *LikeService) result(liked bool, ideaID int64) (*LikeResult, error) {
	count, err := s.likeRepo.CountForIdea(ideaID)
	if err != nil {
		logger.Log.Error("Failed to count likes", zap.Int64("idea_id", ideaID), zap.Error(err))
		return nil, apperr.Storage(err)
	}
	return &LikeResult{Liked: liked, LikeCount: count}, nil
}
