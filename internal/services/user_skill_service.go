package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/skillhub/skillhub-api/internal/models"
	"github.com/skillhub/skillhub-api/internal/repository"
	"github.com/skillhub/skillhub-api/pkg/logger"
	"go.uber.org/zap"
)

// UserSkillService manages the self-declared teachable skills that feed
// the public browse view. Every mutation is scoped to the declaring
// user; nobody can touch another user's declarations.
type UserSkillService struct {
	userSkillRepo repository.UserSkillStore
	skillRepo     repository.SkillStore
}

// NewUserSkillService creates a new UserSkillService
func NewUserSkillService(userSkillRepo repository.UserSkillStore, skillRepo repository.SkillStore) *UserSkillService {
	return &UserSkillService{
		userSkillRepo: userSkillRepo,
		skillRepo:     skillRepo,
	}
}

// Add declares a teachable skill for the caller. The skill name is
// resolved through the shared vocabulary first, so two users declaring
// "Go" share one skill row. Repeated declarations of the same name
// create separate user skill rows.
func (s *UserSkillService) Add(ctx context.Context, session *models.UserSession, req *models.AddUserSkillRequest) (*models.UserSkillView, error) {
	if session == nil || session.UserID <= 0 {
		return nil, ErrUnauthenticated
	}

	skill, err := s.skillRepo.Ensure(ctx, req.Name)
	if err != nil {
		logger.Error("Failed to ensure skill for user declaration",
			zap.String("name", req.Name),
			zap.Error(err))
		return nil, fmt.Errorf("failed to ensure skill: %w", err)
	}

	view, err := s.userSkillRepo.Insert(ctx, session.UserID, skill.ID, req.Level, req.Description)
	if err != nil {
		logger.Error("Failed to declare user skill",
			zap.Int("user_id", session.UserID),
			zap.Int("skill_id", skill.ID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to declare skill: %w", err)
	}

	logger.Info("User skill declared",
		zap.Int("user_skill_id", view.ID),
		zap.Int("user_id", session.UserID),
		zap.String("skill", view.Name))

	return view, nil
}

// List returns the caller's own skill declarations
func (s *UserSkillService) List(ctx context.Context, session *models.UserSession) ([]models.UserSkillView, error) {
	if session == nil || session.UserID <= 0 {
		return nil, ErrUnauthenticated
	}

	views, err := s.userSkillRepo.ListForUser(ctx, session.UserID)
	if err != nil {
		logger.Error("Failed to list user skills",
			zap.Int("user_id", session.UserID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to list user skills: %w", err)
	}

	return views, nil
}

// Update partially updates one of the caller's skill declarations.
// Omitted fields keep their stored values. A declaration that does not
// exist and one owned by someone else both map to ErrNotFound, so the
// response does not reveal other users' row ids.
func (s *UserSkillService) Update(ctx context.Context, session *models.UserSession, id int, req *models.UpdateUserSkillRequest) error {
	if session == nil || session.UserID <= 0 {
		return ErrUnauthenticated
	}

	current, err := s.userSkillRepo.GetOwned(ctx, id, session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("user skill %d: %w", id, ErrNotFound)
		}
		logger.Error("Failed to load user skill",
			zap.Int("user_skill_id", id),
			zap.Error(err))
		return fmt.Errorf("failed to load user skill: %w", err)
	}

	level := current.Level
	if req.Level != nil {
		level = *req.Level
	}
	description := current.Description
	if req.Description != nil {
		description = *req.Description
	}

	if _, err := s.userSkillRepo.Update(ctx, id, level, description); err != nil {
		logger.Error("Failed to update user skill",
			zap.Int("user_skill_id", id),
			zap.Error(err))
		return fmt.Errorf("failed to update user skill: %w", err)
	}

	logger.Info("User skill updated",
		zap.Int("user_skill_id", id),
		zap.Int("user_id", session.UserID))

	return nil
}

// Delete removes one of the caller's skill declarations. Deleting a row
// that does not exist, or that belongs to someone else, succeeds with a
// zero count.
func (s *UserSkillService) Delete(ctx context.Context, session *models.UserSession, id int) (int64, error) {
	if session == nil || session.UserID <= 0 {
		return 0, ErrUnauthenticated
	}

	deleted, err := s.userSkillRepo.DeleteOwned(ctx, id, session.UserID)
	if err != nil {
		logger.Error("Failed to delete user skill",
			zap.Int("user_skill_id", id),
			zap.Error(err))
		return 0, fmt.Errorf("failed to delete user skill: %w", err)
	}

	if deleted > 0 {
		logger.Info("User skill deleted",
			zap.Int("user_skill_id", id),
			zap.Int("user_id", session.UserID))
	}

	return deleted, nil
}

// Browse returns every declared skill across all users for the public
// marketplace view
func (s *UserSkillService) Browse(ctx context.Context) ([]models.BrowseSkillItem, error) {
	items, err := s.userSkillRepo.Browse(ctx)
	if err != nil {
		logger.Error("Failed to browse user skills", zap.Error(err))
		return nil, fmt.Errorf("failed to browse user skills: %w", err)
	}
	return items, nil
}
