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

// SkillService owns the shared skill vocabulary and the course skill
// attachments
type SkillService struct {
	skillRepo  repository.SkillStore
	courseRepo repository.CourseStore
}

// NewSkillService creates a new SkillService
func NewSkillService(skillRepo repository.SkillStore, courseRepo repository.CourseStore) *SkillService {
	return &SkillService{
		skillRepo:  skillRepo,
		courseRepo: courseRepo,
	}
}

// EnsureSkill returns the skill with the given name, creating it if it
// does not exist yet. Names are matched exactly as stored, without
// normalization. The upsert is atomic, so concurrent calls for the same
// name converge on one row.
func (s *SkillService) EnsureSkill(ctx context.Context, name string) (*models.Skill, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: skill name must not be empty", ErrInvalidStatus)
	}

	skill, err := s.skillRepo.Ensure(ctx, name)
	if err != nil {
		logger.Error("Failed to ensure skill", zap.String("name", name), zap.Error(err))
		return nil, fmt.Errorf("failed to ensure skill: %w", err)
	}

	return skill, nil
}

// ListSkills returns the full skill vocabulary ordered by name
func (s *SkillService) ListSkills(ctx context.Context) ([]models.Skill, error) {
	skills, err := s.skillRepo.List(ctx)
	if err != nil {
		logger.Error("Failed to list skills", zap.Error(err))
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	return skills, nil
}

// AddCourseSkill attaches a skill to a course. The caller must own the
// course; attaching the same skill twice maps to ErrConflict.
func (s *SkillService) AddCourseSkill(ctx context.Context, session *models.UserSession, courseID, skillID int) (*models.CourseSkillView, error) {
	if err := s.verifyCourseOwner(ctx, session, courseID); err != nil {
		return nil, err
	}

	view, err := s.skillRepo.AddCourseSkill(ctx, courseID, skillID)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, fmt.Errorf("skill already attached to course: %w", ErrConflict)
		}
		logger.Error("Failed to attach skill to course",
			zap.Int("course_id", courseID),
			zap.Int("skill_id", skillID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to attach skill: %w", err)
	}

	logger.Info("Skill attached to course",
		zap.Int("course_id", courseID),
		zap.Int("skill_id", skillID))

	return view, nil
}

// RemoveCourseSkill detaches a skill from a course. The caller must own
// the course. Detaching a skill that is not attached succeeds with a
// zero count.
func (s *SkillService) RemoveCourseSkill(ctx context.Context, session *models.UserSession, courseID, skillID int) (int64, error) {
	if err := s.verifyCourseOwner(ctx, session, courseID); err != nil {
		return 0, err
	}

	deleted, err := s.skillRepo.RemoveCourseSkill(ctx, courseID, skillID)
	if err != nil {
		logger.Error("Failed to detach skill from course",
			zap.Int("course_id", courseID),
			zap.Int("skill_id", skillID),
			zap.Error(err))
		return 0, fmt.Errorf("failed to detach skill: %w", err)
	}

	return deleted, nil
}

// ListCourseSkills returns the skills attached to a course, public to
// any caller
func (s *SkillService) ListCourseSkills(ctx context.Context, courseID int) ([]models.CourseSkillView, error) {
	views, err := s.skillRepo.ListCourseSkills(ctx, courseID)
	if err != nil {
		logger.Error("Failed to list course skills",
			zap.Int("course_id", courseID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to list course skills: %w", err)
	}
	return views, nil
}

func (s *SkillService) verifyCourseOwner(ctx context.Context, session *models.UserSession, courseID int) error {
	if session == nil || session.UserID <= 0 {
		return ErrUnauthenticated
	}

	ownerID, err := s.courseRepo.GetInstructorID(ctx, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("course %d: %w", courseID, ErrNotFound)
		}
		logger.Error("Failed to resolve course owner",
			zap.Int("course_id", courseID),
			zap.Error(err))
		return fmt.Errorf("failed to resolve course owner: %w", err)
	}

	if ownerID != session.UserID {
		logger.Warn("Course skill change denied",
			zap.Int("course_id", courseID),
			zap.Int("owner_id", ownerID),
			zap.Int("caller_id", session.UserID))
		return ErrForbidden
	}

	return nil
}
