package services

import (
	"context"
	"fmt"

	"github.com/skillhub/skillhub-api/internal/models"
	"github.com/skillhub/skillhub-api/internal/repository"
	"github.com/skillhub/skillhub-api/pkg/logger"
	"go.uber.org/zap"
)

// DirectoryService serves the public user and course listings and
// course creation
type DirectoryService struct {
	userRepo   repository.UserStore
	courseRepo repository.CourseStore
}

// NewDirectoryService creates a new DirectoryService
func NewDirectoryService(userRepo repository.UserStore, courseRepo repository.CourseStore) *DirectoryService {
	return &DirectoryService{
		userRepo:   userRepo,
		courseRepo: courseRepo,
	}
}

// ListUsers returns every registered account in directory form
func (s *DirectoryService) ListUsers(ctx context.Context) ([]models.UserListItem, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		logger.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// ListCourses returns the course catalogue with instructor emails
// joined in
func (s *DirectoryService) ListCourses(ctx context.Context) ([]models.CourseListItem, error) {
	courses, err := s.courseRepo.List(ctx)
	if err != nil {
		logger.Error("Failed to list courses", zap.Error(err))
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, nil
}

// CreateCourse creates a course owned by the caller. Only instructors
// may create courses.
func (s *DirectoryService) CreateCourse(ctx context.Context, session *models.UserSession, title string) (*models.Course, error) {
	if session == nil || session.UserID <= 0 {
		return nil, ErrUnauthenticated
	}
	if !session.IsInstructor() {
		logger.Warn("Non-instructor tried to create course",
			zap.Int("user_id", session.UserID),
			zap.String("role", string(session.Role)))
		return nil, ErrForbidden
	}

	course, err := s.courseRepo.Create(ctx, title, session.UserID)
	if err != nil {
		logger.Error("Failed to create course",
			zap.Int("instructor_id", session.UserID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	logger.Info("Course created",
		zap.Int("course_id", course.ID),
		zap.Int("instructor_id", session.UserID))

	return course, nil
}
