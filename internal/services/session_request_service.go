package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/skillhub/skillhub-api/internal/models"
	"github.com/skillhub/skillhub-api/internal/repository"
	"github.com/skillhub/skillhub-api/pkg/logger"
	"github.com/skillhub/skillhub-api/pkg/metrics"
	"go.uber.org/zap"
)

// SessionRequestService is the course-session half of the request
// workflow engine. Students create requests; the instructor owning the
// course decides them.
type SessionRequestService struct {
	requestRepo repository.SessionRequestStore
}

// NewSessionRequestService creates a new SessionRequestService
func NewSessionRequestService(requestRepo repository.SessionRequestStore) *SessionRequestService {
	return &SessionRequestService{requestRepo: requestRepo}
}

// Create inserts a pending session request for the caller. There is no
// duplicate check: repeated requests for the same course all go through.
func (s *SessionRequestService) Create(ctx context.Context, session *models.UserSession, courseID int) (*models.SessionRequest, error) {
	if session == nil || session.UserID <= 0 {
		return nil, ErrUnauthenticated
	}

	req, err := s.requestRepo.Create(ctx, session.UserID, courseID)
	if err != nil {
		metrics.SessionRequestsCreated.WithLabelValues("error").Inc()
		logger.Error("Failed to create session request",
			zap.Int("user_id", session.UserID),
			zap.Int("course_id", courseID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to create session request: %w", err)
	}

	metrics.SessionRequestsCreated.WithLabelValues("success").Inc()
	logger.Info("Session request created",
		zap.Int("request_id", req.ID),
		zap.Int("user_id", session.UserID),
		zap.Int("course_id", courseID))

	return req, nil
}

// ListForStudent returns the caller's own session requests with course
// titles joined in
func (s *SessionRequestService) ListForStudent(ctx context.Context, session *models.UserSession) ([]models.StudentSessionView, error) {
	if session == nil || session.UserID <= 0 {
		return nil, ErrUnauthenticated
	}

	views, err := s.requestRepo.ListForStudent(ctx, session.UserID)
	if err != nil {
		logger.Error("Failed to list student session requests",
			zap.Int("user_id", session.UserID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to list session requests: %w", err)
	}

	return views, nil
}

// ListForInstructor returns the requests on courses owned by the caller.
// Only instructors may call this.
func (s *SessionRequestService) ListForInstructor(ctx context.Context, session *models.UserSession) ([]models.InstructorSessionView, error) {
	if session == nil || session.UserID <= 0 {
		return nil, ErrUnauthenticated
	}
	if !session.IsInstructor() {
		logger.Warn("Non-instructor tried to list instructor requests",
			zap.Int("user_id", session.UserID),
			zap.String("role", string(session.Role)))
		return nil, ErrForbidden
	}

	views, err := s.requestRepo.ListForInstructor(ctx, session.UserID)
	if err != nil {
		logger.Error("Failed to list instructor session requests",
			zap.Int("instructor_id", session.UserID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to list session requests: %w", err)
	}

	return views, nil
}

// SetStatus applies an accept/reject decision to a session request.
// The caller must be the instructor owning the course behind the
// request; the same ownership predicate guards both state machines.
func (s *SessionRequestService) SetStatus(ctx context.Context, session *models.UserSession, requestID int, newStatus models.RequestStatus) (int64, error) {
	if session == nil || session.UserID <= 0 {
		return 0, ErrUnauthenticated
	}

	if !newStatus.IsSettable() {
		return 0, fmt.Errorf("%w: %q is not a settable status", ErrInvalidStatus, newStatus)
	}

	ownerID, err := s.requestRepo.GetCourseInstructor(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, fmt.Errorf("session request %d: %w", requestID, ErrNotFound)
		}
		logger.Error("Failed to resolve session request owner",
			zap.Int("request_id", requestID),
			zap.Error(err))
		return 0, fmt.Errorf("failed to resolve request owner: %w", err)
	}

	if ownerID != session.UserID {
		logger.Warn("Session request status change denied",
			zap.Int("request_id", requestID),
			zap.Int("owner_id", ownerID),
			zap.Int("caller_id", session.UserID))
		return 0, ErrForbidden
	}

	updated, err := s.requestRepo.UpdateStatus(ctx, requestID, newStatus)
	if err != nil {
		logger.Error("Failed to update session request status",
			zap.Int("request_id", requestID),
			zap.Error(err))
		return 0, fmt.Errorf("failed to update status: %w", err)
	}

	metrics.SessionRequestStatusUpdates.WithLabelValues(string(newStatus)).Inc()
	logger.Info("Session request status updated",
		zap.Int("request_id", requestID),
		zap.String("new_status", string(newStatus)),
		zap.Int("caller_id", session.UserID))

	return updated, nil
}
