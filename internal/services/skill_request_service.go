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

// SkillRequestService is the peer-to-peer half of the request workflow
// engine. A learner asks a mentor for help with a skill; the mentor
// accepts or rejects. Unlike session requests, the same
// learner/mentor/skill triple may only exist once.
type SkillRequestService struct {
	requestRepo repository.SkillRequestStore
}

// NewSkillRequestService creates a new SkillRequestService
func NewSkillRequestService(requestRepo repository.SkillRequestStore) *SkillRequestService {
	return &SkillRequestService{requestRepo: requestRepo}
}

// Create inserts a pending skill request from the caller to mentorID.
// Self-requests are rejected before touching storage; the duplicate
// check is left to the database unique constraint so concurrent
// creates cannot race past it.
func (s *SkillRequestService) Create(ctx context.Context, session *models.UserSession, mentorID, skillID int) (*models.SkillRequest, error) {
	if session == nil || session.UserID <= 0 {
		return nil, ErrUnauthenticated
	}

	if mentorID == session.UserID {
		return nil, ErrSelfRequest
	}

	req, err := s.requestRepo.Create(ctx, session.UserID, mentorID, skillID)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrDuplicateRequest
		}
		metrics.SkillRequestsCreated.WithLabelValues("error").Inc()
		logger.Error("Failed to create skill request",
			zap.Int("learner_id", session.UserID),
			zap.Int("mentor_id", mentorID),
			zap.Int("skill_id", skillID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to create skill request: %w", err)
	}

	metrics.SkillRequestsCreated.WithLabelValues("success").Inc()
	logger.Info("Skill request created",
		zap.Int("request_id", req.ID),
		zap.Int("learner_id", session.UserID),
		zap.Int("mentor_id", mentorID),
		zap.Int("skill_id", skillID))

	return req, nil
}

// ListReceived returns the requests where the caller is the mentor,
// pending first
func (s *SkillRequestService) ListReceived(ctx context.Context, session *models.UserSession) ([]models.SkillRequestReceivedView, error) {
	if session == nil || session.UserID <= 0 {
		return nil, ErrUnauthenticated
	}

	views, err := s.requestRepo.ListReceived(ctx, session.UserID)
	if err != nil {
		logger.Error("Failed to list received skill requests",
			zap.Int("mentor_id", session.UserID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to list skill requests: %w", err)
	}

	return views, nil
}

// ListSent returns the requests where the caller is the learner,
// pending first
func (s *SkillRequestService) ListSent(ctx context.Context, session *models.UserSession) ([]models.SkillRequestSentView, error) {
	if session == nil || session.UserID <= 0 {
		return nil, ErrUnauthenticated
	}

	views, err := s.requestRepo.ListSent(ctx, session.UserID)
	if err != nil {
		logger.Error("Failed to list sent skill requests",
			zap.Int("learner_id", session.UserID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to list skill requests: %w", err)
	}

	return views, nil
}

// SetStatus applies an accept/reject decision to a skill request. Only
// the mentor named on the request may decide it.
func (s *SkillRequestService) SetStatus(ctx context.Context, session *models.UserSession, requestID int, newStatus models.RequestStatus) (int64, error) {
	if session == nil || session.UserID <= 0 {
		return 0, ErrUnauthenticated
	}

	if !newStatus.IsSettable() {
		return 0, fmt.Errorf("%w: %q is not a settable status", ErrInvalidStatus, newStatus)
	}

	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, fmt.Errorf("skill request %d: %w", requestID, ErrNotFound)
		}
		logger.Error("Failed to load skill request",
			zap.Int("request_id", requestID),
			zap.Error(err))
		return 0, fmt.Errorf("failed to load skill request: %w", err)
	}

	if req.MentorID != session.UserID {
		logger.Warn("Skill request status change denied",
			zap.Int("request_id", requestID),
			zap.Int("mentor_id", req.MentorID),
			zap.Int("caller_id", session.UserID))
		return 0, ErrForbidden
	}

	updated, err := s.requestRepo.UpdateStatus(ctx, requestID, newStatus)
	if err != nil {
		logger.Error("Failed to update skill request status",
			zap.Int("request_id", requestID),
			zap.Error(err))
		return 0, fmt.Errorf("failed to update status: %w", err)
	}

	metrics.SkillRequestStatusUpdates.WithLabelValues(string(newStatus)).Inc()
	logger.Info("Skill request status updated",
		zap.Int("request_id", requestID),
		zap.String("new_status", string(newStatus)),
		zap.Int("caller_id", session.UserID))

	return updated, nil
}
