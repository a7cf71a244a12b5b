package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skillhub/skillhub-api/internal/models"
	"github.com/skillhub/skillhub-api/pkg/logger"
	"github.com/skillhub/skillhub-api/pkg/metrics"
	"go.uber.org/zap"
)

// SkillRequestRepository handles peer skill mentoring request data access
type SkillRequestRepository struct {
	pool *pgxpool.Pool
}

// NewSkillRequestRepository creates a new skill request repository
func NewSkillRequestRepository(pool *pgxpool.Pool) *SkillRequestRepository {
	return &SkillRequestRepository{pool: pool}
}

// Create inserts a new pending skill request. The unique constraint on
// (learner, mentor, skill) is authoritative: a violation surfaces as
// ErrDuplicateKey whatever the status of the existing request.
func (r *SkillRequestRepository) Create(ctx context.Context, learnerID, mentorID, skillID int) (*models.SkillRequest, error) {
	start := time.Now()
	operation := "createSkillRequest"

	query := `
		INSERT INTO skill_requests (learner_id, mentor_id, skill_id, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	req := &models.SkillRequest{
		LearnerID: learnerID,
		MentorID:  mentorID,
		SkillID:   skillID,
		Status:    models.StatusPending,
	}
	err := r.pool.QueryRow(ctx, query, learnerID, mentorID, skillID, models.StatusPending).Scan(
		&req.ID, &req.CreatedAt, &req.UpdatedAt,
	)

	duration := metrics.MeasureDuration(start)

	if err != nil {
		if isUniqueViolation(err) {
			recordMetrics(operation, "duplicate", duration)
			return nil, fmt.Errorf("skill request (%d, %d, %d): %w", learnerID, mentorID, skillID, ErrDuplicateKey)
		}
		recordMetrics(operation, "error", duration)
		logger.LogDBCall(operation, "error", duration, zap.Error(err))
		return nil, fmt.Errorf("failed to create skill request: %w", err)
	}

	recordMetrics(operation, "success", duration)
	logger.LogDBCall(operation, "success", duration,
		zap.Int("request_id", req.ID),
		zap.Int("learner_id", learnerID),
		zap.Int("mentor_id", mentorID),
		zap.Int("skill_id", skillID))

	return req, nil
}

// GetByID returns a skill request by id. Returns ErrNotFound when the id
// is unknown.
func (r *SkillRequestRepository) GetByID(ctx context.Context, id int) (*models.SkillRequest, error) {
	start := time.Now()
	operation := "getSkillRequestByID"

	query := `
		SELECT id, learner_id, mentor_id, skill_id, status, created_at, updated_at
		FROM skill_requests
		WHERE id = $1
	`

	var req models.SkillRequest
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.LearnerID, &req.MentorID, &req.SkillID,
		&req.Status, &req.CreatedAt, &req.UpdatedAt,
	)

	duration := metrics.MeasureDuration(start)

	if errors.Is(err, pgx.ErrNoRows) {
		recordMetrics(operation, "not_found", duration)
		return nil, fmt.Errorf("skill request with id %d: %w", id, ErrNotFound)
	}
	if err != nil {
		recordMetrics(operation, "error", duration)
		logger.LogDBCall(operation, "error", duration, zap.Error(err))
		return nil, fmt.Errorf("failed to query skill request: %w", err)
	}

	recordMetrics(operation, "success", duration)
	return &req, nil
}

// ListReceived returns the requests addressed to a mentor, grouped by
// status text then newest first within each status group
func (r *SkillRequestRepository) ListReceived(ctx context.Context, mentorID int) ([]models.SkillRequestReceivedView, error) {
	start := time.Now()
	operation := "listReceivedSkillRequests"

	query := `
		SELECT sr.id, u.email AS learner, s.name AS skill, sr.status
		FROM skill_requests sr
		JOIN users u ON u.id = sr.learner_id
		JOIN skills s ON s.id = sr.skill_id
		WHERE sr.mentor_id = $1
		ORDER BY sr.status, sr.id DESC
	`

	rows, err := r.pool.Query(ctx, query, mentorID)
	if err != nil {
		duration := metrics.MeasureDuration(start)
		recordMetrics(operation, "error", duration)
		logger.LogDBCall(operation, "error", duration, zap.Error(err))
		return nil, fmt.Errorf("failed to query skill requests: %w", err)
	}
	defer rows.Close()

	views := make([]models.SkillRequestReceivedView, 0)
	for rows.Next() {
		var v models.SkillRequestReceivedView
		if err := rows.Scan(&v.ID, &v.Learner, &v.Skill, &v.Status); err != nil {
			duration := metrics.MeasureDuration(start)
			recordMetrics(operation, "error", duration)
			return nil, fmt.Errorf("failed to scan skill request row: %w", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		duration := metrics.MeasureDuration(start)
		recordMetrics(operation, "error", duration)
		return nil, fmt.Errorf("error iterating skill request rows: %w", err)
	}

	duration := metrics.MeasureDuration(start)
	recordMetrics(operation, "success", duration)
	logger.LogDBCall(operation, "success", duration, zap.Int("count", len(views)))

	return views, nil
}

// ListSent returns the requests a learner has sent, grouped by status
// text then newest first within each status group
func (r *SkillRequestRepository) ListSent(ctx context.Context, learnerID int) ([]models.SkillRequestSentView, error) {
	start := time.Now()
	operation := "listSentSkillRequests"

	query := `
		SELECT sr.id, u.email AS mentor, s.name AS skill, sr.status
		FROM skill_requests sr
		JOIN users u ON u.id = sr.mentor_id
		JOIN skills s ON s.id = sr.skill_id
		WHERE sr.learner_id = $1
		ORDER BY sr.status, sr.id DESC
	`

	rows, err := r.pool.Query(ctx, query, learnerID)
	if err != nil {
		duration := metrics.MeasureDuration(start)
		recordMetrics(operation, "error", duration)
		logger.LogDBCall(operation, "error", duration, zap.Error(err))
		return nil, fmt.Errorf("failed to query skill requests: %w", err)
	}
	defer rows.Close()

	views := make([]models.SkillRequestSentView, 0)
	for rows.Next() {
		var v models.SkillRequestSentView
		if err := rows.Scan(&v.ID, &v.Mentor, &v.Skill, &v.Status); err != nil {
			duration := metrics.MeasureDuration(start)
			recordMetrics(operation, "error", duration)
			return nil, fmt.Errorf("failed to scan skill request row: %w", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		duration := metrics.MeasureDuration(start)
		recordMetrics(operation, "error", duration)
		return nil, fmt.Errorf("error iterating skill request rows: %w", err)
	}

	duration := metrics.MeasureDuration(start)
	recordMetrics(operation, "success", duration)
	logger.LogDBCall(operation, "success", duration, zap.Int("count", len(views)))

	return views, nil
}

// UpdateStatus sets the status of a skill request and returns the number
// of affected rows
func (r *SkillRequestRepository) UpdateStatus(ctx context.Context, requestID int, status models.RequestStatus) (int64, error) {
	start := time.Now()
	operation := "updateSkillRequestStatus"

	result, err := r.pool.Exec(ctx,
		"UPDATE skill_requests SET status = $1, updated_at = NOW() WHERE id = $2",
		status, requestID)

	duration := metrics.MeasureDuration(start)

	if err != nil {
		recordMetrics(operation, "error", duration)
		logger.LogDBCall(operation, "error", duration, zap.Error(err))
		return 0, fmt.Errorf("failed to update skill request status: %w", err)
	}

	recordMetrics(operation, "success", duration)
	logger.LogDBCall(operation, "success", duration,
		zap.Int("request_id", requestID),
		zap.String("new_status", string(status)))

	return result.RowsAffected(), nil
}
