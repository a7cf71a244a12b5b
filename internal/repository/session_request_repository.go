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

// SessionRequestRepository handles course session request data access
type SessionRequestRepository struct {
	pool *pgxpool.Pool
}

// NewSessionRequestRepository creates a new session request repository
func NewSessionRequestRepository(pool *pgxpool.Pool) *SessionRequestRepository {
	return &SessionRequestRepository{pool: pool}
}

// Create inserts a new pending session request. There is no duplicate
// check: a student may hold several requests for one course.
func (r *SessionRequestRepository) Create(ctx context.Context, userID, courseID int) (*models.SessionRequest, error) {
	start := time.Now()
	operation := "createSessionRequest"

	query := `
		INSERT INTO session_requests (user_id, course_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	req := &models.SessionRequest{
		UserID:   userID,
		CourseID: courseID,
		Status:   models.StatusPending,
	}
	err := r.pool.QueryRow(ctx, query, userID, courseID, models.StatusPending).Scan(
		&req.ID, &req.CreatedAt, &req.UpdatedAt,
	)

	duration := metrics.MeasureDuration(start)

	if err != nil {
		recordMetrics(operation, "error", duration)
		logger.LogDBCall(operation, "error", duration, zap.Error(err))
		return nil, fmt.Errorf("failed to create session request: %w", err)
	}

	recordMetrics(operation, "success", duration)
	logger.LogDBCall(operation, "success", duration,
		zap.Int("request_id", req.ID),
		zap.Int("user_id", userID),
		zap.Int("course_id", courseID))

	return req, nil
}

// ListForStudent returns a student's session requests with course titles
// joined in
func (r *SessionRequestRepository) ListForStudent(ctx context.Context, userID int) ([]models.StudentSessionView, error) {
	start := time.Now()
	operation := "listStudentSessionRequests"

	query := `
		SELECT sr.id, c.title, sr.status
		FROM session_requests sr
		JOIN courses c ON c.id = sr.course_id
		WHERE sr.user_id = $1
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		duration := metrics.MeasureDuration(start)
		recordMetrics(operation, "error", duration)
		logger.LogDBCall(operation, "error", duration, zap.Error(err))
		return nil, fmt.Errorf("failed to query session requests: %w", err)
	}
	defer rows.Close()

	views := make([]models.StudentSessionView, 0)
	for rows.Next() {
		var v models.StudentSessionView
		if err := rows.Scan(&v.ID, &v.Title, &v.Status); err != nil {
			duration := metrics.MeasureDuration(start)
			recordMetrics(operation, "error", duration)
			return nil, fmt.Errorf("failed to scan session request row: %w", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		duration := metrics.MeasureDuration(start)
		recordMetrics(operation, "error", duration)
		return nil, fmt.Errorf("error iterating session request rows: %w", err)
	}

	duration := metrics.MeasureDuration(start)
	recordMetrics(operation, "success", duration)
	logger.LogDBCall(operation, "success", duration, zap.Int("count", len(views)))

	return views, nil
}

// ListForInstructor returns the session requests on courses owned by an
// instructor, with student emails and course titles joined in
func (r *SessionRequestRepository) ListForInstructor(ctx context.Context, instructorID int) ([]models.InstructorSessionView, error) {
	start := time.Now()
	operation := "listInstructorSessionRequests"

	query := `
		SELECT sr.id, u.email AS student, c.title, sr.status
		FROM session_requests sr
		JOIN users u ON u.id = sr.user_id
		JOIN courses c ON c.id = sr.course_id
		WHERE c.instructor_id = $1
	`

	rows, err := r.pool.Query(ctx, query, instructorID)
	if err != nil {
		duration := metrics.MeasureDuration(start)
		recordMetrics(operation, "error", duration)
		logger.LogDBCall(operation, "error", duration, zap.Error(err))
		return nil, fmt.Errorf("failed to query session requests: %w", err)
	}
	defer rows.Close()

	views := make([]models.InstructorSessionView, 0)
	for rows.Next() {
		var v models.InstructorSessionView
		if err := rows.Scan(&v.ID, &v.Student, &v.Title, &v.Status); err != nil {
			duration := metrics.MeasureDuration(start)
			recordMetrics(operation, "error", duration)
			return nil, fmt.Errorf("failed to scan session request row: %w", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		duration := metrics.MeasureDuration(start)
		recordMetrics(operation, "error", duration)
		return nil, fmt.Errorf("error iterating session request rows: %w", err)
	}

	duration := metrics.MeasureDuration(start)
	recordMetrics(operation, "success", duration)
	logger.LogDBCall(operation, "success", duration, zap.Int("count", len(views)))

	return views, nil
}

// GetCourseInstructor returns the instructor owning the course behind a
// session request. Returns ErrNotFound when the request does not exist.
func (r *SessionRequestRepository) GetCourseInstructor(ctx context.Context, requestID int) (int, error) {
	start := time.Now()
	operation := "getSessionRequestInstructor"

	query := `
		SELECT c.instructor_id
		FROM session_requests sr
		JOIN courses c ON c.id = sr.course_id
		WHERE sr.id = $1
	`

	var instructorID int
	err := r.pool.QueryRow(ctx, query, requestID).Scan(&instructorID)

	duration := metrics.MeasureDuration(start)

	if errors.Is(err, pgx.ErrNoRows) {
		recordMetrics(operation, "not_found", duration)
		return 0, fmt.Errorf("session request with id %d: %w", requestID, ErrNotFound)
	}
	if err != nil {
		recordMetrics(operation, "error", duration)
		logger.LogDBCall(operation, "error", duration, zap.Error(err))
		return 0, fmt.Errorf("failed to query session request: %w", err)
	}

	recordMetrics(operation, "success", duration)
	return instructorID, nil
}

// UpdateStatus sets the status of a session request and returns the
// number of affected rows
func (r *SessionRequestRepository) UpdateStatus(ctx context.Context, requestID int, status models.RequestStatus) (int64, error) {
	start := time.Now()
	operation := "updateSessionRequestStatus"

	result, err := r.pool.Exec(ctx,
		"UPDATE session_requests SET status = $1, updated_at = NOW() WHERE id = $2",
		status, requestID)

	duration := metrics.MeasureDuration(start)

	if err != nil {
		recordMetrics(operation, "error", duration)
		logger.LogDBCall(operation, "error", duration, zap.Error(err))
		return 0, fmt.Errorf("failed to update session request status: %w", err)
	}

	recordMetrics(operation, "success", duration)
	logger.LogDBCall(operation, "success", duration,
		zap.Int("request_id", requestID),
		zap.String("new_status", string(status)))

	return result.RowsAffected(), nil
}
