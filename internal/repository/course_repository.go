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

// CourseRepository handles course data access
type CourseRepository struct {
	pool *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

// Create inserts a new course owned by the given instructor
func (r *CourseRepository) Create(ctx context.Context, title string, instructorID int) (*models.Course, error) {
	start := time.Now()
	operation := "createCourse"

	query := `
		INSERT INTO courses (title, instructor_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	course := &models.Course{
		Title:        title,
		InstructorID: instructorID,
	}
	err := r.pool.QueryRow(ctx, query, title, instructorID).Scan(&course.ID, &course.CreatedAt)

	duration := metrics.MeasureDuration(start)

	if err != nil {
		recordMetrics(operation, "error", duration)
		logger.LogDBCall(operation, "error", duration, zap.Error(err))
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	recordMetrics(operation, "success", duration)
	logger.LogDBCall(operation, "success", duration, zap.Int("course_id", course.ID))

	return course, nil
}

// List returns all courses with instructor emails joined in
func (r *CourseRepository) List(ctx context.Context) ([]models.CourseListItem, error) {
	start := time.Now()
	operation := "listCourses"

	query := `
		SELECT c.id, c.title, u.email AS instructor
		FROM courses c
		JOIN users u ON u.id = c.instructor_id
		ORDER BY c.id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		duration := metrics.MeasureDuration(start)
		recordMetrics(operation, "error", duration)
		logger.LogDBCall(operation, "error", duration, zap.Error(err))
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	courses := make([]models.CourseListItem, 0)
	for rows.Next() {
		var c models.CourseListItem
		if err := rows.Scan(&c.ID, &c.Title, &c.Instructor); err != nil {
			duration := metrics.MeasureDuration(start)
			recordMetrics(operation, "error", duration)
			return nil, fmt.Errorf("failed to scan course row: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		duration := metrics.MeasureDuration(start)
		recordMetrics(operation, "error", duration)
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	duration := metrics.MeasureDuration(start)
	recordMetrics(operation, "success", duration)
	logger.LogDBCall(operation, "success", duration, zap.Int("count", len(courses)))

	return courses, nil
}

// GetInstructorID returns the instructor owning a course. Returns
// ErrNotFound when the course does not exist.
func (r *CourseRepository) GetInstructorID(ctx context.Context, courseID int) (int, error) {
	start := time.Now()
	operation := "getCourseInstructor"

	var instructorID int
	err := r.pool.QueryRow(ctx,
		"SELECT instructor_id FROM courses WHERE id = $1", courseID).Scan(&instructorID)

	duration := metrics.MeasureDuration(start)

	if errors.Is(err, pgx.ErrNoRows) {
		recordMetrics(operation, "not_found", duration)
		return 0, fmt.Errorf("course with id %d: %w", courseID, ErrNotFound)
	}
	if err != nil {
		recordMetrics(operation, "error", duration)
		logger.LogDBCall(operation, "error", duration, zap.Error(err))
		return 0, fmt.Errorf("failed to query course: %w", err)
	}

	recordMetrics(operation, "success", duration)
	return instructorID, nil
}
