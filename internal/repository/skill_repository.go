package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skillhub/skillhub-api/internal/models"
	"github.com/skillhub/skillhub-api/pkg/logger"
	"github.com/skillhub/skillhub-api/pkg/metrics"
	"go.uber.org/zap"
)

// SkillRepository handles the shared skill tag vocabulary and course
// skill associations
type SkillRepository struct {
	pool *pgxpool.Pool
}

// NewSkillRepository creates a new skill repository
func NewSkillRepository(pool *pgxpool.Pool) *SkillRepository {
	return &SkillRepository{pool: pool}
}

// Ensure gets or creates a skill by its exact name in a single atomic
// statement. The unique constraint on name is authoritative, so two
// concurrent Ensure calls for the same name resolve to one row.
func (r *SkillRepository) Ensure(ctx context.Context, name string) (*models.Skill, error) {
	start := time.Now()
	operation := "ensureSkill"

	skill := &models.Skill{Name: name}
	err := r.pool.QueryRow(ctx,
		"INSERT INTO skills (name) VALUES ($1) ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name RETURNING id",
		name).Scan(&skill.ID)

	duration := metrics.MeasureDuration(start)

	if err != nil {
		recordMetrics(operation, "error", duration)
		logger.LogDBCall(operation, "error", duration, zap.Error(err))
		return nil, fmt.Errorf("failed to ensure skill: %w", err)
	}

	recordMetrics(operation, "success", duration)
	logger.LogDBCall(operation, "success", duration, zap.String("name", name))

	return skill, nil
}

// List returns all skills in the tag vocabulary
func (r *SkillRepository) List(ctx context.Context) ([]models.Skill, error) {
	start := time.Now()
	operation := "listSkills"

	rows, err := r.pool.Query(ctx, "SELECT id, name FROM skills ORDER BY id")
	if err != nil {
		duration := metrics.MeasureDuration(start)
		recordMetrics(operation, "error", duration)
		logger.LogDBCall(operation, "error", duration, zap.Error(err))
		return nil, fmt.Errorf("failed to query skills: %w", err)
	}
	defer rows.Close()

	skills := make([]models.Skill, 0)
	for rows.Next() {
		var s models.Skill
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			duration := metrics.MeasureDuration(start)
			recordMetrics(operation, "error", duration)
			return nil, fmt.Errorf("failed to scan skill row: %w", err)
		}
		skills = append(skills, s)
	}
	if err := rows.Err(); err != nil {
		duration := metrics.MeasureDuration(start)
		recordMetrics(operation, "error", duration)
		return nil, fmt.Errorf("error iterating skill rows: %w", err)
	}

	duration := metrics.MeasureDuration(start)
	recordMetrics(operation, "success", duration)
	return skills, nil
}

// AddCourseSkill tags a course with a skill it teaches. Returns
// ErrDuplicateKey when the (course, skill) pair already exists.
func (r *SkillRepository) AddCourseSkill(ctx context.Context, courseID, skillID int) (*models.CourseSkillView, error) {
	start := time.Now()
	operation := "addCourseSkill"

	query := `
		WITH inserted AS (
			INSERT INTO course_skills (course_id, skill_id)
			VALUES ($1, $2)
			RETURNING id, skill_id
		)
		SELECT i.id, s.id, s.name
		FROM inserted i
		JOIN skills s ON s.id = i.skill_id
	`

	var view models.CourseSkillView
	err := r.pool.QueryRow(ctx, query, courseID, skillID).Scan(&view.ID, &view.SkillID, &view.Name)

	duration := metrics.MeasureDuration(start)

	if err != nil {
		if isUniqueViolation(err) {
			recordMetrics(operation, "duplicate", duration)
			return nil, fmt.Errorf("course %d already teaches skill %d: %w", courseID, skillID, ErrDuplicateKey)
		}
		recordMetrics(operation, "error", duration)
		logger.LogDBCall(operation, "error", duration, zap.Error(err))
		return nil, fmt.Errorf("failed to add course skill: %w", err)
	}

	recordMetrics(operation, "success", duration)
	logger.LogDBCall(operation, "success", duration,
		zap.Int("course_id", courseID),
		zap.Int("skill_id", skillID))

	return &view, nil
}

// RemoveCourseSkill removes a skill tag from a course. Deleting a pair
// that does not exist affects zero rows and is not an error.
func (r *SkillRepository) RemoveCourseSkill(ctx context.Context, courseID, skillID int) (int64, error) {
	start := time.Now()
	operation := "removeCourseSkill"

	result, err := r.pool.Exec(ctx,
		"DELETE FROM course_skills WHERE course_id = $1 AND skill_id = $2",
		courseID, skillID)

	duration := metrics.MeasureDuration(start)

	if err != nil {
		recordMetrics(operation, "error", duration)
		logger.LogDBCall(operation, "error", duration, zap.Error(err))
		return 0, fmt.Errorf("failed to remove course skill: %w", err)
	}

	recordMetrics(operation, "success", duration)
	return result.RowsAffected(), nil
}

// ListCourseSkills returns the skills a course teaches
func (r *SkillRepository) ListCourseSkills(ctx context.Context, courseID int) ([]models.CourseSkillView, error) {
	start := time.Now()
	operation := "listCourseSkills"

	query := `
		SELECT cs.id, s.id AS skill_id, s.name
		FROM course_skills cs
		JOIN skills s ON s.id = cs.skill_id
		WHERE cs.course_id = $1
		ORDER BY cs.id
	`

	rows, err := r.pool.Query(ctx, query, courseID)
	if err != nil {
		duration := metrics.MeasureDuration(start)
		recordMetrics(operation, "error", duration)
		logger.LogDBCall(operation, "error", duration, zap.Error(err))
		return nil, fmt.Errorf("failed to query course skills: %w", err)
	}
	defer rows.Close()

	views := make([]models.CourseSkillView, 0)
	for rows.Next() {
		var v models.CourseSkillView
		if err := rows.Scan(&v.ID, &v.SkillID, &v.Name); err != nil {
			duration := metrics.MeasureDuration(start)
			recordMetrics(operation, "error", duration)
			return nil, fmt.Errorf("failed to scan course skill row: %w", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		duration := metrics.MeasureDuration(start)
		recordMetrics(operation, "error", duration)
		return nil, fmt.Errorf("error iterating course skill rows: %w", err)
	}

	duration := metrics.MeasureDuration(start)
	recordMetrics(operation, "success", duration)
	return views, nil
}
