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

// UserSkillRepository handles self-declared teachable skills
type UserSkillRepository struct {
	pool *pgxpool.Pool
}

// NewUserSkillRepository creates a new user skill repository
func NewUserSkillRepository(pool *pgxpool.Pool) *UserSkillRepository {
	return &UserSkillRepository{pool: pool}
}

// Insert adds a new user skill row. A user may declare the same skill
// more than once; each call creates a new row.
func (r *UserSkillRepository) Insert(ctx context.Context, userID, skillID int, level models.SkillLevel, description string) (*models.UserSkillView, error) {
	start := time.Now()
	operation := "insertUserSkill"

	query := `
		WITH inserted AS (
			INSERT INTO user_skills (user_id, skill_id, level, description)
			VALUES ($1, $2, $3, $4)
			RETURNING id, skill_id, level, description
		)
		SELECT i.id, s.name, i.level, i.description
		FROM inserted i
		JOIN skills s ON s.id = i.skill_id
	`

	var view models.UserSkillView
	err := r.pool.QueryRow(ctx, query, userID, skillID, level, description).Scan(
		&view.ID, &view.Name, &view.Level, &view.Description,
	)

	duration := metrics.MeasureDuration(start)

	if err != nil {
		recordMetrics(operation, "error", duration)
		logger.LogDBCall(operation, "error", duration, zap.Error(err))
		return nil, fmt.Errorf("failed to insert user skill: %w", err)
	}

	recordMetrics(operation, "success", duration)
	logger.LogDBCall(operation, "success", duration,
		zap.Int("user_id", userID),
		zap.Int("skill_id", skillID))

	return &view, nil
}

// ListForUser returns the skills a user has declared, with skill names
// joined in
func (r *UserSkillRepository) ListForUser(ctx context.Context, userID int) ([]models.UserSkillView, error) {
	start := time.Now()
	operation := "listUserSkills"

	query := `
		SELECT us.id, s.name, us.level, us.description
		FROM user_skills us
		JOIN skills s ON s.id = us.skill_id
		WHERE us.user_id = $1
		ORDER BY us.id
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		duration := metrics.MeasureDuration(start)
		recordMetrics(operation, "error", duration)
		logger.LogDBCall(operation, "error", duration, zap.Error(err))
		return nil, fmt.Errorf("failed to query user skills: %w", err)
	}
	defer rows.Close()

	views := make([]models.UserSkillView, 0)
	for rows.Next() {
		var v models.UserSkillView
		if err := rows.Scan(&v.ID, &v.Name, &v.Level, &v.Description); err != nil {
			duration := metrics.MeasureDuration(start)
			recordMetrics(operation, "error", duration)
			return nil, fmt.Errorf("failed to scan user skill row: %w", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		duration := metrics.MeasureDuration(start)
		recordMetrics(operation, "error", duration)
		return nil, fmt.Errorf("error iterating user skill rows: %w", err)
	}

	duration := metrics.MeasureDuration(start)
	recordMetrics(operation, "success", duration)
	return views, nil
}

// GetOwned returns a user skill only if it belongs to the given user.
// Missing and non-owned rows are indistinguishable: both ErrNotFound.
func (r *UserSkillRepository) GetOwned(ctx context.Context, id, userID int) (*models.UserSkill, error) {
	start := time.Now()
	operation := "getOwnedUserSkill"

	query := `
		SELECT id, user_id, skill_id, level, description
		FROM user_skills
		WHERE id = $1 AND user_id = $2
	`

	var us models.UserSkill
	err := r.pool.QueryRow(ctx, query, id, userID).Scan(
		&us.ID, &us.UserID, &us.SkillID, &us.Level, &us.Description,
	)

	duration := metrics.MeasureDuration(start)

	if errors.Is(err, pgx.ErrNoRows) {
		recordMetrics(operation, "not_found", duration)
		return nil, fmt.Errorf("user skill with id %d: %w", id, ErrNotFound)
	}
	if err != nil {
		recordMetrics(operation, "error", duration)
		logger.LogDBCall(operation, "error", duration, zap.Error(err))
		return nil, fmt.Errorf("failed to query user skill: %w", err)
	}

	recordMetrics(operation, "success", duration)
	return &us, nil
}

// Update sets the level and description of a user skill row
func (r *UserSkillRepository) Update(ctx context.Context, id int, level models.SkillLevel, description string) (int64, error) {
	start := time.Now()
	operation := "updateUserSkill"

	result, err := r.pool.Exec(ctx,
		"UPDATE user_skills SET level = $1, description = $2 WHERE id = $3",
		level, description, id)

	duration := metrics.MeasureDuration(start)

	if err != nil {
		recordMetrics(operation, "error", duration)
		logger.LogDBCall(operation, "error", duration, zap.Error(err))
		return 0, fmt.Errorf("failed to update user skill: %w", err)
	}

	recordMetrics(operation, "success", duration)
	logger.LogDBCall(operation, "success", duration, zap.Int("user_skill_id", id))

	return result.RowsAffected(), nil
}

// DeleteOwned deletes a user skill scoped to its owner. Deleting a
// non-owned or nonexistent row affects zero rows and is not an error.
func (r *UserSkillRepository) DeleteOwned(ctx context.Context, id, userID int) (int64, error) {
	start := time.Now()
	operation := "deleteUserSkill"

	result, err := r.pool.Exec(ctx,
		"DELETE FROM user_skills WHERE id = $1 AND user_id = $2", id, userID)

	duration := metrics.MeasureDuration(start)

	if err != nil {
		recordMetrics(operation, "error", duration)
		logger.LogDBCall(operation, "error", duration, zap.Error(err))
		return 0, fmt.Errorf("failed to delete user skill: %w", err)
	}

	recordMetrics(operation, "success", duration)
	return result.RowsAffected(), nil
}

// Browse returns every declared user skill with owner email and skill
// name joined in, for the public marketplace view
func (r *UserSkillRepository) Browse(ctx context.Context) ([]models.BrowseSkillItem, error) {
	start := time.Now()
	operation := "browseUserSkills"

	query := `
		SELECT us.id, u.id AS user_id, u.email, s.name, us.level, us.description
		FROM user_skills us
		JOIN users u ON u.id = us.user_id
		JOIN skills s ON s.id = us.skill_id
		ORDER BY s.name, u.email
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		duration := metrics.MeasureDuration(start)
		recordMetrics(operation, "error", duration)
		logger.LogDBCall(operation, "error", duration, zap.Error(err))
		return nil, fmt.Errorf("failed to query browse skills: %w", err)
	}
	defer rows.Close()

	items := make([]models.BrowseSkillItem, 0)
	for rows.Next() {
		var item models.BrowseSkillItem
		if err := rows.Scan(&item.ID, &item.UserID, &item.Email, &item.Name, &item.Level, &item.Description); err != nil {
			duration := metrics.MeasureDuration(start)
			recordMetrics(operation, "error", duration)
			return nil, fmt.Errorf("failed to scan browse skill row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		duration := metrics.MeasureDuration(start)
		recordMetrics(operation, "error", duration)
		return nil, fmt.Errorf("error iterating browse skill rows: %w", err)
	}

	duration := metrics.MeasureDuration(start)
	recordMetrics(operation, "success", duration)
	logger.LogDBCall(operation, "success", duration, zap.Int("count", len(items)))

	return items, nil
}
