// Package repository provides pgx-backed data access for the skillhub
// entity store. Repositories translate storage-level conditions
// (no rows, unique violations) into the package sentinel errors; the
// service layer maps those onto the API error taxonomy.
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/skillhub/skillhub-api/pkg/metrics"
)

var (
	// ErrNotFound indicates the referenced row does not exist
	ErrNotFound = errors.New("not found")

	// ErrDuplicateKey indicates a unique constraint rejected the write
	ErrDuplicateKey = errors.New("duplicate key")
)

// uniqueViolationCode is the PostgreSQL SQLSTATE for unique_violation
const uniqueViolationCode = "23505"

// isUniqueViolation reports whether err is a PostgreSQL unique
// constraint violation. Concurrent identical writes are expected to
// race on unique indexes; the constraint is authoritative and callers
// treat the losing write as a benign duplicate.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// recordMetrics records database operation metrics
func recordMetrics(operation, status string, duration float64) {
	metrics.DBRequestDuration.WithLabelValues(operation, status).Observe(duration)
	metrics.DBRequestTotal.WithLabelValues(operation, status).Inc()
}
