package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"impersonation-service/app/domain"
)

// AuditRepository implements port.AuditRecorder and port.AuditReader for
// PostgreSQL. Writes are observational; the caller decides what to do
// when one fails (the usecase logs and moves on).
type AuditRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewAuditRepository creates a new PostgreSQL audit repository
func NewAuditRepository(db DatabaseIface, logger *slog.Logger) *AuditRepository {
	return &AuditRepository{
		db:     db,
		logger: logger.With("component", "audit_repository"),
	}
}

// Record inserts one impersonation attempt into the audit trail.
func (r *AuditRepository) Record(ctx context.Context, record *domain.AuditRecord) error {
	query := `
		INSERT INTO impersonation_audit (
			id, target_user_id, outcome, error_code, source_ip, requested_at
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)`

	_, err := r.db.Exec(ctx, query,
		record.ID,
		record.TargetUserID,
		record.Outcome,
		record.ErrorCode,
		record.SourceIP,
		record.RequestedAt,
	)
	if err != nil {
		r.logger.Error("failed to record impersonation attempt",
			"target_user_id", record.TargetUserID,
			"outcome", record.Outcome,
			"error", err)
		return fmt.Errorf("failed to record impersonation attempt: %w", err)
	}

	r.logger.Debug("impersonation attempt recorded",
		"audit_id", record.ID,
		"outcome", record.Outcome)
	return nil
}

// RecentAttempts returns audit records for a target user within the
// given window, newest first. Used by operators investigating abuse.
func (r *AuditRepository) RecentAttempts(ctx context.Context, targetUserID string, since time.Time) ([]*domain.AuditRecord, error) {
	query := `
		SELECT id, target_user_id, outcome, error_code, source_ip, requested_at
		FROM impersonation_audit
		WHERE target_user_id = $1 AND requested_at >= $2
		ORDER BY requested_at DESC`

	rows, err := r.db.Query(ctx, query, targetUserID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit records: %w", err)
	}
	defer rows.Close()

	var records []*domain.AuditRecord
	for rows.Next() {
		record := &domain.AuditRecord{}
		if err := rows.Scan(
			&record.ID,
			&record.TargetUserID,
			&record.Outcome,
			&record.ErrorCode,
			&record.SourceIP,
			&record.RequestedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan audit record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read audit records: %w", err)
	}

	return records, nil
}
