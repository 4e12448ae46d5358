package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"association-admin-backend/internal/domain"
	"association-admin-backend/internal/repository"
)

type auditLogRepository struct {
	db *sql.DB
}

func NewAuditLogRepository(db *sql.DB) repository.AuditLogRepository {
	return &auditLogRepository{db: db}
}

func (r *auditLogRepository) Create(ctx context.Context, entry *domain.AuditLog) error {
	details, err := json.Marshal(entry.Details)
	if err != nil {
		return err
	}
	query := `INSERT INTO audit_logs (actor_id, action, details, ip, user_agent, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	now := time.Now().UTC()
	entry.CreatedAt = now.Format(time.RFC3339)
	return r.db.QueryRowContext(ctx, query,
		entry.ActorID, entry.Action, details, entry.IP, entry.UserAgent, now,
	).Scan(&entry.ID)
}

func (r *auditLogRepository) List(ctx context.Context, page, limit int32) ([]domain.AuditLog, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM audit_logs`).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	query := `SELECT id, actor_id, action, details, COALESCE(ip, ''), COALESCE(user_agent, ''), created_at
	          FROM audit_logs ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.AuditLog
	for rows.Next() {
		var entry domain.AuditLog
		var details []byte
		var createdAt time.Time
		if err := rows.Scan(&entry.ID, &entry.ActorID, &entry.Action, &details, &entry.IP, &entry.UserAgent, &createdAt); err != nil {
			return nil, 0, err
		}
		if len(details) > 0 {
			if err := json.Unmarshal(details, &entry.Details); err != nil {
				return nil, 0, err
			}
		}
		entry.CreatedAt = createdAt.Format(time.RFC3339)
		out = append(out, entry)
	}
	return out, total, rows.Err()
}
