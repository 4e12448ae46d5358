package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"association-admin-backend/internal/domain"
	"association-admin-backend/internal/repository"
)

type invitationRepository struct {
	db *sql.DB
}

func NewInvitationRepository(db *sql.DB) repository.InvitationRepository {
	return &invitationRepository{db: db}
}

func (r *invitationRepository) Create(ctx context.Context, inv *domain.Invitation) error {
	query := `INSERT INTO invitations (email, role, invited_by, token, status, expires_at, created_at)
	          VALUES (LOWER($1), $2, $3, $4, $5, $6, $7) RETURNING id`
	now := time.Now().UTC()
	expiresAt, err := time.Parse(time.RFC3339, inv.ExpiresAt)
	if err != nil {
		return err
	}
	inv.CreatedAt = now.Format(time.RFC3339)
	return r.db.QueryRowContext(ctx, query,
		inv.Email, inv.Role, inv.InvitedBy, inv.Token, inv.Status, expiresAt, now,
	).Scan(&inv.ID)
}

func (r *invitationRepository) GetByID(ctx context.Context, id int64) (*domain.Invitation, error) {
	inv := &domain.Invitation{}
	query := `SELECT id, email, role, invited_by, token, status, expires_at, created_at FROM invitations WHERE id = $1`
	var expiresAt, createdAt time.Time
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&inv.ID, &inv.Email, &inv.Role, &inv.InvitedBy, &inv.Token, &inv.Status, &expiresAt, &createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	inv.ExpiresAt = expiresAt.Format(time.RFC3339)
	inv.CreatedAt = createdAt.Format(time.RFC3339)
	return inv, nil
}

func (r *invitationRepository) FindActiveByEmail(ctx context.Context, email string, now time.Time) (*domain.Invitation, error) {
	inv := &domain.Invitation{}
	query := `SELECT id, email, role, invited_by, token, status, expires_at, created_at
	          FROM invitations
	          WHERE LOWER(email) = LOWER($1) AND status = 'pending' AND expires_at > $2
	          ORDER BY created_at DESC LIMIT 1`
	var expiresAt, createdAt time.Time
	err := r.db.QueryRowContext(ctx, query, email, now).Scan(
		&inv.ID, &inv.Email, &inv.Role, &inv.InvitedBy, &inv.Token, &inv.Status, &expiresAt, &createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	inv.ExpiresAt = expiresAt.Format(time.RFC3339)
	inv.CreatedAt = createdAt.Format(time.RFC3339)
	return inv, nil
}

func (r *invitationRepository) List(ctx context.Context, status domain.InvitationStatus, page, limit int32, now time.Time) ([]domain.InvitationWithInviter, int64, error) {
	where := ``
	args := []any{}
	if status != "" {
		args = append(args, status)
		where = `WHERE i.status = $1`
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM invitations i ` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	args = append(args, limit, offset)
	query := `SELECT i.id, i.email, i.role, i.invited_by, i.token, i.status, i.expires_at, i.created_at,
	          COALESCE(u.name, ''), COALESCE(u.email, '')
	          FROM invitations i LEFT JOIN users u ON u.id = i.invited_by ` + where + `
	          ORDER BY i.created_at DESC LIMIT $` + itoa(len(args)-1) + ` OFFSET $` + itoa(len(args))
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.InvitationWithInviter
	for rows.Next() {
		var iv domain.InvitationWithInviter
		var expiresAt, createdAt time.Time
		err := rows.Scan(
			&iv.ID, &iv.Email, &iv.Role, &iv.InvitedBy, &iv.Token, &iv.Status, &expiresAt, &createdAt,
			&iv.InviterName, &iv.InviterEmail,
		)
		if err != nil {
			return nil, 0, err
		}
		iv.ExpiresAt = expiresAt.Format(time.RFC3339)
		iv.CreatedAt = createdAt.Format(time.RFC3339)
		iv.IsExpired = expiresAt.Before(now)
		out = append(out, iv)
	}
	return out, total, rows.Err()
}

func (r *invitationRepository) Stats(ctx context.Context, now time.Time) (*domain.InvitationStats, error) {
	stats := &domain.InvitationStats{}
	query := `SELECT COUNT(*),
	          COUNT(*) FILTER (WHERE status = 'pending'),
	          COUNT(*) FILTER (WHERE status = 'accepted'),
	          COUNT(*) FILTER (WHERE status = 'pending' AND expires_at < $1)
	          FROM invitations`
	err := r.db.QueryRowContext(ctx, query, now).Scan(
		&stats.Total, &stats.Pending, &stats.Accepted, &stats.ExpiredPending,
	)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *invitationRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM invitations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *invitationRepository) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM invitations WHERE status = 'pending' AND expires_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
