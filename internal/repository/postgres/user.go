package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"association-admin-backend/internal/domain"
	"association-admin-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, name, email, COALESCE(phone, ''), username, COALESCE(password_hash, ''), role, status,
	has_paid, has_submitted_form, is_active, membership_number, form_code,
	COALESCE(rejection_reason, ''), rejected_at, rejected_by, card_issued_at, last_login_at, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	u := &domain.User{}
	var rejectedAt, cardIssuedAt, lastLoginAt sql.NullTime
	var createdAt time.Time
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.Phone, &u.Username, &u.PasswordHash, &u.Role, &u.Status,
		&u.HasPaid, &u.HasSubmittedForm, &u.IsActive, &u.MembershipNumber, &u.FormCode,
		&u.RejectionReason, &rejectedAt, &u.RejectedBy, &cardIssuedAt, &lastLoginAt, &createdAt,
	)
	if err != nil {
		return nil, err
	}
	if rejectedAt.Valid {
		s := rejectedAt.Time.Format(time.RFC3339)
		u.RejectedAt = &s
	}
	if cardIssuedAt.Valid {
		s := cardIssuedAt.Time.Format(time.RFC3339)
		u.CardIssuedAt = &s
	}
	if lastLoginAt.Valid {
		s := lastLoginAt.Time.Format(time.RFC3339)
		u.LastLoginAt = &s
	}
	u.CreatedAt = createdAt.Format(time.RFC3339)
	return u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	return u, err
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`
	u, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	return u, err
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	u, err := scanUser(r.db.QueryRowContext(ctx, query, username))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	return u, err
}

func (r *userRepository) ListMembers(ctx context.Context, page, limit int32) ([]domain.User, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE role <> 'ADMIN'`).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	query := `SELECT ` + userColumns + ` FROM users WHERE role <> 'ADMIN' ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, *u)
	}
	return users, total, rows.Err()
}

func (r *userRepository) ListAdmins(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role = 'ADMIN' AND is_active ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		admins = append(admins, *u)
	}
	return admins, rows.Err()
}

func (r *userRepository) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET last_login_at = $1 WHERE id = $2`, at, id)
	return err
}

func (r *userRepository) ApproveMembership(ctx context.Context, id int64, membershipNumber, formCode string, at time.Time) (bool, error) {
	// Conditional update: a concurrent approval loses the race and affects
	// zero rows instead of overwriting the first winner's codes.
	query := `UPDATE users
	          SET status = 'APPROVED', membership_number = $1, form_code = $2, card_issued_at = $3
	          WHERE id = $4 AND status = 'PENDING'`
	res, err := r.db.ExecContext(ctx, query, membershipNumber, formCode, at, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *userRepository) RejectMembership(ctx context.Context, id int64, rejectedBy int64, reason string, at time.Time) (bool, error) {
	query := `UPDATE users
	          SET status = 'REJECTED', rejection_reason = $1, rejected_by = $2, rejected_at = $3
	          WHERE id = $4 AND status = 'PENDING'`
	res, err := r.db.ExecContext(ctx, query, reason, rejectedBy, at, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *userRepository) CountMembers(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users WHERE role <> 'ADMIN'`)
}

func (r *userRepository) CountWithCredentials(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users WHERE role <> 'ADMIN' AND username IS NOT NULL AND username <> ''`)
}

func (r *userRepository) CountWithSubmittedForm(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users WHERE role <> 'ADMIN' AND has_submitted_form`)
}

func (r *userRepository) CountByStatus(ctx context.Context, status domain.UserStatus) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE role <> 'ADMIN' AND status = $1`, status).Scan(&n)
	return n, err
}

func (r *userRepository) CountRecentLogins(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE role <> 'ADMIN' AND last_login_at >= $1`, since).Scan(&n)
	return n, err
}

func (r *userRepository) CountPendingSubmitted(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users WHERE role <> 'ADMIN' AND status = 'PENDING' AND has_submitted_form`)
}

func (r *userRepository) count(ctx context.Context, query string) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, query).Scan(&n)
	return n, err
}
