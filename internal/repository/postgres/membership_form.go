package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"association-admin-backend/internal/domain"
	"association-admin-backend/internal/repository"
)

type membershipFormRepository struct {
	db *sql.DB
}

func NewMembershipFormRepository(db *sql.DB) repository.MembershipFormRepository {
	return &membershipFormRepository{db: db}
}

func (r *membershipFormRepository) GetByUserID(ctx context.Context, userID int64) (*domain.MembershipForm, error) {
	f := &domain.MembershipForm{}
	query := `SELECT id, user_id, birth_date, COALESCE(address, ''), COALESCE(profession, ''), COALESCE(consular_card_number, ''), submitted_at
	          FROM membership_forms WHERE user_id = $1`
	var birthDate, submittedAt time.Time
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&f.ID, &f.UserID, &birthDate, &f.Address, &f.Profession, &f.ConsularCardNumber, &submittedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	f.BirthDate = birthDate.Format("2006-01-02")
	f.SubmittedAt = submittedAt.Format(time.RFC3339)
	return f, nil
}

func (r *membershipFormRepository) ListWithApplicants(ctx context.Context, status domain.UserStatus, search string, page, limit int32) ([]domain.FormWithApplicant, int64, error) {
	where := `WHERE u.role <> 'ADMIN'`
	args := []any{}
	if status != "" {
		args = append(args, status)
		where += ` AND u.status = $1`
	}
	if search != "" {
		args = append(args, "%"+search+"%")
		n := len(args)
		where += ` AND (u.name ILIKE $` + itoa(n) +
			` OR u.email ILIKE $` + itoa(n) +
			` OR u.phone ILIKE $` + itoa(n) +
			` OR u.username ILIKE $` + itoa(n) + `)`
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM membership_forms f JOIN users u ON u.id = f.user_id ` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	args = append(args, limit, offset)
	query := `SELECT f.id, f.user_id, f.birth_date, COALESCE(f.address, ''), COALESCE(f.profession, ''), COALESCE(f.consular_card_number, ''), f.submitted_at,
	          ` + prefixedUserColumns("u") + `
	          FROM membership_forms f JOIN users u ON u.id = f.user_id ` + where + `
	          ORDER BY f.submitted_at DESC LIMIT $` + itoa(len(args)-1) + ` OFFSET $` + itoa(len(args))
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.FormWithApplicant
	for rows.Next() {
		var fa domain.FormWithApplicant
		var birthDate, submittedAt time.Time
		var rejectedAt, cardIssuedAt, lastLoginAt sql.NullTime
		var createdAt time.Time
		u := &fa.Applicant
		err := rows.Scan(
			&fa.Form.ID, &fa.Form.UserID, &birthDate, &fa.Form.Address, &fa.Form.Profession, &fa.Form.ConsularCardNumber, &submittedAt,
			&u.ID, &u.Name, &u.Email, &u.Phone, &u.Username, &u.PasswordHash, &u.Role, &u.Status,
			&u.HasPaid, &u.HasSubmittedForm, &u.IsActive, &u.MembershipNumber, &u.FormCode,
			&u.RejectionReason, &rejectedAt, &u.RejectedBy, &cardIssuedAt, &lastLoginAt, &createdAt,
		)
		if err != nil {
			return nil, 0, err
		}
		fa.Form.BirthDate = birthDate.Format("2006-01-02")
		fa.Form.SubmittedAt = submittedAt.Format(time.RFC3339)
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
		out = append(out, fa)
	}
	return out, total, rows.Err()
}

func prefixedUserColumns(alias string) string {
	return alias + `.id, ` + alias + `.name, ` + alias + `.email, COALESCE(` + alias + `.phone, ''), ` + alias + `.username, COALESCE(` + alias + `.password_hash, ''), ` + alias + `.role, ` + alias + `.status,
	` + alias + `.has_paid, ` + alias + `.has_submitted_form, ` + alias + `.is_active, ` + alias + `.membership_number, ` + alias + `.form_code,
	COALESCE(` + alias + `.rejection_reason, ''), ` + alias + `.rejected_at, ` + alias + `.rejected_by, ` + alias + `.card_issued_at, ` + alias + `.last_login_at, ` + alias + `.created_at`
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
