package postgres

import (
	"database/sql"

	"association-admin-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.MembershipFormRepository
	repository.InvitationRepository
	repository.AuditLogRepository
	repository.SequenceRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                       db,
		UserRepository:           NewUserRepository(db),
		MembershipFormRepository: NewMembershipFormRepository(db),
		InvitationRepository:     NewInvitationRepository(db),
		AuditLogRepository:       NewAuditLogRepository(db),
		SequenceRepository:       NewSequenceRepository(db),
	}
}
