package domain

type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
)

type Invitation struct {
	ID        int64            `json:"id"`
	Email     string           `json:"email"`
	Role      UserRole         `json:"role"`
	InvitedBy int64            `json:"invited_by"`
	Token     string           `json:"-"`
	Status    InvitationStatus `json:"status"`
	ExpiresAt string           `json:"expires_at"`
	CreatedAt string           `json:"created_at"`
}

// InvitationWithInviter annotates an invitation with the inviter summary and
// the read-time expiry flag. Expiry is never written back to the row.
type InvitationWithInviter struct {
	Invitation
	InviterName  string `json:"inviter_name"`
	InviterEmail string `json:"inviter_email"`
	IsExpired    bool   `json:"is_expired"`
}

// InvitationStats aggregates the listing counters. ExpiredPending counts rows
// still marked pending whose expiry has passed.
type InvitationStats struct {
	Total          int64 `json:"total"`
	Pending        int64 `json:"pending"`
	Accepted       int64 `json:"accepted"`
	ExpiredPending int64 `json:"expired_pending"`
}
