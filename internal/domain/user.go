package domain

type UserRole string

const (
	UserRoleMember UserRole = "MEMBER"
	UserRoleAdmin  UserRole = "ADMIN"
)

type UserStatus string

const (
	UserStatusPending  UserStatus = "PENDING"
	UserStatusApproved UserStatus = "APPROVED"
	UserStatusRejected UserStatus = "REJECTED"
)

type User struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone"`
	Username         *string    `json:"username,omitempty"`
	PasswordHash     string     `json:"-"`
	Role             UserRole   `json:"role"`
	Status           UserStatus `json:"status"`
	HasPaid          bool       `json:"has_paid"`
	HasSubmittedForm bool       `json:"has_submitted_form"`
	IsActive         bool       `json:"is_active"`
	MembershipNumber *string    `json:"membership_number,omitempty"`
	FormCode         *string    `json:"form_code,omitempty"`
	RejectionReason  string     `json:"rejection_reason,omitempty"`
	RejectedAt       *string    `json:"rejected_at,omitempty"`
	RejectedBy       *int64     `json:"rejected_by,omitempty"`
	CardIssuedAt     *string    `json:"card_issued_at,omitempty"`
	LastLoginAt      *string    `json:"last_login_at,omitempty"`
	CreatedAt        string     `json:"created_at"`
}

// HasCredentials reports whether login access has been issued. Credentials are
// only created after in-person payment, so username presence is the signal.
func (u *User) HasCredentials() bool {
	return u.Username != nil && *u.Username != ""
}

// MemberStats holds the dashboard aggregates. Admin accounts are excluded
// from every count.
type MemberStats struct {
	TotalMembers       int64 `json:"total_members"`
	WithCredentials    int64 `json:"with_credentials"`
	WithSubmittedForm  int64 `json:"with_submitted_form"`
	Approved           int64 `json:"approved"`
	Pending            int64 `json:"pending"`
	Rejected           int64 `json:"rejected"`
	RecentlyConnected  int64 `json:"recently_connected"`
	CredentialsRate    int   `json:"credentials_rate"`
	FormSubmissionRate int   `json:"form_submission_rate"`
}
