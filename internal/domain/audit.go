package domain

// Audit action tags recorded by the admin workflows.
const (
	ActionApproveMembershipForm = "APPROVE_MEMBERSHIP_FORM"
	ActionRejectMembershipForm  = "REJECT_MEMBERSHIP_FORM"
	ActionCreateInvitation      = "CREATE_INVITATION"
	ActionDeleteInvitation      = "DELETE_INVITATION"
	ActionResendInvitation      = "RESEND_INVITATION"
)

// AuditLog is an append-only record of a privileged state change. Rows are
// never updated or deleted.
type AuditLog struct {
	ID        int64          `json:"id"`
	ActorID   int64          `json:"actor_id"`
	Action    string         `json:"action"`
	Details   map[string]any `json:"details"`
	IP        string         `json:"ip"`
	UserAgent string         `json:"user_agent"`
	CreatedAt string         `json:"created_at"`
}
