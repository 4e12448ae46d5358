package jobs

import (
	"context"
	"time"

	"association-admin-backend/internal/logger"
)

// PurgeExpiredInvitations removes pending invitations whose expiry passed
// longer ago than the configured retention. Freshly expired rows are kept so
// the listing stats can still show them.
func (j *JobRunner) PurgeExpiredInvitations() {
	ctx := context.Background()
	retention := time.Duration(j.cfg.Scheduler.InvitationRetentionDays) * 24 * time.Hour
	cutoff := time.Now().UTC().Add(-retention)

	deleted, err := j.invRepo.DeleteExpiredBefore(ctx, cutoff)
	if err != nil {
		logger.Error("failed to purge expired invitations", "error", err)
		return
	}
	if deleted > 0 {
		logger.Info("purged expired invitations", "count", deleted, "cutoff", cutoff)
	}
}
