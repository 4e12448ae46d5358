package jobs

import (
	"context"

	"association-admin-backend/internal/logger"
)

// SendPendingReviewReminder emails every active admin the count of submitted
// membership forms still waiting for review. Nothing is sent when the queue
// is empty.
func (j *JobRunner) SendPendingReviewReminder() {
	ctx := context.Background()

	pending, err := j.userRepo.CountPendingSubmitted(ctx)
	if err != nil {
		logger.Error("failed to count pending membership forms", "error", err)
		return
	}
	if pending == 0 {
		return
	}

	admins, err := j.userRepo.ListAdmins(ctx)
	if err != nil {
		logger.Error("failed to list admins for review reminder", "error", err)
		return
	}

	for _, admin := range admins {
		if admin.Email == "" {
			continue
		}
		if err := j.services.Email.SendPendingReviewReminder(ctx, admin.Email, admin.Name, pending); err != nil {
			logger.Warn("review reminder email failed", "admin_id", admin.ID, "error", err)
		}
	}
	logger.Info("sent pending review reminders", "pending_forms", pending, "admins", len(admins))
}
