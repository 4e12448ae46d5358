package jobs

import (
	"association-admin-backend/internal/config"
	"association-admin-backend/internal/repository"
	"association-admin-backend/internal/service"
)

// Services bundles the service dependencies used by the scheduled jobs.
type Services struct {
	Email service.EmailService
}

// JobRunner executes scheduled maintenance jobs.
type JobRunner struct {
	invRepo  repository.InvitationRepository
	userRepo repository.UserRepository
	services *Services
	cfg      *config.Config
}

func NewJobRunner(invRepo repository.InvitationRepository, userRepo repository.UserRepository, services *Services, cfg *config.Config) *JobRunner {
	return &JobRunner{
		invRepo:  invRepo,
		userRepo: userRepo,
		services: services,
		cfg:      cfg,
	}
}

// Config returns the application configuration
func (j *JobRunner) Config() *config.Config {
	return j.cfg
}
