package service

import (
	"context"
	"errors"

	"github.com/jackc/pgconn"

	"gitlab.com/vidpay-rewards/rewards_api/config"
	"gitlab.com/vidpay-rewards/rewards_api/queries"
	"gitlab.com/vidpay-rewards/rewards_api/service/commission"
)

var (
	// ErrUserNotFound when a referenced user does not exist
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidEvent when a commission trigger of an unknown shape is received
	ErrInvalidEvent = errors.New("invalid commission event")
)

// Service structure
type Service struct {
	ctx      context.Context
	cfg      config.Config
	repo     *queries.Repo
	schedule *commission.Schedule
}

// NewService constructor
func NewService(ctx context.Context, cfg config.Config, repo *queries.Repo) *Service {
	return &Service{
		ctx:      ctx,
		cfg:      cfg,
		repo:     repo,
		schedule: commission.NewSchedule(cfg.Commission),
	}
}

// GetRepo returns the query repository used by the service
func (service *Service) GetRepo() *queries.Repo {
	return service.repo
}

// isUniqueViolation reports whether the store rejected a write because it would
// duplicate a row guarded by a unique index
func isUniqueViolation(err error) bool {
	if pgerr, ok := err.(*pgconn.PgError); pgerr != nil && ok {
		return pgerr.Code == "23505"
	}
	return false
}
