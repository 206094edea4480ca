package actions

import (
	"context"

	"github.com/gin-gonic/gin"

	"gitlab.com/vidpay-rewards/rewards_api/config"
	"gitlab.com/vidpay-rewards/rewards_api/service"
)

// Actions structure
type Actions struct {
	ctx     context.Context
	cfg     config.Config
	service *service.Service
}

// NewActions constructor
func NewActions(cfg config.Config, srv *service.Service, ctx context.Context) *Actions {
	return &Actions{
		ctx:     ctx,
		cfg:     cfg,
		service: srv,
	}
}

// Ping godoc
func Ping(c *gin.Context) {
	c.JSON(200, "pong")
}
