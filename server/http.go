package server

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"gitlab.com/vidpay-rewards/rewards_api/actions"
	"gitlab.com/vidpay-rewards/rewards_api/logger"
)

func (srv *server) ListenToRequests() {
	log.Info().Str("worker", "http_listen_to_requests").Str("action", "start").Msg("HTTP Listen to requests - started")
	defer log.Info().Str("worker", "http_listen_to_requests").Str("action", "stop").Msg("HTTP Listen to requests - stopped")

	a := srv.actions

	r := gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowCredentials = true
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "X-Requested-With", "Content-Length", "Content-Type", "Accept", "X-Api-Key", "Authorization"}
	corsConfig.AllowMethods = []string{"GET", "PUT", "POST", "DELETE", "PATCH", "OPTIONS"}

	r.Use(cors.New(corsConfig)) // Allow requests from anywhere
	r.Use(gin.Recovery())       // Recovery middleware recovers from any panics and writes a 500 if there was one.

	r.Use(logger.SetLogger())

	{
		r.GET("/ping", actions.Ping)
	}

	// referral program reads, authenticated by the upstream gateway
	referrals := r.Group("/referrals")
	{
		referrals.GET("/tree", a.GetReferralTree)
		referrals.GET("/earnings", a.GetReferralEarnings)
		referrals.GET("/topinviters", a.GetTopInviters)
		referrals.GET("/transactions", a.GetCommissionTransactions)
	}

	// commission triggers invoked by the plan subscription and task
	// verification flows
	internal := r.Group("/internal")
	{
		internal.POST("/plans/purchase", a.PurchasePlan)
		internal.POST("/tasks/verified", a.VerifyTask)
	}

	admin := r.Group("/admin")
	{
		admin.POST("/repair", a.RepairAll)
		admin.POST("/repair/:user_id", a.RepairUser)
		admin.GET("/referrals/tree/:user_id", a.GetUserReferralTree)
	}

	addr := fmt.Sprintf("%s:%d", srv.config.Server.API.Host, srv.config.Server.API.Port)
	srv.HTTP = &http.Server{
		Addr:    addr,
		Handler: r,
	}
	if err := srv.HTTP.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Str("section", "server").Msg("Unable to start HTTP server")
	}
}
