package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"gitlab.com/vidpay-rewards/rewards_api/actions"
	"gitlab.com/vidpay-rewards/rewards_api/config"
	"gitlab.com/vidpay-rewards/rewards_api/crons"
	"gitlab.com/vidpay-rewards/rewards_api/monitor"
	"gitlab.com/vidpay-rewards/rewards_api/queries"
	"gitlab.com/vidpay-rewards/rewards_api/service"
)

// Server interface
type Server interface {
	Listen()
}

type server struct {
	config  config.Config
	actions *actions.Actions
	service *service.Service
	ctx     context.Context
	close   context.CancelFunc
	HTTP    *http.Server
}

// NewServer constructor
func NewServer(cfg config.Config) Server {
	ctx, close := context.WithCancel(context.Background())

	repo, err := queries.Init(cfg)
	if err != nil {
		log.Fatal().Str("section", "server").Err(err).Msg("Unable to connect to the database cluster")
	}

	dataServices := service.NewService(ctx, cfg, repo)
	userActions := actions.NewActions(cfg, dataServices, ctx)

	crons.Start(cfg.Crons, dataServices)

	return &server{
		config:  cfg,
		service: dataServices,
		actions: userActions,
		ctx:     ctx,
		close:   close,
	}
}

// Listen for incoming requests and run until a termination signal arrives
func (srv *server) Listen() {
	go srv.ListenToRequests()
	go monitor.LoopProfilingServer(srv.config.Server.Monitoring)

	srv.stopOnSignal()
}

func (srv *server) stopOnSignal() {
	// listen for termination signals
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigc

	log.Info().Str("section", "server").Str("app_event", "terminate").Str("signal", sig.String()).Msg("Shutting down services")
	srv.closeApp(5 * time.Second)
}

func (srv *server) closeApp(timeout time.Duration) {
	// define a timeout in which the graceful shutdown procedure should happen before forcing the shutdown
	timeoutFunc := time.AfterFunc(timeout, func() {
		log.Printf("timeout %d ms has been elapsed, force exit", timeout.Milliseconds())
		os.Exit(0)
	})
	defer timeoutFunc.Stop()

	monitor.ShutdownServer()
	if srv.HTTP != nil {
		if err := srv.HTTP.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Str("section", "server").Str("action", "terminate").Msg("Unable to shutdown HTTP server")
		}
	}

	crons.Close()
	srv.close()

	// make sure database connection is closed on program exit
	queries.Close()

	log.Info().Str("section", "server").Str("app_event", "terminate").Str("state", "complete").Msg("All workers terminated")
}
