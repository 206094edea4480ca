package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gitlab.com/vidpay-rewards/rewards_api/cmd/commands"
	"gitlab.com/vidpay-rewards/rewards_api/config"
	"gitlab.com/vidpay-rewards/rewards_api/server"
)

func init() {
	rootCmd.AddCommand(startCmd)
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the rewards api and listen for commission triggers",
	Long:  `Run the migrations, start the HTTP server for commission triggers and referral reports and schedule the reconciliation crons`,
	Run: func(cmd *cobra.Command, args []string) {
		// load server configuration from server
		log.Debug().Msg("Loading server configuration")
		if viper.ConfigFileUsed() != "" {
			log.Debug().Str("section", "init").Str("path", viper.ConfigFileUsed()).Msg("Configuration file loaded")
		}
		cfg := config.LoadConfig(viper.GetViper())
		// Running migrations
		log.Debug().Msg("Running migrations")
		commands.Migrate(cfg)

		// start a new server
		log.Debug().Str("section", "init").Msg("Starting new server instance")
		srv := server.NewServer(cfg)
		// listen for new requests
		log.Info().Str("section", "init").Msg("Listening for incoming requests")
		srv.Listen()
	},
}
