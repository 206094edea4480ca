package cmd

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gitlab.com/vidpay-rewards/rewards_api/config"
	"gitlab.com/vidpay-rewards/rewards_api/queries"
	"gitlab.com/vidpay-rewards/rewards_api/service"
)

func init() {
	rootCmd.AddCommand(repairCmd)
}

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Run one reconciliation sweep and exit",
	Long:  `Scan for missing hierarchy edges and unpaid commissions, backfill them and print the repair report`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.LoadConfig(viper.GetViper())

		repo, err := queries.Init(cfg)
		if err != nil {
			log.Fatal().Err(err).Str("section", "repair").Msg("Unable to connect to the database cluster")
		}
		defer queries.Close()

		srv := service.NewService(context.Background(), cfg, repo)
		report, err := srv.RepairAll()
		if err != nil {
			log.Fatal().Err(err).Str("section", "repair").Msg("Reconciliation sweep failed")
		}

		for _, repairError := range report.Errors {
			log.Warn().Str("repair_error", repairError).Msg("Repair item failed")
		}
		log.Info().
			Int("hierarchies", report.HierarchiesRebuilt).
			Int("invite_commissions", report.InviteCommissionsFixed).
			Int("task_commissions", report.TaskCommissionsFixed).
			Int("errors", len(report.Errors)).
			Msg("Reconciliation sweep finished")
	},
}
