package crons

import (
	"github.com/rs/zerolog/log"

	"gitlab.com/vidpay-rewards/rewards_api/service"
)

// CronRepairCommissions runs a full reconciliation sweep. The job iterates
// sequentially over the candidates, collects per user errors in the report and
// only fails outward when a candidate scan itself fails.
func CronRepairCommissions(srv *service.Service) {
	logger := log.With().
		Str("section", "crons").
		Str("method", "CronRepairCommissions").
		Logger()

	report, err := srv.RepairAll()
	if err != nil {
		logger.Error().Err(err).Msg("Unable to run reconciliation sweep")
		return
	}

	for _, repairError := range report.Errors {
		logger.Warn().Str("repair_error", repairError).Msg("Repair item failed")
	}
	logger.Info().
		Int("hierarchies", report.HierarchiesRebuilt).
		Int("invite_commissions", report.InviteCommissionsFixed).
		Int("task_commissions", report.TaskCommissionsFixed).
		Int("errors", len(report.Errors)).
		Msg("Reconciliation sweep completed")
}
