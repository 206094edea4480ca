package crons

import (
	"github.com/robfig/cron"

	"gitlab.com/vidpay-rewards/rewards_api/config"
	"gitlab.com/vidpay-rewards/rewards_api/service"
)

var cronService *cron.Cron

// Start Initiate the crons based on the given configuration file
func Start(crons config.Crons, srv *service.Service) {
	cronService = cron.New()
	for id, schedule := range crons {
		callback := GetCronByID(id, srv)
		// @todo CH: eventually handle the error if the cron can't be created
		_ = cronService.AddFunc(schedule, callback)
	}
	cronService.Start()
}

// GetCronByID get a function to execute based on the id
func GetCronByID(id string, srv *service.Service) func() {
	switch id {
	case "repair_commissions":
		return func() {
			CronRepairCommissions(srv)
		}
	}
	return (func() {})
}

// Close godoc
func Close() {
	if cronService != nil {
		cronService.Stop()
	}
}
