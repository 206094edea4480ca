package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"gitlab.com/vidpay-rewards/rewards_api/model"
	"gitlab.com/vidpay-rewards/rewards_api/monitor"
)

// RepairReport summarizes one reconciliation sweep. Per item failures are
// collected as strings so the sweep's outcome is independent of any single
// user's; only a failing candidate scan aborts a sweep.
type RepairReport struct {
	HierarchiesRebuilt     int      `json:"hierarchies_rebuilt"`
	InviteCommissionsFixed int      `json:"invite_commissions_fixed"`
	TaskCommissionsFixed   int      `json:"task_commissions_fixed"`
	Errors                 []string `json:"errors"`
}

func (report *RepairReport) addError(format string, args ...interface{}) {
	report.Errors = append(report.Errors, fmt.Sprintf(format, args...))
	monitor.RepairErrorsCount.Inc()
}

func (service *Service) repairWindowStart() time.Time {
	days := service.cfg.Commission.RepairWindowDays
	if days <= 0 {
		days = 90
	}
	return time.Now().AddDate(0, 0, -days)
}

// RepairAll scans the whole ledger history for missing hierarchy edges and
// missing commission rows and backfills them. The three passes run sequentially
// because the commission passes assume hierarchy edges exist. The sweep is safe
// to kill and re-run at any point: edge inserts skip existing levels and ledger
// replays bounce off the unique index, so an immediate second run pays nothing
// and reports zero repairs.
func (service *Service) RepairAll() (*RepairReport, error) {
	logger := log.With().
		Str("section", "service").
		Str("method", "RepairAll").
		Logger()
	report := &RepairReport{Errors: []string{}}

	// hierarchy pass
	userIDs, err := service.repo.GetUsersMissingHierarchy()
	if err != nil {
		return nil, err
	}
	for _, userID := range userIDs {
		edges, err := service.EnsureHierarchy(userID)
		if err != nil {
			report.addError("hierarchy user %d: %v", userID, err)
			continue
		}
		if len(edges) > 0 {
			report.HierarchiesRebuilt++
			monitor.RepairsCount.WithLabelValues("hierarchy").Inc()
		}
	}

	// invite commission pass
	plans, err := service.repo.GetActivePlanPurchasesOfReferredUsers()
	if err != nil {
		return nil, err
	}
	service.repairInvitePlans(report, plans)

	// task commission pass
	tasks, err := service.repo.GetVerifiedTasksOfReferredUsers(service.repairWindowStart())
	if err != nil {
		return nil, err
	}
	service.repairTasks(report, tasks)

	logger.Info().
		Int("hierarchies", report.HierarchiesRebuilt).
		Int("invite_commissions", report.InviteCommissionsFixed).
		Int("task_commissions", report.TaskCommissionsFixed).
		Int("errors", len(report.Errors)).
		Msg("Reconciliation sweep finished")
	return report, nil
}

// RepairUser runs the same three passes bounded to a single user
func (service *Service) RepairUser(userID uint64) (*RepairReport, error) {
	report := &RepairReport{Errors: []string{}}

	user, err := service.repo.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.ReferredBy == nil {
		return report, nil
	}

	existing, err := service.repo.GetHierarchyEdges(userID)
	if err != nil {
		return nil, err
	}
	edges, err := service.EnsureHierarchy(userID)
	if err != nil {
		report.addError("hierarchy user %d: %v", userID, err)
	} else if len(edges) > len(existing) {
		report.HierarchiesRebuilt++
		monitor.RepairsCount.WithLabelValues("hierarchy").Inc()
	}

	plans, err := service.repo.GetActivePlanPurchasesForUser(userID)
	if err != nil {
		return nil, err
	}
	service.repairInvitePlans(report, plans)

	tasks, err := service.repo.GetVerifiedTasksForUser(userID, service.repairWindowStart())
	if err != nil {
		return nil, err
	}
	service.repairTasks(report, tasks)

	return report, nil
}

// repairInvitePlans replays every candidate purchase through the distributor.
// Replay is a per-level no-op on the unique ledger index, so an event that was
// paid partially (A written, B missing) gets its missing levels completed
// instead of being skipped.
func (service *Service) repairInvitePlans(report *RepairReport, plans []model.UserPlan) {
	for i := range plans {
		plan := plans[i]
		event := PlanPurchase{
			UserID:     plan.UserID,
			PurchaseID: plan.ID,
			Tier:       plan.Tier,
			AmountPaid: plan.AmountPaid.V,
			Timestamp:  plan.PurchasedAt,
		}
		paid, err := service.Distribute(&event)
		if err != nil {
			report.addError("invite user %d plan %d: %v", plan.UserID, plan.ID, err)
			continue
		}
		if len(paid) > 0 {
			report.InviteCommissionsFixed++
			monitor.RepairsCount.WithLabelValues("invite").Inc()
		}
	}
}

// repairTasks replays the distributor once per historical task record, in the
// original chronological order, never once per user total
func (service *Service) repairTasks(report *RepairReport, tasks []model.VideoTask) {
	for i := range tasks {
		task := tasks[i]
		event := TaskCompletion{
			UserID:       task.UserID,
			TaskID:       task.ID,
			RewardEarned: task.RewardEarned.V,
			Timestamp:    task.CompletedAt,
		}
		paid, err := service.Distribute(&event)
		if err != nil {
			report.addError("task user %d task %d: %v", task.UserID, task.ID, err)
			continue
		}
		if len(paid) > 0 {
			report.TaskCommissionsFixed++
			monitor.RepairsCount.WithLabelValues("task").Inc()
		}
	}
}
