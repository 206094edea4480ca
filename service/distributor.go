package service

import (
	"errors"

	"github.com/ericlagergren/decimal"
	"github.com/ericlagergren/decimal/sql/postgres"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gitlab.com/vidpay-rewards/rewards_api/conv"
	"gitlab.com/vidpay-rewards/rewards_api/model"
	"gitlab.com/vidpay-rewards/rewards_api/monitor"
	"gitlab.com/vidpay-rewards/rewards_api/service/commission"
)

// PaidReward describes one commission payout performed by Distribute
type PaidReward struct {
	Level      model.ReferralLevel `json:"level"`
	AncestorID uint64              `json:"ancestor_id"`
	Amount     *decimal.Big        `json:"amount"`
}

// Distribute runs a single commission event end to end: resolve the payer's
// ancestors (building missing edges on the way), compute the schedule amounts
// and credit each ancestor inside its own transaction. Levels are paid in strict
// A, B, C order and zero amounts are skipped.
//
// Re-invoking Distribute with the same event is a no-op per level: every ledger
// row carries the structured idempotency key and the store rejects a duplicate,
// which the payout transaction treats as "already paid". A failure after paying
// A but before B is therefore repaired by simply running the event again.
func (service *Service) Distribute(event CommissionEvent) ([]PaidReward, error) {
	rewardsPaid := make([]PaidReward, 0, len(model.ReferralLevels))

	var rewards commission.Rewards
	switch e := event.(type) {
	case *PlanPurchase:
		rewards = service.schedule.ComputeInvite(e.Tier)
	case *TaskCompletion:
		rewards = service.schedule.ComputeTask(e.RewardEarned)
	default:
		return rewardsPaid, ErrInvalidEvent
	}

	user, err := service.repo.GetUserByID(event.Payer())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return rewardsPaid, ErrUserNotFound
		}
		return rewardsPaid, err
	}
	if user.ReferredBy == nil {
		// not a referred user, nobody to pay
		return rewardsPaid, nil
	}

	edges, err := service.EnsureHierarchy(user.ID)
	if err != nil {
		return rewardsPaid, err
	}
	edgeByLevel := map[model.ReferralLevel]model.ReferralHierarchy{}
	for i := range edges {
		edgeByLevel[edges[i].Level] = edges[i]
	}

	for _, level := range model.ReferralLevels {
		edge, ok := edgeByLevel[level]
		if !ok {
			continue
		}
		amount := rewards.ForLevel(level)
		if amount == nil || amount.Sign() <= 0 {
			continue
		}

		paid, err := service.payCommission(event, edge, amount)
		if err != nil {
			log.Error().Err(err).
				Str("section", "service").
				Str("method", "Distribute").
				Uint64("user_id", user.ID).
				Uint64("ancestor_id", edge.ReferrerID).
				Str("level", edge.Level.String()).
				Str("schedule", event.Schedule().String()).
				Msg("Unable to pay commission")
			return rewardsPaid, err
		}
		if paid {
			monitor.CommissionsPaidCount.WithLabelValues(event.Schedule().String(), edge.Level.String()).Inc()
			rewardsPaid = append(rewardsPaid, PaidReward{
				Level:      edge.Level,
				AncestorID: edge.ReferrerID,
				Amount:     amount,
			})
		} else {
			monitor.CommissionsSkippedCount.WithLabelValues(event.Schedule().String(), edge.Level.String()).Inc()
		}
	}

	return rewardsPaid, nil
}

// payCommission credits one ancestor for one event level. The balance increment,
// the ledger row and the management bonus report row are one database
// transaction, so two concurrent triggers against the same ancestor cannot both
// pass the idempotency check before either writes its row: the ancestor record
// is locked first and the unique index settles the race.
//
// Returns false without error when the ledger row already exists.
func (service *Service) payCommission(event CommissionEvent, edge model.ReferralHierarchy, amount *decimal.Big) (bool, error) {
	tx := service.repo.Conn.Begin()
	if tx.Error != nil {
		return false, tx.Error
	}

	ancestor := model.User{}
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&ancestor, "id = ?", edge.ReferrerID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrUserNotFound
		}
		return false, err
	}

	walletBalance := conv.NewDecimalWithPrecision().Add(ancestor.WalletBalance.V, amount)
	commissionBalance := conv.NewDecimalWithPrecision().Add(ancestor.CommissionBalance.V, amount)
	totalEarnings := conv.NewDecimalWithPrecision().Add(ancestor.TotalEarnings.V, amount)

	walletTx := model.NewWalletTransaction(
		edge.ReferrerID,
		event.Payer(),
		edge.Level,
		event.Schedule(),
		event.SourceEventID(),
		&postgres.Decimal{V: amount},
		&postgres.Decimal{V: walletBalance},
	)
	if err := tx.Create(walletTx).Error; err != nil {
		tx.Rollback()
		if isUniqueViolation(err) {
			return false, nil
		}
		return false, err
	}

	updates := map[string]interface{}{
		"wallet_balance":     &postgres.Decimal{V: walletBalance},
		"commission_balance": &postgres.Decimal{V: commissionBalance},
		"total_earnings":     &postgres.Decimal{V: totalEarnings},
	}
	if err := tx.Model(&model.User{}).Where("id = ?", edge.ReferrerID).Updates(updates).Error; err != nil {
		tx.Rollback()
		return false, err
	}

	if task, ok := event.(*TaskCompletion); ok {
		bonus := model.TaskManagementBonus{
			UserID:           edge.ReferrerID,
			SubordinateID:    task.UserID,
			SubordinateLevel: edge.Level,
			BonusAmount:      &postgres.Decimal{V: amount},
			TaskIncome:       &postgres.Decimal{V: task.RewardEarned},
			TaskDate:         task.Timestamp,
			RefID:            walletTx.RefID,
		}
		if err := tx.Create(&bonus).Error; err != nil {
			tx.Rollback()
			return false, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return false, err
	}
	return true, nil
}
