package service

import (
	"time"

	"github.com/ericlagergren/decimal"
	"github.com/ericlagergren/decimal/sql/postgres"
	"github.com/rs/zerolog/log"

	"gitlab.com/vidpay-rewards/rewards_api/model"
)

// RecordPlanPurchase persists a subscription plan purchase and fires the invite
// commission fan-out. The purchase record is the primary outcome: a commission
// failure is logged and left for the next reconciliation sweep instead of
// failing the purchase.
func (service *Service) RecordPlanPurchase(userID, planID uint64, tier model.PlanTier, amountPaid *decimal.Big) (*model.UserPlan, []PaidReward, error) {
	plan := model.UserPlan{
		UserID:      userID,
		PlanID:      planID,
		Tier:        tier,
		AmountPaid:  &postgres.Decimal{V: amountPaid},
		Status:      model.UserPlanStatus_Active,
		PurchasedAt: time.Now(),
	}
	if err := service.repo.Conn.Create(&plan).Error; err != nil {
		return nil, nil, err
	}

	event := PlanPurchase{
		UserID:     userID,
		PurchaseID: plan.ID,
		Tier:       tier,
		AmountPaid: amountPaid,
		Timestamp:  plan.PurchasedAt,
	}
	paid, err := service.Distribute(&event)
	if err != nil {
		log.Error().Err(err).
			Str("section", "service").
			Str("method", "RecordPlanPurchase").
			Uint64("user_id", userID).
			Uint64("purchase_id", plan.ID).
			Msg("Invite commission distribution failed, left for reconciliation")
	}
	return &plan, paid, nil
}

// RecordVerifiedTask persists a verified video task completion and fires the
// task commission fan-out, with the same best effort semantics as
// RecordPlanPurchase: the task record always survives a commission failure.
func (service *Service) RecordVerifiedTask(userID, videoID uint64, rewardEarned *decimal.Big) (*model.VideoTask, []PaidReward, error) {
	task := model.VideoTask{
		UserID:       userID,
		VideoID:      videoID,
		RewardEarned: &postgres.Decimal{V: rewardEarned},
		Status:       model.VideoTaskStatus_Verified,
		CompletedAt:  time.Now(),
	}
	if err := service.repo.Conn.Create(&task).Error; err != nil {
		return nil, nil, err
	}

	event := TaskCompletion{
		UserID:       userID,
		TaskID:       task.ID,
		RewardEarned: rewardEarned,
		Timestamp:    task.CompletedAt,
	}
	paid, err := service.Distribute(&event)
	if err != nil {
		log.Error().Err(err).
			Str("section", "service").
			Str("method", "RecordVerifiedTask").
			Uint64("user_id", userID).
			Uint64("task_id", task.ID).
			Msg("Task commission distribution failed, left for reconciliation")
	}
	return &task, paid, nil
}
