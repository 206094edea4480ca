package service

import (
	"strconv"
	"time"

	"github.com/ericlagergren/decimal"

	"gitlab.com/vidpay-rewards/rewards_api/model"
)

// CommissionEvent is the closed set of triggers the distributor accepts. The two
// implementations below are the only ones; anything else fails with
// ErrInvalidEvent.
type CommissionEvent interface {
	// Payer is the referred user whose activity triggered the event
	Payer() uint64
	// Schedule selects the payout table the event fires
	Schedule() model.CommissionSchedule
	// SourceEventID identifies the originating record inside its schedule and
	// completes the idempotency key of the resulting ledger rows
	SourceEventID() string

	commissionEvent()
}

// PlanPurchase triggers the one time invite commission fan-out when a referred
// user buys a subscription plan
type PlanPurchase struct {
	UserID     uint64
	PurchaseID uint64
	Tier       model.PlanTier
	AmountPaid *decimal.Big
	Timestamp  time.Time
}

func (e *PlanPurchase) Payer() uint64 {
	return e.UserID
}

func (e *PlanPurchase) Schedule() model.CommissionSchedule {
	return model.CommissionSchedule_Invite
}

func (e *PlanPurchase) SourceEventID() string {
	return strconv.FormatUint(e.PurchaseID, 10)
}

func (e *PlanPurchase) commissionEvent() {}

// TaskCompletion triggers the recurring task commission fan-out when a referred
// user's video task is verified
type TaskCompletion struct {
	UserID       uint64
	TaskID       uint64
	RewardEarned *decimal.Big
	Timestamp    time.Time
}

func (e *TaskCompletion) Payer() uint64 {
	return e.UserID
}

func (e *TaskCompletion) Schedule() model.CommissionSchedule {
	return model.CommissionSchedule_Task
}

func (e *TaskCompletion) SourceEventID() string {
	return strconv.FormatUint(e.TaskID, 10)
}

func (e *TaskCompletion) commissionEvent() {}
