package model

import (
	"time"

	"github.com/ericlagergren/decimal/sql/postgres"
	gouuid "github.com/nu7hatch/gouuid"
)

type TxStatus string

const (
	TxStatus_Pending   TxStatus = "pending"
	TxStatus_Completed TxStatus = "completed"
	TxStatus_Failed    TxStatus = "failed"
)

func (txStatus TxStatus) String() string {
	return string(txStatus)
}

func (txStatus TxStatus) IsValid() bool {
	switch txStatus {
	case TxStatus_Pending,
		TxStatus_Completed,
		TxStatus_Failed:
		return true
	default:
		return false
	}
}

// CommissionSchedule identifies which payout table produced a commission row.
// Invite commissions fire once on a referred user's plan purchase, task
// commissions fire on every verified task income event.
type CommissionSchedule string

const (
	CommissionSchedule_Invite CommissionSchedule = "invite"
	CommissionSchedule_Task   CommissionSchedule = "task"
)

func (s CommissionSchedule) String() string {
	return string(s)
}

func (s CommissionSchedule) IsValid() bool {
	switch s {
	case CommissionSchedule_Invite, CommissionSchedule_Task:
		return true
	default:
		return false
	}
}

type TransactionType string

const (
	TxType_ReferralRewardA  TransactionType = "referral_reward_a"
	TxType_ReferralRewardB  TransactionType = "referral_reward_b"
	TxType_ReferralRewardC  TransactionType = "referral_reward_c"
	TxType_ManagementBonusA TransactionType = "management_bonus_a"
	TxType_ManagementBonusB TransactionType = "management_bonus_b"
	TxType_ManagementBonusC TransactionType = "management_bonus_c"
)

func (txType TransactionType) String() string {
	return string(txType)
}

// CommissionTxType maps a schedule and level pair onto the ledger row type
func CommissionTxType(schedule CommissionSchedule, level ReferralLevel) TransactionType {
	if schedule == CommissionSchedule_Invite {
		switch level {
		case ReferralLevelA:
			return TxType_ReferralRewardA
		case ReferralLevelB:
			return TxType_ReferralRewardB
		case ReferralLevelC:
			return TxType_ReferralRewardC
		}
	}
	switch level {
	case ReferralLevelB:
		return TxType_ManagementBonusB
	case ReferralLevelC:
		return TxType_ManagementBonusC
	default:
		return TxType_ManagementBonusA
	}
}

// WalletTransaction is the immutable ledger row for a single balance change.
//
// The tuple (referred_user_id, level, schedule, source_event_id) is the structured
// idempotency key; a unique index on it makes a duplicate payout unrepresentable
// in the store, so a retried or replayed event degrades to a no-op.
type WalletTransaction struct {
	ID             uint64             `gorm:"PRIMARY_KEY" json:"id"`
	RefID          string             `gorm:"column:ref_id" json:"ref_id"`
	UserID         uint64             `gorm:"column:user_id" json:"user_id"`
	ReferredUserID uint64             `gorm:"column:referred_user_id" json:"referred_user_id"`
	Level          ReferralLevel      `sql:"not null;type:referral_level_t" gorm:"column:level" json:"level"`
	Schedule       CommissionSchedule `sql:"not null;type:commission_schedule_t" gorm:"column:schedule" json:"schedule"`
	SourceEventID  string             `gorm:"column:source_event_id" json:"source_event_id"`
	Type           TransactionType    `sql:"not null;type:transaction_type_t" gorm:"column:type" json:"type"`
	Amount         *postgres.Decimal  `sql:"type:decimal(36,18)" json:"amount"`
	BalanceAfter   *postgres.Decimal  `gorm:"column:balance_after" sql:"type:decimal(36,18)" json:"balance_after"`
	Status         TxStatus           `sql:"not null;type:tx_status_t;default:'pending'" json:"status"`
	CreatedAt      time.Time          `json:"created_at"`
}

// NewWalletTransaction creates a completed commission ledger row with a fresh ref id
func NewWalletTransaction(userID, referredUserID uint64, level ReferralLevel, schedule CommissionSchedule, sourceEventID string, amount, balanceAfter *postgres.Decimal) *WalletTransaction {
	u, _ := gouuid.NewV4()
	return &WalletTransaction{
		RefID:          u.String(),
		UserID:         userID,
		ReferredUserID: referredUserID,
		Level:          level,
		Schedule:       schedule,
		SourceEventID:  sourceEventID,
		Type:           CommissionTxType(schedule, level),
		Amount:         amount,
		BalanceAfter:   balanceAfter,
		Status:         TxStatus_Completed,
	}
}

// WalletTransactionList type
type WalletTransactionList struct {
	Transactions []WalletTransaction `json:"transactions"`
	Meta         PagingMeta          `json:"meta"`
}
