package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommissionTxType(t *testing.T) {
	tests := []struct {
		name     string
		schedule CommissionSchedule
		level    ReferralLevel
		want     TransactionType
	}{
		{"invite level a", CommissionSchedule_Invite, ReferralLevelA, TxType_ReferralRewardA},
		{"invite level b", CommissionSchedule_Invite, ReferralLevelB, TxType_ReferralRewardB},
		{"invite level c", CommissionSchedule_Invite, ReferralLevelC, TxType_ReferralRewardC},
		{"task level a", CommissionSchedule_Task, ReferralLevelA, TxType_ManagementBonusA},
		{"task level b", CommissionSchedule_Task, ReferralLevelB, TxType_ManagementBonusB},
		{"task level c", CommissionSchedule_Task, ReferralLevelC, TxType_ManagementBonusC},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CommissionTxType(tt.schedule, tt.level))
		})
	}
}

func TestNewWalletTransactionIdempotencyKey(t *testing.T) {
	tx := NewWalletTransaction(1, 2, ReferralLevelA, CommissionSchedule_Task, "55", nil, nil)

	assert.NotEmpty(t, tx.RefID)
	assert.Equal(t, uint64(1), tx.UserID)
	assert.Equal(t, uint64(2), tx.ReferredUserID)
	assert.Equal(t, ReferralLevelA, tx.Level)
	assert.Equal(t, CommissionSchedule_Task, tx.Schedule)
	assert.Equal(t, "55", tx.SourceEventID)
	assert.Equal(t, TxType_ManagementBonusA, tx.Type)
	assert.Equal(t, TxStatus_Completed, tx.Status)
}
