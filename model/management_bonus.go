package model

import (
	"time"

	"github.com/ericlagergren/decimal/sql/postgres"
)

// TaskManagementBonus is the denormalized report row written next to every task
// commission ledger entry. UserID is the ancestor receiving the bonus and
// SubordinateID the referred user whose task income produced it.
type TaskManagementBonus struct {
	ID               uint64            `gorm:"PRIMARY_KEY" json:"id"`
	UserID           uint64            `gorm:"column:user_id" json:"user_id"`
	SubordinateID    uint64            `gorm:"column:subordinate_id" json:"subordinate_id"`
	SubordinateLevel ReferralLevel     `sql:"not null;type:referral_level_t" gorm:"column:subordinate_level" json:"subordinate_level"`
	BonusAmount      *postgres.Decimal `gorm:"column:bonus_amount" sql:"type:decimal(36,18)" json:"bonus_amount"`
	TaskIncome       *postgres.Decimal `gorm:"column:task_income" sql:"type:decimal(36,18)" json:"task_income"`
	TaskDate         time.Time         `gorm:"column:task_date" json:"task_date"`
	RefID            string            `gorm:"column:ref_id" json:"-"`
	CreatedAt        time.Time         `json:"created_at"`
}

func (TaskManagementBonus) TableName() string {
	return "task_management_bonuses"
}

// TaskManagementBonusList type
type TaskManagementBonusList struct {
	Bonuses []TaskManagementBonus `json:"bonuses"`
	Meta    PagingMeta            `json:"meta"`
}
