package model

import (
	"time"

	"github.com/ericlagergren/decimal/sql/postgres"
)

// PlanTier is the position tier of a purchased subscription plan. The invite
// commission schedule is keyed by tier, not by a flat percentage of the amount.
type PlanTier string

const (
	PlanTierP1 PlanTier = "p1"
	PlanTierP2 PlanTier = "p2"
	PlanTierP3 PlanTier = "p3"
	PlanTierP4 PlanTier = "p4"
)

func (t PlanTier) String() string {
	return string(t)
}

type UserPlanStatus string

const (
	UserPlanStatus_Active    UserPlanStatus = "active"
	UserPlanStatus_Expired   UserPlanStatus = "expired"
	UserPlanStatus_Cancelled UserPlanStatus = "cancelled"
)

// UserPlan records a subscription plan purchase. Purchases of referred users are
// the trigger for the invite commission fan-out.
type UserPlan struct {
	ID          uint64            `gorm:"PRIMARY_KEY" json:"id"`
	UserID      uint64            `gorm:"column:user_id" json:"user_id"`
	PlanID      uint64            `gorm:"column:plan_id" json:"plan_id"`
	Tier        PlanTier          `sql:"not null;type:plan_tier_t" gorm:"column:tier" json:"tier"`
	AmountPaid  *postgres.Decimal `gorm:"column:amount_paid" sql:"type:decimal(36,18)" json:"amount_paid"`
	Status      UserPlanStatus    `sql:"not null;type:user_plan_status_t;default:'active'" json:"status"`
	PurchasedAt time.Time         `gorm:"column:purchased_at" json:"purchased_at"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// UserPlanList type
type UserPlanList struct {
	UserPlans []UserPlan `json:"user_plans"`
	Meta      PagingMeta `json:"meta"`
}
