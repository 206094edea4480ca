package queries

import (
	"gitlab.com/vidpay-rewards/rewards_api/model"
)

// GetActivePlanPurchasesOfReferredUsers returns every active plan purchase that
// belongs to a referred user, oldest first. These are the candidate triggers of
// the invite commission repair pass.
func (repo *Repo) GetActivePlanPurchasesOfReferredUsers() ([]model.UserPlan, error) {
	plans := make([]model.UserPlan, 0)
	db := repo.ConnReader.
		Table("user_plans").
		Joins("inner join users u on u.id = user_plans.user_id").
		Where("u.referred_by is not null").
		Where("user_plans.status = ?", model.UserPlanStatus_Active).
		Order("user_plans.purchased_at ASC").
		Select("user_plans.*").
		Find(&plans)
	if db.Error != nil {
		return nil, db.Error
	}
	return plans, nil
}

// GetActivePlanPurchasesForUser returns a single referred user's active plan purchases
func (repo *Repo) GetActivePlanPurchasesForUser(userID uint64) ([]model.UserPlan, error) {
	plans := make([]model.UserPlan, 0)
	db := repo.ConnReader.
		Where("user_id = ?", userID).
		Where("status = ?", model.UserPlanStatus_Active).
		Order("purchased_at ASC").
		Find(&plans)
	if db.Error != nil {
		return nil, db.Error
	}
	return plans, nil
}
