package service

import (
	"github.com/ericlagergren/decimal"

	"gitlab.com/vidpay-rewards/rewards_api/model"
)

// GetTopInviters returns the referral leaderboard
func (service *Service) GetTopInviters() ([]model.TopInviters, error) {
	return service.repo.GetTopInviters()
}

// GetReferralTree returns the resolved ancestor chain of a user
func (service *Service) GetReferralTree(userID uint64) (*model.ReferralTree, error) {
	return service.repo.GetReferralTree(userID)
}

// ReferralEarnings is the per level commission earnings summary of one user
type ReferralEarnings struct {
	Total *decimal.Big `json:"total"`
	A     *decimal.Big `json:"a_level"`
	B     *decimal.Big `json:"b_level"`
	C     *decimal.Big `json:"c_level"`
}

// GetReferralEarnings returns a user's commission totals overall and per level
func (service *Service) GetReferralEarnings(userID uint64) (*ReferralEarnings, error) {
	total, err := service.repo.GetCommissionEarningsTotalByUser(userID)
	if err != nil {
		return nil, err
	}
	byLevel, err := service.repo.GetCommissionEarningsByLevel(userID)
	if err != nil {
		return nil, err
	}
	return &ReferralEarnings{
		Total: total,
		A:     byLevel[model.ReferralLevelA],
		B:     byLevel[model.ReferralLevelB],
		C:     byLevel[model.ReferralLevelC],
	}, nil
}

// GetCommissionTransactions lists the commission ledger rows credited to a user
func (service *Service) GetCommissionTransactions(userID uint64, limit, page int) (*model.WalletTransactionList, error) {
	schedules := []model.CommissionSchedule{
		model.CommissionSchedule_Invite,
		model.CommissionSchedule_Task,
	}
	return service.repo.GetCommissionTransactions(userID, schedules, limit, page)
}
