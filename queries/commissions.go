package queries

import (
	"errors"

	"github.com/ericlagergren/decimal"
	"github.com/ericlagergren/decimal/sql/postgres"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"gitlab.com/vidpay-rewards/rewards_api/model"
)

// commissionSchedules restricts ledger scans to commission rows; the table may
// carry other money movement types
var commissionSchedules = pq.Array([]string{
	model.CommissionSchedule_Invite.String(),
	model.CommissionSchedule_Task.String(),
})

// GetCommissionTransactions lists the commission ledger rows credited to a user
func (repo *Repo) GetCommissionTransactions(userID uint64, schedules []model.CommissionSchedule, limit, page int) (*model.WalletTransactionList, error) {
	transactions := make([]model.WalletTransaction, 0)
	var rowCount int64 = 0

	kinds := make([]string, 0, len(schedules))
	for _, schedule := range schedules {
		kinds = append(kinds, schedule.String())
	}

	q := repo.ConnReader.
		Table("wallet_transactions").
		Where("user_id = ?", userID).
		Where("schedule = ANY(?)", pq.Array(kinds))

	dbc := q.Select("count(*) as total").Row()
	_ = dbc.Scan(&rowCount)

	q = q.Order("id DESC")
	if limit != 0 {
		q = q.Limit(limit).Offset((page - 1) * limit)
	}
	db := q.Select("*").Find(&transactions)

	transactionList := model.WalletTransactionList{
		Transactions: transactions,
		Meta: model.PagingMeta{
			Page:  int(page),
			Count: rowCount,
			Limit: int(limit),
		},
	}

	return &transactionList, db.Error
}

// GetCommissionEarningsTotalByUser returns the sum of all commissions a user earned
func (repo *Repo) GetCommissionEarningsTotalByUser(userID uint64) (*decimal.Big, error) {
	data := &struct{ Balance *postgres.Decimal }{Balance: &postgres.Decimal{V: new(decimal.Big)}}

	db := repo.ConnReader.
		Table("wallet_transactions").
		Select("sum(amount) as balance").
		Where("user_id = ?", userID).
		Where("schedule = ANY(?)", commissionSchedules).
		Scan(data)
	if db.Error != nil {
		if errors.Is(db.Error, gorm.ErrRecordNotFound) {
			return new(decimal.Big), nil
		}
		return nil, db.Error
	}
	if data.Balance != nil && data.Balance.V != nil {
		return data.Balance.V, nil
	}

	return new(decimal.Big), nil
}

// GetCommissionEarningsByLevel returns a user's commission totals grouped by the
// subordinate level that produced them
func (repo *Repo) GetCommissionEarningsByLevel(userID uint64) (map[model.ReferralLevel]*decimal.Big, error) {
	rows := make([]struct {
		Level   model.ReferralLevel `gorm:"column:level"`
		Balance *postgres.Decimal   `gorm:"column:balance"`
	}, 0)

	db := repo.ConnReader.
		Table("wallet_transactions").
		Select("level, sum(amount) as balance").
		Where("user_id = ?", userID).
		Where("schedule = ANY(?)", commissionSchedules).
		Group("level").
		Find(&rows)
	if db.Error != nil {
		return nil, db.Error
	}

	totals := map[model.ReferralLevel]*decimal.Big{
		model.ReferralLevelA: new(decimal.Big),
		model.ReferralLevelB: new(decimal.Big),
		model.ReferralLevelC: new(decimal.Big),
	}
	for i := range rows {
		if rows[i].Balance != nil && rows[i].Balance.V != nil {
			totals[rows[i].Level] = rows[i].Balance.V
		}
	}
	return totals, nil
}
