package queries

import (
	"gitlab.com/vidpay-rewards/rewards_api/model"
)

// GetUserByID returns a single user by id
func (repo *Repo) GetUserByID(id uint64) (*model.User, error) {
	user := model.User{}
	db := repo.ConnReader.First(&user, "id = ?", id)
	if db.Error != nil {
		return nil, db.Error
	}
	return &user, nil
}

// GetUsersMissingHierarchy returns the ids of referred users that have no
// hierarchy edge at all. These are the candidates of the hierarchy repair pass.
func (repo *Repo) GetUsersMissingHierarchy() ([]uint64, error) {
	ids := make([]uint64, 0)
	db := repo.ConnReader.
		Table("users u").
		Joins("left join referral_hierarchies rh on rh.user_id = u.id").
		Where("u.referred_by is not null").
		Where("rh.id is null").
		Order("u.id ASC").
		Pluck("u.id", &ids)
	if db.Error != nil {
		return nil, db.Error
	}
	return ids, nil
}

// GetTopInviters returns the users with the most direct referrals
func (repo *Repo) GetTopInviters() ([]model.TopInviters, error) {
	users := make([]model.TopInviters, 0)
	limit := 10
	q := repo.ConnReader.
		Table("users").
		Select("count(referred.id) as level1_invited, users.created_at, CONCAT (LEFT(users.email,3), '****',  RIGHT(users.email,3)) as email").
		Joins("inner join users referred on referred.referred_by = users.id").
		Group("users.id").
		Order("count(referred.id) DESC").
		Limit(limit).
		Find(&users)
	if q.Error != nil {
		return users, q.Error
	}
	return users, nil
}
