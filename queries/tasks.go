package queries

import (
	"time"

	"gitlab.com/vidpay-rewards/rewards_api/model"
)

// GetVerifiedTasksOfReferredUsers returns the verified task completions of
// referred users since the given cutoff, grouped by user and in original
// chronological order within each user. The task commission repair pass replays
// the distributor once per returned row.
func (repo *Repo) GetVerifiedTasksOfReferredUsers(since time.Time) ([]model.VideoTask, error) {
	tasks := make([]model.VideoTask, 0)
	db := repo.ConnReader.
		Table("video_tasks").
		Joins("inner join users u on u.id = video_tasks.user_id").
		Where("u.referred_by is not null").
		Where("video_tasks.status = ?", model.VideoTaskStatus_Verified).
		Where("video_tasks.completed_at >= ?", since).
		Order("video_tasks.user_id ASC, video_tasks.completed_at ASC, video_tasks.id ASC").
		Select("video_tasks.*").
		Find(&tasks)
	if db.Error != nil {
		return nil, db.Error
	}
	return tasks, nil
}

// GetVerifiedTasksForUser returns a single user's verified tasks since the cutoff
// in chronological order
func (repo *Repo) GetVerifiedTasksForUser(userID uint64, since time.Time) ([]model.VideoTask, error) {
	tasks := make([]model.VideoTask, 0)
	db := repo.ConnReader.
		Where("user_id = ?", userID).
		Where("status = ?", model.VideoTaskStatus_Verified).
		Where("completed_at >= ?", since).
		Order("completed_at ASC, id ASC").
		Find(&tasks)
	if db.Error != nil {
		return nil, db.Error
	}
	return tasks, nil
}
