package model

import (
	"time"

	"github.com/ericlagergren/decimal/sql/postgres"
)

type VideoTaskStatus string

const (
	VideoTaskStatus_Pending  VideoTaskStatus = "pending"
	VideoTaskStatus_Verified VideoTaskStatus = "verified"
	VideoTaskStatus_Rejected VideoTaskStatus = "rejected"
)

func (s VideoTaskStatus) String() string {
	return string(s)
}

// VideoTask records one verified video-watching task completion and the income it
// earned for the watcher. Verified rows of referred users are the trigger for the
// task commission fan-out.
type VideoTask struct {
	ID           uint64            `gorm:"PRIMARY_KEY" json:"id"`
	UserID       uint64            `gorm:"column:user_id" json:"user_id"`
	VideoID      uint64            `gorm:"column:video_id" json:"video_id"`
	RewardEarned *postgres.Decimal `gorm:"column:reward_earned" sql:"type:decimal(36,18)" json:"reward_earned"`
	Status       VideoTaskStatus   `sql:"not null;type:video_task_status_t;default:'pending'" json:"status"`
	CompletedAt  time.Time         `gorm:"column:completed_at" json:"completed_at"`
	CreatedAt    time.Time         `json:"created_at"`
}

// VideoTaskList type
type VideoTaskList struct {
	Tasks []VideoTask `json:"tasks"`
	Meta  PagingMeta  `json:"meta"`
}
