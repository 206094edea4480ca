package model

import (
	"time"
)

// ReferralLevel identifies the generation of a referral ancestor relative to a
// referred user: A is the direct referrer, B the referrer's referrer, C the third
// generation. Commission liability stops at C.
type ReferralLevel string

const (
	ReferralLevelA ReferralLevel = "a_level"
	ReferralLevelB ReferralLevel = "b_level"
	ReferralLevelC ReferralLevel = "c_level"
)

// ReferralLevels in payout order. Distribution and repair iterate this slice so
// levels are always processed A then B then C.
var ReferralLevels = []ReferralLevel{ReferralLevelA, ReferralLevelB, ReferralLevelC}

func (l ReferralLevel) String() string {
	return string(l)
}

func (l ReferralLevel) IsValid() bool {
	switch l {
	case ReferralLevelA, ReferralLevelB, ReferralLevelC:
		return true
	default:
		return false
	}
}

// Int returns the generation number of the level (A=1, B=2, C=3)
func (l ReferralLevel) Int() int {
	switch l {
	case ReferralLevelA:
		return 1
	case ReferralLevelB:
		return 2
	case ReferralLevelC:
		return 3
	default:
		return 0
	}
}

// ReferralHierarchy materializes one hop of the referral tree: ReferrerID is
// UserID's ancestor at the given level. Rows are created lazily, never updated and
// never deleted. A user has at most one row per level and at most three rows total.
type ReferralHierarchy struct {
	ID         uint64        `gorm:"PRIMARY_KEY" json:"id"`
	UserID     uint64        `gorm:"column:user_id" json:"user_id"`
	ReferrerID uint64        `gorm:"column:referrer_id" json:"referrer_id"`
	Level      ReferralLevel `sql:"not null;type:referral_level_t" gorm:"column:level" json:"level"`
	CreatedAt  time.Time     `json:"created_at"`
}

func (ReferralHierarchy) TableName() string {
	return "referral_hierarchies"
}

// ReferralTree is the resolved ancestor chain of a single user keyed by level
type ReferralTree struct {
	UserID uint64  `json:"user_id"`
	A      *uint64 `json:"a_level"`
	B      *uint64 `json:"b_level"`
	C      *uint64 `json:"c_level"`
}

// ForLevel returns the ancestor id stored for the given level, if any
func (t *ReferralTree) ForLevel(level ReferralLevel) (uint64, bool) {
	var ref *uint64
	switch level {
	case ReferralLevelA:
		ref = t.A
	case ReferralLevelB:
		ref = t.B
	case ReferralLevelC:
		ref = t.C
	}
	if ref == nil {
		return 0, false
	}
	return *ref, true
}

// Depth returns the number of resolved ancestors
func (t *ReferralTree) Depth() int {
	depth := 0
	for _, level := range ReferralLevels {
		if _, ok := t.ForLevel(level); ok {
			depth++
		}
	}
	return depth
}
