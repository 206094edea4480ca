package model

import (
	"math/rand"
	"time"

	"github.com/ericlagergren/decimal/sql/postgres"

	"gitlab.com/vidpay-rewards/rewards_api/conv"
)

// UserStatus defined the list of possible user statuses
type UserStatus string

const (
	// UserStatusPending when user is newly created and email address is not verified
	UserStatusPending UserStatus = "pending"
	// UserStatusActive when user is active in the system with email address confirmed
	UserStatusActive UserStatus = "active"
	// UserStatusBlocked when user is blocked by the admin
	UserStatusBlocked UserStatus = "blocked"
	// UserStatusDeleted when user is deleted by the admin
	UserStatusDeleted UserStatus = "deleted"
)

func (u UserStatus) String() string {
	return string(u)
}

// User structure
//
// ReferredBy is the single back reference forming the referral forest. It is set
// once at registration and never re-parented afterwards.
type User struct {
	ID uint64 `sql:"type: bigint" gorm:"primary_key" json:"id"`

	Email        string     `gorm:"unique;" json:"email"`
	Nickname     string     `json:"nickname"`
	Status       UserStatus `sql:"not null;type:user_status_t" json:"status"`
	ReferralCode string     `gorm:"column:referral_code" json:"referral_code"`
	ReferredBy   *uint64    `gorm:"column:referred_by" json:"referred_by"`

	WalletBalance     *postgres.Decimal `gorm:"column:wallet_balance" sql:"type:decimal(36,18)" json:"wallet_balance"`
	CommissionBalance *postgres.Decimal `gorm:"column:commission_balance" sql:"type:decimal(36,18)" json:"commission_balance"`
	TotalEarnings     *postgres.Decimal `gorm:"column:total_earnings" sql:"type:decimal(36,18)" json:"total_earnings"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")

func randSeq(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

// NewUser Create a new user with an own referral code and an optional referrer
func NewUser(email, nickname string, referredBy *uint64) *User {
	referralCode := randSeq(8)
	return &User{
		Email:             email,
		Nickname:          nickname,
		Status:            UserStatusPending,
		ReferralCode:      referralCode,
		ReferredBy:        referredBy,
		WalletBalance:     &postgres.Decimal{V: conv.NewDecimalWithPrecision()},
		CommissionBalance: &postgres.Decimal{V: conv.NewDecimalWithPrecision()},
		TotalEarnings:     &postgres.Decimal{V: conv.NewDecimalWithPrecision()},
	}
}

// UserList type
type UserList struct {
	Users []User     `json:"users"`
	Meta  PagingMeta `json:"meta"`
}

// TopInviters structure used by the referral leaderboard
type TopInviters struct {
	Email         string    `gorm:"column:email" json:"email"`
	Level1Invited uint64    `gorm:"column:level1_invited" json:"level1_invited"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
}
