// Package commission holds the pure payout schedules of the referral program.
// It performs no I/O; both the request-path distributor and the reconciliation
// sweep recompute amounts through it, so results must stay deterministic.
package commission

import (
	"github.com/ericlagergren/decimal"

	"gitlab.com/vidpay-rewards/rewards_api/config"
	"gitlab.com/vidpay-rewards/rewards_api/conv"
	"gitlab.com/vidpay-rewards/rewards_api/model"
)

// Rewards carries the computed payout per ancestor level. An amount is always
// defined for every level, zero included; callers skip zero payouts.
type Rewards struct {
	A *decimal.Big
	B *decimal.Big
	C *decimal.Big
}

// ForLevel returns the amount computed for the given level
func (r Rewards) ForLevel(level model.ReferralLevel) *decimal.Big {
	switch level {
	case model.ReferralLevelA:
		return r.A
	case model.ReferralLevelB:
		return r.B
	case model.ReferralLevelC:
		return r.C
	default:
		return conv.NewDecimalWithPrecision()
	}
}

func zeroRewards() Rewards {
	return Rewards{
		A: conv.NewDecimalWithPrecision(),
		B: conv.NewDecimalWithPrecision(),
		C: conv.NewDecimalWithPrecision(),
	}
}

// Schedule is the combined invite and task payout table loaded from configuration
type Schedule struct {
	taskPercents map[model.ReferralLevel]float64
	inviteTiers  map[model.PlanTier]Rewards
}

// NewSchedule builds a Schedule from the commission configuration block
func NewSchedule(cfg config.CommissionConfig) *Schedule {
	schedule := Schedule{
		taskPercents: map[model.ReferralLevel]float64{
			model.ReferralLevelA: cfg.TaskSchedule.L1,
			model.ReferralLevelB: cfg.TaskSchedule.L2,
			model.ReferralLevelC: cfg.TaskSchedule.L3,
		},
		inviteTiers: map[model.PlanTier]Rewards{},
	}
	for tier, rewards := range cfg.InviteTiers {
		schedule.inviteTiers[model.PlanTier(tier)] = Rewards{
			A: conv.NewDecimalWithPrecision().SetFloat64(rewards.L1),
			B: conv.NewDecimalWithPrecision().SetFloat64(rewards.L2),
			C: conv.NewDecimalWithPrecision().SetFloat64(rewards.L3),
		}
	}
	return &schedule
}

// ComputeInvite returns the fixed invite rewards of the purchased plan tier. A
// tier without a configured row yields zero on every level.
func (s *Schedule) ComputeInvite(tier model.PlanTier) Rewards {
	rewards, ok := s.inviteTiers[tier]
	if !ok {
		return zeroRewards()
	}
	return Rewards{
		A: conv.NewDecimalWithPrecision().Copy(rewards.A),
		B: conv.NewDecimalWithPrecision().Copy(rewards.B),
		C: conv.NewDecimalWithPrecision().Copy(rewards.C),
	}
}

// ComputeTask returns the task commission per level for the given task income.
// Every level takes its own percentage of the income and is rounded to a whole
// currency unit independently, half up. The per level rounding is part of the
// payout contract: the sum over the levels may deviate from rounding the
// combined percentage once, and replays must reproduce the exact same amounts.
func (s *Schedule) ComputeTask(taskIncome *decimal.Big) Rewards {
	if taskIncome == nil || taskIncome.Sign() <= 0 {
		return zeroRewards()
	}
	return Rewards{
		A: conv.RoundWholeHalfUp(conv.Percent(taskIncome, s.taskPercents[model.ReferralLevelA])),
		B: conv.RoundWholeHalfUp(conv.Percent(taskIncome, s.taskPercents[model.ReferralLevelB])),
		C: conv.RoundWholeHalfUp(conv.Percent(taskIncome, s.taskPercents[model.ReferralLevelC])),
	}
}
