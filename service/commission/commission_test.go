package commission_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"gitlab.com/vidpay-rewards/rewards_api/config"
	"gitlab.com/vidpay-rewards/rewards_api/conv"
	"gitlab.com/vidpay-rewards/rewards_api/model"
	"gitlab.com/vidpay-rewards/rewards_api/service/commission"
)

func testConfig() config.CommissionConfig {
	return config.CommissionConfig{
		TaskSchedule: config.TaskScheduleConfig{L1: 6, L2: 3, L3: 1},
		InviteTiers: map[string]config.InviteTierConfig{
			"p1": {L1: 312, L2: 117, L3: 39},
			"p2": {L1: 1440, L2: 540, L3: 180},
		},
		RepairWindowDays: 90,
	}
}

func TestComputeInvite(t *testing.T) {
	schedule := commission.NewSchedule(testConfig())

	Convey("Given the static tier reward table", t, func() {
		Convey("A P1 purchase should yield the fixed P1 rewards", func() {
			rewards := schedule.ComputeInvite(model.PlanTierP1)
			So(rewards.A.String(), ShouldEqual, "312")
			So(rewards.B.String(), ShouldEqual, "117")
			So(rewards.C.String(), ShouldEqual, "39")
		})

		Convey("A P2 purchase should yield the fixed P2 rewards", func() {
			rewards := schedule.ComputeInvite(model.PlanTierP2)
			So(rewards.A.String(), ShouldEqual, "1440")
			So(rewards.B.String(), ShouldEqual, "540")
			So(rewards.C.String(), ShouldEqual, "180")
		})

		Convey("An unconfigured tier should yield zero on every level", func() {
			rewards := schedule.ComputeInvite(model.PlanTierP4)
			for _, level := range model.ReferralLevels {
				So(rewards.ForLevel(level).Sign(), ShouldEqual, 0)
			}
		})

		Convey("Mutating a returned reward should not corrupt the table", func() {
			first := schedule.ComputeInvite(model.PlanTierP1)
			first.A.SetUint64(1)
			second := schedule.ComputeInvite(model.PlanTierP1)
			So(second.A.String(), ShouldEqual, "312")
		})
	})
}

func TestComputeTask(t *testing.T) {
	schedule := commission.NewSchedule(testConfig())

	Convey("Given the percentage task schedule", t, func() {
		Convey("An income of 62 should round each level independently half up", func() {
			income := conv.NewDecimalWithPrecision().SetUint64(62)
			rewards := schedule.ComputeTask(income)
			// 6% = 3.72 -> 4, 3% = 1.86 -> 2, 1% = 0.62 -> 1
			So(rewards.A.String(), ShouldEqual, "4")
			So(rewards.B.String(), ShouldEqual, "2")
			So(rewards.C.String(), ShouldEqual, "1")
		})

		Convey("Small incomes may round a level down to zero", func() {
			income := conv.NewDecimalWithPrecision().SetUint64(8)
			rewards := schedule.ComputeTask(income)
			// 6% = 0.48 -> 0, 3% = 0.24 -> 0, 1% = 0.08 -> 0
			So(rewards.A.Sign(), ShouldEqual, 0)
			So(rewards.B.Sign(), ShouldEqual, 0)
			So(rewards.C.Sign(), ShouldEqual, 0)
		})

		Convey("Half cases round away from zero", func() {
			income := conv.NewDecimalWithPrecision().SetUint64(25)
			rewards := schedule.ComputeTask(income)
			// 6% = 1.5 -> 2, 3% = 0.75 -> 1, 1% = 0.25 -> 0
			So(rewards.A.String(), ShouldEqual, "2")
			So(rewards.B.String(), ShouldEqual, "1")
			So(rewards.C.Sign(), ShouldEqual, 0)
		})

		Convey("A zero or missing income yields zero on every level", func() {
			rewards := schedule.ComputeTask(nil)
			So(rewards.A.Sign(), ShouldEqual, 0)
			rewards = schedule.ComputeTask(conv.NewDecimalWithPrecision())
			So(rewards.C.Sign(), ShouldEqual, 0)
		})

		Convey("Recomputation is deterministic", func() {
			income := conv.NewDecimalWithPrecision().SetUint64(12345)
			first := schedule.ComputeTask(income)
			second := schedule.ComputeTask(income)
			for _, level := range model.ReferralLevels {
				So(first.ForLevel(level).Cmp(second.ForLevel(level)), ShouldEqual, 0)
			}
		})
	})
}
