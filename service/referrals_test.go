package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	. "github.com/smartystreets/goconvey/convey"

	"gitlab.com/vidpay-rewards/rewards_api/model"
)

func TestService_GetReferralEarnings(t *testing.T) {
	Convey("it should sum only commission rows and split them per level", t, func() {
		service, mock := newTestService()
		schedules := pq.Array([]string{
			model.CommissionSchedule_Invite.String(),
			model.CommissionSchedule_Task.String(),
		})

		mock.ExpectQuery(`SELECT sum\(amount\) as balance FROM "wallet_transactions"`).
			WithArgs(5, schedules).
			WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow(dec(93)))
		mock.ExpectQuery(`SELECT level, sum\(amount\) as balance FROM "wallet_transactions"`).
			WithArgs(5, schedules).
			WillReturnRows(sqlmock.NewRows([]string{"level", "balance"}).
				AddRow(model.ReferralLevelA, dec(62)).
				AddRow(model.ReferralLevelB, dec(31)))

		earnings, err := service.GetReferralEarnings(5)

		So(err, ShouldBeNil)
		So(earnings.Total.String(), ShouldEqual, "93")
		So(earnings.A.String(), ShouldEqual, "62")
		So(earnings.B.String(), ShouldEqual, "31")
		So(earnings.C.Sign(), ShouldEqual, 0)
		So(mock.ExpectationsWereMet(), ShouldBeNil)
	})
}
