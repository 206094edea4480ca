package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	. "github.com/smartystreets/goconvey/convey"

	"gitlab.com/vidpay-rewards/rewards_api/model"
)

func TestService_EnsureHierarchy(t *testing.T) {
	Convey("it should materialize all three edges from the referred_by chain", t, func() {
		service, mock := newTestService()

		// user 4 <- 3 <- 2 <- 1, user 1 is a root
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
			WithArgs(4).WillReturnRows(userRow(4, 3))
		mock.ExpectQuery(`SELECT \* FROM "referral_hierarchies" WHERE user_id = \$1`).
			WithArgs(4).WillReturnRows(emptyEdgeRows())

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "referral_hierarchies"`).
			WithArgs(4, 3, model.ReferralLevelA, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectCommit()
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
			WithArgs(3).WillReturnRows(userRow(3, 2))

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "referral_hierarchies"`).
			WithArgs(4, 2, model.ReferralLevelB, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
		mock.ExpectCommit()
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
			WithArgs(2).WillReturnRows(userRow(2, 1))

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "referral_hierarchies"`).
			WithArgs(4, 1, model.ReferralLevelC, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
		mock.ExpectCommit()
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
			WithArgs(1).WillReturnRows(userRow(1, nil))

		edges, err := service.EnsureHierarchy(4)

		So(err, ShouldBeNil)
		So(edges, ShouldHaveLength, 3)
		So(edges[0].Level, ShouldEqual, model.ReferralLevelA)
		So(edges[0].ReferrerID, ShouldEqual, 3)
		So(edges[1].Level, ShouldEqual, model.ReferralLevelB)
		So(edges[1].ReferrerID, ShouldEqual, 2)
		So(edges[2].Level, ShouldEqual, model.ReferralLevelC)
		So(edges[2].ReferrerID, ShouldEqual, 1)
		So(mock.ExpectationsWereMet(), ShouldBeNil)
	})

	Convey("it should stop at the root when the chain is shorter than three", t, func() {
		service, mock := newTestService()

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
			WithArgs(2).WillReturnRows(userRow(2, 1))
		mock.ExpectQuery(`SELECT \* FROM "referral_hierarchies" WHERE user_id = \$1`).
			WithArgs(2).WillReturnRows(emptyEdgeRows())

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "referral_hierarchies"`).
			WithArgs(2, 1, model.ReferralLevelA, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectCommit()
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
			WithArgs(1).WillReturnRows(userRow(1, nil))

		edges, err := service.EnsureHierarchy(2)

		So(err, ShouldBeNil)
		So(edges, ShouldHaveLength, 1)
		So(edges[0].Level, ShouldEqual, model.ReferralLevelA)
		So(mock.ExpectationsWereMet(), ShouldBeNil)
	})

	Convey("it should not touch a complete hierarchy", t, func() {
		service, mock := newTestService()

		edgeRows := sqlmock.NewRows(edgeColumns).
			AddRow(1, 4, 3, model.ReferralLevelA).
			AddRow(2, 4, 2, model.ReferralLevelB).
			AddRow(3, 4, 1, model.ReferralLevelC)
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
			WithArgs(4).WillReturnRows(userRow(4, 3))
		mock.ExpectQuery(`SELECT \* FROM "referral_hierarchies" WHERE user_id = \$1`).
			WithArgs(4).WillReturnRows(edgeRows)

		edges, err := service.EnsureHierarchy(4)

		So(err, ShouldBeNil)
		So(edges, ShouldHaveLength, 3)
		So(mock.ExpectationsWereMet(), ShouldBeNil)
	})

	Convey("it should return ErrUserNotFound for an unknown user", t, func() {
		service, mock := newTestService()

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
			WithArgs(9).WillReturnRows(sqlmock.NewRows(userColumns))

		edges, err := service.EnsureHierarchy(9)

		So(err, ShouldEqual, ErrUserNotFound)
		So(edges, ShouldBeNil)
		So(mock.ExpectationsWereMet(), ShouldBeNil)
	})
}
