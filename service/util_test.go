package service

import (
	"context"
	"fmt"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ericlagergren/decimal"
	postgres2 "github.com/ericlagergren/decimal/sql/postgres"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gitlab.com/vidpay-rewards/rewards_api/config"
	"gitlab.com/vidpay-rewards/rewards_api/model"
	"gitlab.com/vidpay-rewards/rewards_api/queries"
)

func setupDB() (*gorm.DB, sqlmock.Sqlmock) {
	logger := log.With().Str("test", "service").Str("method", "setupDB").Logger()
	db, mock, err := sqlmock.New()
	if err != nil {
		logger.Fatal().Msgf("can't create sqlmock: %s", err)
	}

	dialector := postgres.New(postgres.Config{
		DSN:                  "postgres-mock",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		logger.Fatal().Msgf("can't open gorm connection: %s", err)
	}

	return gormDB, mock
}

func setupRepo() (*queries.Repo, sqlmock.Sqlmock) {
	db, mock := setupDB()
	return &queries.Repo{
		Conn:       db,
		ConnReader: db,
	}, mock
}

func testConfig() config.Config {
	cfg := config.Config{}
	cfg.Commission = config.CommissionConfig{
		TaskSchedule: config.TaskScheduleConfig{L1: 6, L2: 3, L3: 1},
		InviteTiers: map[string]config.InviteTierConfig{
			"p1": {L1: 312, L2: 117, L3: 39},
			"p2": {L1: 1440, L2: 540, L3: 180},
		},
		RepairWindowDays: 90,
	}
	return cfg
}

func newTestService() (*Service, sqlmock.Sqlmock) {
	repo, mock := setupRepo()
	return NewService(context.TODO(), testConfig(), repo), mock
}

func dec(value int64) *postgres2.Decimal {
	return &postgres2.Decimal{V: decimal.New(value, 0)}
}

var userColumns = []string{
	"id", "email", "nickname", "status", "referral_code", "referred_by",
	"wallet_balance", "commission_balance", "total_earnings",
}

// userRow builds a single user result row; referredBy is an int64 id or nil
func userRow(id uint64, referredBy interface{}) *sqlmock.Rows {
	return sqlmock.NewRows(userColumns).
		AddRow(id, fmt.Sprintf("user%d@example.com", id), fmt.Sprintf("user%d", id),
			model.UserStatusActive, fmt.Sprintf("code%d", id), referredBy,
			dec(0), dec(0), dec(0))
}

func userRowWithBalances(id uint64, referredBy interface{}, wallet, commission, total int64) *sqlmock.Rows {
	return sqlmock.NewRows(userColumns).
		AddRow(id, fmt.Sprintf("user%d@example.com", id), fmt.Sprintf("user%d", id),
			model.UserStatusActive, fmt.Sprintf("code%d", id), referredBy,
			dec(wallet), dec(commission), dec(total))
}

var edgeColumns = []string{"id", "user_id", "referrer_id", "level"}

func emptyEdgeRows() *sqlmock.Rows {
	return sqlmock.NewRows(edgeColumns)
}
