package queries

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gitlab.com/vidpay-rewards/rewards_api/config"
)

// Repo wraps the database cluster handles. Conn points to the writer and is used
// for every transactional payout; ConnReader points to the read replica and backs
// reports and reconciliation scans.
type Repo struct {
	Conn       *gorm.DB
	ConnReader *gorm.DB
}

var repo *Repo

func connect(dbConf config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s application_name=%s",
		dbConf.Host,
		dbConf.Port,
		dbConf.Username,
		dbConf.Password,
		dbConf.Name,
		dbConf.SSLmode,
		dbConf.ApplicationName,
	)
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// Init connects to the writer and reader nodes of the database cluster
func Init(cfg config.Config) (*Repo, error) {
	conn, err := connect(cfg.DatabaseCluster.Writer)
	if err != nil {
		return nil, err
	}
	connReader, err := connect(cfg.DatabaseCluster.Reader)
	if err != nil {
		return nil, err
	}
	repo = &Repo{
		Conn:       conn,
		ConnReader: connReader,
	}
	return repo, nil
}

// Close the database connections on program exit
func Close() {
	if repo == nil {
		return
	}
	for _, conn := range []*gorm.DB{repo.Conn, repo.ConnReader} {
		db, err := conn.DB()
		if err != nil {
			log.Error().Err(err).Str("section", "queries").Msg("Unable to get database handle")
			continue
		}
		if err := db.Close(); err != nil {
			log.Error().Err(err).Str("section", "queries").Msg("Unable to close database connection")
		}
	}
}
