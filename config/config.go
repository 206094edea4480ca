package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"gitlab.com/vidpay-rewards/rewards_api/monitor"
)

// Config structure
type Config struct {
	Server          ServerConfig          `mapstructure:"server"`
	DatabaseCluster DatabaseClusterConfig `mapstructure:"database_cluster"`
	Crons           Crons                 `mapstructure:"crons"`
	Commission      CommissionConfig      `mapstructure:"commission"`
}

// ServerConfig structure
type ServerConfig struct {
	API        APIConfig      `mapstructure:"api"`
	Monitoring monitor.Config `mapstructure:"monitoring"`
}

// APIConfig structure
type APIConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Crons maps a cron job id onto its schedule expression
type Crons map[string]string

// DatabaseClusterConfig structure
type DatabaseClusterConfig struct {
	Writer DatabaseConfig `mapstructure:"writer"`
	Reader DatabaseConfig `mapstructure:"reader"`
}

// DatabaseConfig structure
type DatabaseConfig struct {
	Host            string
	Username        string
	Password        string
	Name            string
	SSLmode         string `mapstructure:"sslmode"`
	ApplicationName string `mapstructure:"application_name"`
	Port            int
}

// TaskScheduleConfig carries the task commission percentages per ancestor level
type TaskScheduleConfig struct {
	L1 float64 `mapstructure:"L1"`
	L2 float64 `mapstructure:"L2"`
	L3 float64 `mapstructure:"L3"`
}

// InviteTierConfig carries the fixed invite rewards of one plan tier per level
type InviteTierConfig struct {
	L1 float64 `mapstructure:"L1"`
	L2 float64 `mapstructure:"L2"`
	L3 float64 `mapstructure:"L3"`
}

// CommissionConfig structure
type CommissionConfig struct {
	TaskSchedule     TaskScheduleConfig          `mapstructure:"task_schedule"`
	InviteTiers      map[string]InviteTierConfig `mapstructure:"invite_tiers"`
	RepairWindowDays int                         `mapstructure:"repair_window_days"`
}

// LoadConfig unmarshals the open viper configuration into the Config structure
func LoadConfig(viperConf *viper.Viper) Config {
	var config Config

	err := viperConf.Unmarshal(&config)
	if err != nil {
		log.Fatal().Err(err).Msg("Unable to decode config into struct")
	}
	return config
}

// OpenConfig reads the configuration from the given file or the default locations
func OpenConfig(file string) {
	if file != "" {
		// Use config file from the flag.
		viper.SetConfigFile(file)
	}

	viper.SetConfigType("yaml")
	viper.SetConfigName(".config")
	viper.AddConfigPath(".")                    // First try to load the config from the current directory
	viper.AddConfigPath("$HOME")                // Then try to load it from the HOME directory
	viper.AddConfigPath("/etc/rewards_api/")    // As a last resort try to load it from /etc/
	viper.SetEnvPrefix("CFG")
	viper.AutomaticEnv()
	setDefaultVariables()

	err := viper.ReadInConfig() // Find and read the config file
	if err != nil {             // Handle errors reading the config file
		log.Fatal().Err(err).Msg("Unable to read configuration file")
	}
}

func setDefaultVariables() {
	viper.SetDefault("commission.task_schedule.L1", 6.0)
	viper.SetDefault("commission.task_schedule.L2", 3.0)
	viper.SetDefault("commission.task_schedule.L3", 1.0)
	viper.SetDefault("commission.repair_window_days", 90)
	viper.SetDefault("commission.invite_tiers", map[string]InviteTierConfig{
		"p1": {L1: 312, L2: 117, L3: 39},
		"p2": {L1: 1440, L2: 540, L3: 180},
	})
}
