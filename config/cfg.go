package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/Sebastian1234123/sistema-farmacia/internal/alertmonitor"
	httpapi "github.com/Sebastian1234123/sistema-farmacia/internal/api/http"
	"github.com/Sebastian1234123/sistema-farmacia/internal/report"
	"github.com/Sebastian1234123/sistema-farmacia/internal/store"
	"github.com/Sebastian1234123/sistema-farmacia/log"
	"github.com/spf13/viper"
)

// Config represents the global configuration for the service.
type Config struct {
	DB           store.Config        `mapstructure:"mysql"`
	Logger       log.Config          `mapstructure:"logger"`
	HTTP         httpapi.Config      `mapstructure:"http"`
	Reports      report.Config       `mapstructure:"reports"`
	AlertMonitor alertmonitor.Config `mapstructure:"alert_monitor"`
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values.
// Nested config keys use double underscore, e.g. MYSQL__DSN for mysql.dsn,
// and the common keys also bind to flat names such as MYSQL_DSN.
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))

	setDefaults(v)
	if err := bindEnvVars(v); err != nil {
		return nil, err
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/config/sistema-farmacia")
		v.AddConfigPath("/etc/sistema-farmacia")
		_ = v.ReadInConfig()
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	if config.DB.DSN == "" {
		config.DB.DSN = dsnFromEnv()
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	rc := report.DefaultConfig()
	v.SetDefault("reports.timezone", rc.Timezone)
	v.SetDefault("reports.expiry_horizon_days", rc.ExpiryHorizonDays)
	v.SetDefault("reports.top_n", rc.TopN)
	v.SetDefault("reports.growth_window", rc.GrowthWindow)
	v.SetDefault("reports.low_stock_preview", rc.LowStockPreview)
	v.SetDefault("reports.expiring_preview", rc.ExpiringPreview)

	ac := alertmonitor.DefaultConfig()
	v.SetDefault("alert_monitor.enabled", ac.Enabled)
	v.SetDefault("alert_monitor.worker_interval", ac.WorkerInterval)

	v.SetDefault("http.port", "8080")
	v.SetDefault("http.export_rate_limit", 30)
	v.SetDefault("mysql.max_open_connections", 10)
	v.SetDefault("mysql.max_idle_connections", 5)
}

// dsnFromEnv builds a DSN from MYSQL_* variables when all the parts are set.
func dsnFromEnv() string {
	host := os.Getenv("MYSQL_HOST")
	port := os.Getenv("MYSQL_PORT")
	user := os.Getenv("MYSQL_USER")
	password := os.Getenv("MYSQL_PASSWORD")
	database := os.Getenv("MYSQL_DATABASE")
	if host == "" || user == "" || password == "" || database == "" {
		return ""
	}
	if port == "" {
		port = "3306"
	}
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		user, password, host, port, database)
	if os.Getenv("MYSQL_TLS_CA_PATH") != "" {
		dsn += "&tls=custom"
	}
	return dsn
}

// bindEnvVars binds flat environment variable names to config keys.
func bindEnvVars(v *viper.Viper) error {
	bindings := [][2]string{
		{"mysql.dsn", "MYSQL_DSN"},
		{"mysql.automigrate", "MYSQL_AUTOMIGRATE"},
		{"mysql.max_open_connections", "MYSQL_MAX_OPEN_CONNECTIONS"},
		{"mysql.max_idle_connections", "MYSQL_MAX_IDLE_CONNECTIONS"},
		{"mysql.tls_ca_path", "MYSQL_TLS_CA_PATH"},

		{"logger.level", "LOG_LEVEL"},
		{"logger.add_source", "LOG_ADD_SOURCE"},

		{"http.port", "HTTP_PORT"},
		{"http.address", "HTTP_ADDRESS"},
		{"http.allowed_origins", "HTTP_ALLOWED_ORIGINS"},
		{"http.export_rate_limit", "HTTP_EXPORT_RATE_LIMIT"},

		{"reports.timezone", "REPORTS_TIMEZONE"},
		{"reports.expiry_horizon_days", "REPORTS_EXPIRY_HORIZON_DAYS"},
		{"reports.top_n", "REPORTS_TOP_N"},
		{"reports.growth_window", "REPORTS_GROWTH_WINDOW"},
		{"reports.low_stock_preview", "REPORTS_LOW_STOCK_PREVIEW"},
		{"reports.expiring_preview", "REPORTS_EXPIRING_PREVIEW"},

		{"alert_monitor.enabled", "ALERT_MONITOR_ENABLED"},
		{"alert_monitor.worker_interval", "ALERT_MONITOR_WORKER_INTERVAL"},
	}
	for _, b := range bindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return fmt.Errorf("bind env %s: %w", b[1], err)
		}
	}
	return nil
}
