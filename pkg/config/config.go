package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	CORS         CORSConfig
	Reporting    ReportingConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"BESPOKED_APP_ENV" required:"true"`
	Port         string `envconfig:"BESPOKED_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"BESPOKED_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"BESPOKED_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"BESPOKED_DB_DSN"`
	Driver string `envconfig:"BESPOKED_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"BESPOKED_DB_HOST"`
	LegacyPort     int    `envconfig:"BESPOKED_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"BESPOKED_DB_USER"`
	LegacyPassword string `envconfig:"BESPOKED_DB_PASSWORD"`
	LegacyName     string `envconfig:"BESPOKED_DB_NAME"`
	LegacySSLMode  string `envconfig:"BESPOKED_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"BESPOKED_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"BESPOKED_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"BESPOKED_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"BESPOKED_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"BESPOKED_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

// ReportingConfig pins the calendar year the quarterly commission
// report covers. The legacy system hard-coded 2023.
type ReportingConfig struct {
	CommissionYear int `envconfig:"BESPOKED_REPORTING_COMMISSION_YEAR" default:"2023"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"BESPOKED_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
