package config

// EnvPrefix is empty because every field carries a fully-qualified
// envconfig tag.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	EnvAppEnv   = "BESPOKED_APP_ENV"
	EnvPort     = "BESPOKED_APP_PORT"
	EnvLogLevel = "BESPOKED_LOG_LEVEL"

	EnvDBDSN  = "BESPOKED_DB_DSN"
	EnvDBHost = "BESPOKED_DB_HOST"
	EnvDBUser = "BESPOKED_DB_USER"
	EnvDBName = "BESPOKED_DB_NAME"

	EnvCommissionYear = "BESPOKED_REPORTING_COMMISSION_YEAR"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
