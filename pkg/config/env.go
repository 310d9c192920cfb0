package config

// EnvPrefix is passed to envconfig; every field carries its full variable name.
const EnvPrefix = "LAPTOPFINDER"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	RendererHTTP   = "http"
	RendererChrome = "chrome"

	SnapshotBackendFile  = "file"
	SnapshotBackendRedis = "redis"

	defaultSQLiteDSN = "file:laptopfinder.db?cache=shared"
)

const (
	EnvAppEnv           = "LAPTOPFINDER_APP_ENV"
	EnvPort             = "LAPTOPFINDER_APP_PORT"
	EnvLogLevel         = "LAPTOPFINDER_LOG_LEVEL"
	EnvDBDSN            = "LAPTOPFINDER_DB_DSN"
	EnvDBHost           = "LAPTOPFINDER_DB_HOST"
	EnvDBUser           = "LAPTOPFINDER_DB_USER"
	EnvDBName           = "LAPTOPFINDER_DB_NAME"
	EnvRedisURL         = "LAPTOPFINDER_REDIS_URL"
	EnvUseSQLite        = "LAPTOPFINDER_USE_SQLITE"
	EnvCatalogSources   = "LAPTOPFINDER_CATALOG_SOURCES"
	EnvSnapshotBackend  = "LAPTOPFINDER_CATALOG_SNAPSHOT_BACKEND"
	EnvScrapeRenderer   = "LAPTOPFINDER_SCRAPE_RENDERER"
	EnvScrapeRPS        = "LAPTOPFINDER_SCRAPE_RPS"
	EnvReviewsRetention = "LAPTOPFINDER_REVIEWS_RETENTION_DAYS"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
