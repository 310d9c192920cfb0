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
	Service      ServiceConfig
	DB           DBConfig
	Redis        RedisConfig
	Scrape       ScrapeConfig
	Catalog      CatalogConfig
	Reviews      ReviewsConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(cfg.FeatureFlags.UseSQLite); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string   `envconfig:"LAPTOPFINDER_APP_ENV" required:"true"`
	Port         string   `envconfig:"LAPTOPFINDER_APP_PORT" required:"true"`
	LogLevel     string   `envconfig:"LAPTOPFINDER_LOG_LEVEL" default:"info"`
	LogWarnStack bool     `envconfig:"LAPTOPFINDER_LOG_WARN_STACK" default:"false"`
	AdminToken   string   `envconfig:"LAPTOPFINDER_ADMIN_TOKEN"`
	CORSOrigins  []string `envconfig:"LAPTOPFINDER_CORS_ORIGINS"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type ServiceConfig struct {
	Kind string `envconfig:"LAPTOPFINDER_SERVICE_KIND" default:"api"`
}

type DBConfig struct {
	DSN    string `envconfig:"LAPTOPFINDER_DB_DSN"`
	Driver string `envconfig:"LAPTOPFINDER_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"LAPTOPFINDER_DB_HOST"`
	LegacyPort     int    `envconfig:"LAPTOPFINDER_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"LAPTOPFINDER_DB_USER"`
	LegacyPassword string `envconfig:"LAPTOPFINDER_DB_PASSWORD"`
	LegacyName     string `envconfig:"LAPTOPFINDER_DB_NAME"`
	LegacySSLMode  string `envconfig:"LAPTOPFINDER_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"LAPTOPFINDER_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"LAPTOPFINDER_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"LAPTOPFINDER_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"LAPTOPFINDER_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"LAPTOPFINDER_REDIS_URL"`
	Address      string        `envconfig:"LAPTOPFINDER_REDIS_ADDR"`
	Password     string        `envconfig:"LAPTOPFINDER_REDIS_PASSWORD"`
	DB           int           `envconfig:"LAPTOPFINDER_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"LAPTOPFINDER_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"LAPTOPFINDER_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"LAPTOPFINDER_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"LAPTOPFINDER_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"LAPTOPFINDER_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether any redis endpoint was configured.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

// ScrapeConfig tunes the listing fetcher used during catalog builds.
type ScrapeConfig struct {
	Timeout          time.Duration `envconfig:"LAPTOPFINDER_SCRAPE_TIMEOUT" default:"30s"`
	RequestsPerSec   float64       `envconfig:"LAPTOPFINDER_SCRAPE_RPS" default:"1"`
	Burst            int           `envconfig:"LAPTOPFINDER_SCRAPE_BURST" default:"1"`
	RetryAttempts    int           `envconfig:"LAPTOPFINDER_SCRAPE_RETRY_ATTEMPTS" default:"3"`
	RetryBaseDelay   time.Duration `envconfig:"LAPTOPFINDER_SCRAPE_RETRY_BASE_DELAY" default:"2s"`
	MaxDetailFetches int           `envconfig:"LAPTOPFINDER_SCRAPE_MAX_DETAIL_FETCHES" default:"40"`
	Renderer         string        `envconfig:"LAPTOPFINDER_SCRAPE_RENDERER" default:"http"`
	UserAgent        string        `envconfig:"LAPTOPFINDER_SCRAPE_USER_AGENT"`
}

// UseChrome reports whether listing pages should be rendered by a headless browser.
func (s ScrapeConfig) UseChrome() bool {
	return strings.EqualFold(strings.TrimSpace(s.Renderer), RendererChrome)
}

type CatalogConfig struct {
	// Sources holds "Brand=URL" pairs in priority order.
	Sources         []string      `envconfig:"LAPTOPFINDER_CATALOG_SOURCES"`
	SnapshotBackend string        `envconfig:"LAPTOPFINDER_CATALOG_SNAPSHOT_BACKEND" default:"file"`
	SnapshotPath    string        `envconfig:"LAPTOPFINDER_CATALOG_SNAPSHOT_PATH" default:"data/catalog_snapshot.json"`
	BuildOnStart    bool          `envconfig:"LAPTOPFINDER_CATALOG_BUILD_ON_START" default:"false"`
	RefreshInterval time.Duration `envconfig:"LAPTOPFINDER_CATALOG_REFRESH_INTERVAL" default:"24h"`
	// ConfiguratorURL is a page address containing "{sku}"; empty keeps the bundled matrices.
	ConfiguratorURL string `envconfig:"LAPTOPFINDER_CATALOG_CONFIGURATOR_URL"`
}

// SourcePairs splits the configured sources into brand/url pairs, skipping malformed entries.
func (c CatalogConfig) SourcePairs() [][2]string {
	pairs := make([][2]string, 0, len(c.Sources))
	for _, raw := range c.Sources {
		brand, link, ok := strings.Cut(raw, "=")
		brand = strings.TrimSpace(brand)
		link = strings.TrimSpace(link)
		if !ok || brand == "" || link == "" {
			continue
		}
		pairs = append(pairs, [2]string{brand, link})
	}
	return pairs
}

// UseRedisSnapshots reports whether snapshots live in redis instead of on disk.
func (c CatalogConfig) UseRedisSnapshots() bool {
	return strings.EqualFold(strings.TrimSpace(c.SnapshotBackend), SnapshotBackendRedis)
}

type ReviewsConfig struct {
	SubmitWindow  time.Duration `envconfig:"LAPTOPFINDER_REVIEWS_SUBMIT_WINDOW" default:"10m"`
	SubmitLimit   int           `envconfig:"LAPTOPFINDER_REVIEWS_SUBMIT_LIMIT" default:"5"`
	RetentionDays int           `envconfig:"LAPTOPFINDER_REVIEWS_RETENTION_DAYS" default:"30"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"LAPTOPFINDER_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"LAPTOPFINDER_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN(useSQLite bool) error {
	if useSQLite {
		db.Driver = DriverSQLite
		if db.DSN == "" {
			db.DSN = defaultSQLiteDSN
		}
		return nil
	}
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
