package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
	CORS          CORSConfig
	Catalog       CatalogConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if !cfg.FeatureFlags.UseSQLite {
		if err := cfg.DB.ensureDSN(); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"GROUPDRIVE_APP_ENV" required:"true"`
	Port         string `envconfig:"GROUPDRIVE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"GROUPDRIVE_LOG_LEVEL" default:"info"`
	LogFormat    string `envconfig:"GROUPDRIVE_LOG_FORMAT" default:"json"`
	LogWarnStack bool   `envconfig:"GROUPDRIVE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN        string `envconfig:"GROUPDRIVE_DB_DSN"`
	SQLitePath string `envconfig:"GROUPDRIVE_DB_SQLITE_PATH" default:"groupdrive.db"`

	LegacyHost     string `envconfig:"GROUPDRIVE_DB_HOST"`
	LegacyPort     int    `envconfig:"GROUPDRIVE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"GROUPDRIVE_DB_USER"`
	LegacyPassword string `envconfig:"GROUPDRIVE_DB_PASSWORD"`
	LegacyName     string `envconfig:"GROUPDRIVE_DB_NAME"`
	LegacySSLMode  string `envconfig:"GROUPDRIVE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"GROUPDRIVE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"GROUPDRIVE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"GROUPDRIVE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"GROUPDRIVE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"GROUPDRIVE_REDIS_URL" required:"true"`
	Address      string        `envconfig:"GROUPDRIVE_REDIS_ADDR"`
	Password     string        `envconfig:"GROUPDRIVE_REDIS_PASSWORD"`
	DB           int           `envconfig:"GROUPDRIVE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"GROUPDRIVE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"GROUPDRIVE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"GROUPDRIVE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"GROUPDRIVE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"GROUPDRIVE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"GROUPDRIVE_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"GROUPDRIVE_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"GROUPDRIVE_JWT_EXPIRATION_MINUTES" default:"10080"`
	RefreshTokenTTLMinutes int    `envconfig:"GROUPDRIVE_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// AccessTokenTTL returns the configured access token lifetime.
func (j JWTConfig) AccessTokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"GROUPDRIVE_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"GROUPDRIVE_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"GROUPDRIVE_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"GROUPDRIVE_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"GROUPDRIVE_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"GROUPDRIVE_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"GROUPDRIVE_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"GROUPDRIVE_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"GROUPDRIVE_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"GROUPDRIVE_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"GROUPDRIVE_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	UseSQLite    bool `envconfig:"GROUPDRIVE_USE_SQLITE" default:"false"`
	AutoMigrate  bool `envconfig:"GROUPDRIVE_AUTO_MIGRATE" default:"false"`
	CatalogCache bool `envconfig:"GROUPDRIVE_CATALOG_CACHE" default:"true"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"GROUPDRIVE_CORS_ORIGINS" default:"*"`
}

// CatalogConfig tunes the persisted catalog source: Redis caching and the
// circuit breaker guarding database reads.
type CatalogConfig struct {
	CacheTTL            time.Duration `envconfig:"GROUPDRIVE_CATALOG_CACHE_TTL" default:"10m"`
	BreakerTimeout      time.Duration `envconfig:"GROUPDRIVE_CATALOG_BREAKER_TIMEOUT" default:"30s"`
	BreakerFailureRatio float64       `envconfig:"GROUPDRIVE_CATALOG_BREAKER_FAILURE_RATIO" default:"0.5"`
	BreakerMinRequests  uint32        `envconfig:"GROUPDRIVE_CATALOG_BREAKER_MIN_REQUESTS" default:"5"`
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
