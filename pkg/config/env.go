package config

const (
	// EnvPrefix is handed to envconfig; every field below carries an explicit name.
	EnvPrefix = "GROUPDRIVE"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv       = "GROUPDRIVE_APP_ENV"
	EnvPort         = "GROUPDRIVE_APP_PORT"
	EnvLogLevel     = "GROUPDRIVE_LOG_LEVEL"
	EnvLogFormat    = "GROUPDRIVE_LOG_FORMAT"
	EnvLogWarnStack = "GROUPDRIVE_LOG_WARN_STACK"

	EnvDBDSN             = "GROUPDRIVE_DB_DSN"
	EnvDBHost            = "GROUPDRIVE_DB_HOST"
	EnvDBPort            = "GROUPDRIVE_DB_PORT"
	EnvDBUser            = "GROUPDRIVE_DB_USER"
	EnvDBPassword        = "GROUPDRIVE_DB_PASSWORD"
	EnvDBName            = "GROUPDRIVE_DB_NAME"
	EnvDBSSLMode         = "GROUPDRIVE_DB_SSLMODE"
	EnvDBSQLitePath      = "GROUPDRIVE_DB_SQLITE_PATH"
	EnvDBMaxOpenConns    = "GROUPDRIVE_DB_MAX_OPEN_CONNS"
	EnvDBMaxIdleConns    = "GROUPDRIVE_DB_MAX_IDLE_CONNS"
	EnvDBConnMaxLifetime = "GROUPDRIVE_DB_CONN_MAX_LIFETIME"
	EnvDBConnMaxIdleTime = "GROUPDRIVE_DB_CONN_MAX_IDLE_TIME"

	EnvRedisURL          = "GROUPDRIVE_REDIS_URL"
	EnvRedisAddr         = "GROUPDRIVE_REDIS_ADDR"
	EnvRedisPassword     = "GROUPDRIVE_REDIS_PASSWORD"
	EnvRedisDB           = "GROUPDRIVE_REDIS_DB"
	EnvRedisPoolSize     = "GROUPDRIVE_REDIS_POOL_SIZE"
	EnvRedisMinIdleConns = "GROUPDRIVE_REDIS_MIN_IDLE_CONNS"
	EnvRedisDialTimeout  = "GROUPDRIVE_REDIS_DIAL_TIMEOUT"
	EnvRedisReadTimeout  = "GROUPDRIVE_REDIS_READ_TIMEOUT"
	EnvRedisWriteTimeout = "GROUPDRIVE_REDIS_WRITE_TIMEOUT"

	EnvJWTSecret              = "GROUPDRIVE_JWT_SECRET"
	EnvJWTIssuer              = "GROUPDRIVE_JWT_ISSUER"
	EnvJWTExpMins             = "GROUPDRIVE_JWT_EXPIRATION_MINUTES"
	EnvRefreshTokenTTLMinutes = "GROUPDRIVE_REFRESH_TOKEN_TTL_MINUTES"

	EnvArgonMemoryKB    = "GROUPDRIVE_ARGON_MEMORY_KB"
	EnvArgonTime        = "GROUPDRIVE_ARGON_TIME"
	EnvArgonParallelism = "GROUPDRIVE_ARGON_PARALLELISM"
	EnvArgonSaltLen     = "GROUPDRIVE_ARGON_SALT_LEN"
	EnvArgonKeyLen      = "GROUPDRIVE_ARGON_KEY_LEN"

	EnvAuthLoginWindow        = "GROUPDRIVE_AUTH_RATE_LIMIT_LOGIN_WINDOW"
	EnvAuthLoginEmailLimit    = "GROUPDRIVE_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT"
	EnvAuthLoginIPLimit       = "GROUPDRIVE_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT"
	EnvAuthRegisterWindow     = "GROUPDRIVE_AUTH_RATE_LIMIT_REGISTER_WINDOW"
	EnvAuthRegisterEmailLimit = "GROUPDRIVE_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT"
	EnvAuthRegisterIPLimit    = "GROUPDRIVE_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT"

	EnvUseSQLite    = "GROUPDRIVE_USE_SQLITE"
	EnvAutoMigrate  = "GROUPDRIVE_AUTO_MIGRATE"
	EnvCatalogCache = "GROUPDRIVE_CATALOG_CACHE"

	EnvCORSOrigins = "GROUPDRIVE_CORS_ORIGINS"

	EnvCatalogCacheTTL           = "GROUPDRIVE_CATALOG_CACHE_TTL"
	EnvCatalogBreakerTimeout     = "GROUPDRIVE_CATALOG_BREAKER_TIMEOUT"
	EnvCatalogBreakerRatio       = "GROUPDRIVE_CATALOG_BREAKER_FAILURE_RATIO"
	EnvCatalogBreakerMinRequests = "GROUPDRIVE_CATALOG_BREAKER_MIN_REQUESTS"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
