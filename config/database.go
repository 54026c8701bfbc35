package config

// DBConfig contains PostgreSQL database configuration.
// Only used when SESSION_BACKEND=postgres.
type DBConfig struct {
	Host     string `env:"HOST"                    envDefault:"localhost"`
	Port     int    `env:"PORT"                    envDefault:"5432"`
	User     string `env:"USER"                    envDefault:"spendwise"`
	Password string `env:"PASSWORD"                envDefault:"spendwise"`
	Name     string `env:"NAME"                    envDefault:"spendwise_web"`
	SSLMode  string `env:"SSL_MODE"                envDefault:"disable"` // Use 'disable' for local dev, 'require' for production
	// RunMigrationsOnStart controls whether the application automatically applies migrations during startup.
	RunMigrationsOnStart bool `env:"RUN_MIGRATIONS_ON_START" envDefault:"true"`
}

// RedisConfig addresses the Redis instance holding sessions. URI is either
// host:port or a redis:// / rediss:// URL; credentials in the URL win over
// Password.
type RedisConfig struct {
	URI      string `env:"URI"      envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
}
