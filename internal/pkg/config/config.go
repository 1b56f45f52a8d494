package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Storage backends.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	API      APIConfig
	Session  SessionConfig
	Catalog  CatalogConfig
	Upstream UpstreamConfig

	Mongo MongoConfig
	Redis RedisConfig
}

// APIConfig points the console at the upstream back-office API.
// An empty BaseURL means same-origin: the upstream API is served by the
// console process itself.
type APIConfig struct {
	BaseURL string        `env:"API_BASE_URL"`
	Timeout time.Duration `env:"API_TIMEOUT, default=15s"`
}

type SessionConfig struct {
	Storage    string `env:"SESSION_STORAGE,     default=redis"`
	TokenKey   string `env:"SESSION_TOKEN_KEY,   default=accessToken"`
	ProfileKey string `env:"SESSION_PROFILE_KEY, default=authUser"`
}

type CatalogConfig struct {
	Backend string `env:"CATALOG_BACKEND, default=memory"`
}

// UpstreamConfig configures the bundled upstream API.
type UpstreamConfig struct {
	JWTSecret       string        `env:"JWT_SECRET"`
	TokenTTL        time.Duration `env:"TOKEN_TTL,        default=24h"`
	AccountsBackend string        `env:"ACCOUNTS_BACKEND, default=memory"`
	SeedPassword    string        `env:"SEED_PASSWORD"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=backoffice"`
}

type RedisConfig struct {
	Addr      string `env:"REDIS_ADDR,       default=localhost:6379"`
	Password  string `env:"REDIS_PASSWORD"`
	DB        int    `env:"REDIS_DB,         default=0"`
	KeyPrefix string `env:"REDIS_KEY_PREFIX, default=backoffice:session:"`
}

// SameOrigin reports whether the console serves the upstream API itself.
func (c *Config) SameOrigin() bool {
	return c.API.BaseURL == ""
}

// NeedsMongo reports whether any configured backend uses MongoDB.
func (c *Config) NeedsMongo() bool {
	return c.Session.Storage == BackendMongo ||
		c.Catalog.Backend == BackendMongo ||
		c.Upstream.AccountsBackend == BackendMongo
}

// Validate rejects unknown backends.
func (c *Config) Validate() error {
	switch c.Session.Storage {
	case BackendMemory, BackendRedis, BackendMongo:
	default:
		return fmt.Errorf("SESSION_STORAGE: unknown backend %q", c.Session.Storage)
	}
	for name, v := range map[string]string{
		"CATALOG_BACKEND":  c.Catalog.Backend,
		"ACCOUNTS_BACKEND": c.Upstream.AccountsBackend,
	} {
		if v != BackendMemory && v != BackendMongo {
			return fmt.Errorf("%s: unknown backend %q", name, v)
		}
	}
	return nil
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadFrom(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadFrom reads configuration through lookuper.
func LoadFrom(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
