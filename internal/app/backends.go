// Package app opens the configured storage backends and assembles the
// console and upstream servers from them.
package app

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	gomongo "go.mongodb.org/mongo-driver/mongo"

	"github.com/buhgalterija/backoffice/internal/api/handler"
	"github.com/buhgalterija/backoffice/internal/core/ports"
	"github.com/buhgalterija/backoffice/internal/infrastructure/db/memory"
	"github.com/buhgalterija/backoffice/internal/infrastructure/db/mongo"
	"github.com/buhgalterija/backoffice/internal/infrastructure/db/redis"
	"github.com/buhgalterija/backoffice/internal/pkg/config"
)

// Backends holds the open database connections. Fields are nil for backends
// the configuration does not use.
type Backends struct {
	cfg *config.Config
	log zerolog.Logger

	mongoClient *gomongo.Client
	mongoDB     *gomongo.Database
	redisClient *goredis.Client
}

// Open connects to every backend the configuration selects.
// withSession is false for processes that keep no session.
func Open(ctx context.Context, cfg *config.Config, withSession bool, log zerolog.Logger) (*Backends, error) {
	b := &Backends{cfg: cfg, log: log}

	needsMongo := cfg.Catalog.Backend == config.BackendMongo ||
		cfg.Upstream.AccountsBackend == config.BackendMongo
	if withSession {
		needsMongo = cfg.NeedsMongo()
	}
	if needsMongo {
		client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		b.mongoClient, b.mongoDB = client, db
		log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")
	}

	if withSession && cfg.Session.Storage == config.BackendRedis {
		client, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			b.Close(ctx)
			return nil, err
		}
		b.redisClient = client
		log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")
	}

	return b, nil
}

// Close releases every open connection.
func (b *Backends) Close(ctx context.Context) {
	if b.redisClient != nil {
		if err := b.redisClient.Close(); err != nil {
			b.log.Warn().Err(err).Msg("redis close failed")
		}
	}
	if b.mongoClient != nil {
		if err := b.mongoClient.Disconnect(ctx); err != nil {
			b.log.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}
}

// Health lists the readiness checks for the open connections.
func (b *Backends) Health() map[string]handler.Pinger {
	deps := make(map[string]handler.Pinger)
	if b.mongoDB != nil {
		deps["mongodb"] = mongo.NewPinger(b.mongoDB)
	}
	if b.redisClient != nil {
		deps["redis"] = redis.NewKVStore(b.redisClient, b.cfg.Redis.KeyPrefix)
	}
	return deps
}

// SessionStorage returns the key/value store behind the session.
func (b *Backends) SessionStorage() (ports.KeyValueStore, error) {
	switch b.cfg.Session.Storage {
	case config.BackendRedis:
		if b.redisClient == nil {
			return nil, errors.New("session storage: redis is not connected")
		}
		return redis.NewKVStore(b.redisClient, b.cfg.Redis.KeyPrefix), nil
	case config.BackendMongo:
		if b.mongoDB == nil {
			return nil, errors.New("session storage: mongodb is not connected")
		}
		return mongo.NewKVStore(b.mongoDB), nil
	default:
		b.log.Warn().Msg("session storage is in memory; the session will not survive a restart")
		return memory.NewKVStore(), nil
	}
}

// Catalog returns the back-office records. The mongo catalog is seeded with
// the demo data set when its collections are empty.
func (b *Backends) Catalog(ctx context.Context) (ports.Catalog, error) {
	if b.cfg.Catalog.Backend != config.BackendMongo {
		return memory.NewCatalog(memory.DemoDataset()), nil
	}

	repo := mongo.NewCatalogRepository(b.mongoDB)
	if err := repo.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	if err := repo.Seed(ctx, memory.DemoDataset()); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return repo, nil
}

// Accounts returns the upstream API's account repository.
func (b *Backends) Accounts(ctx context.Context) (ports.AccountRepository, error) {
	if b.cfg.Upstream.AccountsBackend != config.BackendMongo {
		return memory.NewAccountRepository(), nil
	}

	repo := mongo.NewAccountRepository(b.mongoDB)
	if err := repo.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("accounts: %w", err)
	}
	return repo, nil
}
