// Package storage opens the backing stores selected by configuration: the
// repository backend and the submission lock.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"alumni-jobboard-backend/internal/config"
	"alumni-jobboard-backend/internal/lock"
	"alumni-jobboard-backend/internal/logger"
	"alumni-jobboard-backend/internal/repository"
	"alumni-jobboard-backend/internal/repository/memory"
	"alumni-jobboard-backend/internal/repository/postgres"
)

const lockPrefix = "jobboard:lock"

// Backend is the repository set for one storage type.
type Backend struct {
	Type          string
	Accounts      repository.AccountRepository
	Roles         repository.RoleRepository
	Verifications repository.VerificationRepository
	Jobs          repository.JobRepository
	Applications  repository.ApplicationRepository
	Notifications repository.NotificationRepository

	health  func(ctx context.Context) error
	closers []func() error
}

func (b *Backend) Health(ctx context.Context) error {
	return b.health(ctx)
}

// Close releases connections held by the backend.
func (b *Backend) Close() error {
	var errs []error
	for i := len(b.closers) - 1; i >= 0; i-- {
		errs = append(errs, b.closers[i]())
	}
	return errors.Join(errs...)
}

// Open connects the repository backend named by cfg.Storage.Type.
func Open(ctx context.Context, cfg *config.Config) (*Backend, error) {
	switch cfg.Storage.Type {
	case config.StorageMemory:
		logger.Info("Using in-memory storage")
		s := memory.NewStore()
		return &Backend{
			Type:          config.StorageMemory,
			Accounts:      s.AccountRepository,
			Roles:         s.RoleRepository,
			Verifications: s.VerificationRepository,
			Jobs:          s.JobRepository,
			Applications:  s.ApplicationRepository,
			Notifications: s.NotificationRepository,
			health:        s.Health,
		}, nil

	case config.StoragePostgres, "":
		return openPostgres(ctx, cfg)

	default:
		return nil, fmt.Errorf("unsupported storage type %q", cfg.Storage.Type)
	}
}

func openPostgres(ctx context.Context, cfg *config.Config) (*Backend, error) {
	logger.Debug("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if cfg.Database.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxOpenConns / 2)
	}
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	logger.Info("Database connection established")

	s := postgres.NewStore(db)
	if cfg.Database.Migrate {
		if err := s.Migrate(ctx); err != nil {
			db.Close()
			return nil, err
		}
		logger.Info("Database schema applied")
	}

	return &Backend{
		Type:          config.StoragePostgres,
		Accounts:      s.AccountRepository,
		Roles:         s.RoleRepository,
		Verifications: s.VerificationRepository,
		Jobs:          s.JobRepository,
		Applications:  s.ApplicationRepository,
		Notifications: s.NotificationRepository,
		health:        s.Health,
		closers:       []func() error{db.Close},
	}, nil
}

// OpenLocker returns the per-(job, applicant) submission lock. A Redis URL
// selects the distributed lock; otherwise locking is process-local.
func OpenLocker(ctx context.Context, cfg *config.Config) (lock.Locker, func() error, error) {
	if cfg.Redis.URL == "" {
		logger.Info("Using in-process submission lock")
		return lock.NewKeyedMutex(), func() error { return nil }, nil
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	logger.Info("Using redis submission lock", "addr", opts.Addr)

	ttl := time.Duration(cfg.Redis.LockTTLSeconds) * time.Second
	return lock.NewRedisLocker(client, lockPrefix, ttl), client.Close, nil
}
