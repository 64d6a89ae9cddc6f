package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"alumni-jobboard-backend/internal/repository"

	"github.com/lib/pq"
)

const uniqueViolation = pq.ErrorCode("23505")

type Store struct {
	db *sql.DB
	repository.AccountRepository
	repository.RoleRepository
	repository.VerificationRepository
	repository.JobRepository
	repository.ApplicationRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		AccountRepository:      NewAccountRepository(db),
		RoleRepository:         NewRoleRepository(db),
		VerificationRepository: NewVerificationRepository(db),
		JobRepository:          NewJobRepository(db),
		ApplicationRepository:  NewApplicationRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}

// Migrate creates the schema if it does not exist yet.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

func (s *Store) Health(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// mapError translates driver errors into repository sentinels.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", repository.ErrConflict, pqErr.Constraint)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %v", repository.ErrUnavailable, err)
}
