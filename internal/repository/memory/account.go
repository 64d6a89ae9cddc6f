package memory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"alumni-jobboard-backend/internal/domain"
	"alumni-jobboard-backend/internal/repository"
)

type accountRepository struct {
	*state
}

func (r *accountRepository) Create(_ context.Context, a *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := strings.ToLower(a.Email)
	if _, ok := r.emails[email]; ok {
		return fmt.Errorf("%w: accounts_email_key", repository.ErrConflict)
	}
	if _, ok := r.accounts[a.ID]; ok {
		return fmt.Errorf("%w: accounts_pkey", repository.ErrConflict)
	}
	a.CreatedAt = time.Now().UTC()
	r.accounts[a.ID] = *a
	r.emails[email] = a.ID
	return nil
}

func (r *accountRepository) GetByID(_ context.Context, id string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if a, ok := r.accounts[id]; ok {
		return &a, nil
	}
	return nil, repository.ErrNotFound
}

func (r *accountRepository) GetByEmail(_ context.Context, email string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.emails[strings.ToLower(email)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	a := r.accounts[id]
	return &a, nil
}
