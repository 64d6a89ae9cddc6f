package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"alumni-jobboard-backend/internal/domain"
	"alumni-jobboard-backend/internal/repository"
)

type verificationRepository struct {
	*state
}

func (r *verificationRepository) Create(_ context.Context, p *domain.VerificationProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[p.AccountID]; ok {
		return fmt.Errorf("%w: verification_profiles_pkey", repository.ErrConflict)
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	r.profiles[p.AccountID] = *p
	return nil
}

func (r *verificationRepository) GetByAccountID(_ context.Context, accountID string) (*domain.VerificationProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.profiles[accountID]; ok {
		return &p, nil
	}
	return nil, repository.ErrNotFound
}

func (r *verificationRepository) UpdateStatus(_ context.Context, accountID string, status domain.VerificationStatus, reviewedBy string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[accountID]
	if !ok {
		return repository.ErrNotFound
	}
	now := time.Now().UTC()
	p.Status = status
	p.ReviewedBy = &reviewedBy
	p.ReviewedAt = &now
	p.UpdatedAt = now
	r.profiles[accountID] = p
	return nil
}

func (r *verificationRepository) ListByStatus(_ context.Context, status domain.VerificationStatus) ([]domain.VerificationProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(p domain.VerificationProfile) bool { return p.Status == status }), nil
}

func (r *verificationRepository) List(_ context.Context) ([]domain.VerificationProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(domain.VerificationProfile) bool { return true }), nil
}

func (r *verificationRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.profiles), nil
}

func (r *verificationRepository) filter(keep func(domain.VerificationProfile) bool) []domain.VerificationProfile {
	var out []domain.VerificationProfile
	for _, p := range r.profiles {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].AccountID < out[j].AccountID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
