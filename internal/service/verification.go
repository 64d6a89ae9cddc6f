package service

import (
	"context"
	"errors"
	"fmt"

	"alumni-jobboard-backend/internal/authz"
	"alumni-jobboard-backend/internal/domain"
	"alumni-jobboard-backend/internal/metrics"
	"alumni-jobboard-backend/internal/repository"
)

type verificationService struct {
	profileRepo repository.VerificationRepository
	gate        *Gate
	metrics     *metrics.Metrics
}

func NewVerificationService(profileRepo repository.VerificationRepository, gate *Gate, m *metrics.Metrics) VerificationService {
	return &verificationService{profileRepo: profileRepo, gate: gate, metrics: m}
}

// GetStatus returns pending when the account has no verification profile.
func (s *verificationService) GetStatus(ctx context.Context, accountID string) (domain.VerificationStatus, error) {
	p, err := s.profileRepo.GetByAccountID(ctx, accountID)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.VerificationPending, nil
	}
	if err != nil {
		return "", storeError(err, "failed to read verification status")
	}
	return p.Status, nil
}

// SetStatus writes the status unconditionally. Roles are left untouched.
func (s *verificationService) SetStatus(ctx context.Context, actingID, targetID string, status domain.VerificationStatus) error {
	if err := s.gate.Check(ctx, actingID, authz.ActionManageVerification, ""); err != nil {
		return err
	}
	if !status.Valid() {
		return invalidInput(fmt.Sprintf("unknown verification status %q", status))
	}
	if err := s.profileRepo.UpdateStatus(ctx, targetID, status, actingID); err != nil {
		return storeError(err, "failed to update verification status")
	}
	s.metrics.IncrementVerificationChange(string(status))
	return nil
}

func (s *verificationService) GetProfile(ctx context.Context, accountID string) (*domain.VerificationProfile, error) {
	p, err := s.profileRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, storeError(err, "failed to get verification profile")
	}
	return p, nil
}
