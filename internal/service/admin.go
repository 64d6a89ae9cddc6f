package service

import (
	"context"
	"errors"
	"fmt"

	"alumni-jobboard-backend/internal/authz"
	"alumni-jobboard-backend/internal/domain"
	"alumni-jobboard-backend/internal/logger"
	"alumni-jobboard-backend/internal/metrics"
	"alumni-jobboard-backend/internal/repository"
)

type adminService struct {
	profileRepo repository.VerificationRepository
	roleRepo    repository.RoleRepository
	gate        *Gate
	notifier    NotificationService
	metrics     *metrics.Metrics
}

func NewAdminService(
	profileRepo repository.VerificationRepository,
	roleRepo repository.RoleRepository,
	gate *Gate,
	notifier NotificationService,
	m *metrics.Metrics,
) AdminService {
	return &adminService{
		profileRepo: profileRepo,
		roleRepo:    roleRepo,
		gate:        gate,
		notifier:    notifier,
		metrics:     m,
	}
}

func (s *adminService) Approve(ctx context.Context, adminID, targetID string) error {
	return s.review(ctx, adminID, targetID, domain.VerificationApproved)
}

func (s *adminService) Reject(ctx context.Context, adminID, targetID string) error {
	return s.review(ctx, adminID, targetID, domain.VerificationRejected)
}

// review moves the target's profile to status. Reviewing an account that is
// already in status succeeds without writing or notifying. Existing postings
// and applications of the target are not touched.
func (s *adminService) review(ctx context.Context, adminID, targetID string, status domain.VerificationStatus) error {
	logger.EnterMethod("adminService.review", "adminID", adminID, "targetID", targetID, "status", status)

	if err := s.gate.Check(ctx, adminID, authz.ActionManageVerification, ""); err != nil {
		logger.ExitMethodWithError("adminService.review", err, "reason", "not authorized")
		return err
	}

	profile, err := s.profileRepo.GetByAccountID(ctx, targetID)
	if err != nil {
		logger.ExitMethodWithError("adminService.review", err, "targetID", targetID)
		return storeError(err, "failed to get verification profile")
	}
	if profile.Status == status {
		logger.ExitMethod("adminService.review", "targetID", targetID, "unchanged", true)
		return nil
	}

	if err := s.profileRepo.UpdateStatus(ctx, targetID, status, adminID); err != nil {
		logger.ExitMethodWithError("adminService.review", err, "targetID", targetID)
		return storeError(err, "failed to update verification status")
	}
	s.metrics.IncrementVerificationChange(string(status))

	title, message := "Account verified", "Your account has been verified. You can now post jobs and apply."
	if status == domain.VerificationRejected {
		title, message = "Verification rejected", "Your verification request was rejected."
	}
	s.notifier.Notify(ctx, targetID, title, message, map[string]string{
		AttrType:   NoteVerificationChanged,
		AttrStatus: string(status),
	})

	logger.InfoContext(ctx, "verification reviewed", "targetID", targetID, "status", status, "reviewedBy", adminID)
	logger.ExitMethod("adminService.review", "targetID", targetID)
	return nil
}

func (s *adminService) ListVerifications(ctx context.Context, adminID string, status domain.VerificationStatus) ([]domain.VerificationProfile, error) {
	if err := s.gate.Check(ctx, adminID, authz.ActionManageVerification, ""); err != nil {
		return nil, err
	}

	var (
		profiles []domain.VerificationProfile
		err      error
	)
	switch {
	case status == "":
		profiles, err = s.profileRepo.List(ctx)
	case status.Valid():
		profiles, err = s.profileRepo.ListByStatus(ctx, status)
	default:
		return nil, invalidInput(fmt.Sprintf("unknown verification status %q", status))
	}
	if err != nil {
		return nil, storeError(err, "failed to list verification profiles")
	}
	return profiles, nil
}

// ListMembers returns every profile with its effective role. Accounts with no
// role assignment are reported as alumni.
func (s *adminService) ListMembers(ctx context.Context, adminID string) ([]domain.Member, error) {
	if err := s.gate.Check(ctx, adminID, authz.ActionManageVerification, ""); err != nil {
		return nil, err
	}

	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		return nil, storeError(err, "failed to list verification profiles")
	}

	members := make([]domain.Member, 0, len(profiles))
	for _, p := range profiles {
		role := domain.RoleNone
		a, err := s.roleRepo.Latest(ctx, p.AccountID)
		switch {
		case err == nil:
			role = a.Role
		case !errors.Is(err, repository.ErrNotFound):
			return nil, storeError(err, "failed to read role")
		}
		members = append(members, domain.Member{Profile: p, Role: role.OrDefault()})
	}
	return members, nil
}
