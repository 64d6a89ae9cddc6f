package service

import (
	"context"
	"errors"

	"alumni-jobboard-backend/internal/authz"
	"alumni-jobboard-backend/internal/domain"
	"alumni-jobboard-backend/internal/logger"
	"alumni-jobboard-backend/internal/metrics"
	"alumni-jobboard-backend/internal/repository"
)

// Gate builds authorization requests from a snapshot read fresh from the
// role and verification stores on every call.
type Gate struct {
	roleRepo    repository.RoleRepository
	profileRepo repository.VerificationRepository
	metrics     *metrics.Metrics
}

func NewGate(roleRepo repository.RoleRepository, profileRepo repository.VerificationRepository, m *metrics.Metrics) *Gate {
	return &Gate{roleRepo: roleRepo, profileRepo: profileRepo, metrics: m}
}

// Snapshot returns the caller's current role and verification status. An
// anonymous caller has no role and a pending status.
func (g *Gate) Snapshot(ctx context.Context, callerID string) (domain.Role, domain.VerificationStatus, error) {
	if callerID == "" {
		return domain.RoleNone, domain.VerificationPending, nil
	}

	role := domain.RoleNone
	assignment, err := g.roleRepo.Latest(ctx, callerID)
	switch {
	case err == nil:
		role = assignment.Role
	case !errors.Is(err, repository.ErrNotFound):
		return "", "", domain.NewError(domain.KindStoreUnavailable, "failed to read role", err)
	}

	status := domain.VerificationPending
	profile, err := g.profileRepo.GetByAccountID(ctx, callerID)
	switch {
	case err == nil:
		status = profile.Status
	case !errors.Is(err, repository.ErrNotFound):
		return "", "", domain.NewError(domain.KindStoreUnavailable, "failed to read verification status", err)
	}

	return role, status, nil
}

// Check authorizes action for callerID against a resource owned by ownerID.
func (g *Gate) Check(ctx context.Context, callerID string, action authz.Action, ownerID string) error {
	role, status, err := g.Snapshot(ctx, callerID)
	if err != nil {
		return err
	}

	d := authz.Decide(authz.Request{
		CallerID:           callerID,
		CallerRole:         role,
		CallerVerification: status,
		Action:             action,
		ResourceOwnerID:    ownerID,
	})

	outcome := "allow"
	if !d.Allowed {
		outcome = string(d.Reason)
		logger.WarnContext(ctx, "authorization denied",
			"action", action, "caller", callerID, "role", role, "verification", status, "reason", d.Reason)
	}
	g.metrics.IncrementAuthzDecision(string(action), outcome)
	return d.Err(action)
}
