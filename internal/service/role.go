package service

import (
	"context"
	"errors"
	"fmt"

	"alumni-jobboard-backend/internal/authz"
	"alumni-jobboard-backend/internal/domain"
	"alumni-jobboard-backend/internal/logger"
	"alumni-jobboard-backend/internal/repository"
)

type roleService struct {
	roleRepo    repository.RoleRepository
	accountRepo repository.AccountRepository
	gate        *Gate
	notifier    NotificationService
}

func NewRoleService(
	roleRepo repository.RoleRepository,
	accountRepo repository.AccountRepository,
	gate *Gate,
	notifier NotificationService,
) RoleService {
	return &roleService{
		roleRepo:    roleRepo,
		accountRepo: accountRepo,
		gate:        gate,
		notifier:    notifier,
	}
}

// GetEffectiveRole returns RoleNone when the account was never assigned a role.
func (s *roleService) GetEffectiveRole(ctx context.Context, accountID string) (domain.Role, error) {
	a, err := s.roleRepo.Latest(ctx, accountID)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.RoleNone, nil
	}
	if err != nil {
		return domain.RoleNone, storeError(err, "failed to read role")
	}
	return a.Role, nil
}

func (s *roleService) SetRole(ctx context.Context, actingID, targetID string, role domain.Role) error {
	logger.EnterMethod("roleService.SetRole", "actingID", actingID, "targetID", targetID, "role", role)

	if err := s.gate.Check(ctx, actingID, authz.ActionManageRoles, ""); err != nil {
		logger.ExitMethodWithError("roleService.SetRole", err, "reason", "not authorized")
		return err
	}
	if !role.Valid() {
		return invalidInput(fmt.Sprintf("unknown role %q", role))
	}
	if _, err := s.accountRepo.GetByID(ctx, targetID); err != nil {
		return storeError(err, "failed to get target account")
	}

	assignment := &domain.RoleAssignment{AccountID: targetID, Role: role, AssignedBy: actingID}
	if err := s.roleRepo.Append(ctx, assignment); err != nil {
		logger.ExitMethodWithError("roleService.SetRole", err, "targetID", targetID)
		return storeError(err, "failed to append role assignment")
	}

	s.notifier.Notify(ctx, targetID, "Role updated", fmt.Sprintf("Your role is now %s", role), map[string]string{
		AttrType:   NoteRoleChanged,
		AttrStatus: string(role),
	})

	logger.ExitMethod("roleService.SetRole", "assignmentID", assignment.ID)
	return nil
}
