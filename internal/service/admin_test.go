package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"alumni-jobboard-backend/internal/domain"
)

func TestAdminService_ApproveIsIdempotent(t *testing.T) {
	f := newFixture(t)
	z := f.account("acc-z", domain.RoleAdmin, domain.VerificationApproved)
	x := f.account("acc-x", domain.RoleAlumni, domain.VerificationPending)

	require.NoError(t, f.admin.Approve(f.ctx, z, x))
	require.NoError(t, f.admin.Approve(f.ctx, z, x))

	status, err := f.verification.GetStatus(f.ctx, x)
	require.NoError(t, err)
	assert.Equal(t, domain.VerificationApproved, status)

	p, _ := f.verification.GetProfile(f.ctx, x)
	require.NotNil(t, p.ReviewedBy)
	assert.Equal(t, z, *p.ReviewedBy)
	assert.NotNil(t, p.ReviewedAt)

	// Only the first call changed anything.
	notes := f.notifications(x)
	require.Len(t, notes, 1)
	assert.Equal(t, NoteVerificationChanged, notes[0].Attributes[AttrType])
}

func TestAdminService_NoWriteWhenUnchanged(t *testing.T) {
	ctx := context.Background()
	roleRepo, profileRepo, noteRepo := new(MockRoleRepo), new(MockVerificationRepo), new(MockNotificationRepo)
	roleRepo.On("Latest", mock.Anything, "acc-z").Return(&domain.RoleAssignment{Role: domain.RoleAdmin}, nil)
	profileRepo.On("GetByAccountID", mock.Anything, "acc-z").Return(&domain.VerificationProfile{Status: domain.VerificationApproved}, nil)
	profileRepo.On("GetByAccountID", mock.Anything, "acc-x").Return(&domain.VerificationProfile{AccountID: "acc-x", Status: domain.VerificationRejected}, nil)

	svc := NewAdminService(profileRepo, roleRepo, NewGate(roleRepo, profileRepo, nil), NewNotificationService(noteRepo), nil)
	require.NoError(t, svc.Reject(ctx, "acc-z", "acc-x"))

	profileRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	noteRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAdminService_RejectDoesNotCascade(t *testing.T) {
	f := newFixture(t)
	z := f.account("acc-z", domain.RoleAdmin, domain.VerificationApproved)
	y := f.account("acc-y", domain.RoleEmployer, domain.VerificationApproved)
	x := f.account("acc-x", domain.RoleAlumni, domain.VerificationApproved)
	job := f.job(y, true)
	app := f.application(job.ID, x)

	require.NoError(t, f.admin.Reject(f.ctx, z, y))
	require.NoError(t, f.admin.Reject(f.ctx, z, x))

	stillActive, err := f.store.JobRepository.GetByID(f.ctx, job.ID)
	require.NoError(t, err)
	assert.True(t, stillActive.IsActive)
	stored, err := f.store.ApplicationRepository.GetByID(f.ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusSubmitted, stored.Status)

	// The rejected employer can no longer post.
	err = f.jobs.Create(f.ctx, y, &domain.JobPosting{Title: "Another", Company: "Acme"})
	assert.True(t, errors.Is(err, domain.ErrNotVerified))
}

func TestAdminService_RequiresAdmin(t *testing.T) {
	f := newFixture(t)
	x := f.account("acc-x", domain.RoleAlumni, domain.VerificationApproved)
	y := f.account("acc-y", domain.RoleAlumni, domain.VerificationPending)

	assert.True(t, errors.Is(f.admin.Approve(f.ctx, x, y), domain.ErrNotAdmin))
	assert.True(t, errors.Is(f.admin.Reject(f.ctx, x, y), domain.ErrNotAdmin))
	_, err := f.admin.ListMembers(f.ctx, x)
	assert.True(t, errors.Is(err, domain.ErrNotAdmin))
	_, err = f.admin.ListVerifications(f.ctx, x, "")
	assert.True(t, errors.Is(err, domain.ErrNotAdmin))

	status, _ := f.verification.GetStatus(f.ctx, y)
	assert.Equal(t, domain.VerificationPending, status)
}

func TestAdminService_ApproveUnknownTarget(t *testing.T) {
	f := newFixture(t)
	z := f.account("acc-z", domain.RoleAdmin, domain.VerificationApproved)

	assert.True(t, errors.Is(f.admin.Approve(f.ctx, z, "ghost"), domain.ErrNotFound))
}

func TestAdminService_Lists(t *testing.T) {
	f := newFixture(t)
	z := f.account("acc-z", domain.RoleAdmin, domain.VerificationApproved)
	f.account("acc-x", domain.RoleNone, domain.VerificationPending)
	f.account("acc-y", domain.RoleEmployer, domain.VerificationRejected)

	pending, err := f.admin.ListVerifications(f.ctx, z, domain.VerificationPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "acc-x", pending[0].AccountID)

	_, err = f.admin.ListVerifications(f.ctx, z, "unknown")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	members, err := f.admin.ListMembers(f.ctx, z)
	require.NoError(t, err)
	require.Len(t, members, 3)
	roles := map[string]domain.Role{}
	for _, m := range members {
		roles[m.Profile.AccountID] = m.Role
	}
	assert.Equal(t, domain.RoleAdmin, roles["acc-z"])
	assert.Equal(t, domain.RoleAlumni, roles["acc-x"])
	assert.Equal(t, domain.RoleEmployer, roles["acc-y"])
}
