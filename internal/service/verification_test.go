package service

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alumni-jobboard-backend/internal/domain"
)

func TestVerificationService_GetStatus(t *testing.T) {
	f := newFixture(t)
	fresh := f.account("acc-new", domain.RoleNone, "")

	status, err := f.verification.GetStatus(f.ctx, fresh)
	require.NoError(t, err)
	assert.Equal(t, domain.VerificationPending, status)
	assert.NotEqual(t, domain.VerificationApproved, status)

	_, err = f.verification.GetProfile(f.ctx, fresh)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestVerificationService_SetStatus(t *testing.T) {
	t.Run("AdminSetsStatusWithoutTouchingRole", func(t *testing.T) {
		f := newFixture(t)
		z := f.account("acc-z", domain.RoleAdmin, domain.VerificationApproved)
		x := f.account("acc-x", domain.RoleEmployer, domain.VerificationPending)

		require.NoError(t, f.verification.SetStatus(f.ctx, z, x, domain.VerificationRejected))

		status, _ := f.verification.GetStatus(f.ctx, x)
		assert.Equal(t, domain.VerificationRejected, status)
		role, _ := f.roles.GetEffectiveRole(f.ctx, x)
		assert.Equal(t, domain.RoleEmployer, role)
		assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.VerificationChanges.WithLabelValues("rejected")))
	})

	t.Run("NonAdmin", func(t *testing.T) {
		f := newFixture(t)
		x := f.account("acc-x", domain.RoleAlumni, domain.VerificationPending)

		err := f.verification.SetStatus(f.ctx, x, x, domain.VerificationApproved)
		assert.True(t, errors.Is(err, domain.ErrNotAdmin))
		status, _ := f.verification.GetStatus(f.ctx, x)
		assert.Equal(t, domain.VerificationPending, status)
	})

	t.Run("InvalidStatusAndMissingProfile", func(t *testing.T) {
		f := newFixture(t)
		z := f.account("acc-z", domain.RoleAdmin, domain.VerificationApproved)
		noProfile := f.account("acc-n", domain.RoleNone, "")

		assert.True(t, errors.Is(f.verification.SetStatus(f.ctx, z, noProfile, "verified"), domain.ErrInvalidInput))
		assert.True(t, errors.Is(f.verification.SetStatus(f.ctx, z, noProfile, domain.VerificationApproved), domain.ErrNotFound))
	})
}
