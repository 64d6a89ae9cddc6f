package service

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"alumni-jobboard-backend/internal/domain"
	"alumni-jobboard-backend/internal/lock"
	"alumni-jobboard-backend/internal/metrics"
	"alumni-jobboard-backend/internal/repository/memory"
)

// fixture wires every service over one in-memory store.
type fixture struct {
	t       *testing.T
	ctx     context.Context
	store   *memory.Store
	metrics *metrics.Metrics
	gate    *Gate

	notes        NotificationService
	roles        RoleService
	verification VerificationService
	admin        AdminService
	jobs         JobService
	apps         ApplicationService
	community    CommunityService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	m := metrics.New(prometheus.NewRegistry())
	gate := NewGate(store.RoleRepository, store.VerificationRepository, m)
	notes := NewNotificationService(store.NotificationRepository)

	return &fixture{
		t:            t,
		ctx:          context.Background(),
		store:        store,
		metrics:      m,
		gate:         gate,
		notes:        notes,
		roles:        NewRoleService(store.RoleRepository, store.AccountRepository, gate, notes),
		verification: NewVerificationService(store.VerificationRepository, gate, m),
		admin:        NewAdminService(store.VerificationRepository, store.RoleRepository, gate, notes, m),
		jobs:         NewJobService(store.JobRepository, gate),
		apps:         NewApplicationService(store.ApplicationRepository, store.JobRepository, store.VerificationRepository, lock.NewKeyedMutex(), gate, notes, m),
		community:    NewCommunityService(store.VerificationRepository, store.RoleRepository, store.JobRepository),
	}
}

// account creates an account with the given role and verification status.
// An empty role leaves the account without any assignment.
func (f *fixture) account(id string, role domain.Role, status domain.VerificationStatus) string {
	f.t.Helper()
	require.NoError(f.t, f.store.AccountRepository.Create(f.ctx, &domain.Account{ID: id, Email: id + "@example.com"}))
	if role != domain.RoleNone {
		require.NoError(f.t, f.store.RoleRepository.Append(f.ctx, &domain.RoleAssignment{AccountID: id, Role: role, AssignedBy: domain.SystemActor}))
	}
	if status != "" {
		require.NoError(f.t, f.store.VerificationRepository.Create(f.ctx, &domain.VerificationProfile{
			AccountID:   id,
			Status:      status,
			AccountType: domain.AccountTypeAlumni,
			FullName:    "Member " + id,
		}))
	}
	return id
}

func (f *fixture) job(ownerID string, active bool) *domain.JobPosting {
	f.t.Helper()
	j := &domain.JobPosting{OwnerID: ownerID, Title: "Backend Engineer", Company: "Acme", IsActive: active}
	require.NoError(f.t, f.store.JobRepository.Create(f.ctx, j))
	return j
}

func (f *fixture) application(jobID int32, applicantID string) *domain.JobApplication {
	f.t.Helper()
	a := &domain.JobApplication{JobID: jobID, ApplicantID: applicantID, Status: domain.ApplicationStatusSubmitted}
	require.NoError(f.t, f.store.ApplicationRepository.Create(f.ctx, a))
	return a
}

func (f *fixture) notifications(accountID string) []domain.Notification {
	f.t.Helper()
	notes, _, err := f.store.NotificationRepository.List(f.ctx, accountID, 100, 0)
	require.NoError(f.t, err)
	return notes
}
