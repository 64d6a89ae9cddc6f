//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"alumni-jobboard-backend/internal/domain"
	"alumni-jobboard-backend/internal/repository"
	"alumni-jobboard-backend/internal/repository/postgres"
	"alumni-jobboard-backend/internal/testutil/containers"
)

type StoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *postgres.Store
}

func TestStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.store = postgres.NewStore(s.postgres.DB)
	s.Require().NoError(s.store.Migrate(context.Background()))
}

func (s *StoreSuite) SetupTest() {
	err := s.postgres.TruncateTables(context.Background(),
		"notifications", "job_applications", "job_postings", "verification_profiles", "role_assignments", "accounts")
	s.Require().NoError(err)
}

func (s *StoreSuite) newAccount(email string) *domain.Account {
	a := &domain.Account{ID: uuid.NewString(), Email: email, PasswordHash: "x"}
	s.Require().NoError(s.store.AccountRepository.Create(context.Background(), a))
	return a
}

func (s *StoreSuite) newJob(ownerID string) *domain.JobPosting {
	j := &domain.JobPosting{OwnerID: ownerID, Title: "Backend Engineer", Company: "Acme", IsActive: true}
	s.Require().NoError(s.store.JobRepository.Create(context.Background(), j))
	return j
}

// TestConcurrentDuplicateApplications verifies that the unique constraint
// admits exactly one application per (job, applicant) pair.
func (s *StoreSuite) TestConcurrentDuplicateApplications() {
	ctx := context.Background()
	owner := s.newAccount("owner@example.com")
	applicant := s.newAccount("ana@example.com")
	job := s.newJob(owner.ID)
	const goroutines = 50

	var wg sync.WaitGroup
	var successCount atomic.Int32
	var conflictCount atomic.Int32

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app := &domain.JobApplication{JobID: job.ID, ApplicantID: applicant.ID, Status: domain.ApplicationStatusSubmitted}
			err := s.store.ApplicationRepository.Create(ctx, app)
			if err == nil {
				successCount.Add(1)
			} else if errors.Is(err, repository.ErrConflict) {
				conflictCount.Add(1)
			}
		}()
	}
	wg.Wait()

	s.Equal(int32(1), successCount.Load(), "exactly one insert should succeed")
	s.Equal(int32(goroutines-1), conflictCount.Load(), "all others should conflict")

	apps, err := s.store.ApplicationRepository.ListByJob(ctx, job.ID)
	s.Require().NoError(err)
	s.Len(apps, 1)
}

// TestConcurrentDecisionsSingleWinner verifies the conditional status update
// lets only one of two racing decisions through.
func (s *StoreSuite) TestConcurrentDecisionsSingleWinner() {
	ctx := context.Background()
	owner := s.newAccount("owner@example.com")
	applicant := s.newAccount("ana@example.com")
	job := s.newJob(owner.ID)
	app := &domain.JobApplication{JobID: job.ID, ApplicantID: applicant.ID, Status: domain.ApplicationStatusSubmitted}
	s.Require().NoError(s.store.ApplicationRepository.Create(ctx, app))

	var wg sync.WaitGroup
	var successCount atomic.Int32
	var invalidCount atomic.Int32
	for _, to := range []domain.ApplicationStatus{domain.ApplicationStatusAccepted, domain.ApplicationStatusRejected} {
		wg.Add(1)
		go func(to domain.ApplicationStatus) {
			defer wg.Done()
			err := s.store.ApplicationRepository.UpdateStatusFrom(ctx, app.ID, domain.ApplicationStatusSubmitted, to)
			if err == nil {
				successCount.Add(1)
			} else if errors.Is(err, repository.ErrInvalidState) {
				invalidCount.Add(1)
			}
		}(to)
	}
	wg.Wait()

	s.Equal(int32(1), successCount.Load())
	s.Equal(int32(1), invalidCount.Load())
}

func (s *StoreSuite) TestLatestRoleWins() {
	ctx := context.Background()
	acc := s.newAccount("ana@example.com")

	_, err := s.store.RoleRepository.Latest(ctx, acc.ID)
	s.True(errors.Is(err, repository.ErrNotFound))

	for _, role := range []domain.Role{domain.RoleAlumni, domain.RoleEmployer, domain.RoleAdmin} {
		s.Require().NoError(s.store.RoleRepository.Append(ctx, &domain.RoleAssignment{AccountID: acc.ID, Role: role, AssignedBy: domain.SystemActor}))
	}

	latest, err := s.store.RoleRepository.Latest(ctx, acc.ID)
	s.Require().NoError(err)
	s.Equal(domain.RoleAdmin, latest.Role)

	counts, err := s.store.RoleRepository.CountLatestByRole(ctx)
	s.Require().NoError(err)
	s.Equal(1, counts[domain.RoleAdmin])
	s.Equal(0, counts[domain.RoleAlumni])
}

func (s *StoreSuite) TestLatestRoleIgnoresSkewedClock() {
	ctx := context.Background()
	acc := s.newAccount("skew@example.com")

	promotion := &domain.RoleAssignment{AccountID: acc.ID, Role: domain.RoleAdmin, AssignedBy: domain.SystemActor}
	s.Require().NoError(s.store.RoleRepository.Append(ctx, promotion))
	_, err := s.postgres.DB.ExecContext(ctx,
		`UPDATE role_assignments SET assigned_at = assigned_at + interval '1 hour' WHERE id = $1`, promotion.ID)
	s.Require().NoError(err)
	s.Require().NoError(s.store.RoleRepository.Append(ctx, &domain.RoleAssignment{AccountID: acc.ID, Role: domain.RoleAlumni, AssignedBy: domain.SystemActor}))

	latest, err := s.store.RoleRepository.Latest(ctx, acc.ID)
	s.Require().NoError(err)
	s.Equal(domain.RoleAlumni, latest.Role)

	admins, err := s.store.RoleRepository.ListLatestByRole(ctx, domain.RoleAdmin)
	s.Require().NoError(err)
	s.Empty(admins)
}

func (s *StoreSuite) TestDeleteJobCascadesApplications() {
	ctx := context.Background()
	owner := s.newAccount("owner@example.com")
	applicant := s.newAccount("ana@example.com")
	job := s.newJob(owner.ID)
	app := &domain.JobApplication{JobID: job.ID, ApplicantID: applicant.ID, Status: domain.ApplicationStatusSubmitted}
	s.Require().NoError(s.store.ApplicationRepository.Create(ctx, app))

	s.Require().NoError(s.store.JobRepository.Delete(ctx, job.ID))

	_, err := s.store.ApplicationRepository.GetByID(ctx, app.ID)
	s.True(errors.Is(err, repository.ErrNotFound))
}
