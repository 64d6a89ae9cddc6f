package memory

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"alumni-jobboard-backend/internal/domain"
	"alumni-jobboard-backend/internal/repository"
)

type StoreSuite struct {
	suite.Suite
	store *Store
	ctx   context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.store = NewStore()
	s.ctx = context.Background()
}

func (s *StoreSuite) TestAccounts() {
	s.Run("email is case insensitive", func() {
		a := &domain.Account{ID: "acc-1", Email: "Ana@Example.com"}
		s.Require().NoError(s.store.AccountRepository.Create(s.ctx, a))

		found, err := s.store.AccountRepository.GetByEmail(s.ctx, "ana@example.com")
		s.Require().NoError(err)
		s.Equal("acc-1", found.ID)

		err = s.store.AccountRepository.Create(s.ctx, &domain.Account{ID: "acc-2", Email: "ANA@example.com"})
		s.True(errors.Is(err, repository.ErrConflict))
	})

	s.Run("missing account", func() {
		_, err := s.store.AccountRepository.GetByID(s.ctx, "nope")
		s.True(errors.Is(err, repository.ErrNotFound))
	})
}

func (s *StoreSuite) TestRoles() {
	_, err := s.store.RoleRepository.Latest(s.ctx, "acc-1")
	s.True(errors.Is(err, repository.ErrNotFound))

	for _, role := range []domain.Role{domain.RoleAlumni, domain.RoleEmployer} {
		s.Require().NoError(s.store.RoleRepository.Append(s.ctx, &domain.RoleAssignment{AccountID: "acc-1", Role: role, AssignedBy: "acc-z"}))
	}
	s.Require().NoError(s.store.RoleRepository.Append(s.ctx, &domain.RoleAssignment{AccountID: "acc-2", Role: domain.RoleAlumni}))

	latest, err := s.store.RoleRepository.Latest(s.ctx, "acc-1")
	s.Require().NoError(err)
	s.Equal(domain.RoleEmployer, latest.Role)
	s.Equal("acc-z", latest.AssignedBy)

	employers, err := s.store.RoleRepository.ListLatestByRole(s.ctx, domain.RoleEmployer)
	s.Require().NoError(err)
	s.Equal([]string{"acc-1"}, employers)

	counts, err := s.store.RoleRepository.CountLatestByRole(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, counts[domain.RoleEmployer])
	s.Equal(1, counts[domain.RoleAlumni])
}

func (s *StoreSuite) TestRolesOrderedByInsertionNotClock() {
	roles := s.store.RoleRepository.(*roleRepository)
	s.Require().NoError(roles.Append(s.ctx, &domain.RoleAssignment{AccountID: "acc-1", Role: domain.RoleAdmin, AssignedBy: "acc-z"}))
	roles.roles[0].AssignedAt = roles.roles[0].AssignedAt.Add(time.Hour)
	s.Require().NoError(roles.Append(s.ctx, &domain.RoleAssignment{AccountID: "acc-1", Role: domain.RoleAlumni, AssignedBy: "acc-z"}))

	latest, err := roles.Latest(s.ctx, "acc-1")
	s.Require().NoError(err)
	s.Equal(domain.RoleAlumni, latest.Role)

	admins, err := roles.ListLatestByRole(s.ctx, domain.RoleAdmin)
	s.Require().NoError(err)
	s.Empty(admins)
}

func (s *StoreSuite) TestVerificationUpdateStatus() {
	err := s.store.VerificationRepository.UpdateStatus(s.ctx, "acc-1", domain.VerificationApproved, "acc-z")
	s.True(errors.Is(err, repository.ErrNotFound))

	p := &domain.VerificationProfile{AccountID: "acc-1", Status: domain.VerificationPending, AccountType: domain.AccountTypeAlumni}
	s.Require().NoError(s.store.VerificationRepository.Create(s.ctx, p))
	s.Require().NoError(s.store.VerificationRepository.UpdateStatus(s.ctx, "acc-1", domain.VerificationApproved, "acc-z"))

	got, err := s.store.VerificationRepository.GetByAccountID(s.ctx, "acc-1")
	s.Require().NoError(err)
	s.Equal(domain.VerificationApproved, got.Status)
	s.Require().NotNil(got.ReviewedBy)
	s.Equal("acc-z", *got.ReviewedBy)

	pending, err := s.store.VerificationRepository.ListByStatus(s.ctx, domain.VerificationPending)
	s.Require().NoError(err)
	s.Empty(pending)
}

func (s *StoreSuite) TestApplicationUniqueness() {
	job := &domain.JobPosting{OwnerID: "acc-y", Title: "Backend Engineer", IsActive: true}
	s.Require().NoError(s.store.JobRepository.Create(s.ctx, job))

	const goroutines = 50
	var wg sync.WaitGroup
	var successCount, conflictCount atomic.Int32
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.store.ApplicationRepository.Create(s.ctx, &domain.JobApplication{JobID: job.ID, ApplicantID: "acc-x", Status: domain.ApplicationStatusSubmitted})
			if err == nil {
				successCount.Add(1)
			} else if errors.Is(err, repository.ErrConflict) {
				conflictCount.Add(1)
			}
		}()
	}
	wg.Wait()

	s.Equal(int32(1), successCount.Load())
	s.Equal(int32(goroutines-1), conflictCount.Load())
}

func (s *StoreSuite) TestApplicationUpdateStatusFrom() {
	app := &domain.JobApplication{JobID: 1, ApplicantID: "acc-x", Status: domain.ApplicationStatusSubmitted}
	s.Require().NoError(s.store.ApplicationRepository.Create(s.ctx, app))

	s.Require().NoError(s.store.ApplicationRepository.UpdateStatusFrom(s.ctx, app.ID, domain.ApplicationStatusSubmitted, domain.ApplicationStatusAccepted))

	err := s.store.ApplicationRepository.UpdateStatusFrom(s.ctx, app.ID, domain.ApplicationStatusSubmitted, domain.ApplicationStatusRejected)
	s.True(errors.Is(err, repository.ErrInvalidState))

	err = s.store.ApplicationRepository.UpdateStatusFrom(s.ctx, 999, domain.ApplicationStatusSubmitted, domain.ApplicationStatusRejected)
	s.True(errors.Is(err, repository.ErrNotFound))

	got, err := s.store.ApplicationRepository.GetByID(s.ctx, app.ID)
	s.Require().NoError(err)
	s.Equal(domain.ApplicationStatusAccepted, got.Status)
}

func (s *StoreSuite) TestDeleteJobCascades() {
	job := &domain.JobPosting{OwnerID: "acc-y", Title: "Backend Engineer", IsActive: true}
	s.Require().NoError(s.store.JobRepository.Create(s.ctx, job))
	app := &domain.JobApplication{JobID: job.ID, ApplicantID: "acc-x", Status: domain.ApplicationStatusSubmitted}
	s.Require().NoError(s.store.ApplicationRepository.Create(s.ctx, app))

	s.Require().NoError(s.store.JobRepository.Delete(s.ctx, job.ID))

	_, err := s.store.ApplicationRepository.GetByID(s.ctx, app.ID)
	s.True(errors.Is(err, repository.ErrNotFound))
	_, err = s.store.ApplicationRepository.GetByJobAndApplicant(s.ctx, job.ID, "acc-x")
	s.True(errors.Is(err, repository.ErrNotFound))
	s.True(errors.Is(s.store.JobRepository.Delete(s.ctx, job.ID), repository.ErrNotFound))
}

func (s *StoreSuite) TestListActiveJobs() {
	for i, active := range []bool{true, false, true, true} {
		j := &domain.JobPosting{OwnerID: "acc-y", Title: string(rune('A' + i)), IsActive: active}
		s.Require().NoError(s.store.JobRepository.Create(s.ctx, j))
	}

	jobs, err := s.store.JobRepository.ListActive(s.ctx, 2, 0)
	s.Require().NoError(err)
	s.Len(jobs, 2)
	s.Equal("D", jobs[0].Title)

	rest, err := s.store.JobRepository.ListActive(s.ctx, 2, 2)
	s.Require().NoError(err)
	s.Len(rest, 1)
	s.Equal("A", rest[0].Title)

	n, err := s.store.JobRepository.CountActive(s.ctx)
	s.Require().NoError(err)
	s.Equal(3, n)
}

func (s *StoreSuite) TestNotifications() {
	n := &domain.Notification{AccountID: "acc-x", Title: "hello", Attributes: map[string]string{"k": "v"}}
	s.Require().NoError(s.store.NotificationRepository.Create(s.ctx, n))
	n.Attributes["k"] = "mutated"

	notes, total, err := s.store.NotificationRepository.List(s.ctx, "acc-x", 10, 0)
	s.Require().NoError(err)
	s.Equal(int32(1), total)
	s.Equal("v", notes[0].Attributes["k"])

	s.True(errors.Is(s.store.NotificationRepository.MarkAsRead(s.ctx, n.ID, "someone-else"), repository.ErrNotFound))
	s.Require().NoError(s.store.NotificationRepository.MarkAsRead(s.ctx, n.ID, "acc-x"))
}
