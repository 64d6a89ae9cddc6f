// Package memory provides map-backed repositories for local runs and tests.
// All repositories of one Store share a single lock so cross-table rules
// (cascading deletes, the application uniqueness key) hold atomically.
package memory

import (
	"context"
	"sync"

	"alumni-jobboard-backend/internal/domain"
	"alumni-jobboard-backend/internal/repository"
)

type appKey struct {
	jobID       int32
	applicantID string
}

type state struct {
	mu sync.RWMutex

	accounts map[string]domain.Account
	emails   map[string]string
	roles    []domain.RoleAssignment
	profiles map[string]domain.VerificationProfile
	jobs     map[int32]domain.JobPosting
	apps     map[int32]domain.JobApplication
	appKeys  map[appKey]int32
	notes    map[int32]domain.Notification

	nextRoleID int64
	nextJobID  int32
	nextAppID  int32
	nextNoteID int32
}

type Store struct {
	repository.AccountRepository
	repository.RoleRepository
	repository.VerificationRepository
	repository.JobRepository
	repository.ApplicationRepository
	repository.NotificationRepository
}

func NewStore() *Store {
	s := &state{
		accounts: make(map[string]domain.Account),
		emails:   make(map[string]string),
		profiles: make(map[string]domain.VerificationProfile),
		jobs:     make(map[int32]domain.JobPosting),
		apps:     make(map[int32]domain.JobApplication),
		appKeys:  make(map[appKey]int32),
		notes:    make(map[int32]domain.Notification),
	}
	return &Store{
		AccountRepository:      &accountRepository{s},
		RoleRepository:         &roleRepository{s},
		VerificationRepository: &verificationRepository{s},
		JobRepository:          &jobRepository{s},
		ApplicationRepository:  &applicationRepository{s},
		NotificationRepository: &notificationRepository{s},
	}
}

func (s *Store) Health(_ context.Context) error {
	return nil
}
