package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"alumni-jobboard-backend/internal/domain"
	"alumni-jobboard-backend/internal/repository"
)

type applicationRepository struct {
	*state
}

func (r *applicationRepository) Create(_ context.Context, a *domain.JobApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := appKey{a.JobID, a.ApplicantID}
	if _, ok := r.appKeys[key]; ok {
		return fmt.Errorf("%w: job_applications_job_applicant_key", repository.ErrConflict)
	}
	r.nextAppID++
	now := time.Now().UTC()
	a.ID = r.nextAppID
	a.CreatedAt = now
	a.UpdatedAt = now
	r.apps[a.ID] = *a
	r.appKeys[key] = a.ID
	return nil
}

func (r *applicationRepository) GetByID(_ context.Context, id int32) (*domain.JobApplication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if a, ok := r.apps[id]; ok {
		return &a, nil
	}
	return nil, repository.ErrNotFound
}

func (r *applicationRepository) GetByJobAndApplicant(_ context.Context, jobID int32, applicantID string) (*domain.JobApplication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.appKeys[appKey{jobID, applicantID}]
	if !ok {
		return nil, repository.ErrNotFound
	}
	a := r.apps[id]
	return &a, nil
}

func (r *applicationRepository) UpdateStatusFrom(_ context.Context, id int32, from, to domain.ApplicationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.apps[id]
	if !ok {
		return repository.ErrNotFound
	}
	if a.Status != from {
		return repository.ErrInvalidState
	}
	a.Status = to
	a.UpdatedAt = time.Now().UTC()
	r.apps[id] = a
	return nil
}

func (r *applicationRepository) ListByApplicant(_ context.Context, applicantID string) ([]domain.JobApplication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	apps := r.filter(func(a domain.JobApplication) bool { return a.ApplicantID == applicantID })
	sort.Slice(apps, func(i, j int) bool {
		if apps[i].CreatedAt.Equal(apps[j].CreatedAt) {
			return apps[i].ID > apps[j].ID
		}
		return apps[i].CreatedAt.After(apps[j].CreatedAt)
	})
	return apps, nil
}

func (r *applicationRepository) ListByJob(_ context.Context, jobID int32) ([]domain.JobApplication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	apps := r.filter(func(a domain.JobApplication) bool { return a.JobID == jobID })
	sort.Slice(apps, func(i, j int) bool {
		if apps[i].CreatedAt.Equal(apps[j].CreatedAt) {
			return apps[i].ID < apps[j].ID
		}
		return apps[i].CreatedAt.Before(apps[j].CreatedAt)
	})
	return apps, nil
}

func (r *applicationRepository) filter(keep func(domain.JobApplication) bool) []domain.JobApplication {
	var out []domain.JobApplication
	for _, a := range r.apps {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}
