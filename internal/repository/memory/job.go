package memory

import (
	"context"
	"sort"
	"time"

	"alumni-jobboard-backend/internal/domain"
	"alumni-jobboard-backend/internal/repository"
)

type jobRepository struct {
	*state
}

func (r *jobRepository) Create(_ context.Context, j *domain.JobPosting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextJobID++
	now := time.Now().UTC()
	j.ID = r.nextJobID
	j.CreatedAt = now
	j.UpdatedAt = now
	r.jobs[j.ID] = *j
	return nil
}

func (r *jobRepository) GetByID(_ context.Context, id int32) (*domain.JobPosting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if j, ok := r.jobs[id]; ok {
		return &j, nil
	}
	return nil, repository.ErrNotFound
}

func (r *jobRepository) Update(_ context.Context, j *domain.JobPosting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.jobs[j.ID]
	if !ok {
		return repository.ErrNotFound
	}
	j.OwnerID = cur.OwnerID
	j.CreatedAt = cur.CreatedAt
	j.UpdatedAt = time.Now().UTC()
	r.jobs[j.ID] = *j
	return nil
}

func (r *jobRepository) Delete(_ context.Context, id int32) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.jobs, id)
	for appID, a := range r.apps {
		if a.JobID == id {
			delete(r.apps, appID)
			delete(r.appKeys, appKey{a.JobID, a.ApplicantID})
		}
	}
	return nil
}

func (r *jobRepository) ListActive(_ context.Context, limit, offset int32) ([]domain.JobPosting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var jobs []domain.JobPosting
	for _, j := range r.jobs {
		if j.IsActive {
			jobs = append(jobs, j)
		}
	}
	sort.Slice(jobs, func(a, b int) bool {
		if jobs[a].CreatedAt.Equal(jobs[b].CreatedAt) {
			return jobs[a].ID > jobs[b].ID
		}
		return jobs[a].CreatedAt.After(jobs[b].CreatedAt)
	})
	return page(jobs, limit, offset), nil
}

func (r *jobRepository) CountActive(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, j := range r.jobs {
		if j.IsActive {
			n++
		}
	}
	return n, nil
}

func page[T any](items []T, limit, offset int32) []T {
	if offset < 0 {
		offset = 0
	}
	if int(offset) >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && int(limit) < len(items) {
		items = items[:limit]
	}
	return items
}
