package service

import (
	"context"
	"strings"

	"alumni-jobboard-backend/internal/authz"
	"alumni-jobboard-backend/internal/domain"
	"alumni-jobboard-backend/internal/logger"
	"alumni-jobboard-backend/internal/repository"
)

type jobService struct {
	jobRepo repository.JobRepository
	gate    *Gate
}

func NewJobService(jobRepo repository.JobRepository, gate *Gate) JobService {
	return &jobService{jobRepo: jobRepo, gate: gate}
}

func validateJob(job *domain.JobPosting) error {
	job.Title = strings.TrimSpace(job.Title)
	job.Company = strings.TrimSpace(job.Company)
	if job.Title == "" {
		return invalidInput("title is required")
	}
	if job.Company == "" {
		return invalidInput("company is required")
	}
	return nil
}

// Create publishes a new active posting owned by the caller.
func (s *jobService) Create(ctx context.Context, actingID string, job *domain.JobPosting) error {
	if err := s.gate.Check(ctx, actingID, authz.ActionCreatePosting, ""); err != nil {
		return err
	}
	if err := validateJob(job); err != nil {
		return err
	}
	job.OwnerID = actingID
	job.IsActive = true
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return storeError(err, "failed to create job")
	}
	logger.InfoContext(ctx, "job posted", "jobID", job.ID, "ownerID", actingID)
	return nil
}

// Update replaces the editable fields. Owner and active flag are kept.
func (s *jobService) Update(ctx context.Context, actingID string, job *domain.JobPosting) error {
	existing, err := s.jobRepo.GetByID(ctx, job.ID)
	if err != nil {
		return storeError(err, "failed to get job")
	}
	if err := s.gate.Check(ctx, actingID, authz.ActionEditPosting, existing.OwnerID); err != nil {
		return err
	}
	if err := validateJob(job); err != nil {
		return err
	}

	existing.Title = job.Title
	existing.Company = job.Company
	existing.Location = job.Location
	existing.Type = job.Type
	existing.Description = job.Description
	if err := s.jobRepo.Update(ctx, existing); err != nil {
		return storeError(err, "failed to update job")
	}
	*job = *existing
	return nil
}

// SetActive closes or reopens a posting. Closed postings reject new applications.
func (s *jobService) SetActive(ctx context.Context, actingID string, jobID int32, active bool) (*domain.JobPosting, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, storeError(err, "failed to get job")
	}
	if err := s.gate.Check(ctx, actingID, authz.ActionEditPosting, job.OwnerID); err != nil {
		return nil, err
	}
	if job.IsActive == active {
		return job, nil
	}
	job.IsActive = active
	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, storeError(err, "failed to update job")
	}
	return job, nil
}

// Delete removes a posting and its applications. Owners delete their own
// postings; removing someone else's requires the admin role.
func (s *jobService) Delete(ctx context.Context, actingID string, jobID int32) error {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return storeError(err, "failed to get job")
	}

	action := authz.ActionDeletePosting
	if actingID != job.OwnerID {
		action = authz.ActionDeleteAnyPosting
	}
	if err := s.gate.Check(ctx, actingID, action, job.OwnerID); err != nil {
		return err
	}

	if err := s.jobRepo.Delete(ctx, jobID); err != nil {
		return storeError(err, "failed to delete job")
	}
	logger.InfoContext(ctx, "job deleted", "jobID", jobID, "by", actingID)
	return nil
}

func (s *jobService) Get(ctx context.Context, actingID string, jobID int32) (*domain.JobPosting, error) {
	if err := s.gate.Check(ctx, actingID, authz.ActionBrowseJobs, ""); err != nil {
		return nil, err
	}
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, storeError(err, "failed to get job")
	}
	return job, nil
}

func (s *jobService) ListActive(ctx context.Context, actingID string, page, pageSize int32) ([]domain.JobPosting, int, error) {
	if err := s.gate.Check(ctx, actingID, authz.ActionBrowseJobs, ""); err != nil {
		return nil, 0, err
	}
	limit, offset := pageBounds(page, pageSize)
	jobs, err := s.jobRepo.ListActive(ctx, limit, offset)
	if err != nil {
		return nil, 0, storeError(err, "failed to list jobs")
	}
	total, err := s.jobRepo.CountActive(ctx)
	if err != nil {
		return nil, 0, storeError(err, "failed to count jobs")
	}
	return jobs, total, nil
}
