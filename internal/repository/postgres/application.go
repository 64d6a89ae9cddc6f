package postgres

import (
	"context"
	"database/sql"
	"time"

	"alumni-jobboard-backend/internal/domain"
	"alumni-jobboard-backend/internal/logger"
	"alumni-jobboard-backend/internal/repository"
)

type applicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) repository.ApplicationRepository {
	return &applicationRepository{db: db}
}

const applicationColumns = `id, job_id, applicant_id, status, cover_letter, resume_reference, created_at, updated_at`

// Create relies on the job_applications_job_applicant_key constraint; a
// duplicate (job, applicant) pair surfaces as repository.ErrConflict.
func (r *applicationRepository) Create(ctx context.Context, a *domain.JobApplication) error {
	logger.EnterMethod("applicationRepository.Create", "jobID", a.JobID, "applicantID", a.ApplicantID)

	query := `INSERT INTO job_applications (job_id, applicant_id, status, cover_letter, resume_reference, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	logger.DatabaseCall("INSERT", "job_applications", "jobID", a.JobID)
	err := r.db.QueryRowContext(ctx, query, a.JobID, a.ApplicantID, a.Status, a.CoverLetter, a.ResumeReference, a.CreatedAt, a.UpdatedAt).Scan(&a.ID)
	logger.DatabaseResult("INSERT", 1, err, "applicationID", a.ID)
	if err != nil {
		logger.ExitMethodWithError("applicationRepository.Create", err, "jobID", a.JobID)
		return mapError(err)
	}
	logger.ExitMethod("applicationRepository.Create", "applicationID", a.ID)
	return nil
}

func (r *applicationRepository) GetByID(ctx context.Context, id int32) (*domain.JobApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM job_applications WHERE id = $1`
	a, err := scanApplication(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError(err)
	}
	return a, nil
}

func (r *applicationRepository) GetByJobAndApplicant(ctx context.Context, jobID int32, applicantID string) (*domain.JobApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM job_applications WHERE job_id = $1 AND applicant_id = $2`
	a, err := scanApplication(r.db.QueryRowContext(ctx, query, jobID, applicantID))
	if err != nil {
		return nil, mapError(err)
	}
	return a, nil
}

func (r *applicationRepository) UpdateStatusFrom(ctx context.Context, id int32, from, to domain.ApplicationStatus) error {
	query := `UPDATE job_applications SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`
	result, err := r.db.ExecContext(ctx, query, to, time.Now().UTC(), id, from)
	if err != nil {
		return mapError(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return mapError(err)
	}
	if rows == 1 {
		return nil
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM job_applications WHERE id = $1)`, id).Scan(&exists); err != nil {
		return mapError(err)
	}
	if !exists {
		return repository.ErrNotFound
	}
	return repository.ErrInvalidState
}

func (r *applicationRepository) ListByApplicant(ctx context.Context, applicantID string) ([]domain.JobApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM job_applications WHERE applicant_id = $1 ORDER BY created_at DESC, id DESC`
	return r.list(ctx, query, applicantID)
}

func (r *applicationRepository) ListByJob(ctx context.Context, jobID int32) ([]domain.JobApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM job_applications WHERE job_id = $1 ORDER BY created_at, id`
	return r.list(ctx, query, jobID)
}

func (r *applicationRepository) list(ctx context.Context, query string, args ...any) ([]domain.JobApplication, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var apps []domain.JobApplication
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, mapError(err)
		}
		apps = append(apps, *a)
	}
	return apps, mapError(rows.Err())
}

func scanApplication(row scanner) (*domain.JobApplication, error) {
	a := &domain.JobApplication{}
	err := row.Scan(&a.ID, &a.JobID, &a.ApplicantID, &a.Status, &a.CoverLetter, &a.ResumeReference, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}
