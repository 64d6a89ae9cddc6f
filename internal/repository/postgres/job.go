package postgres

import (
	"context"
	"database/sql"
	"time"

	"alumni-jobboard-backend/internal/domain"
	"alumni-jobboard-backend/internal/repository"
)

type jobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) repository.JobRepository {
	return &jobRepository{db: db}
}

const jobColumns = `id, owner_id, title, company, location, type, description, is_active, created_at, updated_at`

func (r *jobRepository) Create(ctx context.Context, j *domain.JobPosting) error {
	query := `INSERT INTO job_postings (owner_id, title, company, location, type, description, is_active, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	now := time.Now().UTC()
	j.CreatedAt = now
	j.UpdatedAt = now
	err := r.db.QueryRowContext(ctx, query, j.OwnerID, j.Title, j.Company, j.Location, j.Type, j.Description, j.IsActive, j.CreatedAt, j.UpdatedAt).Scan(&j.ID)
	return mapError(err)
}

func (r *jobRepository) GetByID(ctx context.Context, id int32) (*domain.JobPosting, error) {
	query := `SELECT ` + jobColumns + ` FROM job_postings WHERE id = $1`
	j, err := scanJob(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError(err)
	}
	return j, nil
}

func (r *jobRepository) Update(ctx context.Context, j *domain.JobPosting) error {
	query := `UPDATE job_postings SET title=$1, company=$2, location=$3, type=$4, description=$5, is_active=$6, updated_at=$7 WHERE id=$8`
	j.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, query, j.Title, j.Company, j.Location, j.Type, j.Description, j.IsActive, j.UpdatedAt, j.ID)
	if err != nil {
		return mapError(err)
	}
	return requireRow(result)
}

func (r *jobRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM job_postings WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	return requireRow(result)
}

func (r *jobRepository) ListActive(ctx context.Context, limit, offset int32) ([]domain.JobPosting, error) {
	query := `SELECT ` + jobColumns + ` FROM job_postings WHERE is_active = TRUE ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var jobs []domain.JobPosting
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, mapError(err)
		}
		jobs = append(jobs, *j)
	}
	return jobs, mapError(rows.Err())
}

func (r *jobRepository) CountActive(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM job_postings WHERE is_active = TRUE`).Scan(&n)
	return n, mapError(err)
}

func scanJob(row scanner) (*domain.JobPosting, error) {
	j := &domain.JobPosting{}
	err := row.Scan(&j.ID, &j.OwnerID, &j.Title, &j.Company, &j.Location, &j.Type, &j.Description, &j.IsActive, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return j, nil
}

func requireRow(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return mapError(err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}
