package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alumni-jobboard-backend/internal/domain"
	"alumni-jobboard-backend/internal/repository"
	"alumni-jobboard-backend/internal/repository/postgres"
)

func TestJobRepository_Create(t *testing.T) {
	db, mock := newMock(t)
	repo := postgres.NewJobRepository(db)

	job := &domain.JobPosting{OwnerID: "acc-y", Title: "Backend Engineer", Company: "Acme", IsActive: true}
	mock.ExpectQuery("INSERT INTO job_postings").
		WithArgs("acc-y", "Backend Engineer", "Acme", "", "", "", true, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	require.NoError(t, repo.Create(context.Background(), job))
	assert.Equal(t, int32(7), job.ID)
}

func TestJobRepository_Delete(t *testing.T) {
	db, mock := newMock(t)
	repo := postgres.NewJobRepository(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM job_postings WHERE id = \\$1").
		WithArgs(int32(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.Delete(ctx, 7))

	mock.ExpectExec("DELETE FROM job_postings WHERE id = \\$1").
		WithArgs(int32(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.True(t, errors.Is(repo.Delete(ctx, 8), repository.ErrNotFound))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepository_CountActive(t *testing.T) {
	db, mock := newMock(t)
	repo := postgres.NewJobRepository(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM job_postings WHERE is_active = TRUE").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := repo.CountActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
