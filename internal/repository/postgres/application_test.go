package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alumni-jobboard-backend/internal/domain"
	"alumni-jobboard-backend/internal/repository"
	"alumni-jobboard-backend/internal/repository/postgres"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

var applicationCols = []string{"id", "job_id", "applicant_id", "status", "cover_letter", "resume_reference", "created_at", "updated_at"}

func TestApplicationRepository_Create(t *testing.T) {
	db, mock := newMock(t)
	repo := postgres.NewApplicationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		app := &domain.JobApplication{JobID: 7, ApplicantID: "acc-x", Status: domain.ApplicationStatusSubmitted, CoverLetter: "hi"}
		mock.ExpectQuery("INSERT INTO job_applications").
			WithArgs(int32(7), "acc-x", domain.ApplicationStatusSubmitted, "hi", "", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

		err := repo.Create(ctx, app)
		require.NoError(t, err)
		assert.Equal(t, int32(42), app.ID)
	})

	t.Run("UniqueViolation", func(t *testing.T) {
		app := &domain.JobApplication{JobID: 7, ApplicantID: "acc-x", Status: domain.ApplicationStatusSubmitted}
		mock.ExpectQuery("INSERT INTO job_applications").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "job_applications_job_applicant_key"})

		err := repo.Create(ctx, app)
		assert.True(t, errors.Is(err, repository.ErrConflict))
	})

	t.Run("DriverFailure", func(t *testing.T) {
		app := &domain.JobApplication{JobID: 7, ApplicantID: "acc-x", Status: domain.ApplicationStatusSubmitted}
		mock.ExpectQuery("INSERT INTO job_applications").WillReturnError(errors.New("connection reset"))

		err := repo.Create(ctx, app)
		assert.True(t, errors.Is(err, repository.ErrUnavailable))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepository_GetByJobAndApplicant(t *testing.T) {
	db, mock := newMock(t)
	repo := postgres.NewApplicationRepository(db)
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery("SELECT (.+) FROM job_applications WHERE job_id = \\$1 AND applicant_id = \\$2").
			WithArgs(int32(7), "acc-x").
			WillReturnRows(sqlmock.NewRows(applicationCols).AddRow(42, 7, "acc-x", "submitted", "", "", now, now))

		app, err := repo.GetByJobAndApplicant(ctx, 7, "acc-x")
		require.NoError(t, err)
		assert.Equal(t, int32(42), app.ID)
		assert.Equal(t, domain.ApplicationStatusSubmitted, app.Status)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM job_applications WHERE job_id = \\$1 AND applicant_id = \\$2").
			WithArgs(int32(8), "acc-x").
			WillReturnError(sql.ErrNoRows)

		app, err := repo.GetByJobAndApplicant(ctx, 8, "acc-x")
		assert.Nil(t, app)
		assert.True(t, errors.Is(err, repository.ErrNotFound))
	})
}

func TestApplicationRepository_UpdateStatusFrom(t *testing.T) {
	db, mock := newMock(t)
	repo := postgres.NewApplicationRepository(db)
	ctx := context.Background()

	t.Run("Transitioned", func(t *testing.T) {
		mock.ExpectExec("UPDATE job_applications SET status = \\$1").
			WithArgs(domain.ApplicationStatusAccepted, sqlmock.AnyArg(), int32(42), domain.ApplicationStatusSubmitted).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatusFrom(ctx, 42, domain.ApplicationStatusSubmitted, domain.ApplicationStatusAccepted)
		assert.NoError(t, err)
	})

	t.Run("AlreadyDecided", func(t *testing.T) {
		mock.ExpectExec("UPDATE job_applications SET status = \\$1").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(int32(42)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		err := repo.UpdateStatusFrom(ctx, 42, domain.ApplicationStatusSubmitted, domain.ApplicationStatusRejected)
		assert.True(t, errors.Is(err, repository.ErrInvalidState))
	})

	t.Run("Missing", func(t *testing.T) {
		mock.ExpectExec("UPDATE job_applications SET status = \\$1").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(int32(99)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		err := repo.UpdateStatusFrom(ctx, 99, domain.ApplicationStatusSubmitted, domain.ApplicationStatusRejected)
		assert.True(t, errors.Is(err, repository.ErrNotFound))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepository_ListByApplicant(t *testing.T) {
	db, mock := newMock(t)
	repo := postgres.NewApplicationRepository(db)

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM job_applications WHERE applicant_id = \\$1").
		WithArgs("acc-x").
		WillReturnRows(sqlmock.NewRows(applicationCols).
			AddRow(2, 8, "acc-x", "accepted", "", "", now, now).
			AddRow(1, 7, "acc-x", "submitted", "", "", now, now))

	apps, err := repo.ListByApplicant(context.Background(), "acc-x")
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, domain.ApplicationStatusAccepted, apps[0].Status)
}
