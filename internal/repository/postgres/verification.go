package postgres

import (
	"context"
	"database/sql"
	"time"

	"alumni-jobboard-backend/internal/domain"
	"alumni-jobboard-backend/internal/logger"
	"alumni-jobboard-backend/internal/repository"
)

type verificationRepository struct {
	db *sql.DB
}

func NewVerificationRepository(db *sql.DB) repository.VerificationRepository {
	return &verificationRepository{db: db}
}

const profileColumns = `account_id, status, id_number, account_type, full_name, company, reviewed_by, reviewed_at, created_at, updated_at`

func (r *verificationRepository) Create(ctx context.Context, p *domain.VerificationProfile) error {
	query := `INSERT INTO verification_profiles (account_id, status, id_number, account_type, full_name, company, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, query, p.AccountID, p.Status, p.IDNumber, p.AccountType, p.FullName, p.Company, p.CreatedAt, p.UpdatedAt)
	return mapError(err)
}

func (r *verificationRepository) GetByAccountID(ctx context.Context, accountID string) (*domain.VerificationProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM verification_profiles WHERE account_id = $1`
	p, err := scanProfile(r.db.QueryRowContext(ctx, query, accountID))
	if err != nil {
		return nil, mapError(err)
	}
	return p, nil
}

func (r *verificationRepository) UpdateStatus(ctx context.Context, accountID string, status domain.VerificationStatus, reviewedBy string) error {
	logger.EnterMethod("verificationRepository.UpdateStatus", "accountID", accountID, "status", status)

	query := `UPDATE verification_profiles SET status = $1, reviewed_by = $2, reviewed_at = $3, updated_at = $3 WHERE account_id = $4`
	logger.DatabaseCall("UPDATE", "verification_profiles", "accountID", accountID)
	result, err := r.db.ExecContext(ctx, query, status, reviewedBy, time.Now().UTC(), accountID)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err, "accountID", accountID)
		logger.ExitMethodWithError("verificationRepository.UpdateStatus", err, "accountID", accountID)
		return mapError(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return mapError(err)
	}
	logger.DatabaseResult("UPDATE", rows, nil, "accountID", accountID)
	if rows == 0 {
		logger.ExitMethodWithError("verificationRepository.UpdateStatus", repository.ErrNotFound, "accountID", accountID)
		return repository.ErrNotFound
	}
	logger.ExitMethod("verificationRepository.UpdateStatus", "accountID", accountID)
	return nil
}

func (r *verificationRepository) ListByStatus(ctx context.Context, status domain.VerificationStatus) ([]domain.VerificationProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM verification_profiles WHERE status = $1 ORDER BY created_at`
	return r.list(ctx, query, status)
}

func (r *verificationRepository) List(ctx context.Context) ([]domain.VerificationProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM verification_profiles ORDER BY created_at`
	return r.list(ctx, query)
}

func (r *verificationRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM verification_profiles`).Scan(&n)
	return n, mapError(err)
}

func (r *verificationRepository) list(ctx context.Context, query string, args ...any) ([]domain.VerificationProfile, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var profiles []domain.VerificationProfile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, mapError(err)
		}
		profiles = append(profiles, *p)
	}
	return profiles, mapError(rows.Err())
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProfile(row scanner) (*domain.VerificationProfile, error) {
	p := &domain.VerificationProfile{}
	var reviewedBy sql.NullString
	var reviewedAt sql.NullTime
	err := row.Scan(&p.AccountID, &p.Status, &p.IDNumber, &p.AccountType, &p.FullName, &p.Company,
		&reviewedBy, &reviewedAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if reviewedBy.Valid {
		p.ReviewedBy = &reviewedBy.String
	}
	if reviewedAt.Valid {
		t := reviewedAt.Time
		p.ReviewedAt = &t
	}
	return p, nil
}
