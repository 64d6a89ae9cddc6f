package repository

import (
	"context"

	"alumni-jobboard-backend/internal/domain"
)

type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
}

// RoleRepository is an append-only log of role assignments. Latest returns
// the most recent entry; ErrNotFound when the account was never assigned.
type RoleRepository interface {
	Append(ctx context.Context, assignment *domain.RoleAssignment) error
	Latest(ctx context.Context, accountID string) (*domain.RoleAssignment, error)
	ListLatestByRole(ctx context.Context, role domain.Role) ([]string, error)
	CountLatestByRole(ctx context.Context) (map[domain.Role]int, error)
}

type VerificationRepository interface {
	Create(ctx context.Context, profile *domain.VerificationProfile) error
	GetByAccountID(ctx context.Context, accountID string) (*domain.VerificationProfile, error)
	UpdateStatus(ctx context.Context, accountID string, status domain.VerificationStatus, reviewedBy string) error
	ListByStatus(ctx context.Context, status domain.VerificationStatus) ([]domain.VerificationProfile, error)
	List(ctx context.Context) ([]domain.VerificationProfile, error)
	Count(ctx context.Context) (int, error)
}

type JobRepository interface {
	Create(ctx context.Context, job *domain.JobPosting) error
	GetByID(ctx context.Context, id int32) (*domain.JobPosting, error)
	Update(ctx context.Context, job *domain.JobPosting) error
	// Delete removes the posting together with its applications.
	Delete(ctx context.Context, id int32) error
	ListActive(ctx context.Context, limit, offset int32) ([]domain.JobPosting, error)
	CountActive(ctx context.Context) (int, error)
}

// ApplicationRepository enforces uniqueness of (job, applicant): Create
// returns ErrConflict when the pair already exists.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.JobApplication) error
	GetByID(ctx context.Context, id int32) (*domain.JobApplication, error)
	GetByJobAndApplicant(ctx context.Context, jobID int32, applicantID string) (*domain.JobApplication, error)
	// UpdateStatusFrom sets the status only if the current status equals from.
	// It returns ErrInvalidState when the row exists but is in another state.
	UpdateStatusFrom(ctx context.Context, id int32, from, to domain.ApplicationStatus) error
	ListByApplicant(ctx context.Context, applicantID string) ([]domain.JobApplication, error)
	ListByJob(ctx context.Context, jobID int32) ([]domain.JobApplication, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, accountID string, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id int32, accountID string) error
}
