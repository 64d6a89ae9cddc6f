package service

import (
	"context"

	"alumni-jobboard-backend/internal/domain"
)

// Every operation takes the acting account id resolved by the session layer.
// Role and verification status are never accepted from the caller.

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.Account, error)
	Login(ctx context.Context, email, password string) (string, error)
	// Authenticate resolves a bearer token to the acting account id.
	Authenticate(ctx context.Context, token string) (string, error)
}

type RoleService interface {
	GetEffectiveRole(ctx context.Context, accountID string) (domain.Role, error)
	SetRole(ctx context.Context, actingID, targetID string, role domain.Role) error
}

type VerificationService interface {
	GetStatus(ctx context.Context, accountID string) (domain.VerificationStatus, error)
	SetStatus(ctx context.Context, actingID, targetID string, status domain.VerificationStatus) error
	GetProfile(ctx context.Context, accountID string) (*domain.VerificationProfile, error)
}

type AdminService interface {
	Approve(ctx context.Context, adminID, targetID string) error
	Reject(ctx context.Context, adminID, targetID string) error
	ListVerifications(ctx context.Context, adminID string, status domain.VerificationStatus) ([]domain.VerificationProfile, error)
	ListMembers(ctx context.Context, adminID string) ([]domain.Member, error)
}

type JobService interface {
	Create(ctx context.Context, actingID string, job *domain.JobPosting) error
	Update(ctx context.Context, actingID string, job *domain.JobPosting) error
	SetActive(ctx context.Context, actingID string, jobID int32, active bool) (*domain.JobPosting, error)
	Delete(ctx context.Context, actingID string, jobID int32) error
	Get(ctx context.Context, actingID string, jobID int32) (*domain.JobPosting, error)
	ListActive(ctx context.Context, actingID string, page, pageSize int32) ([]domain.JobPosting, int, error)
}

type ApplicationService interface {
	Submit(ctx context.Context, applicantID string, jobID int32, coverLetter, resumeReference string) (*domain.JobApplication, error)
	Decide(ctx context.Context, actingID string, applicationID int32, outcome domain.ApplicationStatus) (*domain.JobApplication, error)
	ListForApplicant(ctx context.Context, applicantID string) ([]domain.ApplicationSummary, error)
	ListForJob(ctx context.Context, jobID int32, actingID string) ([]domain.ApplicationDetail, error)
	Get(ctx context.Context, actingID string, applicationID int32) (*domain.JobApplication, error)
}

type CommunityService interface {
	Directory(ctx context.Context) ([]domain.DirectoryEntry, error)
	Stats(ctx context.Context) (*domain.CommunityStats, error)
}

type NotificationService interface {
	// Notify persists a notification. Failures are logged, never returned.
	Notify(ctx context.Context, accountID, title, message string, attrs map[string]string)
	GetNotifications(ctx context.Context, accountID string, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, accountID string, notificationID int32) error
}
