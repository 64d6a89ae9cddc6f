package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"alumni-jobboard-backend/internal/domain"
)

// MockRoleRepo
type MockRoleRepo struct {
	mock.Mock
}

func (m *MockRoleRepo) Append(ctx context.Context, a *domain.RoleAssignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockRoleRepo) Latest(ctx context.Context, accountID string) (*domain.RoleAssignment, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoleAssignment), args.Error(1)
}
func (m *MockRoleRepo) ListLatestByRole(ctx context.Context, role domain.Role) ([]string, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
func (m *MockRoleRepo) CountLatestByRole(ctx context.Context) (map[domain.Role]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.Role]int), args.Error(1)
}

// MockVerificationRepo
type MockVerificationRepo struct {
	mock.Mock
}

func (m *MockVerificationRepo) Create(ctx context.Context, p *domain.VerificationProfile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockVerificationRepo) GetByAccountID(ctx context.Context, accountID string) (*domain.VerificationProfile, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VerificationProfile), args.Error(1)
}
func (m *MockVerificationRepo) UpdateStatus(ctx context.Context, accountID string, status domain.VerificationStatus, reviewedBy string) error {
	args := m.Called(ctx, accountID, status, reviewedBy)
	return args.Error(0)
}
func (m *MockVerificationRepo) ListByStatus(ctx context.Context, status domain.VerificationStatus) ([]domain.VerificationProfile, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VerificationProfile), args.Error(1)
}
func (m *MockVerificationRepo) List(ctx context.Context) ([]domain.VerificationProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VerificationProfile), args.Error(1)
}
func (m *MockVerificationRepo) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockJobRepo
type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, j *domain.JobPosting) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id int32) (*domain.JobPosting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobPosting), args.Error(1)
}
func (m *MockJobRepo) Update(ctx context.Context, j *domain.JobPosting) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}
func (m *MockJobRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockJobRepo) ListActive(ctx context.Context, limit, offset int32) ([]domain.JobPosting, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobPosting), args.Error(1)
}
func (m *MockJobRepo) CountActive(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockApplicationRepo
type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, a *domain.JobApplication) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id int32) (*domain.JobApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobApplication), args.Error(1)
}
func (m *MockApplicationRepo) GetByJobAndApplicant(ctx context.Context, jobID int32, applicantID string) (*domain.JobApplication, error) {
	args := m.Called(ctx, jobID, applicantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobApplication), args.Error(1)
}
func (m *MockApplicationRepo) UpdateStatusFrom(ctx context.Context, id int32, from, to domain.ApplicationStatus) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}
func (m *MockApplicationRepo) ListByApplicant(ctx context.Context, applicantID string) ([]domain.JobApplication, error) {
	args := m.Called(ctx, applicantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobApplication), args.Error(1)
}
func (m *MockApplicationRepo) ListByJob(ctx context.Context, jobID int32) ([]domain.JobApplication, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobApplication), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, accountID string, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, accountID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id int32, accountID string) error {
	args := m.Called(ctx, id, accountID)
	return args.Error(0)
}
