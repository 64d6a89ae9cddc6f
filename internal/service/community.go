package service

import (
	"context"

	"alumni-jobboard-backend/internal/domain"
	"alumni-jobboard-backend/internal/repository"
)

type communityService struct {
	profileRepo repository.VerificationRepository
	roleRepo    repository.RoleRepository
	jobRepo     repository.JobRepository
}

func NewCommunityService(
	profileRepo repository.VerificationRepository,
	roleRepo repository.RoleRepository,
	jobRepo repository.JobRepository,
) CommunityService {
	return &communityService{profileRepo: profileRepo, roleRepo: roleRepo, jobRepo: jobRepo}
}

// Directory lists verified members only.
func (s *communityService) Directory(ctx context.Context) ([]domain.DirectoryEntry, error) {
	profiles, err := s.profileRepo.ListByStatus(ctx, domain.VerificationApproved)
	if err != nil {
		return nil, storeError(err, "failed to list directory")
	}
	entries := make([]domain.DirectoryEntry, 0, len(profiles))
	for _, p := range profiles {
		entries = append(entries, p.DirectoryEntry())
	}
	return entries, nil
}

// Stats counts members by effective role. Members without an assignment
// count as alumni.
func (s *communityService) Stats(ctx context.Context) (*domain.CommunityStats, error) {
	members, err := s.profileRepo.Count(ctx)
	if err != nil {
		return nil, storeError(err, "failed to count members")
	}
	counts, err := s.roleRepo.CountLatestByRole(ctx)
	if err != nil {
		return nil, storeError(err, "failed to count roles")
	}
	active, err := s.jobRepo.CountActive(ctx)
	if err != nil {
		return nil, storeError(err, "failed to count jobs")
	}

	stats := &domain.CommunityStats{
		Members:    members,
		Employers:  counts[domain.RoleEmployer],
		Admins:     counts[domain.RoleAdmin],
		ActiveJobs: active,
	}
	stats.Alumni = max(members-stats.Employers-stats.Admins, 0)
	return stats, nil
}
