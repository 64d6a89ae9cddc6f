package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"alumni-jobboard-backend/internal/authz"
	"alumni-jobboard-backend/internal/domain"
	"alumni-jobboard-backend/internal/lock"
	"alumni-jobboard-backend/internal/logger"
	"alumni-jobboard-backend/internal/metrics"
	"alumni-jobboard-backend/internal/repository"
)

type applicationService struct {
	appRepo     repository.ApplicationRepository
	jobRepo     repository.JobRepository
	profileRepo repository.VerificationRepository
	locker      lock.Locker
	gate        *Gate
	notifier    NotificationService
	metrics     *metrics.Metrics
}

func NewApplicationService(
	appRepo repository.ApplicationRepository,
	jobRepo repository.JobRepository,
	profileRepo repository.VerificationRepository,
	locker lock.Locker,
	gate *Gate,
	notifier NotificationService,
	m *metrics.Metrics,
) ApplicationService {
	return &applicationService{
		appRepo:     appRepo,
		jobRepo:     jobRepo,
		profileRepo: profileRepo,
		locker:      locker,
		gate:        gate,
		notifier:    notifier,
		metrics:     m,
	}
}

func submissionKey(jobID int32, applicantID string) string {
	return fmt.Sprintf("application:%d:%s", jobID, applicantID)
}

// Submit creates a submitted application. At most one application exists per
// (job, applicant): the pair is guarded by a lock and, underneath, by the
// store's uniqueness key, whose conflict is reported as AlreadyApplied.
func (s *applicationService) Submit(ctx context.Context, applicantID string, jobID int32, coverLetter, resumeReference string) (app *domain.JobApplication, err error) {
	logger.EnterMethod("applicationService.Submit", "applicantID", applicantID, "jobID", jobID)
	defer func() {
		s.metrics.IncrementSubmission(resultLabel("submitted", err))
		if err != nil {
			logger.ExitMethodWithError("applicationService.Submit", err, "jobID", jobID)
			return
		}
		logger.ExitMethod("applicationService.Submit", "applicationID", app.ID)
	}()

	if err := s.gate.Check(ctx, applicantID, authz.ActionApplyToJob, ""); err != nil {
		return nil, err
	}

	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, storeError(err, "failed to get job")
	}
	if !job.IsActive {
		return nil, domain.NewError(domain.KindJobInactive, "job posting is closed", nil)
	}

	unlock, err := s.locker.Lock(ctx, submissionKey(jobID, applicantID))
	if err != nil {
		return nil, domain.NewError(domain.KindStoreUnavailable, "failed to acquire submission guard", err)
	}
	defer unlock()

	existing, err := s.appRepo.GetByJobAndApplicant(ctx, jobID, applicantID)
	if err == nil && existing != nil {
		return nil, domain.NewError(domain.KindAlreadyApplied, "already applied to this job", nil)
	}
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, storeError(err, "failed to check existing application")
	}

	app = &domain.JobApplication{
		JobID:           jobID,
		ApplicantID:     applicantID,
		Status:          domain.ApplicationStatusSubmitted,
		CoverLetter:     coverLetter,
		ResumeReference: resumeReference,
	}
	if err := s.appRepo.Create(ctx, app); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, domain.NewError(domain.KindAlreadyApplied, "already applied to this job", err)
		}
		return nil, storeError(err, "failed to create application")
	}

	s.notifier.Notify(ctx, job.OwnerID, "New application", fmt.Sprintf("New application for %s", job.Title), map[string]string{
		AttrType:          NoteApplicationReceived,
		AttrApplicationID: strconv.Itoa(int(app.ID)),
		AttrJobID:         strconv.Itoa(int(job.ID)),
	})
	return app, nil
}

// Decide moves a submitted application to accepted or rejected. The write is
// conditional on the status still being submitted, so of two racing decisions
// only one succeeds; the other gets InvalidTransition.
func (s *applicationService) Decide(ctx context.Context, actingID string, applicationID int32, outcome domain.ApplicationStatus) (app *domain.JobApplication, err error) {
	logger.EnterMethod("applicationService.Decide", "actingID", actingID, "applicationID", applicationID, "outcome", outcome)
	defer func() {
		s.metrics.IncrementApplicationDecision(resultLabel(string(outcome), err))
		if errors.Is(err, domain.ErrInvalidTransition) {
			logger.WarnContext(ctx, "application already decided", "applicationID", applicationID, "outcome", outcome, "error", err)
			return
		}
		if err != nil {
			logger.ExitMethodWithError("applicationService.Decide", err, "applicationID", applicationID)
			return
		}
		logger.ExitMethod("applicationService.Decide", "applicationID", applicationID, "status", app.Status)
	}()

	if !outcome.IsOutcome() {
		return nil, invalidInput(fmt.Sprintf("invalid decision %q", outcome))
	}

	app, err = s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, storeError(err, "failed to get application")
	}
	job, err := s.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		return nil, storeError(err, "failed to get job")
	}

	if err := s.gate.Check(ctx, actingID, authz.ActionDecideApplication, job.OwnerID); err != nil {
		return nil, err
	}
	if app.Status.IsTerminal() {
		return nil, domain.NewError(domain.KindInvalidTransition, fmt.Sprintf("application already %s", app.Status), nil)
	}

	err = s.appRepo.UpdateStatusFrom(ctx, app.ID, domain.ApplicationStatusSubmitted, outcome)
	switch {
	case errors.Is(err, repository.ErrInvalidState):
		return nil, domain.NewError(domain.KindInvalidTransition, "application was decided concurrently", err)
	case err != nil:
		return nil, storeError(err, "failed to update application status")
	}
	app.Status = outcome
	app.UpdatedAt = time.Now().UTC()

	s.notifier.Notify(ctx, app.ApplicantID, "Application "+string(outcome),
		fmt.Sprintf("Your application for %s at %s was %s", job.Title, job.Company, outcome),
		map[string]string{
			AttrType:          NoteApplicationDecided,
			AttrApplicationID: strconv.Itoa(int(app.ID)),
			AttrJobID:         strconv.Itoa(int(job.ID)),
			AttrStatus:        string(outcome),
		})
	return app, nil
}

// ListForApplicant returns only the caller's own applications, newest first.
func (s *applicationService) ListForApplicant(ctx context.Context, applicantID string) ([]domain.ApplicationSummary, error) {
	if err := s.gate.Check(ctx, applicantID, authz.ActionViewOwnApplication, applicantID); err != nil {
		return nil, err
	}

	apps, err := s.appRepo.ListByApplicant(ctx, applicantID)
	if err != nil {
		return nil, storeError(err, "failed to list applications")
	}

	jobs := make(map[int32]*domain.JobPosting)
	summaries := make([]domain.ApplicationSummary, 0, len(apps))
	for _, a := range apps {
		job, ok := jobs[a.JobID]
		if !ok {
			job, err = s.jobRepo.GetByID(ctx, a.JobID)
			if err != nil && !errors.Is(err, repository.ErrNotFound) {
				return nil, storeError(err, "failed to get job")
			}
			jobs[a.JobID] = job
		}
		summary := domain.ApplicationSummary{JobApplication: a}
		if job != nil {
			summary.JobTitle = job.Title
			summary.Company = job.Company
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// ListForJob returns the applicants of a posting to its owner or an admin.
func (s *applicationService) ListForJob(ctx context.Context, jobID int32, actingID string) ([]domain.ApplicationDetail, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, storeError(err, "failed to get job")
	}
	if err := s.gate.Check(ctx, actingID, authz.ActionDecideApplication, job.OwnerID); err != nil {
		return nil, err
	}

	apps, err := s.appRepo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, storeError(err, "failed to list applications")
	}

	details := make([]domain.ApplicationDetail, 0, len(apps))
	for _, a := range apps {
		detail := domain.ApplicationDetail{JobApplication: a}
		p, err := s.profileRepo.GetByAccountID(ctx, a.ApplicantID)
		switch {
		case err == nil:
			detail.ApplicantName = p.FullName
			detail.ApplicantType = p.AccountType
		case !errors.Is(err, repository.ErrNotFound):
			return nil, storeError(err, "failed to get applicant profile")
		}
		details = append(details, detail)
	}
	return details, nil
}

// Get returns one application to its applicant, the posting owner or an admin.
func (s *applicationService) Get(ctx context.Context, actingID string, applicationID int32) (*domain.JobApplication, error) {
	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, storeError(err, "failed to get application")
	}

	if actingID != "" && app.ApplicantID == actingID {
		if err := s.gate.Check(ctx, actingID, authz.ActionViewOwnApplication, app.ApplicantID); err != nil {
			return nil, err
		}
		return app, nil
	}

	job, err := s.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		return nil, storeError(err, "failed to get job")
	}
	if err := s.gate.Check(ctx, actingID, authz.ActionDecideApplication, job.OwnerID); err != nil {
		return nil, err
	}
	return app, nil
}
