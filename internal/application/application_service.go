package application

import (
	"context"
	"errors"
	"time"

	applicationerrors "careernest/internal/application/errors"
	"careernest/internal/company"
	"careernest/internal/identity"
	"careernest/internal/job"
	"careernest/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mock/application_service_mock.go -package=mock . Service
type Service interface {
	Submit(ctx context.Context, jobID string, req SubmitApplicationRequest) (*ApplicationResponse, error)
	ListByJob(ctx context.Context, jobID, status string) (*ApplicationListResponse, error)
	GetByID(ctx context.Context, id string) (*ApplicationResponse, error)
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*ApplicationResponse, error)
	ListByStudent(ctx context.Context, email string) (*ApplicationListResponse, error)
}

type service struct {
	repo      Repository
	jobs      job.Repository
	companies company.Repository
	verifier  identity.Verifier
	logger    *zap.Logger
}

func NewService(
	repo Repository,
	jobs job.Repository,
	companies company.Repository,
	verifier identity.Verifier,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("application.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("application.service")
	}
	return &service{
		repo:      repo,
		jobs:      jobs,
		companies: companies,
		verifier:  verifier,
		logger:    l,
	}
}

// Submit runs the application workflow. Identity verification happens
// before the duplicate check, so a rejected token is reported even when the
// submission would also be a duplicate. The duplicate check and the insert
// are two store operations: two racing submissions for the same pair can
// both pass the check. The applications_count increment is likewise a
// separate operation and can undercount if the process dies in between.
func (s *service) Submit(ctx context.Context, jobID string, req SubmitApplicationRequest) (*ApplicationResponse, error) {
	j, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, applicationerrors.ErrJobNotFound
		}
		return nil, err
	}

	if !j.IsActive {
		return nil, applicationerrors.ErrJobInactive
	}

	if req.GoogleAccessToken != "" {
		result := s.verifier.Verify(ctx, req.GoogleAccessToken)
		switch result.Outcome {
		case identity.OutcomeRejected:
			return nil, applicationerrors.ErrInvalidToken
		case identity.OutcomeVerified:
			if result.Email != req.ApplicantEmail {
				return nil, applicationerrors.ErrEmailMismatch
			}
		case identity.OutcomeUnavailable:
			// Verification is best-effort: an unreachable verifier never
			// blocks a submission.
			contextutil.GetLogger(ctx, s.logger).Warn("identity verification unavailable, skipping",
				zap.String("job_id", jobID))
		}
	}

	exists, err := s.repo.ExistsForJobAndEmail(ctx, jobID, req.ApplicantEmail)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, applicationerrors.ErrAlreadyApplied
	}

	companyName := "Unknown"
	if comp, err := s.companies.FindByID(ctx, j.CompanyID); err == nil {
		companyName = comp.Name
	}

	now := time.Now().UTC()
	app := &Application{
		ID:                 uuid.New().String(),
		JobID:              jobID,
		JobTitle:           j.Title,
		CompanyName:        companyName,
		ApplicantName:      req.ApplicantName,
		ApplicantEmail:     req.ApplicantEmail,
		Phone:              req.Phone,
		ResumeURL:          req.ResumeURL,
		CoverLetter:        req.CoverLetter,
		LinkedInURL:        req.LinkedInURL,
		PortfolioURL:       req.PortfolioURL,
		YearsOfExperience:  req.YearsOfExperience,
		CurrentInstitution: req.CurrentInstitution,
		GraduationYear:     req.GraduationYear,
		Status:             StatusPending,
		AppliedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.repo.Create(ctx, app); err != nil {
		return nil, err
	}

	if err := s.jobs.IncrementApplications(ctx, jobID); err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("failed to increment applications_count",
			zap.String("job_id", jobID), zap.Error(err))
	}

	resp := toResponse(app)
	return &resp, nil
}

func (s *service) ListByJob(ctx context.Context, jobID, status string) (*ApplicationListResponse, error) {
	if _, err := s.jobs.FindByID(ctx, jobID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, applicationerrors.ErrJobNotFound
		}
		return nil, err
	}

	apps, err := s.repo.FindByJob(ctx, jobID, status)
	if err != nil {
		return nil, err
	}

	resp := toListResponse(apps)
	return &resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*ApplicationResponse, error) {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, applicationerrors.ErrApplicationNotFound
		}
		return nil, err
	}

	resp := toResponse(app)
	return &resp, nil
}

func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*ApplicationResponse, error) {
	if !IsValidStatus(req.Status) {
		return nil, applicationerrors.ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(ctx, id, req.Status, req.Notes); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, applicationerrors.ErrApplicationNotFound
		}
		return nil, err
	}

	return s.GetByID(ctx, id)
}

func (s *service) ListByStudent(ctx context.Context, email string) (*ApplicationListResponse, error) {
	apps, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	resp := toListResponse(apps)
	if resp.Total == 0 {
		resp.Message = "No applications found for this email"
	}
	return &resp, nil
}
