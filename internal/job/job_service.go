package job

import (
	"context"
	"errors"
	"time"

	"careernest/internal/company"
	joberrors "careernest/internal/job/errors"
	"careernest/internal/shared/contextutil"
	"careernest/internal/shared/response"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mock/job_service_mock.go -package=mock . Service
type Service interface {
	Create(ctx context.Context, req CreateJobRequest) (*JobResponse, error)
	Search(ctx context.Context, q ListJobsQuery) ([]JobResponse, response.PaginationMeta, error)
	// GetByID increments the view counter as a side effect; the returned
	// payload carries the post-increment value.
	GetByID(ctx context.Context, id string) (*JobResponse, error)
	Update(ctx context.Context, id string, req UpdateJobRequest) (*JobResponse, error)
	Delete(ctx context.Context, id string) error
	ListActiveByCompany(ctx context.Context, companyID string) ([]JobResponse, error)
}

type service struct {
	repo      Repository
	companies company.Repository
	logger    *zap.Logger
}

func NewService(repo Repository, companies company.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("job.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("job.service")
	}
	return &service{repo: repo, companies: companies, logger: l}
}

// enrich attaches the owning company record, or nil when the company no
// longer exists. The attachment is per-response only.
func (s *service) enrich(ctx context.Context, j *Job) (*JobResponse, error) {
	comp, err := s.companies.FindByID(ctx, j.CompanyID)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
		resp := ToResponse(j, nil)
		return &resp, nil
	}

	compResp := company.ToResponse(comp)
	resp := ToResponse(j, &compResp)
	return &resp, nil
}

func (s *service) Create(ctx context.Context, req CreateJobRequest) (*JobResponse, error) {
	if _, err := s.companies.FindByID(ctx, req.CompanyID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, joberrors.ErrCompanyNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	currency := req.SalaryCurrency
	if currency == "" {
		currency = "INR"
	}
	openings := req.Openings
	if openings < 1 {
		openings = 1
	}

	// salary_min/salary_max are stored as supplied; their relationship is
	// not validated.
	j := &Job{
		ID:                  uuid.New().String(),
		CompanyID:           req.CompanyID,
		Title:               req.Title,
		Category:            req.Category,
		JobType:             req.JobType,
		ExperienceLevel:     req.ExperienceLevel,
		Location:            req.Location,
		IsRemote:            req.IsRemote,
		Description:         req.Description,
		Responsibilities:    req.Responsibilities,
		Requirements:        req.Requirements,
		NiceToHave:          req.NiceToHave,
		SalaryMin:           req.SalaryMin,
		SalaryMax:           req.SalaryMax,
		SalaryCurrency:      currency,
		ApplicationDeadline: req.ApplicationDeadline,
		Openings:            openings,
		IsActive:            true,
		Views:               0,
		ApplicationsCount:   0,
		Tags:                req.Tags,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.repo.Create(ctx, j); err != nil {
		return nil, err
	}

	if err := s.companies.IncrementJobsPosted(ctx, req.CompanyID, 1); err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("failed to increment total_jobs_posted",
			zap.String("company_id", req.CompanyID), zap.Error(err))
	}

	return s.enrich(ctx, j)
}

func (s *service) Search(ctx context.Context, q ListJobsQuery) ([]JobResponse, response.PaginationMeta, error) {
	query := NewSearchQuery(q)

	jobs, total, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, response.PaginationMeta{}, err
	}

	results := make([]JobResponse, 0, len(jobs))
	for i := range jobs {
		resp, err := s.enrich(ctx, &jobs[i])
		if err != nil {
			return nil, response.PaginationMeta{}, err
		}
		results = append(results, *resp)
	}

	meta := response.NewPaginationMeta(total, query.Page, query.PageSize)
	return results, meta, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*JobResponse, error) {
	j, err := s.repo.FindByIDAndIncrementViews(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return s.enrich(ctx, j)
}

func (s *service) Update(ctx context.Context, id string, req UpdateJobRequest) (*JobResponse, error) {
	fields := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Responsibilities != nil {
		fields["responsibilities"] = req.Responsibilities
	}
	if req.Requirements != nil {
		fields["requirements"] = req.Requirements
	}
	if req.NiceToHave != nil {
		fields["nice_to_have"] = req.NiceToHave
	}
	if req.SalaryMin != nil {
		fields["salary_min"] = *req.SalaryMin
	}
	if req.SalaryMax != nil {
		fields["salary_max"] = *req.SalaryMax
	}
	if req.ApplicationDeadline != nil {
		fields["application_deadline"] = *req.ApplicationDeadline
	}
	if req.Openings != nil {
		fields["openings"] = *req.Openings
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if req.Tags != nil {
		fields["tags"] = req.Tags
	}

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, mapRepositoryError(err)
	}

	j, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return s.enrich(ctx, j)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return mapRepositoryError(s.repo.Delete(ctx, id))
}

func (s *service) ListActiveByCompany(ctx context.Context, companyID string) ([]JobResponse, error) {
	jobs, err := s.repo.FindActiveByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	results := make([]JobResponse, 0, len(jobs))
	for i := range jobs {
		results = append(results, ToResponse(&jobs[i], nil))
	}
	return results, nil
}
