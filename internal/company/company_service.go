package company

import (
	"context"
	"errors"
	"time"

	companyerrors "careernest/internal/company/errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// ActiveJobsFn supplies a company's active listings. The registry plugs in
// the job module here so the two packages stay decoupled.
type ActiveJobsFn func(ctx context.Context, companyID string) (jobs any, count int, err error)

//go:generate mockgen -destination=mock/company_service_mock.go -package=mock . Service
type Service interface {
	Create(ctx context.Context, req CreateCompanyRequest) (*CompanyResponse, error)
	List(ctx context.Context) (*CompanyListResponse, error)
	GetDetail(ctx context.Context, id string) (*CompanyDetailResponse, error)
}

type service struct {
	repo       Repository
	activeJobs ActiveJobsFn
}

func NewService(repo Repository, activeJobs ActiveJobsFn) Service {
	return &service{repo: repo, activeJobs: activeJobs}
}

func (s *service) Create(ctx context.Context, req CreateCompanyRequest) (*CompanyResponse, error) {
	comp := &Company{
		ID:              uuid.New().String(),
		Name:            req.Name,
		Industry:        req.Industry,
		Website:         req.Website,
		Description:     req.Description,
		LogoURL:         req.LogoURL,
		Location:        req.Location,
		CreatedAt:       time.Now().UTC(),
		TotalJobsPosted: 0,
	}

	if err := s.repo.Create(ctx, comp); err != nil {
		return nil, err
	}

	resp := ToResponse(comp)
	return &resp, nil
}

func (s *service) List(ctx context.Context) (*CompanyListResponse, error) {
	companies, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]CompanyResponse, 0, len(companies))
	for i := range companies {
		resp = append(resp, ToResponse(&companies[i]))
	}

	return &CompanyListResponse{Companies: resp, Total: int64(len(resp))}, nil
}

func (s *service) GetDetail(ctx context.Context, id string) (*CompanyDetailResponse, error) {
	comp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, companyerrors.ErrCompanyNotFound
		}
		return nil, err
	}

	jobs, count, err := s.activeJobs(ctx, id)
	if err != nil {
		return nil, err
	}

	return &CompanyDetailResponse{
		Company:         ToResponse(comp),
		ActiveJobs:      jobs,
		ActiveJobsCount: count,
	}, nil
}
