package bookmark

import (
	"context"
	"errors"
	"time"

	bookmarkerrors "careernest/internal/bookmark/errors"
	"careernest/internal/company"
	"careernest/internal/job"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mock/bookmark_service_mock.go -package=mock . Service
type Service interface {
	Create(ctx context.Context, req BookmarkRequest) error
	Delete(ctx context.Context, req BookmarkRequest) error
	ListByStudent(ctx context.Context, studentEmail string) (*BookmarkListResponse, error)
}

type service struct {
	repo      Repository
	jobs      job.Repository
	companies company.Repository
	logger    *zap.Logger
}

func NewService(repo Repository, jobs job.Repository, companies company.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("bookmark.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("bookmark.service")
	}
	return &service{repo: repo, jobs: jobs, companies: companies, logger: l}
}

func (s *service) Create(ctx context.Context, req BookmarkRequest) error {
	if _, err := s.jobs.FindByID(ctx, req.JobID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return bookmarkerrors.ErrJobNotFound
		}
		return err
	}

	exists, err := s.repo.Exists(ctx, req.StudentEmail, req.JobID)
	if err != nil {
		return err
	}
	if exists {
		return bookmarkerrors.ErrAlreadyBookmarked
	}

	return s.repo.Create(ctx, &Bookmark{
		StudentEmail: req.StudentEmail,
		JobID:        req.JobID,
		SavedAt:      time.Now().UTC(),
	})
}

func (s *service) Delete(ctx context.Context, req BookmarkRequest) error {
	if err := s.repo.Delete(ctx, req.StudentEmail, req.JobID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return bookmarkerrors.ErrBookmarkNotFound
		}
		return err
	}
	return nil
}

// ListByStudent returns the bookmarked listings enriched with their
// companies. A bookmark whose job has since been deleted is skipped
// silently; the stale bookmark record itself is left alone.
func (s *service) ListByStudent(ctx context.Context, studentEmail string) (*BookmarkListResponse, error) {
	bookmarks, err := s.repo.FindByStudent(ctx, studentEmail)
	if err != nil {
		return nil, err
	}

	jobs := make([]job.JobResponse, 0, len(bookmarks))
	for _, bm := range bookmarks {
		j, err := s.jobs.FindByID(ctx, bm.JobID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				continue
			}
			return nil, err
		}

		var compResp *company.CompanyResponse
		if comp, err := s.companies.FindByID(ctx, j.CompanyID); err == nil {
			r := company.ToResponse(comp)
			compResp = &r
		}

		jobs = append(jobs, job.ToResponse(j, compResp))
	}

	return &BookmarkListResponse{Bookmarks: jobs, Total: len(jobs)}, nil
}
