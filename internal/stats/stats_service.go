package stats

import (
	"context"
	"sort"

	"careernest/internal/application"
	"careernest/internal/bookmark"
	"careernest/internal/company"
	"careernest/internal/job"

	"golang.org/x/sync/singleflight"
)

const topJobsLimit = 5

//go:generate mockgen -destination=mock/stats_service_mock.go -package=mock . Service
type Service interface {
	// Stats computes the dashboard breakdowns from a full scan on every
	// call. Nothing is cached; concurrent identical calls are coalesced.
	Stats(ctx context.Context) (*StatsResponse, error)
	Health(ctx context.Context) (*HealthResponse, error)
}

type service struct {
	companies    company.Repository
	jobs         job.Repository
	applications application.Repository
	bookmarks    bookmark.Repository
	sf           *singleflight.Group
}

func NewService(
	companies company.Repository,
	jobs job.Repository,
	applications application.Repository,
	bookmarks bookmark.Repository,
) Service {
	return &service{
		companies:    companies,
		jobs:         jobs,
		applications: applications,
		bookmarks:    bookmarks,
		sf:           &singleflight.Group{},
	}
}

func (s *service) Stats(ctx context.Context) (*StatsResponse, error) {
	// Coalesced callers share the first caller's scan, so the scan must not
	// inherit that caller's cancellation.
	scanCtx := context.WithoutCancel(ctx)
	v, err, _ := s.sf.Do("stats", func() (interface{}, error) {
		return s.computeStats(scanCtx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*StatsResponse), nil
}

func (s *service) computeStats(ctx context.Context) (*StatsResponse, error) {
	jobs, err := s.jobs.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	apps, err := s.applications.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	totalCompanies, err := s.companies.Count(ctx)
	if err != nil {
		return nil, err
	}
	activeJobs, err := s.jobs.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	totalBookmarks, err := s.bookmarks.Count(ctx)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string]int64)
	byType := make(map[string]int64)
	for i := range jobs {
		byCategory[jobs[i].Category]++
		byType[jobs[i].JobType]++
	}

	byStatus := make(map[string]int64)
	for i := range apps {
		byStatus[apps[i].Status]++
	}

	return &StatsResponse{
		Overview: Overview{
			TotalCompanies:    totalCompanies,
			TotalJobs:         int64(len(jobs)),
			ActiveJobs:        activeJobs,
			TotalApplications: int64(len(apps)),
			TotalBookmarks:    totalBookmarks,
		},
		JobsByCategory:       byCategory,
		JobsByType:           byType,
		ApplicationsByStatus: byStatus,
		MostViewedJobs:       topJobsBy(jobs, func(j *job.Job) int64 { return j.Views }),
		MostAppliedJobs:      topJobsBy(jobs, func(j *job.Job) int64 { return j.ApplicationsCount }),
	}, nil
}

// topJobsBy ranks jobs by the given counter, descending. The sort is stable
// so ties keep their stored order.
func topJobsBy(jobs []job.Job, counter func(*job.Job) int64) []job.JobResponse {
	ranked := make([]job.Job, len(jobs))
	copy(ranked, jobs)

	sort.SliceStable(ranked, func(i, k int) bool {
		return counter(&ranked[i]) > counter(&ranked[k])
	})

	if len(ranked) > topJobsLimit {
		ranked = ranked[:topJobsLimit]
	}

	resp := make([]job.JobResponse, 0, len(ranked))
	for i := range ranked {
		resp = append(resp, job.ToResponse(&ranked[i], nil))
	}
	return resp
}

func (s *service) Health(ctx context.Context) (*HealthResponse, error) {
	totalCompanies, err := s.companies.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalJobs, err := s.jobs.Count(ctx)
	if err != nil {
		return nil, err
	}
	activeJobs, err := s.jobs.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	totalApplications, err := s.applications.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &HealthResponse{
		Status:            "CareerNest API running",
		TotalCompanies:    totalCompanies,
		TotalJobs:         totalJobs,
		ActiveJobs:        activeJobs,
		TotalApplications: totalApplications,
	}, nil
}
