package stats_test

import (
	"context"
	"testing"

	"careernest/internal/application"
	applicationMock "careernest/internal/application/mock"
	bookmarkMock "careernest/internal/bookmark/mock"
	companyMock "careernest/internal/company/mock"
	"careernest/internal/job"
	jobMock "careernest/internal/job/mock"
	"careernest/internal/stats"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCompanies := companyMock.NewMockRepository(ctrl)
	mockJobs := jobMock.NewMockRepository(ctrl)
	mockApplications := applicationMock.NewMockRepository(ctrl)
	mockBookmarks := bookmarkMock.NewMockRepository(ctrl)
	service := stats.NewService(mockCompanies, mockJobs, mockApplications, mockBookmarks)
	ctx := context.Background()

	jobs := []job.Job{
		{ID: "j1", Title: "A", Category: job.CategoryTechnology, JobType: job.TypeFullTime, Views: 10, ApplicationsCount: 1},
		{ID: "j2", Title: "B", Category: job.CategoryTechnology, JobType: job.TypeInternship, Views: 30, ApplicationsCount: 7},
		{ID: "j3", Title: "C", Category: job.CategoryDesign, JobType: job.TypeFullTime, Views: 30, ApplicationsCount: 2},
		{ID: "j4", Title: "D", Category: job.CategoryMarketing, JobType: job.TypePartTime, Views: 5, ApplicationsCount: 2},
		{ID: "j5", Title: "E", Category: job.CategoryTechnology, JobType: job.TypeFullTime, Views: 50, ApplicationsCount: 0},
		{ID: "j6", Title: "F", Category: job.CategoryDesign, JobType: job.TypeContract, Views: 1, ApplicationsCount: 9},
	}
	apps := []application.Application{
		{ID: "a1", Status: application.StatusPending},
		{ID: "a2", Status: application.StatusPending},
		{ID: "a3", Status: application.StatusAccepted},
	}

	mockJobs.EXPECT().FindAll(gomock.Any()).Return(jobs, nil)
	mockApplications.EXPECT().FindAll(gomock.Any()).Return(apps, nil)
	mockCompanies.EXPECT().Count(gomock.Any()).Return(int64(3), nil)
	mockJobs.EXPECT().CountActive(gomock.Any()).Return(int64(4), nil)
	mockBookmarks.EXPECT().Count(gomock.Any()).Return(int64(2), nil)

	resp, err := service.Stats(ctx)
	assert.NoError(t, err)

	assert.Equal(t, int64(3), resp.Overview.TotalCompanies)
	assert.Equal(t, int64(6), resp.Overview.TotalJobs)
	assert.Equal(t, int64(4), resp.Overview.ActiveJobs)
	assert.Equal(t, int64(3), resp.Overview.TotalApplications)
	assert.Equal(t, int64(2), resp.Overview.TotalBookmarks)

	assert.Equal(t, map[string]int64{
		job.CategoryTechnology: 3,
		job.CategoryDesign:     2,
		job.CategoryMarketing:  1,
	}, resp.JobsByCategory)
	assert.Equal(t, map[string]int64{
		job.TypeFullTime:   3,
		job.TypeInternship: 1,
		job.TypePartTime:   1,
		job.TypeContract:   1,
	}, resp.JobsByType)
	assert.Equal(t, map[string]int64{
		application.StatusPending:  2,
		application.StatusAccepted: 1,
	}, resp.ApplicationsByStatus)

	// Descending by views, ties keeping stored order (j2 before j3), capped
	// at five.
	viewed := make([]string, 0, len(resp.MostViewedJobs))
	for _, j := range resp.MostViewedJobs {
		viewed = append(viewed, j.ID)
	}
	assert.Equal(t, []string{"j5", "j2", "j3", "j1", "j4"}, viewed)

	applied := make([]string, 0, len(resp.MostAppliedJobs))
	for _, j := range resp.MostAppliedJobs {
		applied = append(applied, j.ID)
	}
	assert.Equal(t, []string{"j6", "j2", "j3", "j4", "j1"}, applied)
}

func TestService_Stats_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCompanies := companyMock.NewMockRepository(ctrl)
	mockJobs := jobMock.NewMockRepository(ctrl)
	mockApplications := applicationMock.NewMockRepository(ctrl)
	mockBookmarks := bookmarkMock.NewMockRepository(ctrl)
	service := stats.NewService(mockCompanies, mockJobs, mockApplications, mockBookmarks)
	ctx := context.Background()

	mockJobs.EXPECT().FindAll(gomock.Any()).Return(nil, nil)
	mockApplications.EXPECT().FindAll(gomock.Any()).Return(nil, nil)
	mockCompanies.EXPECT().Count(gomock.Any()).Return(int64(0), nil)
	mockJobs.EXPECT().CountActive(gomock.Any()).Return(int64(0), nil)
	mockBookmarks.EXPECT().Count(gomock.Any()).Return(int64(0), nil)

	resp, err := service.Stats(ctx)
	assert.NoError(t, err)

	assert.Equal(t, int64(0), resp.Overview.TotalJobs)
	assert.Empty(t, resp.JobsByCategory)
	assert.Empty(t, resp.MostViewedJobs)
	assert.Empty(t, resp.MostAppliedJobs)
}

func TestService_Stats_CancelledCaller(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCompanies := companyMock.NewMockRepository(ctrl)
	mockJobs := jobMock.NewMockRepository(ctrl)
	mockApplications := applicationMock.NewMockRepository(ctrl)
	mockBookmarks := bookmarkMock.NewMockRepository(ctrl)
	service := stats.NewService(mockCompanies, mockJobs, mockApplications, mockBookmarks)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// The scan runs on a context detached from the caller's cancellation,
	// so a cancelled initiator cannot fail the coalesced callers.
	mockJobs.EXPECT().FindAll(gomock.Any()).DoAndReturn(
		func(scanCtx context.Context) ([]job.Job, error) {
			assert.NoError(t, scanCtx.Err())
			return nil, nil
		})
	mockApplications.EXPECT().FindAll(gomock.Any()).Return(nil, nil)
	mockCompanies.EXPECT().Count(gomock.Any()).Return(int64(0), nil)
	mockJobs.EXPECT().CountActive(gomock.Any()).Return(int64(0), nil)
	mockBookmarks.EXPECT().Count(gomock.Any()).Return(int64(0), nil)

	resp, err := service.Stats(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, resp)
}

func TestService_Health(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCompanies := companyMock.NewMockRepository(ctrl)
	mockJobs := jobMock.NewMockRepository(ctrl)
	mockApplications := applicationMock.NewMockRepository(ctrl)
	mockBookmarks := bookmarkMock.NewMockRepository(ctrl)
	service := stats.NewService(mockCompanies, mockJobs, mockApplications, mockBookmarks)
	ctx := context.Background()

	mockCompanies.EXPECT().Count(ctx).Return(int64(3), nil)
	mockJobs.EXPECT().Count(ctx).Return(int64(6), nil)
	mockJobs.EXPECT().CountActive(ctx).Return(int64(4), nil)
	mockApplications.EXPECT().Count(ctx).Return(int64(9), nil)

	resp, err := service.Health(ctx)
	assert.NoError(t, err)

	assert.Equal(t, "CareerNest API running", resp.Status)
	assert.Equal(t, int64(3), resp.TotalCompanies)
	assert.Equal(t, int64(6), resp.TotalJobs)
	assert.Equal(t, int64(4), resp.ActiveJobs)
	assert.Equal(t, int64(9), resp.TotalApplications)
}
