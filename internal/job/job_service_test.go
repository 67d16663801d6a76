package job_test

import (
	"context"
	"testing"

	"careernest/internal/company"
	companyMock "careernest/internal/company/mock"
	"careernest/internal/job"
	joberrors "careernest/internal/job/errors"
	jobMock "careernest/internal/job/mock"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/mock/gomock"
)

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := jobMock.NewMockRepository(ctrl)
	mockCompanies := companyMock.NewMockRepository(ctrl)
	service := job.NewService(mockRepo, mockCompanies)
	ctx := context.Background()

	req := job.CreateJobRequest{
		CompanyID:       "c1",
		Title:           "Backend Engineer",
		Category:        job.CategoryTechnology,
		JobType:         job.TypeFullTime,
		ExperienceLevel: job.LevelMid,
		Location:        "Bengaluru",
		Description:     "Build services",
		Requirements:    []string{"Go"},
	}

	t.Run("Success", func(t *testing.T) {
		comp := &company.Company{ID: "c1", Name: "Acme"}
		mockCompanies.EXPECT().FindByID(ctx, "c1").Return(comp, nil)

		var created *job.Job
		mockRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, j *job.Job) error {
				created = j
				return nil
			})
		mockCompanies.EXPECT().IncrementJobsPosted(ctx, "c1", int64(1)).Return(nil)
		mockCompanies.EXPECT().FindByID(ctx, "c1").Return(comp, nil)

		resp, err := service.Create(ctx, req)

		assert.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.True(t, created.IsActive)
		assert.Equal(t, "INR", created.SalaryCurrency)
		assert.Equal(t, 1, created.Openings)
		assert.Equal(t, int64(0), created.Views)
		assert.Equal(t, int64(0), created.ApplicationsCount)
		assert.Equal(t, "Acme", resp.Company.Name)
	})

	t.Run("Company Not Found", func(t *testing.T) {
		mockCompanies.EXPECT().FindByID(ctx, "c1").Return(nil, mongo.ErrNoDocuments)

		_, err := service.Create(ctx, req)

		assert.ErrorIs(t, err, joberrors.ErrCompanyNotFound)
	})

	t.Run("Counter Failure Does Not Fail Create", func(t *testing.T) {
		comp := &company.Company{ID: "c1", Name: "Acme"}
		mockCompanies.EXPECT().FindByID(ctx, "c1").Return(comp, nil)
		mockRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		mockCompanies.EXPECT().IncrementJobsPosted(ctx, "c1", int64(1)).Return(assert.AnError)
		mockCompanies.EXPECT().FindByID(ctx, "c1").Return(comp, nil)

		_, err := service.Create(ctx, req)

		assert.NoError(t, err)
	})
}

func TestService_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := jobMock.NewMockRepository(ctrl)
	mockCompanies := companyMock.NewMockRepository(ctrl)
	service := job.NewService(mockRepo, mockCompanies)
	ctx := context.Background()

	t.Run("Pagination Meta", func(t *testing.T) {
		mockRepo.EXPECT().Search(ctx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, q job.SearchQuery) ([]job.Job, int64, error) {
				assert.Equal(t, int64(20), q.Skip())
				return []job.Job{{ID: "j1", CompanyID: "c1"}}, 25, nil
			})
		mockCompanies.EXPECT().FindByID(ctx, "c1").Return(&company.Company{ID: "c1", Name: "Acme"}, nil)

		results, meta, err := service.Search(ctx, job.ListJobsQuery{Page: 3, PageSize: 10})

		assert.NoError(t, err)
		assert.Len(t, results, 1)
		assert.Equal(t, int64(25), meta.Total)
		assert.Equal(t, 3, meta.TotalPages)
		assert.Equal(t, "Acme", results[0].Company.Name)
	})

	t.Run("Zero Matches Keeps One Page", func(t *testing.T) {
		mockRepo.EXPECT().Search(ctx, gomock.Any()).Return(nil, int64(0), nil)

		results, meta, err := service.Search(ctx, job.ListJobsQuery{})

		assert.NoError(t, err)
		assert.Empty(t, results)
		assert.Equal(t, int64(0), meta.Total)
		assert.Equal(t, 1, meta.TotalPages)
	})

	t.Run("Deleted Company Yields Nil Company", func(t *testing.T) {
		mockRepo.EXPECT().Search(ctx, gomock.Any()).Return([]job.Job{{ID: "j1", CompanyID: "gone"}}, int64(1), nil)
		mockCompanies.EXPECT().FindByID(ctx, "gone").Return(nil, mongo.ErrNoDocuments)

		results, _, err := service.Search(ctx, job.ListJobsQuery{})

		assert.NoError(t, err)
		assert.Nil(t, results[0].Company)
	})
}

func TestService_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := jobMock.NewMockRepository(ctrl)
	mockCompanies := companyMock.NewMockRepository(ctrl)
	service := job.NewService(mockRepo, mockCompanies)
	ctx := context.Background()

	t.Run("Returns Post-Increment Views", func(t *testing.T) {
		comp := &company.Company{ID: "c1", Name: "Acme"}
		for _, views := range []int64{8, 9, 10} {
			mockRepo.EXPECT().FindByIDAndIncrementViews(ctx, "j1").
				Return(&job.Job{ID: "j1", CompanyID: "c1", Views: views}, nil)
			mockCompanies.EXPECT().FindByID(ctx, "c1").Return(comp, nil)
		}

		for _, want := range []int64{8, 9, 10} {
			resp, err := service.GetByID(ctx, "j1")
			assert.NoError(t, err)
			assert.Equal(t, want, resp.Views)
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		mockRepo.EXPECT().FindByIDAndIncrementViews(ctx, "missing").Return(nil, mongo.ErrNoDocuments)

		_, err := service.GetByID(ctx, "missing")

		assert.ErrorIs(t, err, joberrors.ErrJobNotFound)
	})
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := jobMock.NewMockRepository(ctrl)
	mockCompanies := companyMock.NewMockRepository(ctrl)
	service := job.NewService(mockRepo, mockCompanies)
	ctx := context.Background()

	t.Run("Only Supplied Fields Are Written", func(t *testing.T) {
		title := "Senior Backend Engineer"
		active := false
		req := job.UpdateJobRequest{Title: &title, IsActive: &active}

		mockRepo.EXPECT().UpdateFields(ctx, "j1", gomock.Any()).DoAndReturn(
			func(ctx context.Context, id string, fields map[string]interface{}) error {
				assert.Equal(t, title, fields["title"])
				assert.Equal(t, false, fields["is_active"])
				assert.Contains(t, fields, "updated_at")
				assert.Len(t, fields, 3)
				return nil
			})
		mockRepo.EXPECT().FindByID(ctx, "j1").
			Return(&job.Job{ID: "j1", CompanyID: "c1", Title: title}, nil)
		mockCompanies.EXPECT().FindByID(ctx, "c1").Return(&company.Company{ID: "c1"}, nil)

		resp, err := service.Update(ctx, "j1", req)

		assert.NoError(t, err)
		assert.Equal(t, title, resp.Title)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockRepo.EXPECT().UpdateFields(ctx, "missing", gomock.Any()).Return(mongo.ErrNoDocuments)

		_, err := service.Update(ctx, "missing", job.UpdateJobRequest{})

		assert.ErrorIs(t, err, joberrors.ErrJobNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := jobMock.NewMockRepository(ctrl)
	mockCompanies := companyMock.NewMockRepository(ctrl)
	service := job.NewService(mockRepo, mockCompanies)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo.EXPECT().Delete(ctx, "j1").Return(nil)

		assert.NoError(t, service.Delete(ctx, "j1"))
	})

	t.Run("Not Found", func(t *testing.T) {
		mockRepo.EXPECT().Delete(ctx, "missing").Return(mongo.ErrNoDocuments)

		assert.ErrorIs(t, service.Delete(ctx, "missing"), joberrors.ErrJobNotFound)
	})
}

func TestService_ListActiveByCompany(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := jobMock.NewMockRepository(ctrl)
	mockCompanies := companyMock.NewMockRepository(ctrl)
	service := job.NewService(mockRepo, mockCompanies)
	ctx := context.Background()

	mockRepo.EXPECT().FindActiveByCompany(ctx, "c1").
		Return([]job.Job{{ID: "j1"}, {ID: "j2"}}, nil)

	results, err := service.ListActiveByCompany(ctx, "c1")

	assert.NoError(t, err)
	assert.Len(t, results, 2)
	// Listings under a company are not re-enriched with that company.
	assert.Nil(t, results[0].Company)
}
