package company_test

import (
	"context"
	"testing"

	"careernest/internal/company"
	companyerrors "careernest/internal/company/errors"
	companyMock "careernest/internal/company/mock"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/mock/gomock"
)

func noActiveJobs(ctx context.Context, companyID string) (any, int, error) {
	return []struct{}{}, 0, nil
}

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := companyMock.NewMockRepository(ctrl)
	service := company.NewService(mockRepo, noActiveJobs)
	ctx := context.Background()

	var stored *company.Company
	mockRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, c *company.Company) error {
			stored = c
			return nil
		})

	resp, err := service.Create(ctx, company.CreateCompanyRequest{
		Name:     "Acme",
		Industry: "Technology",
		Location: "Bengaluru",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, stored.ID)
	assert.Equal(t, int64(0), stored.TotalJobsPosted)
	assert.False(t, stored.CreatedAt.IsZero())
	assert.Equal(t, stored.ID, resp.ID)
	assert.Equal(t, "Acme", resp.Name)
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := companyMock.NewMockRepository(ctrl)
	service := company.NewService(mockRepo, noActiveJobs)
	ctx := context.Background()

	mockRepo.EXPECT().FindAll(ctx).Return([]company.Company{
		{ID: "c1", Name: "Acme"},
		{ID: "c2", Name: "Globex"},
	}, nil)

	resp, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), resp.Total)
	assert.Equal(t, "Acme", resp.Companies[0].Name)
}

func TestService_GetDetail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("Not Found", func(t *testing.T) {
		mockRepo := companyMock.NewMockRepository(ctrl)
		service := company.NewService(mockRepo, noActiveJobs)

		mockRepo.EXPECT().FindByID(ctx, "missing").Return(nil, mongo.ErrNoDocuments)

		_, err := service.GetDetail(ctx, "missing")

		assert.ErrorIs(t, err, companyerrors.ErrCompanyNotFound)
	})

	t.Run("Bundles Active Listings", func(t *testing.T) {
		mockRepo := companyMock.NewMockRepository(ctrl)
		activeJobs := func(ctx context.Context, companyID string) (any, int, error) {
			assert.Equal(t, "c1", companyID)
			return []string{"j1", "j2"}, 2, nil
		}
		service := company.NewService(mockRepo, activeJobs)

		mockRepo.EXPECT().FindByID(ctx, "c1").Return(&company.Company{ID: "c1", Name: "Acme"}, nil)

		resp, err := service.GetDetail(ctx, "c1")

		assert.NoError(t, err)
		assert.Equal(t, "Acme", resp.Company.Name)
		assert.Equal(t, 2, resp.ActiveJobsCount)
		assert.Equal(t, []string{"j1", "j2"}, resp.ActiveJobs)
	})
}
