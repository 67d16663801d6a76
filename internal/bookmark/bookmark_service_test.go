package bookmark_test

import (
	"context"
	"testing"

	"careernest/internal/bookmark"
	bookmarkerrors "careernest/internal/bookmark/errors"
	bookmarkMock "careernest/internal/bookmark/mock"
	"careernest/internal/company"
	companyMock "careernest/internal/company/mock"
	"careernest/internal/job"
	jobMock "careernest/internal/job/mock"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/mock/gomock"
)

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookmarkMock.NewMockRepository(ctrl)
	mockJobs := jobMock.NewMockRepository(ctrl)
	mockCompanies := companyMock.NewMockRepository(ctrl)
	service := bookmark.NewService(mockRepo, mockJobs, mockCompanies)
	ctx := context.Background()

	req := bookmark.BookmarkRequest{StudentEmail: "a@x.com", JobID: "j1"}

	t.Run("Job Not Found", func(t *testing.T) {
		mockJobs.EXPECT().FindByID(ctx, "j1").Return(nil, mongo.ErrNoDocuments)

		err := service.Create(ctx, req)

		assert.ErrorIs(t, err, bookmarkerrors.ErrJobNotFound)
	})

	t.Run("Already Bookmarked", func(t *testing.T) {
		mockJobs.EXPECT().FindByID(ctx, "j1").Return(&job.Job{ID: "j1"}, nil)
		mockRepo.EXPECT().Exists(ctx, "a@x.com", "j1").Return(true, nil)

		err := service.Create(ctx, req)

		assert.ErrorIs(t, err, bookmarkerrors.ErrAlreadyBookmarked)
	})

	t.Run("Success", func(t *testing.T) {
		mockJobs.EXPECT().FindByID(ctx, "j1").Return(&job.Job{ID: "j1"}, nil)
		mockRepo.EXPECT().Exists(ctx, "a@x.com", "j1").Return(false, nil)

		var stored *bookmark.Bookmark
		mockRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, bm *bookmark.Bookmark) error {
				stored = bm
				return nil
			})

		err := service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "a@x.com", stored.StudentEmail)
		assert.Equal(t, "j1", stored.JobID)
		assert.False(t, stored.SavedAt.IsZero())
	})
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookmarkMock.NewMockRepository(ctrl)
	mockJobs := jobMock.NewMockRepository(ctrl)
	mockCompanies := companyMock.NewMockRepository(ctrl)
	service := bookmark.NewService(mockRepo, mockJobs, mockCompanies)
	ctx := context.Background()

	req := bookmark.BookmarkRequest{StudentEmail: "a@x.com", JobID: "j1"}

	t.Run("Not Found", func(t *testing.T) {
		mockRepo.EXPECT().Delete(ctx, "a@x.com", "j1").Return(mongo.ErrNoDocuments)

		err := service.Delete(ctx, req)

		assert.ErrorIs(t, err, bookmarkerrors.ErrBookmarkNotFound)
	})

	t.Run("Success", func(t *testing.T) {
		mockRepo.EXPECT().Delete(ctx, "a@x.com", "j1").Return(nil)

		assert.NoError(t, service.Delete(ctx, req))
	})
}

func TestService_ListByStudent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookmarkMock.NewMockRepository(ctrl)
	mockJobs := jobMock.NewMockRepository(ctrl)
	mockCompanies := companyMock.NewMockRepository(ctrl)
	service := bookmark.NewService(mockRepo, mockJobs, mockCompanies)
	ctx := context.Background()

	mockRepo.EXPECT().FindByStudent(ctx, "a@x.com").Return([]bookmark.Bookmark{
		{StudentEmail: "a@x.com", JobID: "j1"},
		{StudentEmail: "a@x.com", JobID: "gone"},
		{StudentEmail: "a@x.com", JobID: "j2"},
	}, nil)

	mockJobs.EXPECT().FindByID(ctx, "j1").Return(&job.Job{ID: "j1", CompanyID: "c1"}, nil)
	mockJobs.EXPECT().FindByID(ctx, "gone").Return(nil, mongo.ErrNoDocuments)
	mockJobs.EXPECT().FindByID(ctx, "j2").Return(&job.Job{ID: "j2", CompanyID: "c1"}, nil)
	mockCompanies.EXPECT().FindByID(ctx, "c1").
		Return(&company.Company{ID: "c1", Name: "Acme"}, nil).Times(2)

	resp, err := service.ListByStudent(ctx, "a@x.com")

	assert.NoError(t, err)
	// The bookmark pointing at the deleted job is dropped from the listing.
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "j1", resp.Bookmarks[0].ID)
	assert.Equal(t, "j2", resp.Bookmarks[1].ID)
	assert.Equal(t, "Acme", resp.Bookmarks[0].Company.Name)
}
