package bookmark_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"careernest/internal/bookmark"
	bookmarkerrors "careernest/internal/bookmark/errors"
	bookmarkMock "careernest/internal/bookmark/mock"
	"careernest/internal/job"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := bookmarkMock.NewMockService(ctrl)
	handler := bookmark.NewHandler(mockService)

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().Create(gomock.Any(), bookmark.BookmarkRequest{
			StudentEmail: "a@x.com",
			JobID:        "j1",
		}).Return(nil)

		body, _ := json.Marshal(bookmark.BookmarkRequest{StudentEmail: "a@x.com", JobID: "j1"})

		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.POST("/bookmarks", handler.Create)

		req, _ := http.NewRequest(http.MethodPost, "/bookmarks", bytes.NewBuffer(body))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Duplicate Is Conflict", func(t *testing.T) {
		mockService.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(bookmarkerrors.ErrAlreadyBookmarked)

		body, _ := json.Marshal(bookmark.BookmarkRequest{StudentEmail: "a@x.com", JobID: "j1"})

		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.POST("/bookmarks", handler.Create)

		req, _ := http.NewRequest(http.MethodPost, "/bookmarks", bytes.NewBuffer(body))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Invalid Email Is Bad Request", func(t *testing.T) {
		body := []byte(`{"student_email":"not-an-email","job_id":"j1"}`)

		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.POST("/bookmarks", handler.Create)

		req, _ := http.NewRequest(http.MethodPost, "/bookmarks", bytes.NewBuffer(body))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := bookmarkMock.NewMockService(ctrl)
	handler := bookmark.NewHandler(mockService)

	t.Run("Not Found", func(t *testing.T) {
		mockService.EXPECT().Delete(gomock.Any(), gomock.Any()).
			Return(bookmarkerrors.ErrBookmarkNotFound)

		body, _ := json.Marshal(bookmark.BookmarkRequest{StudentEmail: "a@x.com", JobID: "j1"})

		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.DELETE("/bookmarks", handler.Delete)

		req, _ := http.NewRequest(http.MethodDelete, "/bookmarks", bytes.NewBuffer(body))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_ListByStudent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := bookmarkMock.NewMockService(ctrl)
	handler := bookmark.NewHandler(mockService)

	mockService.EXPECT().ListByStudent(gomock.Any(), "a@x.com").
		Return(&bookmark.BookmarkListResponse{
			Bookmarks: []job.JobResponse{{ID: "j1"}},
			Total:     1,
		}, nil)

	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)
	r.GET("/students/:email/bookmarks", handler.ListByStudent)

	req, _ := http.NewRequest(http.MethodGet, "/students/a@x.com/bookmarks", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, true, res["ok"])
	data := res["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["total"])
}
