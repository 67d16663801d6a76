package application_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"careernest/internal/application"
	applicationerrors "careernest/internal/application/errors"
	applicationMock "careernest/internal/application/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_Apply(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := applicationMock.NewMockService(ctrl)
	handler := application.NewHandler(mockService)

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().Submit(gomock.Any(), "j1", gomock.Any()).
			Return(&application.ApplicationResponse{ID: "a1", Status: application.StatusPending}, nil)

		body, _ := json.Marshal(application.SubmitApplicationRequest{
			ApplicantName:  "Asha",
			ApplicantEmail: "a@x.com",
			ResumeURL:      "http://example.com/resume.pdf",
		})

		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.POST("/jobs/:id/apply", handler.Apply)

		req, _ := http.NewRequest(http.MethodPost, "/jobs/j1/apply", bytes.NewBuffer(body))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Duplicate Is Conflict", func(t *testing.T) {
		mockService.EXPECT().Submit(gomock.Any(), "j1", gomock.Any()).
			Return(nil, applicationerrors.ErrAlreadyApplied)

		body, _ := json.Marshal(application.SubmitApplicationRequest{
			ApplicantName:  "Asha",
			ApplicantEmail: "a@x.com",
			ResumeURL:      "http://example.com/resume.pdf",
		})

		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.POST("/jobs/:id/apply", handler.Apply)

		req, _ := http.NewRequest(http.MethodPost, "/jobs/j1/apply", bytes.NewBuffer(body))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)

		var res map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, false, res["ok"])
		errBody := res["error"].(map[string]interface{})
		assert.Equal(t, "CONFLICT", errBody["code"])
	})

	t.Run("Missing Email Is Bad Request", func(t *testing.T) {
		body := []byte(`{"applicant_name":"Asha","resume_url":"http://example.com/r.pdf"}`)

		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.POST("/jobs/:id/apply", handler.Apply)

		req, _ := http.NewRequest(http.MethodPost, "/jobs/j1/apply", bytes.NewBuffer(body))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_ApplyCompat(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := applicationMock.NewMockService(ctrl)
	handler := application.NewHandler(mockService)

	t.Run("Remaps Field Names", func(t *testing.T) {
		mockService.EXPECT().Submit(gomock.Any(), "j1", gomock.Any()).DoAndReturn(
			func(ctx context.Context, jobID string, req application.SubmitApplicationRequest) (*application.ApplicationResponse, error) {
				assert.Equal(t, "Asha", req.ApplicantName)
				assert.Equal(t, "a@x.com", req.ApplicantEmail)
				assert.Equal(t, 2.5, req.YearsOfExperience)
				assert.Equal(t, "IIT Delhi", *req.CurrentInstitution)
				return &application.ApplicationResponse{ID: "a1"}, nil
			})

		body := []byte(`{
			"job_id": "j1",
			"full_name": "Asha",
			"email": "a@x.com",
			"resume_url": "http://example.com/resume.pdf",
			"years_experience": 2.5,
			"institution": "IIT Delhi"
		}`)

		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.POST("/applications", handler.ApplyCompat)

		req, _ := http.NewRequest(http.MethodPost, "/applications", bytes.NewBuffer(body))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := applicationMock.NewMockService(ctrl)
	handler := application.NewHandler(mockService)

	t.Run("Invalid Status Is Bad Request", func(t *testing.T) {
		mockService.EXPECT().UpdateStatus(gomock.Any(), "a1", gomock.Any()).
			Return(nil, applicationerrors.ErrInvalidStatus)

		body := []byte(`{"status":"Archived"}`)

		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.PUT("/applications/:id/status", handler.UpdateStatus)

		req, _ := http.NewRequest(http.MethodPut, "/applications/a1/status", bytes.NewBuffer(body))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
