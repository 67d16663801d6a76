package stats_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"careernest/internal/stats"
	statsMock "careernest/internal/stats/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_Stats(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := statsMock.NewMockService(ctrl)
	handler := stats.NewHandler(mockService)

	mockService.EXPECT().Stats(gomock.Any()).Return(&stats.StatsResponse{
		Overview: stats.Overview{TotalJobs: 6, TotalCompanies: 3},
		JobsByCategory: map[string]int64{
			"Technology": 3,
		},
	}, nil)

	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)
	r.GET("/stats", handler.Stats)

	req, _ := http.NewRequest(http.MethodGet, "/stats", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, true, res["ok"])
	data := res["data"].(map[string]interface{})
	overview := data["overview"].(map[string]interface{})
	assert.Equal(t, float64(6), overview["total_jobs"])
}

func TestHandler_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := statsMock.NewMockService(ctrl)
	handler := stats.NewHandler(mockService)

	mockService.EXPECT().Health(gomock.Any()).Return(&stats.HealthResponse{
		Status:    "CareerNest API running",
		TotalJobs: 6,
	}, nil)

	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)
	r.GET("/", handler.Health)

	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	// Health is the one endpoint that skips the response envelope.
	var res map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "CareerNest API running", res["status"])
	assert.NotContains(t, res, "ok")
}
