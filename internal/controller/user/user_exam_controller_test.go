package user

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lshigami/examsched/config"
	"github.com/lshigami/examsched/internal/controller"
	"github.com/lshigami/examsched/internal/dto"
	"github.com/lshigami/examsched/internal/repository"
	"github.com/lshigami/examsched/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{Timezone: "UTC", RecentExamsLimit: 5}
	require.NoError(t, controller.RegisterValidators(cfg))

	router := gin.New()
	NewUserExamController(service.NewBookingService(repository.NewMemoryExamRepository(), cfg)).
		RegisterRoutes(router.Group("/api/v1"))
	return router
}

func post(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func booking(daysAhead int) gin.H {
	return gin.H{
		"student_name":    "Lucas Martins",
		"exam_date":       time.Now().UTC().AddDate(0, 0, daysAhead).Format(time.DateOnly),
		"computer_number": 14,
		"shift":           "morning",
		"class_time":      "Segunda a Quinta - Manhã - 07:30 - 08:30",
		"created_by":      uuid.NewString(),
	}
}

func TestBookAndGetExam(t *testing.T) {
	router := setupRouter(t)

	w := post(router, "/api/v1/exams", booking(3))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var booked dto.ExamResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &booked))
	assert.Equal(t, "P1", booked.ExamType)
	assert.Equal(t, "mon_to_thu", booked.ClassTimePattern)

	w = get(router, "/api/v1/exams/"+booked.ID.String())
	require.Equal(t, http.StatusOK, w.Code)
	var fetched dto.ExamResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, booked.ID, fetched.ID)

	w = get(router, "/api/v1/exams/"+uuid.NewString())
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookExam_BindingErrors(t *testing.T) {
	router := setupRouter(t)

	tests := []struct {
		name  string
		field string
		value interface{}
	}{
		{"past date", "exam_date", time.Now().UTC().AddDate(0, 0, -2).Format(time.DateOnly)},
		{"computer", "computer_number", 15},
		{"shift", "shift", "evening"},
		{"class time", "class_time", "Domingo - Manhã"},
		{"exam type", "exam_type", "P2"},
		{"created by", "created_by", "not-a-uuid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := booking(3)
			body[tt.field] = tt.value
			w := post(router, "/api/v1/exams", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func TestGetRecentExams(t *testing.T) {
	router := setupRouter(t)
	for i := 0; i < 6; i++ {
		require.Equal(t, http.StatusCreated, post(router, "/api/v1/exams", booking(i+1)).Code)
	}

	w := get(router, "/api/v1/exams/recent")
	require.Equal(t, http.StatusOK, w.Code)
	var recent []dto.ExamResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recent))
	assert.Len(t, recent, 5)

	w = get(router, "/api/v1/exams/recent?limit=2")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recent))
	assert.Len(t, recent, 2)

	assert.Equal(t, http.StatusBadRequest, get(router, "/api/v1/exams/recent?limit=abc").Code)
}
