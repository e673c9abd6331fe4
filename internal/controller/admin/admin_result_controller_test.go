package admin

import (
	"bytes"
	"context"
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
	"github.com/lshigami/examsched/internal/model"
	"github.com/lshigami/examsched/internal/repository"
	"github.com/lshigami/examsched/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) (*gin.Engine, repository.ExamRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{Timezone: "UTC", RecentExamsLimit: 5}
	require.NoError(t, controller.RegisterValidators(cfg))

	repo := repository.NewMemoryExamRepository()
	router := gin.New()
	admin := router.Group("/api/v1/admin")
	NewAdminResultController(service.NewResultService(repo, cfg)).RegisterRoutes(admin)
	NewAdminExamController(service.NewBookingService(repo, cfg)).RegisterRoutes(admin)
	return router, repo
}

func seed(t *testing.T, repo repository.ExamRepository, examType model.ExamType, status model.ExamStatus) model.Exam {
	t.Helper()
	exam := model.Exam{
		StudentName:      "Beatriz Alves",
		ExamDate:         time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC),
		ExamType:         examType,
		Status:           status,
		ClassTimePattern: model.PatternMonWed,
		ComputerNumber:   4,
		Shift:            model.ShiftMorning,
		ClassTime:        "Segunda e Quarta - Manhã - 09:00 - 11:00",
		CreatedBy:        uuid.New(),
	}
	require.NoError(t, repo.Create(context.Background(), &exam))
	return exam
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRecordOutcome_Fail(t *testing.T) {
	router, repo := setupRouter(t)
	exam := seed(t, repo, model.ExamTypePrimary, model.ExamStatusPending)

	w := doJSON(router, http.MethodPost, "/api/v1/admin/results/"+exam.ID.String()+"/outcome", gin.H{"passed": false})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.OutcomeResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "failed", resp.Exam.Status)
	require.NotNil(t, resp.Recovery)
	// Monday exam, Monday/Wednesday class: next slot is Wednesday
	assert.Equal(t, "2024-03-20", resp.Recovery.ExamDate)
	assert.Equal(t, "Rec.1", resp.Recovery.ExamType)

	w = doJSON(router, http.MethodGet, "/api/v1/admin/results/pending", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var pending []dto.ExamResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pending))
	require.Len(t, pending, 1)
	assert.Equal(t, resp.Recovery.ID, pending[0].ID)
}

func TestRecordOutcome_Errors(t *testing.T) {
	router, repo := setupRouter(t)
	approved := seed(t, repo, model.ExamTypePrimary, model.ExamStatusApproved)
	pending := seed(t, repo, model.ExamTypePrimary, model.ExamStatusPending)

	tests := []struct {
		name string
		path string
		body interface{}
		want int
	}{
		{"not pending", "/api/v1/admin/results/" + approved.ID.String() + "/outcome", gin.H{"passed": true}, http.StatusConflict},
		{"missing passed", "/api/v1/admin/results/" + pending.ID.String() + "/outcome", gin.H{}, http.StatusBadRequest},
		{"bad id", "/api/v1/admin/results/42/outcome", gin.H{"passed": true}, http.StatusBadRequest},
		{"unknown id", "/api/v1/admin/results/" + uuid.NewString() + "/outcome", gin.H{"passed": true}, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.want, w.Code, w.Body.String())

			var errResp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
			assert.NotEmpty(t, errResp.Message)
		})
	}
}

func TestOverrideRecoveryDate(t *testing.T) {
	router, repo := setupRouter(t)
	exam := seed(t, repo, model.ExamTypeRecovery1, model.ExamStatusPending)
	path := "/api/v1/admin/results/" + exam.ID.String() + "/recovery-date"

	w := doJSON(router, http.MethodPut, path, gin.H{"date": "2024-04-02"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp dto.ExamResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2024-04-02", resp.ExamDate)
	require.NotNil(t, resp.RecoveryDate)
	assert.Equal(t, "2024-04-02", *resp.RecoveryDate)

	w = doJSON(router, http.MethodPut, path, gin.H{"date": "02/04/2024"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScheduleRecovery(t *testing.T) {
	router, repo := setupRouter(t)
	failed := seed(t, repo, model.ExamTypeRecovery1, model.ExamStatusFailed)
	path := "/api/v1/admin/results/" + failed.ID.String() + "/recovery"

	w := doJSON(router, http.MethodPost, path, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created dto.RecoveryResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.True(t, created.Created)
	assert.Equal(t, "Rec.2", created.Recovery.ExamType)

	w = doJSON(router, http.MethodPost, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var again dto.RecoveryResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &again))
	assert.False(t, again.Created)
	assert.Equal(t, created.Recovery.ID, again.Recovery.ID)

	final := seed(t, repo, model.ExamTypeRecovery2, model.ExamStatusFailed)
	w = doJSON(router, http.MethodPost, "/api/v1/admin/results/"+final.ID.String()+"/recovery", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestListAndUpdateExams(t *testing.T) {
	router, repo := setupRouter(t)
	exam := seed(t, repo, model.ExamTypePrimary, model.ExamStatusPending)
	seed(t, repo, model.ExamTypePrimary, model.ExamStatusApproved)

	w := doJSON(router, http.MethodGet, "/api/v1/admin/exams?student=beatriz&status=pending&date=2024-03-18", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var exams []dto.ExamResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &exams))
	require.Len(t, exams, 1)
	assert.Equal(t, exam.ID, exams[0].ID)

	w = doJSON(router, http.MethodGet, "/api/v1/admin/exams?computer=99", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPatch, "/api/v1/admin/exams/"+exam.ID.String(), gin.H{"class_time": "Terça e Quinta - Tarde - 14:00 - 15:00"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated dto.ExamResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, string(model.PatternTueThu), updated.ClassTimePattern)

	w = doJSON(router, http.MethodPatch, "/api/v1/admin/exams/"+exam.ID.String(), gin.H{"class_time": "Domingo"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
