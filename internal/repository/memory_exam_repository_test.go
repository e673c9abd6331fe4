package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/examsched/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createExam(t *testing.T, repo ExamRepository, name string, day time.Time, computer int) *model.Exam {
	exam := &model.Exam{
		StudentName:      name,
		ExamDate:         day,
		ExamType:         model.ExamTypePrimary,
		Status:           model.ExamStatusPending,
		ClassTimePattern: model.PatternMonToThu,
		ComputerNumber:   computer,
		Shift:            model.ShiftMorning,
		ClassTime:        "Segunda a Quinta - Manhã - 07:30 - 08:30",
		CreatedBy:        uuid.New(),
	}
	require.NoError(t, repo.Create(context.Background(), exam))
	return exam
}

func TestMemoryExamRepository_CreateAssignsIdentity(t *testing.T) {
	repo := NewMemoryExamRepository()
	exam := createExam(t, repo, "Ana", time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC), 1)

	assert.NotEqual(t, uuid.Nil, exam.ID)
	assert.False(t, exam.CreatedAt.IsZero())

	got, err := repo.FindByID(context.Background(), exam.ID)
	require.NoError(t, err)
	assert.Equal(t, exam.StudentName, got.StudentName)

	_, err = repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrExamNotFound)
}

func TestMemoryExamRepository_FindPendingOrdersByDate(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryExamRepository()
	late := createExam(t, repo, "Late", time.Date(2024, 3, 21, 0, 0, 0, 0, time.UTC), 1)
	early := createExam(t, repo, "Early", time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC), 2)
	done := createExam(t, repo, "Done", time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC), 3)

	approved := model.ExamStatusApproved
	require.NoError(t, repo.Update(ctx, done.ID, ExamPatch{Status: &approved}))

	pending, err := repo.FindPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, early.ID, pending[0].ID)
	assert.Equal(t, late.ID, pending[1].ID)
}

func TestMemoryExamRepository_FindRecent(t *testing.T) {
	repo := NewMemoryExamRepository()
	day := time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC)
	var ids []uuid.UUID
	for i := 1; i <= 7; i++ {
		ids = append(ids, createExam(t, repo, "S", day, i).ID)
	}

	recent, err := repo.FindRecent(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, recent, 5)
	assert.Equal(t, ids[6], recent[0].ID)
	assert.Equal(t, ids[2], recent[4].ID)
}

func TestMemoryExamRepository_Filter(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryExamRepository()
	mon := time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC)
	tue := mon.AddDate(0, 0, 1)
	joao := createExam(t, repo, "João Silva", mon, 5)
	maria := createExam(t, repo, "Maria Souza", tue, 5)
	createExam(t, repo, "Pedro Lima", tue, 7)

	failed := model.ExamStatusFailed
	require.NoError(t, repo.Update(ctx, maria.ID, ExamPatch{Status: &failed}))

	tests := []struct {
		name   string
		filter ExamFilter
		want   int
	}{
		{name: "all", filter: ExamFilter{}, want: 3},
		{name: "student case insensitive", filter: ExamFilter{StudentName: "joão"}, want: 1},
		{name: "status", filter: ExamFilter{Status: model.ExamStatusFailed}, want: 1},
		{name: "computer", filter: ExamFilter{ComputerNumber: 5}, want: 2},
		{name: "date", filter: ExamFilter{ExamDate: &tue}, want: 2},
		{name: "combined", filter: ExamFilter{ComputerNumber: 5, ExamDate: &mon}, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Filter(ctx, tt.filter)
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}

	got, _ := repo.Filter(ctx, ExamFilter{StudentName: "silva"})
	require.Len(t, got, 1)
	assert.Equal(t, joao.ID, got[0].ID)
}

func TestMemoryExamRepository_UpdatePatchesOnlyGivenFields(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryExamRepository()
	exam := createExam(t, repo, "Ana", time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC), 1)

	rd := time.Date(2024, 3, 19, 0, 0, 0, 0, time.UTC)
	failed := model.ExamStatusFailed
	require.NoError(t, repo.Update(ctx, exam.ID, ExamPatch{Status: &failed, RecoveryDate: &rd}))

	got, err := repo.FindByID(ctx, exam.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ExamStatusFailed, got.Status)
	require.NotNil(t, got.RecoveryDate)
	assert.True(t, rd.Equal(*got.RecoveryDate))
	assert.True(t, exam.ExamDate.Equal(got.ExamDate))
	assert.Equal(t, "Ana", got.StudentName)

	err = repo.Update(ctx, uuid.New(), ExamPatch{Status: &failed})
	assert.ErrorIs(t, err, ErrExamNotFound)
}

func TestMemoryExamRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryExamRepository()
	exam := createExam(t, repo, "Ana", time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC), 1)

	got, _ := repo.FindByID(ctx, exam.ID)
	got.StudentName = "changed"

	again, _ := repo.FindByID(ctx, exam.ID)
	assert.Equal(t, "Ana", again.StudentName)
}

func TestMemoryExamRepository_FindRecoveryOf(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryExamRepository()
	parent := createExam(t, repo, "Ana", time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC), 1)

	_, err := repo.FindRecoveryOf(ctx, parent.ID)
	assert.ErrorIs(t, err, ErrExamNotFound)

	child := &model.Exam{StudentName: "Ana", ExamType: model.ExamTypeRecovery1, ParentExamID: &parent.ID}
	require.NoError(t, repo.Create(ctx, child))

	got, err := repo.FindRecoveryOf(ctx, parent.ID)
	require.NoError(t, err)
	assert.Equal(t, child.ID, got.ID)
}
