package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/examsched/config"
	"github.com/lshigami/examsched/internal/model"
	"github.com/lshigami/examsched/internal/outcome"
	"github.com/lshigami/examsched/internal/repository"
	"github.com/lshigami/examsched/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*commandLine, repository.ExamRepository, *bytes.Buffer) {
	t.Helper()
	repo := repository.NewMemoryExamRepository()
	out := &bytes.Buffer{}
	cli := &commandLine{
		resultSvc: service.NewResultService(repo, &config.Config{Timezone: "UTC"}),
		out:       out,
	}
	return cli, repo, out
}

func seedExam(t *testing.T, repo repository.ExamRepository, status model.ExamStatus) model.Exam {
	t.Helper()
	exam := model.Exam{
		StudentName:      "Rafael Costa",
		ExamDate:         time.Date(2024, 3, 21, 0, 0, 0, 0, time.UTC), // Thursday
		ExamType:         model.ExamTypePrimary,
		Status:           status,
		ClassTimePattern: model.PatternMonToThu,
		ComputerNumber:   9,
		Shift:            model.ShiftAfternoon,
		ClassTime:        "Segunda a Quinta - Tarde - 13:30 - 14:30",
		CreatedBy:        uuid.New(),
	}
	require.NoError(t, repo.Create(context.Background(), &exam))
	return exam
}

type cliTest struct {
	name    string
	args    []string // without program name
	wantErr error
}

func Test_commandLine_usage(t *testing.T) {
	cli, _, _ := setup(t)

	tests := []cliTest{
		{name: "no command", args: nil, wantErr: errHelp},
		{name: "unknown command", args: []string{"delete"}, wantErr: errHelp},
		{name: "pass without id", args: []string{"pass"}, wantErr: errHelp},
		{name: "reschedule without date", args: []string{"reschedule", "-id", uuid.NewString()}, wantErr: errHelp},
		{name: "unknown flag", args: []string{"pending", "-all"}, wantErr: errHelp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(context.Background(), append([]string{"examctl"}, tt.args...))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func Test_commandLine_fail(t *testing.T) {
	cli, repo, out := setup(t)
	exam := seedExam(t, repo, model.ExamStatusPending)

	err := cli.run(context.Background(), []string{"examctl", "fail", "-id", exam.ID.String()})
	require.NoError(t, err)
	// Thursday exam, Monday-to-Thursday class: recovery on the next Monday
	assert.Contains(t, out.String(), "Recovery Rec.1 booked for 2024-03-25")

	stored, err := repo.FindByID(context.Background(), exam.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ExamStatusFailed, stored.Status)

	out.Reset()
	require.NoError(t, cli.run(context.Background(), []string{"examctl", "pending"}))
	assert.Contains(t, out.String(), "1 exam(s) awaiting a result")
	assert.Contains(t, out.String(), "Rafael Costa")

	out.Reset()
	require.NoError(t, cli.run(context.Background(), []string{"examctl", "recover", "-id", exam.ID.String()}))
	assert.Contains(t, out.String(), "already booked for 2024-03-25")
}

func Test_commandLine_pass(t *testing.T) {
	cli, repo, out := setup(t)
	exam := seedExam(t, repo, model.ExamStatusPending)

	require.NoError(t, cli.run(context.Background(), []string{"examctl", "pass", "-id", exam.ID.String()}))
	assert.Contains(t, out.String(), "Rafael Costa approved on P1")

	err := cli.run(context.Background(), []string{"examctl", "pass", "-id", exam.ID.String()})
	assert.ErrorIs(t, err, outcome.ErrInvalidState)
}

func Test_commandLine_reschedule(t *testing.T) {
	cli, repo, out := setup(t)
	exam := seedExam(t, repo, model.ExamStatusPending)

	err := cli.run(context.Background(), []string{"examctl", "reschedule", "-id", exam.ID.String(), "-date", "2024-04-01"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "moved to 2024-04-01")

	err = cli.run(context.Background(), []string{"examctl", "reschedule", "-id", "nope", "-date", "2024-04-01"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, errHelp)
}
