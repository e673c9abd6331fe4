// Package outcome decides what recording a pass or fail does to an exam.
// It does no I/O: callers apply the returned Result to their record store.
package outcome

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/examsched/internal/model"
	"github.com/lshigami/examsched/internal/schedule"
)

var (
	ErrInvalidState = errors.New("exam is not awaiting a result")
	ErrNoRecovery   = errors.New("exam type has no further recovery")
)

// transition is one row of the exam lifecycle. A zero Recovery means the
// failing record is terminal.
type transition struct {
	From     model.ExamType
	Passed   bool
	Status   model.ExamStatus
	Recovery model.ExamType
}

var transitions = []transition{
	{From: model.ExamTypePrimary, Passed: true, Status: model.ExamStatusApproved},
	{From: model.ExamTypePrimary, Passed: false, Status: model.ExamStatusFailed, Recovery: model.ExamTypeRecovery1},
	{From: model.ExamTypeRecovery1, Passed: true, Status: model.ExamStatusApproved},
	{From: model.ExamTypeRecovery1, Passed: false, Status: model.ExamStatusFailed, Recovery: model.ExamTypeRecovery2},
	{From: model.ExamTypeRecovery2, Passed: true, Status: model.ExamStatusApproved},
	{From: model.ExamTypeRecovery2, Passed: false, Status: model.ExamStatusFailed},
}

func transitionFor(from model.ExamType, passed bool) (transition, bool) {
	for _, tr := range transitions {
		if tr.From == from && tr.Passed == passed {
			return tr, true
		}
	}
	return transition{}, false
}

// Update is the change to apply to the exam the outcome was recorded for.
type Update struct {
	Status       model.ExamStatus
	RecoveryDate *time.Time
}

type Result struct {
	Update Update
	// Recovery is the follow-up exam to create, nil when none is due.
	Recovery *model.Exam
}

// Terminal reports whether no outcome can be recorded for the exam anymore.
func Terminal(exam model.Exam) bool {
	return exam.Status == model.ExamStatusApproved ||
		(exam.Status == model.ExamStatusFailed && exam.ExamType == model.ExamTypeRecovery2)
}

// Decide computes the effect of recording passed for exam. Only pending exams
// accept an outcome.
func Decide(exam model.Exam, passed bool) (Result, error) {
	if exam.Status != model.ExamStatusPending {
		return Result{}, fmt.Errorf("%w: exam %s is %s", ErrInvalidState, exam.ID, exam.Status)
	}
	tr, ok := transitionFor(exam.ExamType, passed)
	if !ok {
		return Result{}, fmt.Errorf("%w: exam %s has unknown type %q", ErrInvalidState, exam.ID, exam.ExamType)
	}

	res := Result{Update: Update{Status: tr.Status}}
	if tr.Recovery == "" {
		return res, nil
	}

	recoveryDate, err := schedule.RecoveryDate(exam.ExamDate, exam.ClassTimePattern)
	if err != nil {
		return Result{}, fmt.Errorf("scheduling recovery for exam %s: %w", exam.ID, err)
	}
	res.Update.RecoveryDate = &recoveryDate
	res.Recovery = newRecovery(exam, tr.Recovery, recoveryDate)
	return res, nil
}

// RecoveryFor rebuilds the follow-up exam of an already failed exam. The
// stored recovery date wins over a recomputed one so that a manual override
// survives a retry.
func RecoveryFor(failed model.Exam) (*model.Exam, error) {
	if failed.Status != model.ExamStatusFailed {
		return nil, fmt.Errorf("%w: exam %s is %s", ErrInvalidState, failed.ID, failed.Status)
	}
	next, ok := failed.ExamType.Next()
	if !ok {
		return nil, fmt.Errorf("%w: exam %s is %s", ErrNoRecovery, failed.ID, failed.ExamType)
	}

	var recoveryDate time.Time
	if failed.RecoveryDate != nil {
		recoveryDate = *failed.RecoveryDate
	} else {
		d, err := schedule.RecoveryDate(failed.ExamDate, failed.ClassTimePattern)
		if err != nil {
			return nil, fmt.Errorf("scheduling recovery for exam %s: %w", failed.ID, err)
		}
		recoveryDate = d
	}
	return newRecovery(failed, next, recoveryDate), nil
}

func newRecovery(failed model.Exam, examType model.ExamType, date time.Time) *model.Exam {
	recovery := &model.Exam{
		StudentName:      failed.StudentName,
		Module:           failed.Module,
		ExamDate:         date,
		ExamType:         examType,
		Status:           model.ExamStatusPending,
		ClassTimePattern: failed.ClassTimePattern,
		ComputerNumber:   failed.ComputerNumber,
		Shift:            failed.Shift,
		ClassTime:        failed.ClassTime,
		CreatedBy:        failed.CreatedBy,
	}
	if failed.ID != uuid.Nil {
		parent := failed.ID
		recovery.ParentExamID = &parent
	}
	return recovery
}
