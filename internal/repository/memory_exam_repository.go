package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/examsched/internal/model"
)

type memoryExamRepository struct {
	mutex sync.RWMutex
	table map[uuid.UUID]*model.Exam
	now   func() time.Time
}

// NewMemoryExamRepository returns an ExamRepository kept in process memory.
// Used by tests and by DATABASE_DRIVER=memory.
func NewMemoryExamRepository() ExamRepository {
	return &memoryExamRepository{
		table: make(map[uuid.UUID]*model.Exam),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (r *memoryExamRepository) query(keep func(model.Exam) bool) []model.Exam {
	exams := make([]model.Exam, 0, len(r.table))
	for _, e := range r.table {
		if keep == nil || keep(*e) {
			exams = append(exams, clone(*e))
		}
	}
	return exams
}

func clone(e model.Exam) model.Exam {
	if e.RecoveryDate != nil {
		d := *e.RecoveryDate
		e.RecoveryDate = &d
	}
	if e.ParentExamID != nil {
		id := *e.ParentExamID
		e.ParentExamID = &id
	}
	return e
}

func byExamDate(exams []model.Exam) {
	sort.SliceStable(exams, func(i, j int) bool {
		if !exams[i].ExamDate.Equal(exams[j].ExamDate) {
			return exams[i].ExamDate.Before(exams[j].ExamDate)
		}
		return exams[i].CreatedAt.Before(exams[j].CreatedAt)
	})
}

func (r *memoryExamRepository) Create(ctx context.Context, exam *model.Exam) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if exam.ID == uuid.Nil {
		exam.ID = uuid.New()
	}
	if _, exists := r.table[exam.ID]; exists {
		return fmt.Errorf("exam %s already exists", exam.ID)
	}
	ts := r.now()
	// keep insertion order observable for exams created within one clock tick
	for _, e := range r.table {
		if !ts.After(e.CreatedAt) {
			ts = e.CreatedAt.Add(time.Microsecond)
		}
	}
	exam.CreatedAt = ts
	exam.UpdatedAt = ts
	if exam.Status == "" {
		exam.Status = model.ExamStatusPending
	}
	if exam.ExamType == "" {
		exam.ExamType = model.ExamTypePrimary
	}
	stored := clone(*exam)
	r.table[exam.ID] = &stored
	return nil
}

func (r *memoryExamRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Exam, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if e, ok := r.table[id]; ok {
		exam := clone(*e)
		return &exam, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrExamNotFound, id)
}

func (r *memoryExamRepository) FindPending(ctx context.Context) ([]model.Exam, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	exams := r.query(func(e model.Exam) bool { return e.Status == model.ExamStatusPending })
	byExamDate(exams)
	return exams, nil
}

func (r *memoryExamRepository) FindRecent(ctx context.Context, limit int) ([]model.Exam, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	exams := r.query(nil)
	sort.SliceStable(exams, func(i, j int) bool { return exams[i].CreatedAt.After(exams[j].CreatedAt) })
	if limit > 0 && len(exams) > limit {
		exams = exams[:limit]
	}
	return exams, nil
}

func (r *memoryExamRepository) Filter(ctx context.Context, filter ExamFilter) ([]model.Exam, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	name := strings.ToLower(filter.StudentName)
	exams := r.query(func(e model.Exam) bool {
		if name != "" && !strings.Contains(strings.ToLower(e.StudentName), name) {
			return false
		}
		if filter.Status != "" && e.Status != filter.Status {
			return false
		}
		if filter.ComputerNumber != 0 && e.ComputerNumber != filter.ComputerNumber {
			return false
		}
		if filter.ExamDate != nil && e.ExamDate.Format(time.DateOnly) != filter.ExamDate.Format(time.DateOnly) {
			return false
		}
		return true
	})
	byExamDate(exams)
	return exams, nil
}

func (r *memoryExamRepository) FindRecoveryOf(ctx context.Context, parentID uuid.UUID) (*model.Exam, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var found *model.Exam
	for _, e := range r.table {
		if e.ParentExamID == nil || *e.ParentExamID != parentID {
			continue
		}
		if found == nil || e.CreatedAt.Before(found.CreatedAt) {
			found = e
		}
	}
	if found == nil {
		return nil, fmt.Errorf("%w: no recovery for %s", ErrExamNotFound, parentID)
	}
	exam := clone(*found)
	return &exam, nil
}

func (r *memoryExamRepository) Update(ctx context.Context, id uuid.UUID, patch ExamPatch) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	e, ok := r.table[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrExamNotFound, id)
	}
	if patch.Status != nil {
		e.Status = *patch.Status
	}
	if patch.ExamType != nil {
		e.ExamType = *patch.ExamType
	}
	if patch.ExamDate != nil {
		e.ExamDate = *patch.ExamDate
	}
	if patch.RecoveryDate != nil {
		d := *patch.RecoveryDate
		e.RecoveryDate = &d
	}
	if patch.StudentName != nil {
		e.StudentName = *patch.StudentName
	}
	if patch.Module != nil {
		e.Module = *patch.Module
	}
	if patch.ComputerNumber != nil {
		e.ComputerNumber = *patch.ComputerNumber
	}
	if patch.Shift != nil {
		e.Shift = *patch.Shift
	}
	if patch.ClassTime != nil {
		e.ClassTime = *patch.ClassTime
	}
	if patch.ClassTimePattern != nil {
		e.ClassTimePattern = *patch.ClassTimePattern
	}
	e.UpdatedAt = r.now()
	return nil
}
