package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/examsched/internal/model"
	"gorm.io/gorm"
)

var ErrExamNotFound = errors.New("exam not found")

// ExamPatch is a partial update. Nil fields are left untouched; updated_at
// is always refreshed.
type ExamPatch struct {
	Status           *model.ExamStatus
	ExamType         *model.ExamType
	ExamDate         *time.Time
	RecoveryDate     *time.Time
	StudentName      *string
	Module           *string
	ComputerNumber   *int
	Shift            *model.Shift
	ClassTime        *string
	ClassTimePattern *model.ClassTimePattern
}

func (p ExamPatch) columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if p.Status != nil {
		cols["status"] = *p.Status
	}
	if p.ExamType != nil {
		cols["exam_type"] = *p.ExamType
	}
	if p.ExamDate != nil {
		cols["exam_date"] = *p.ExamDate
	}
	if p.RecoveryDate != nil {
		cols["recovery_date"] = *p.RecoveryDate
	}
	if p.StudentName != nil {
		cols["student_name"] = *p.StudentName
	}
	if p.Module != nil {
		cols["module"] = *p.Module
	}
	if p.ComputerNumber != nil {
		cols["computer_number"] = *p.ComputerNumber
	}
	if p.Shift != nil {
		cols["shift"] = *p.Shift
	}
	if p.ClassTime != nil {
		cols["class_time"] = *p.ClassTime
	}
	if p.ClassTimePattern != nil {
		cols["class_time_pattern"] = *p.ClassTimePattern
	}
	return cols
}

// ExamFilter narrows admin listings. Zero values match everything.
type ExamFilter struct {
	StudentName    string // case-insensitive substring
	Status         model.ExamStatus
	ComputerNumber int
	ExamDate       *time.Time
}

type ExamRepository interface {
	Create(ctx context.Context, exam *model.Exam) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Exam, error)
	// FindPending returns pending exams, earliest exam date first.
	FindPending(ctx context.Context) ([]model.Exam, error)
	// FindRecent returns the last booked exams, newest first.
	FindRecent(ctx context.Context, limit int) ([]model.Exam, error)
	Filter(ctx context.Context, filter ExamFilter) ([]model.Exam, error)
	// FindRecoveryOf returns the recovery exam created for parentID.
	FindRecoveryOf(ctx context.Context, parentID uuid.UUID) (*model.Exam, error)
	Update(ctx context.Context, id uuid.UUID, patch ExamPatch) error
}

type examRepository struct {
	db *gorm.DB
}

func NewExamRepository(db *gorm.DB) ExamRepository {
	return &examRepository{db: db}
}

func (r *examRepository) Create(ctx context.Context, exam *model.Exam) error {
	return r.db.WithContext(ctx).Create(exam).Error
}

func (r *examRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Exam, error) {
	var exam model.Exam
	if err := r.db.WithContext(ctx).First(&exam, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrExamNotFound, id)
		}
		return nil, err
	}
	return &exam, nil
}

func (r *examRepository) FindPending(ctx context.Context) ([]model.Exam, error) {
	var exams []model.Exam
	err := r.db.WithContext(ctx).
		Where("status = ?", model.ExamStatusPending).
		Order("exam_date ASC").
		Order("created_at ASC").
		Find(&exams).Error
	return exams, err
}

func (r *examRepository) FindRecent(ctx context.Context, limit int) ([]model.Exam, error) {
	var exams []model.Exam
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&exams).Error
	return exams, err
}

func (r *examRepository) Filter(ctx context.Context, filter ExamFilter) ([]model.Exam, error) {
	query := r.db.WithContext(ctx).Model(&model.Exam{})
	if filter.StudentName != "" {
		query = query.Where("student_name ILIKE ?", "%"+filter.StudentName+"%")
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.ComputerNumber != 0 {
		query = query.Where("computer_number = ?", filter.ComputerNumber)
	}
	if filter.ExamDate != nil {
		query = query.Where("exam_date = ?", filter.ExamDate.Format(time.DateOnly))
	}

	var exams []model.Exam
	err := query.Order("exam_date ASC").Order("created_at ASC").Find(&exams).Error
	return exams, err
}

func (r *examRepository) FindRecoveryOf(ctx context.Context, parentID uuid.UUID) (*model.Exam, error) {
	var exam model.Exam
	err := r.db.WithContext(ctx).Where("parent_exam_id = ?", parentID).Order("created_at ASC").First(&exam).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no recovery for %s", ErrExamNotFound, parentID)
		}
		return nil, err
	}
	return &exam, nil
}

func (r *examRepository) Update(ctx context.Context, id uuid.UUID, patch ExamPatch) error {
	cols := patch.columns()
	cols["updated_at"] = time.Now().UTC()

	res := r.db.WithContext(ctx).Model(&model.Exam{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrExamNotFound, id)
	}
	return nil
}
