package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExamType string

const (
	ExamTypePrimary   ExamType = "P1"
	ExamTypeRecovery1 ExamType = "Rec.1"
	ExamTypeRecovery2 ExamType = "Rec.2"
)

// Next returns the exam type that follows t in the recovery sequence.
// ok is false for Rec.2, which has no further recovery.
func (t ExamType) Next() (next ExamType, ok bool) {
	switch t {
	case ExamTypePrimary:
		return ExamTypeRecovery1, true
	case ExamTypeRecovery1:
		return ExamTypeRecovery2, true
	}
	return "", false
}

func (t ExamType) Valid() bool {
	switch t {
	case ExamTypePrimary, ExamTypeRecovery1, ExamTypeRecovery2:
		return true
	}
	return false
}

type ExamStatus string

const (
	ExamStatusPending  ExamStatus = "pending"
	ExamStatusApproved ExamStatus = "approved"
	ExamStatusFailed   ExamStatus = "failed"
)

func (s ExamStatus) Valid() bool {
	switch s {
	case ExamStatusPending, ExamStatusApproved, ExamStatusFailed:
		return true
	}
	return false
}

// ClassTimePattern is the set of weekdays a student's class meets on.
type ClassTimePattern string

const (
	PatternMonToThu ClassTimePattern = "mon_to_thu"
	PatternMonWed   ClassTimePattern = "mon_wed"
	PatternTueThu   ClassTimePattern = "tue_thu"
	PatternSaturday ClassTimePattern = "saturday"
)

type Shift string

const (
	ShiftMorning   Shift = "morning"
	ShiftAfternoon Shift = "afternoon"
)

// Exam is a single booked exam slot. Recovery exams are separate rows
// pointing back at the failed exam through ParentExamID.
type Exam struct {
	ID               uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	StudentName      string           `json:"student_name" gorm:"not null;index"`
	Module           string           `json:"module,omitempty"`
	ExamDate         time.Time        `json:"exam_date" gorm:"type:date;not null;index"`
	ExamType         ExamType         `json:"exam_type" gorm:"type:varchar(8);not null;default:'P1'"`
	Status           ExamStatus       `json:"status" gorm:"type:varchar(16);not null;default:'pending';index"`
	ClassTimePattern ClassTimePattern `json:"class_time_pattern" gorm:"type:varchar(16);not null"`
	ComputerNumber   int              `json:"computer_number" gorm:"not null"`
	Shift            Shift            `json:"shift" gorm:"type:varchar(16);not null"`
	ClassTime        string           `json:"class_time" gorm:"not null"` // "Segunda a Quinta - Manhã - 07:30 - 08:30"
	RecoveryDate     *time.Time       `json:"recovery_date,omitempty" gorm:"type:date"`
	ParentExamID     *uuid.UUID       `json:"parent_exam_id,omitempty" gorm:"type:uuid;index"`
	CreatedBy        uuid.UUID        `json:"created_by" gorm:"type:uuid;not null"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

func (e *Exam) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
