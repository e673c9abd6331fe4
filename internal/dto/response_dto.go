package dto

import (
	"time"

	"github.com/google/uuid"
)

// ExamResponseDTO is the public view of an exam. Dates are YYYY-MM-DD.
type ExamResponseDTO struct {
	ID               uuid.UUID  `json:"id"`
	StudentName      string     `json:"student_name"`
	Module           string     `json:"module,omitempty"`
	ExamDate         string     `json:"exam_date" copier:"-"`
	ExamType         string     `json:"exam_type"`
	Status           string     `json:"status"`
	ClassTimePattern string     `json:"class_time_pattern"`
	ComputerNumber   int        `json:"computer_number"`
	Shift            string     `json:"shift"`
	ClassTime        string     `json:"class_time"`
	RecoveryDate     *string    `json:"recovery_date,omitempty" copier:"-"`
	ParentExamID     *uuid.UUID `json:"parent_exam_id,omitempty"`
	CreatedBy        uuid.UUID  `json:"created_by"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// OutcomeResponseDTO reports what recording a result did.
type OutcomeResponseDTO struct {
	Exam ExamResponseDTO `json:"exam"`
	// Recovery is the follow-up exam that was scheduled, if any.
	Recovery *ExamResponseDTO `json:"recovery,omitempty"`
	// RetakeModule is set when the last recovery failed.
	RetakeModule bool `json:"retake_module"`
}

// RecoveryResponseDTO is returned when re-triggering recovery creation.
type RecoveryResponseDTO struct {
	Recovery ExamResponseDTO `json:"recovery"`
	Created  bool            `json:"created"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
