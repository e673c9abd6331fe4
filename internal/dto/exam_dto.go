package dto

// BookExamDTO is the booking form. Dates are YYYY-MM-DD or RFC 3339.
type BookExamDTO struct {
	StudentName    string `json:"student_name" binding:"required,max=200"`
	Module         string `json:"module" binding:"omitempty,max=200"`
	ExamDate       string `json:"exam_date" binding:"required,examdate,notpast"`
	ComputerNumber int    `json:"computer_number" binding:"required,min=1,max=14"`
	Shift          string `json:"shift" binding:"required,oneof=morning afternoon"`
	// e.g. "Sábado - Manhã - 07:30 - 09:30"
	ClassTime string `json:"class_time" binding:"required,classtime"`
	// Defaults to P1.
	ExamType string `json:"exam_type" binding:"omitempty,oneof=P1 Rec.1 Rec.2"`
	// Temporary, until admin auth lands
	CreatedBy string `json:"created_by" binding:"required,uuid"`
}

// UpdateExamDetailsDTO edits booking details. Status and type are not
// editable here; they only move through recorded outcomes.
type UpdateExamDetailsDTO struct {
	StudentName    *string `json:"student_name" binding:"omitempty,min=1,max=200"`
	Module         *string `json:"module" binding:"omitempty,max=200"`
	ComputerNumber *int    `json:"computer_number" binding:"omitempty,min=1,max=14"`
	Shift          *string `json:"shift" binding:"omitempty,oneof=morning afternoon"`
	ClassTime      *string `json:"class_time" binding:"omitempty,classtime"`
}

type RecordOutcomeDTO struct {
	Passed *bool `json:"passed" binding:"required"`
}

type OverrideRecoveryDateDTO struct {
	Date string `json:"date" binding:"required,examdate"`
}

// ExamFilterQuery is bound from the admin listing query string.
type ExamFilterQuery struct {
	Student  string `form:"student"`
	Status   string `form:"status" binding:"omitempty,oneof=pending approved failed"`
	Computer int    `form:"computer" binding:"omitempty,min=1,max=14"`
	Date     string `form:"date" binding:"omitempty,examdate"`
}
