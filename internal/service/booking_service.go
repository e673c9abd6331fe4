package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/examsched/config"
	"github.com/lshigami/examsched/internal/dto"
	"github.com/lshigami/examsched/internal/model"
	"github.com/lshigami/examsched/internal/repository"
	"github.com/lshigami/examsched/internal/schedule"
	"github.com/rs/zerolog/log"
)

// ErrValidation marks input the caller has to fix.
var ErrValidation = errors.New("validation failed")

const (
	MinComputerNumber = 1
	MaxComputerNumber = 14
)

type BookingService interface {
	BookExam(ctx context.Context, req dto.BookExamDTO) (*dto.ExamResponseDTO, error)
	GetExam(ctx context.Context, id uuid.UUID) (*dto.ExamResponseDTO, error)
	RecentExams(ctx context.Context, limit int) ([]dto.ExamResponseDTO, error)
	FilterExams(ctx context.Context, query dto.ExamFilterQuery) ([]dto.ExamResponseDTO, error)
	// UpdateExamDetails edits booking data. Status and exam type only change
	// through ResultService.
	UpdateExamDetails(ctx context.Context, id uuid.UUID, req dto.UpdateExamDetailsDTO) (*dto.ExamResponseDTO, error)
}

type bookingService struct {
	examRepo    repository.ExamRepository
	loc         *time.Location
	recentLimit int
	today       func() time.Time
}

func NewBookingService(examRepo repository.ExamRepository, cfg *config.Config) BookingService {
	loc := cfg.Location()
	limit := cfg.RecentExamsLimit
	if limit <= 0 {
		limit = 5
	}
	return &bookingService{
		examRepo:    examRepo,
		loc:         loc,
		recentLimit: limit,
		today:       func() time.Time { return schedule.Today(loc) },
	}
}

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func validComputer(n int) error {
	if n < MinComputerNumber || n > MaxComputerNumber {
		return validationError("computer number must be between %d and %d, got %d", MinComputerNumber, MaxComputerNumber, n)
	}
	return nil
}

func validShift(s string) error {
	switch model.Shift(s) {
	case model.ShiftMorning, model.ShiftAfternoon:
		return nil
	}
	return validationError("unknown shift %q", s)
}

func classify(classTime string) (model.ClassTimePattern, error) {
	pattern, err := schedule.Classify(classTime)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return pattern, nil
}

func (s *bookingService) BookExam(ctx context.Context, req dto.BookExamDTO) (*dto.ExamResponseDTO, error) {
	studentName := strings.TrimSpace(req.StudentName)
	if studentName == "" {
		return nil, validationError("student name is required")
	}
	examDate, err := schedule.ParseDate(req.ExamDate, s.loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if examDate.Before(s.today()) {
		return nil, validationError("exam date %s is in the past", examDate.Format(time.DateOnly))
	}
	if err := validComputer(req.ComputerNumber); err != nil {
		return nil, err
	}
	if err := validShift(req.Shift); err != nil {
		return nil, err
	}
	pattern, err := classify(req.ClassTime)
	if err != nil {
		return nil, err
	}
	examType := model.ExamTypePrimary
	if req.ExamType != "" {
		examType = model.ExamType(req.ExamType)
		if !examType.Valid() {
			return nil, validationError("unknown exam type %q", req.ExamType)
		}
	}
	createdBy, err := uuid.Parse(req.CreatedBy)
	if err != nil {
		return nil, validationError("created_by must be a UUID")
	}

	exam := model.Exam{
		StudentName:      studentName,
		Module:           strings.TrimSpace(req.Module),
		ExamDate:         examDate,
		ExamType:         examType,
		Status:           model.ExamStatusPending,
		ClassTimePattern: pattern,
		ComputerNumber:   req.ComputerNumber,
		Shift:            model.Shift(req.Shift),
		ClassTime:        strings.TrimSpace(req.ClassTime),
		CreatedBy:        createdBy,
	}
	if err := s.examRepo.Create(ctx, &exam); err != nil {
		log.Error().Err(err).Str("student", studentName).Msg("Error creating exam")
		return nil, fmt.Errorf("failed to book exam: %w", err)
	}

	log.Info().
		Str("examID", exam.ID.String()).
		Str("examType", string(exam.ExamType)).
		Str("examDate", exam.ExamDate.Format(time.DateOnly)).
		Msg("Exam booked")
	resp := mapExamToResponseDTO(exam)
	return &resp, nil
}

func (s *bookingService) GetExam(ctx context.Context, id uuid.UUID) (*dto.ExamResponseDTO, error) {
	exam, err := s.examRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapExamToResponseDTO(*exam)
	return &resp, nil
}

func (s *bookingService) RecentExams(ctx context.Context, limit int) ([]dto.ExamResponseDTO, error) {
	if limit <= 0 {
		limit = s.recentLimit
	}
	exams, err := s.examRepo.FindRecent(ctx, limit)
	if err != nil {
		log.Error().Err(err).Msg("Error fetching recent exams")
		return nil, fmt.Errorf("failed to fetch recent exams: %w", err)
	}
	return mapExamsToResponseDTOs(exams), nil
}

func (s *bookingService) FilterExams(ctx context.Context, query dto.ExamFilterQuery) ([]dto.ExamResponseDTO, error) {
	filter := repository.ExamFilter{
		StudentName:    strings.TrimSpace(query.Student),
		Status:         model.ExamStatus(query.Status),
		ComputerNumber: query.Computer,
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, validationError("unknown status %q", query.Status)
	}
	if query.Date != "" {
		d, err := schedule.ParseDate(query.Date, s.loc)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		filter.ExamDate = &d
	}

	exams, err := s.examRepo.Filter(ctx, filter)
	if err != nil {
		log.Error().Err(err).Interface("filter", query).Msg("Error filtering exams")
		return nil, fmt.Errorf("failed to filter exams: %w", err)
	}
	return mapExamsToResponseDTOs(exams), nil
}

func (s *bookingService) UpdateExamDetails(ctx context.Context, id uuid.UUID, req dto.UpdateExamDetailsDTO) (*dto.ExamResponseDTO, error) {
	var patch repository.ExamPatch
	if req.StudentName != nil {
		name := strings.TrimSpace(*req.StudentName)
		if name == "" {
			return nil, validationError("student name cannot be empty")
		}
		patch.StudentName = &name
	}
	if req.Module != nil {
		module := strings.TrimSpace(*req.Module)
		patch.Module = &module
	}
	if req.ComputerNumber != nil {
		if err := validComputer(*req.ComputerNumber); err != nil {
			return nil, err
		}
		patch.ComputerNumber = req.ComputerNumber
	}
	if req.Shift != nil {
		if err := validShift(*req.Shift); err != nil {
			return nil, err
		}
		shift := model.Shift(*req.Shift)
		patch.Shift = &shift
	}
	if req.ClassTime != nil {
		pattern, err := classify(*req.ClassTime)
		if err != nil {
			return nil, err
		}
		classTime := strings.TrimSpace(*req.ClassTime)
		patch.ClassTime = &classTime
		patch.ClassTimePattern = &pattern
	}

	if err := s.examRepo.Update(ctx, id, patch); err != nil {
		log.Error().Err(err).Str("examID", id.String()).Msg("Error updating exam details")
		return nil, fmt.Errorf("failed to update exam %s: %w", id, err)
	}
	return s.GetExam(ctx, id)
}
