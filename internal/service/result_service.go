package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/examsched/config"
	"github.com/lshigami/examsched/internal/dto"
	"github.com/lshigami/examsched/internal/model"
	"github.com/lshigami/examsched/internal/outcome"
	"github.com/lshigami/examsched/internal/repository"
	"github.com/lshigami/examsched/internal/schedule"
	"github.com/rs/zerolog/log"
)

// ErrRecoveryNotScheduled is returned when the outcome was stored but the
// recovery exam could not be created. ScheduleRecovery retries the second
// half.
var ErrRecoveryNotScheduled = errors.New("outcome recorded but recovery exam was not scheduled")

type ResultService interface {
	PendingExams(ctx context.Context) ([]dto.ExamResponseDTO, error)
	// RecordOutcome stores a pass or fail for a pending exam and schedules the
	// next recovery exam when one is due.
	RecordOutcome(ctx context.Context, id uuid.UUID, passed bool) (*dto.OutcomeResponseDTO, error)
	// OverrideRecoveryDate moves a pending exam to a manually chosen date.
	OverrideRecoveryDate(ctx context.Context, id uuid.UUID, date string) (*dto.ExamResponseDTO, error)
	// ScheduleRecovery creates the missing recovery exam of a failed exam.
	// It is a no-op when the recovery already exists.
	ScheduleRecovery(ctx context.Context, id uuid.UUID) (*dto.RecoveryResponseDTO, error)
}

type resultService struct {
	examRepo repository.ExamRepository
	loc      *time.Location
}

func NewResultService(examRepo repository.ExamRepository, cfg *config.Config) ResultService {
	return &resultService{examRepo: examRepo, loc: cfg.Location()}
}

func (s *resultService) PendingExams(ctx context.Context) ([]dto.ExamResponseDTO, error) {
	exams, err := s.examRepo.FindPending(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error fetching pending exams")
		return nil, fmt.Errorf("failed to fetch pending exams: %w", err)
	}
	return mapExamsToResponseDTOs(exams), nil
}

func (s *resultService) RecordOutcome(ctx context.Context, id uuid.UUID, passed bool) (*dto.OutcomeResponseDTO, error) {
	exam, err := s.examRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := outcome.Decide(*exam, passed)
	if err != nil {
		log.Warn().Err(err).Str("examID", id.String()).Bool("passed", passed).Msg("Outcome rejected")
		return nil, err
	}

	patch := repository.ExamPatch{
		Status:       &result.Update.Status,
		RecoveryDate: result.Update.RecoveryDate,
	}
	if err := s.examRepo.Update(ctx, id, patch); err != nil {
		log.Error().Err(err).Str("examID", id.String()).Msg("Error storing exam outcome")
		return nil, fmt.Errorf("failed to store outcome for exam %s: %w", id, err)
	}

	updated := *exam
	updated.Status = result.Update.Status
	if result.Update.RecoveryDate != nil {
		updated.RecoveryDate = result.Update.RecoveryDate
	}
	resp := &dto.OutcomeResponseDTO{
		Exam:         mapExamToResponseDTO(updated),
		RetakeModule: !passed && exam.ExamType == model.ExamTypeRecovery2,
	}

	if result.Recovery != nil {
		if err := s.examRepo.Create(ctx, result.Recovery); err != nil {
			log.Error().Err(err).
				Str("examID", id.String()).
				Str("recoveryType", string(result.Recovery.ExamType)).
				Msg("Outcome stored but recovery exam creation failed")
			return nil, fmt.Errorf("%w for exam %s: %w", ErrRecoveryNotScheduled, id, err)
		}
		recovery := mapExamToResponseDTO(*result.Recovery)
		resp.Recovery = &recovery
	}

	log.Info().
		Str("examID", id.String()).
		Str("examType", string(exam.ExamType)).
		Str("status", string(updated.Status)).
		Bool("recoveryScheduled", resp.Recovery != nil).
		Msg("Exam outcome recorded")
	return resp, nil
}

func (s *resultService) OverrideRecoveryDate(ctx context.Context, id uuid.UUID, date string) (*dto.ExamResponseDTO, error) {
	newDate, err := schedule.ParseDate(date, s.loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	exam, err := s.examRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if exam.Status != model.ExamStatusPending {
		return nil, fmt.Errorf("%w: exam %s is %s", outcome.ErrInvalidState, id, exam.Status)
	}

	status := model.ExamStatusPending
	patch := repository.ExamPatch{
		Status:       &status,
		ExamDate:     &newDate,
		RecoveryDate: &newDate,
	}
	if err := s.examRepo.Update(ctx, id, patch); err != nil {
		log.Error().Err(err).Str("examID", id.String()).Msg("Error overriding recovery date")
		return nil, fmt.Errorf("failed to reschedule exam %s: %w", id, err)
	}

	log.Info().
		Str("examID", id.String()).
		Str("from", exam.ExamDate.Format(time.DateOnly)).
		Str("to", newDate.Format(time.DateOnly)).
		Msg("Exam date overridden")

	exam, err = s.examRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapExamToResponseDTO(*exam)
	return &resp, nil
}

func (s *resultService) ScheduleRecovery(ctx context.Context, id uuid.UUID) (*dto.RecoveryResponseDTO, error) {
	exam, err := s.examRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	recovery, err := outcome.RecoveryFor(*exam)
	if err != nil {
		return nil, err
	}

	existing, err := s.examRepo.FindRecoveryOf(ctx, id)
	switch {
	case err == nil:
		return &dto.RecoveryResponseDTO{Recovery: mapExamToResponseDTO(*existing)}, nil
	case !errors.Is(err, repository.ErrExamNotFound):
		return nil, fmt.Errorf("failed to look up recovery of exam %s: %w", id, err)
	}

	if err := s.examRepo.Create(ctx, recovery); err != nil {
		log.Error().Err(err).Str("examID", id.String()).Msg("Error creating recovery exam")
		return nil, fmt.Errorf("%w for exam %s: %w", ErrRecoveryNotScheduled, id, err)
	}
	if exam.RecoveryDate == nil {
		if err := s.examRepo.Update(ctx, id, repository.ExamPatch{RecoveryDate: &recovery.ExamDate}); err != nil {
			log.Warn().Err(err).Str("examID", id.String()).Msg("Recovery created but recovery date not stored on failed exam")
		}
	}

	log.Info().
		Str("examID", id.String()).
		Str("recoveryID", recovery.ID.String()).
		Str("recoveryType", string(recovery.ExamType)).
		Msg("Recovery exam scheduled")
	return &dto.RecoveryResponseDTO{Recovery: mapExamToResponseDTO(*recovery), Created: true}, nil
}
