package service

import (
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/examsched/internal/dto"
	"github.com/lshigami/examsched/internal/model"
	"github.com/rs/zerolog/log"
)

func mapExamToResponseDTO(exam model.Exam) dto.ExamResponseDTO {
	var resp dto.ExamResponseDTO
	if err := copier.Copy(&resp, &exam); err != nil {
		log.Error().Err(err).Str("examID", exam.ID.String()).Msg("Error copying exam to DTO")
	}
	resp.ExamDate = exam.ExamDate.Format(time.DateOnly)
	if exam.RecoveryDate != nil {
		d := exam.RecoveryDate.Format(time.DateOnly)
		resp.RecoveryDate = &d
	}
	return resp
}

func mapExamsToResponseDTOs(exams []model.Exam) []dto.ExamResponseDTO {
	resp := make([]dto.ExamResponseDTO, 0, len(exams))
	for _, e := range exams {
		resp = append(resp, mapExamToResponseDTO(e))
	}
	return resp
}
