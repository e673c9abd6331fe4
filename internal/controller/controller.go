package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lshigami/examsched/internal/dto"
	"github.com/lshigami/examsched/internal/outcome"
	"github.com/lshigami/examsched/internal/repository"
	"github.com/lshigami/examsched/internal/schedule"
	"github.com/lshigami/examsched/internal/service"
	"github.com/rs/zerolog/log"
)

// StatusFor maps a service error to its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrRecoveryNotScheduled):
		return http.StatusInternalServerError
	case errors.Is(err, service.ErrValidation), errors.Is(err, schedule.ErrInvalidDate):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrExamNotFound):
		return http.StatusNotFound
	case errors.Is(err, outcome.ErrInvalidState), errors.Is(err, outcome.ErrNoRecovery):
		return http.StatusConflict
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return http.StatusConflict
		case "23503", "23514": // foreign_key_violation, check_violation
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

// RespondError writes err as a dto.ErrorResponse. Server-side failures are
// logged at error level, client mistakes at warn.
func RespondError(ctx *gin.Context, err error, message string) {
	status := StatusFor(err)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("path", ctx.FullPath()).Int("status", status).Msg(message)

	if errors.Is(err, service.ErrRecoveryNotScheduled) {
		message = "Outcome recorded, but the recovery exam was not scheduled. Retry with POST /admin/results/:exam_id/recovery"
	}
	ctx.JSON(status, dto.ErrorResponse{Message: message, Details: []string{err.Error()}})
}

// BindError answers a request whose body or query failed binding.
func BindError(ctx *gin.Context, err error, message string) {
	log.Warn().Err(err).Str("path", ctx.FullPath()).Msg(message)
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: message, Details: []string{err.Error()}})
}

// ExamID reads the :exam_id path parameter. On failure it has already
// written a 400 response.
func ExamID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("exam_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid exam ID format"})
		return uuid.Nil, false
	}
	return id, true
}

// Health godoc
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
