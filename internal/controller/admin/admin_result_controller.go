package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/examsched/internal/controller"
	"github.com/lshigami/examsched/internal/dto"
	"github.com/lshigami/examsched/internal/service"
)

type AdminResultController struct {
	resultService service.ResultService
}

func NewAdminResultController(resultService service.ResultService) *AdminResultController {
	return &AdminResultController{resultService: resultService}
}

// GetPendingExams godoc
// @Summary (Admin) List exams awaiting a result
// @Tags Admin - Results
// @Produce json
// @Success 200 {array} dto.ExamResponseDTO "Pending exams, earliest first"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/results/pending [get]
func (c *AdminResultController) GetPendingExams(ctx *gin.Context) {
	exams, err := c.resultService.PendingExams(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve pending exams")
		return
	}
	ctx.JSON(http.StatusOK, exams)
}

// RecordOutcome godoc
// @Summary (Admin) Record a pass or fail
// @Description Approves the exam, or fails it and books the next recovery exam (P1 -> Rec.1 -> Rec.2). A failed Rec.2 means the module must be retaken.
// @Tags Admin - Results
// @Accept json
// @Produce json
// @Param exam_id path string true "Exam ID (UUID)"
// @Param outcome body dto.RecordOutcomeDTO true "Outcome"
// @Success 200 {object} dto.OutcomeResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 409 {object} dto.ErrorResponse "Exam is not pending"
// @Failure 500 {object} dto.ErrorResponse "Store failure, or recovery exam not scheduled"
// @Router /admin/results/{exam_id}/outcome [post]
func (c *AdminResultController) RecordOutcome(ctx *gin.Context) {
	id, ok := controller.ExamID(ctx)
	if !ok {
		return
	}
	var req dto.RecordOutcomeDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err, "Invalid request body")
		return
	}

	resp, err := c.resultService.RecordOutcome(ctx.Request.Context(), id, *req.Passed)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to record outcome")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// OverrideRecoveryDate godoc
// @Summary (Admin) Move a pending exam to another date
// @Description Sets exam_date and recovery_date of a pending exam. The date is not checked against the class pattern.
// @Tags Admin - Results
// @Accept json
// @Produce json
// @Param exam_id path string true "Exam ID (UUID)"
// @Param date body dto.OverrideRecoveryDateDTO true "New date (YYYY-MM-DD)"
// @Success 200 {object} dto.ExamResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 409 {object} dto.ErrorResponse "Exam is not pending"
// @Router /admin/results/{exam_id}/recovery-date [put]
func (c *AdminResultController) OverrideRecoveryDate(ctx *gin.Context) {
	id, ok := controller.ExamID(ctx)
	if !ok {
		return
	}
	var req dto.OverrideRecoveryDateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err, "Invalid request body")
		return
	}

	resp, err := c.resultService.OverrideRecoveryDate(ctx.Request.Context(), id, req.Date)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to override recovery date")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ScheduleRecovery godoc
// @Summary (Admin) Schedule the missing recovery exam
// @Description Creates the recovery exam of a failed P1 or Rec.1 exam when recording the outcome could not. Returns the existing one if it was already created.
// @Tags Admin - Results
// @Produce json
// @Param exam_id path string true "Failed exam ID (UUID)"
// @Success 201 {object} dto.RecoveryResponseDTO "Recovery created"
// @Success 200 {object} dto.RecoveryResponseDTO "Recovery already existed"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 409 {object} dto.ErrorResponse "Exam is not failed, or has no further recovery"
// @Router /admin/results/{exam_id}/recovery [post]
func (c *AdminResultController) ScheduleRecovery(ctx *gin.Context) {
	id, ok := controller.ExamID(ctx)
	if !ok {
		return
	}

	resp, err := c.resultService.ScheduleRecovery(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to schedule recovery exam")
		return
	}
	status := http.StatusOK
	if resp.Created {
		status = http.StatusCreated
	}
	ctx.JSON(status, resp)
}

func (c *AdminResultController) RegisterRoutes(admin *gin.RouterGroup) {
	results := admin.Group("/results")
	results.GET("/pending", c.GetPendingExams)
	results.POST("/:exam_id/outcome", c.RecordOutcome)
	results.PUT("/:exam_id/recovery-date", c.OverrideRecoveryDate)
	results.POST("/:exam_id/recovery", c.ScheduleRecovery)
}
