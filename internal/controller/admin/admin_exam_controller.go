package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/examsched/internal/controller"
	"github.com/lshigami/examsched/internal/dto"
	"github.com/lshigami/examsched/internal/service"
)

type AdminExamController struct {
	bookingService service.BookingService
}

func NewAdminExamController(bookingService service.BookingService) *AdminExamController {
	return &AdminExamController{bookingService: bookingService}
}

// ListExams godoc
// @Summary (Admin) Search exams
// @Tags Admin - Exams
// @Produce json
// @Param student query string false "Student name, case-insensitive substring"
// @Param status query string false "pending, approved or failed"
// @Param computer query int false "Computer number (1-14)"
// @Param date query string false "Exam date (YYYY-MM-DD)"
// @Success 200 {array} dto.ExamResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/exams [get]
func (c *AdminExamController) ListExams(ctx *gin.Context) {
	var query dto.ExamFilterQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		controller.BindError(ctx, err, "Invalid filter")
		return
	}

	exams, err := c.bookingService.FilterExams(ctx.Request.Context(), query)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to filter exams")
		return
	}
	ctx.JSON(http.StatusOK, exams)
}

// UpdateExamDetails godoc
// @Summary (Admin) Edit booking details
// @Description Edits student, module, computer, shift or class slot. Status and exam type change only by recording outcomes.
// @Tags Admin - Exams
// @Accept json
// @Produce json
// @Param exam_id path string true "Exam ID (UUID)"
// @Param details body dto.UpdateExamDetailsDTO true "Fields to change"
// @Success 200 {object} dto.ExamResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /admin/exams/{exam_id} [patch]
func (c *AdminExamController) UpdateExamDetails(ctx *gin.Context) {
	id, ok := controller.ExamID(ctx)
	if !ok {
		return
	}
	var req dto.UpdateExamDetailsDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err, "Invalid request body")
		return
	}

	resp, err := c.bookingService.UpdateExamDetails(ctx.Request.Context(), id, req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to update exam")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

func (c *AdminExamController) RegisterRoutes(admin *gin.RouterGroup) {
	exams := admin.Group("/exams")
	exams.GET("", c.ListExams)
	exams.PATCH("/:exam_id", c.UpdateExamDetails)
}
