package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/examsched/internal/controller"
	"github.com/lshigami/examsched/internal/dto"
	"github.com/lshigami/examsched/internal/service"
	"github.com/rs/zerolog/log"
)

type UserExamController struct {
	bookingService service.BookingService
}

func NewUserExamController(bookingService service.BookingService) *UserExamController {
	return &UserExamController{bookingService: bookingService}
}

// BookExam godoc
// @Summary Book an exam
// @Description Books a P1 (or explicitly typed) exam on a lab computer. The class slot decides which weekdays later recovery exams may fall on.
// @Tags Exams
// @Accept json
// @Produce json
// @Param exam body dto.BookExamDTO true "Booking data"
// @Success 201 {object} dto.ExamResponseDTO "Exam booked"
// @Failure 400 {object} dto.ErrorResponse "Invalid input (unknown class slot, past date, computer out of range)"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams [post]
func (c *UserExamController) BookExam(ctx *gin.Context) {
	var req dto.BookExamDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err, "Invalid request body")
		return
	}

	resp, err := c.bookingService.BookExam(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to book exam")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetRecentExams godoc
// @Summary List the latest bookings
// @Tags Exams
// @Produce json
// @Param limit query int false "How many exams to return (default 5)"
// @Success 200 {array} dto.ExamResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid limit"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams/recent [get]
func (c *UserExamController) GetRecentExams(ctx *gin.Context) {
	limit := 0
	if limitStr := ctx.Query("limit"); limitStr != "" {
		val, err := strconv.Atoi(limitStr)
		if err != nil || val < 1 || val > 100 {
			log.Warn().Str("limit", limitStr).Msg("GetRecentExams: invalid limit")
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "limit must be between 1 and 100"})
			return
		}
		limit = val
	}

	exams, err := c.bookingService.RecentExams(ctx.Request.Context(), limit)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve recent exams")
		return
	}
	ctx.JSON(http.StatusOK, exams)
}

// GetExam godoc
// @Summary Get an exam
// @Tags Exams
// @Produce json
// @Param exam_id path string true "Exam ID (UUID)"
// @Success 200 {object} dto.ExamResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid exam ID"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /exams/{exam_id} [get]
func (c *UserExamController) GetExam(ctx *gin.Context) {
	id, ok := controller.ExamID(ctx)
	if !ok {
		return
	}
	exam, err := c.bookingService.GetExam(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve exam")
		return
	}
	ctx.JSON(http.StatusOK, exam)
}

func (c *UserExamController) RegisterRoutes(api *gin.RouterGroup) {
	exams := api.Group("/exams")
	exams.POST("", c.BookExam)
	exams.GET("/recent", c.GetRecentExams)
	exams.GET("/:exam_id", c.GetExam)
}
