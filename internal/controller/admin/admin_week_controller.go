package admin

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jaehopark/vocaweek/internal/dto"
	"github.com/jaehopark/vocaweek/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminWeekController struct {
	weekCreator  service.WeekCreatorService
	wordSelector service.WordSelectorService
}

func NewAdminWeekController(weekCreator service.WeekCreatorService, wordSelector service.WordSelectorService) *AdminWeekController {
	return &AdminWeekController{weekCreator: weekCreator, wordSelector: wordSelector}
}

// CreateWeek godoc
// @Summary (Admin) Create this week's test week record
// @Description Computes the week for the given reference date (default today) and creates it. Creating an already existing week is a no-op.
// @Tags Admin - Test Weeks
// @Accept json
// @Produce json
// @Param request body dto.GenerateWeekRequest false "Optional reference date (YYYY-MM-DD)"
// @Success 201 {object} dto.CreateWeekResponse "Week created"
// @Success 200 {object} dto.CreateWeekResponse "Week already existed"
// @Failure 400 {object} dto.ErrorResponse "Invalid reference date"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/test-weeks [post]
func (c *AdminWeekController) CreateWeek(ctx *gin.Context) {
	var req dto.GenerateWeekRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	base := time.Now()
	if req.ReferenceDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.ReferenceDate, time.Local)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid reference_date, expected YYYY-MM-DD"})
			return
		}
		base = parsed
	}

	week, created, err := c.weekCreator.CreateWeekInfo(base)
	if err != nil {
		log.Error().Err(err).Msg("Admin CreateWeek: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create test week"})
		return
	}

	resp := dto.CreateWeekResponse{
		Week: dto.TestWeekResponse{
			ID:            week.ID,
			Name:          week.Name,
			StartDate:     week.StartDate.Format("2006-01-02"),
			EndDate:       week.EndDate.Format("2006-01-02"),
			TestStartTime: week.TestStartTime,
			TestEndTime:   week.TestEndTime,
			CreatedAt:     week.CreatedAt,
		},
		AlreadyExisted: !created,
	}
	if created {
		resp.Message = "Test week created"
		ctx.JSON(http.StatusCreated, resp)
		return
	}
	resp.Message = "Test week already exists"
	ctx.JSON(http.StatusOK, resp)
}

// GenerateWords godoc
// @Summary (Admin) Generate the quiz word set for a Saturday
// @Description Deterministically selects the weekly quiz words for the target Saturday (default: the upcoming one) and replaces any prior set.
// @Tags Admin - Test Weeks
// @Accept json
// @Produce json
// @Param request body dto.GenerateWordsRequest false "Optional Saturday date and word count"
// @Success 201 {object} dto.GenerateWordsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid date"
// @Failure 404 {object} dto.ErrorResponse "No test week covers the Saturday"
// @Failure 422 {object} dto.ErrorResponse "No candidate words in the week's range"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/test-words [post]
func (c *AdminWeekController) GenerateWords(ctx *gin.Context) {
	var req dto.GenerateWordsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	saturday := c.wordSelector.NextSaturday(time.Now())
	if req.SaturdayDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.SaturdayDate, time.Local)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid saturday_date, expected YYYY-MM-DD"})
			return
		}
		saturday = parsed
	}

	resp, err := c.wordSelector.GenerateTestWords(saturday, req.WordCount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, service.ErrNoCandidateWords):
			ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})
		default:
			log.Error().Err(err).Msg("Admin GenerateWords: Service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to generate test words"})
		}
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}
