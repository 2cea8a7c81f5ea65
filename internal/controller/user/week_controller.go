package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jaehopark/vocaweek/internal/service"
)

type WeekController struct {
	weekService service.TestWeekService
}

func NewWeekController(weekService service.TestWeekService) *WeekController {
	return &WeekController{weekService: weekService}
}

// GetRecentWeeks godoc
// @Summary List recent test weeks that have candidate words
// @Tags Test Weeks
// @Produce json
// @Param limit query int false "Number of weeks (default 10)"
// @Param order query string false "start-date order: asc or desc (default desc)"
// @Success 200 {object} dto.TestWeekListResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /test-weeks [get]
func (c *WeekController) GetRecentWeeks(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	descending := ctx.DefaultQuery("order", "desc") == "desc"

	resp, err := c.weekService.GetRecentWeeks(limit, descending)
	if err != nil {
		respondServiceError(ctx, err, "Failed to list test weeks")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetWeekWords godoc
// @Summary Get the quiz word set of a test week
// @Tags Test Weeks
// @Produce json
// @Param id path int true "Test week ID"
// @Success 200 {object} dto.TestWeekWordsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 404 {object} dto.ErrorResponse "Test week not found"
// @Router /test-weeks/{id}/words [get]
func (c *WeekController) GetWeekWords(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.weekService.GetWeekWords(id)
	if err != nil {
		respondServiceError(ctx, err, "Failed to get test week words")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
