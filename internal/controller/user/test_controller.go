package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jaehopark/vocaweek/internal/dto"
	"github.com/jaehopark/vocaweek/internal/service"
	"github.com/rs/zerolog/log"
)

type TestController struct {
	testService service.TestService
}

func NewTestController(testService service.TestService) *TestController {
	return &TestController{testService: testService}
}

// respondServiceError maps the service failure kinds onto HTTP statuses.
func respondServiceError(ctx *gin.Context, err error, internalMsg string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrValidation):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	default:
		log.Error().Err(err).Msg(internalMsg)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: internalMsg})
	}
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(value), true
}

// StartTest godoc
// @Summary Start a new test attempt (or retake an existing one)
// @Description Starts the weekly test for a user. If the user already has an attempt for the week it is reset in place and reported as a retry.
// @Tags Tests
// @Accept json
// @Produce json
// @Param request body dto.TestStartRequest true "User and test week"
// @Success 201 {object} dto.TestStartResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "User or test week not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/start [post]
func (c *TestController) StartTest(ctx *gin.Context) {
	var req dto.TestStartRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("StartTest: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := c.testService.StartTest(req)
	if err != nil {
		respondServiceError(ctx, err, "Failed to start test")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// SubmitTest godoc
// @Summary Submit answers and get graded results
// @Description Grades the submitted answers, persists them with the aggregate score, and returns per-question results.
// @Tags Tests
// @Accept json
// @Produce json
// @Param result_id path int true "Test result ID"
// @Param request body dto.TestSubmitRequest true "Answers"
// @Success 200 {object} dto.TestSubmitResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid body or answer outside the attempt's word set"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found or has no quiz words"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/{result_id}/submit [post]
func (c *TestController) SubmitTest(ctx *gin.Context) {
	resultID, ok := parseIDParam(ctx, "result_id")
	if !ok {
		return
	}

	var req dto.TestSubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitTest: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := c.testService.SubmitTest(resultID, req)
	if err != nil {
		respondServiceError(ctx, err, "Failed to submit test")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetAvailability godoc
// @Summary Check whether the weekly test is open right now
// @Tags Tests
// @Produce json
// @Success 200 {object} dto.AvailabilityResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/current-availability [get]
func (c *TestController) GetAvailability(ctx *gin.Context) {
	resp, err := c.testService.GetCurrentAvailability()
	if err != nil {
		respondServiceError(ctx, err, "Failed to check test availability")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetHistory godoc
// @Summary Get a user's graded test history
// @Tags Tests
// @Produce json
// @Param u_id query int true "User ID"
// @Success 200 {object} dto.TestHistoryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/history [get]
func (c *TestController) GetHistory(ctx *gin.Context) {
	value, err := strconv.ParseUint(ctx.Query("u_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid u_id query parameter"})
		return
	}

	resp, err := c.testService.GetTestHistory(uint(value))
	if err != nil {
		respondServiceError(ctx, err, "Failed to get test history")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetDetail godoc
// @Summary Get one attempt's full record with per-question answers
// @Tags Tests
// @Produce json
// @Param result_id path int true "Test result ID"
// @Success 200 {object} dto.TestDetailResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid result ID"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/{result_id}/detail [get]
func (c *TestController) GetDetail(ctx *gin.Context) {
	resultID, ok := parseIDParam(ctx, "result_id")
	if !ok {
		return
	}

	resp, err := c.testService.GetTestDetail(resultID)
	if err != nil {
		respondServiceError(ctx, err, "Failed to get test detail")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteTest godoc
// @Summary Delete an attempt and its answers
// @Tags Tests
// @Param result_id path int true "Test result ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid result ID"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/{result_id} [delete]
func (c *TestController) DeleteTest(ctx *gin.Context) {
	resultID, ok := parseIDParam(ctx, "result_id")
	if !ok {
		return
	}

	if err := c.testService.DeleteTest(resultID); err != nil {
		respondServiceError(ctx, err, "Failed to delete test")
		return
	}
	ctx.Status(http.StatusNoContent)
}
