package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jaehopark/vocaweek/internal/dto"
	"github.com/jaehopark/vocaweek/internal/service"
	"github.com/rs/zerolog/log"
)

type VocabularyController struct {
	vocabService service.VocabularyService
}

func NewVocabularyController(vocabService service.VocabularyService) *VocabularyController {
	return &VocabularyController{vocabService: vocabService}
}

// UpsertWord godoc
// @Summary Create or refresh a vocabulary word
// @Description Ingestion endpoint used by the crawlers. The same (date, english) pair updates the existing entry.
// @Tags Vocabulary
// @Accept json
// @Produce json
// @Param word body dto.VocabularyCreateRequest true "Word data"
// @Success 201 {object} dto.VocabularyWordResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid body or date"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /vocabulary [post]
func (c *VocabularyController) UpsertWord(ctx *gin.Context) {
	var req dto.VocabularyCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("UpsertWord: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := c.vocabService.UpsertWord(req)
	if err != nil {
		respondServiceError(ctx, err, "Failed to save vocabulary word")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetWords godoc
// @Summary List vocabulary words
// @Tags Vocabulary
// @Produce json
// @Param limit query int false "Page size (default 100)"
// @Param offset query int false "Offset (default 0)"
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Success 200 {array} dto.VocabularyWordResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid date"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /vocabulary [get]
func (c *VocabularyController) GetWords(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(ctx.DefaultQuery("offset", "0"))

	resp, err := c.vocabService.GetWords(limit, offset, ctx.Query("date"))
	if err != nil {
		respondServiceError(ctx, err, "Failed to list vocabulary words")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetRecentDates godoc
// @Summary List the most recent dates that have words
// @Tags Vocabulary
// @Produce json
// @Param limit query int false "Number of dates (default 5)"
// @Success 200 {object} dto.VocabularyDatesResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /vocabulary/dates [get]
func (c *VocabularyController) GetRecentDates(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "5"))

	resp, err := c.vocabService.GetRecentDates(limit)
	if err != nil {
		respondServiceError(ctx, err, "Failed to list vocabulary dates")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetWord godoc
// @Summary Get one vocabulary word
// @Tags Vocabulary
// @Produce json
// @Param id path int true "Word ID"
// @Success 200 {object} dto.VocabularyWordResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 404 {object} dto.ErrorResponse "Word not found"
// @Router /vocabulary/{id} [get]
func (c *VocabularyController) GetWord(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.vocabService.GetWord(id)
	if err != nil {
		respondServiceError(ctx, err, "Failed to get vocabulary word")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateWord godoc
// @Summary Update a vocabulary word
// @Tags Vocabulary
// @Accept json
// @Produce json
// @Param id path int true "Word ID"
// @Param word body dto.VocabularyUpdateRequest true "Updated word data"
// @Success 200 {object} dto.VocabularyWordResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid body or ID"
// @Failure 404 {object} dto.ErrorResponse "Word not found"
// @Router /vocabulary/{id} [put]
func (c *VocabularyController) UpdateWord(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.VocabularyUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := c.vocabService.UpdateWord(id, req)
	if err != nil {
		respondServiceError(ctx, err, "Failed to update vocabulary word")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteWord godoc
// @Summary Delete a vocabulary word
// @Tags Vocabulary
// @Param id path int true "Word ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 404 {object} dto.ErrorResponse "Word not found"
// @Router /vocabulary/{id} [delete]
func (c *VocabularyController) DeleteWord(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.vocabService.DeleteWord(id); err != nil {
		respondServiceError(ctx, err, "Failed to delete vocabulary word")
		return
	}
	ctx.Status(http.StatusNoContent)
}
