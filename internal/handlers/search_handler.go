package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/models"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/services"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/utils"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/validator"
)

type SearchHandler struct {
	BaseHandler
	searchService services.SearchService
	validator     *validator.Validator
}

func NewSearchHandler(searchService services.SearchService, validator *validator.Validator, logger utils.Logger) *SearchHandler {
	return &SearchHandler{
		BaseHandler:   NewBaseHandler(logger),
		searchService: searchService,
		validator:     validator,
	}
}

// SearchRequest selects the scope (full tag plus question type) and the
// keyword to match inside question text.
type SearchRequest struct {
	Tag     validator.TagRequest `json:"tag"`
	Type    models.QuestionType  `json:"type" validate:"required,oneof=SAQs PYQs 'Terminal Questions'"`
	Keyword string               `json:"keyword"`
}

// Search runs the keyword search over the Q&A bank. A blank keyword is a
// valid request that returns no entries.
func (h *SearchHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		h.handleServiceError(c, err)
		return
	}

	result, err := h.searchService.Search(c.Request.Context(), req.Tag.ToTag(), req.Type, req.Keyword)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// SolveResponse wraps the AI answer text. The answer is LaTeX-formatted
// prose, or a fixed unavailable message when the AI call fails.
type SolveResponse struct {
	Answer string `json:"answer"`
}

// Solve forwards a question (optionally with an image) to the AI solver.
// This endpoint never fails with a 5xx for AI-side problems.
func (h *SearchHandler) Solve(c *gin.Context) {
	var req services.SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	answer := h.searchService.Solve(c.Request.Context(), &req)

	c.JSON(http.StatusOK, SolveResponse{Answer: answer})
}
