package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/repositories"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/services"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/utils"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/validator"
)

type QuizHandler struct {
	BaseHandler
	quizService    services.QuizService
	contentService services.ContentService
	validator      *validator.Validator
}

func NewQuizHandler(quizService services.QuizService, contentService services.ContentService, validator *validator.Validator, logger utils.Logger) *QuizHandler {
	return &QuizHandler{
		BaseHandler:    NewBaseHandler(logger),
		quizService:    quizService,
		contentService: contentService,
		validator:      validator,
	}
}

// ListMCQs returns the quiz questions for a tag. Correct keys and
// explanations are included; the client reveals them only after an answer.
func (h *QuizHandler) ListMCQs(c *gin.Context) {
	filters := repositories.MCQFilters{TagFilters: tagFiltersFromQuery(c)}

	entries, err := h.contentService.ListMCQ(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Data: entries})
}

// Check grades a single selected option against one MCQ.
func (h *QuizHandler) Check(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	var req validator.QuizCheckRequest
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

	result, err := h.quizService.CheckByID(c.Request.Context(), id, req.SelectedKey)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
