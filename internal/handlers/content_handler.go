package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/models"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/repositories"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/services"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/utils"
)

type ContentHandler struct {
	BaseHandler
	contentService services.ContentService
}

func NewContentHandler(contentService services.ContentService, logger utils.Logger) *ContentHandler {
	return &ContentHandler{
		BaseHandler:    NewBaseHandler(logger),
		contentService: contentService,
	}
}

// tagFiltersFromQuery builds equality filters from the tag query params.
// Absent params are not filtered on.
func tagFiltersFromQuery(c *gin.Context) repositories.TagFilters {
	var filters repositories.TagFilters
	if v := c.Query("course"); v != "" {
		filters.Course = &v
	}
	if v := c.Query("board"); v != "" {
		filters.Board = &v
	}
	if v := c.Query("year"); v != "" {
		filters.Year = &v
	}
	if v := c.Query("paper"); v != "" {
		filters.Paper = &v
	}
	if v := c.Query("block"); v != "" {
		filters.Block = &v
	}
	if v := c.Query("topic"); v != "" {
		filters.Topic = &v
	}
	return filters
}

// ===== STUDENT LISTINGS =====

func (h *ContentHandler) ListStaticResources(c *gin.Context) {
	filters := repositories.StaticResourceFilters{TagFilters: tagFiltersFromQuery(c)}
	if v := c.Query("type"); v != "" {
		t := models.ResourceType(v)
		filters.Type = &t
	}

	resources, err := h.contentService.ListStaticResources(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Data: resources})
}

func (h *ContentHandler) ListQA(c *gin.Context) {
	filters := repositories.QAFilters{TagFilters: tagFiltersFromQuery(c)}
	if v := c.Query("type"); v != "" {
		t := models.QuestionType(v)
		filters.Type = &t
	}

	entries, err := h.contentService.ListQA(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Data: entries})
}

func (h *ContentHandler) ListLegacyResources(c *gin.Context) {
	resources, err := h.contentService.ListLegacyResources(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Data: resources})
}

// ===== ADMIN CREATION =====

func (h *ContentHandler) CreateStaticResource(c *gin.Context) {
	userID := h.currentUserID(c)
	if userID == 0 {
		return
	}

	var req services.CreateStaticResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	resource, err := h.contentService.CreateStaticResource(c.Request.Context(), &req, userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resource)
}

func (h *ContentHandler) CreateQA(c *gin.Context) {
	userID := h.currentUserID(c)
	if userID == 0 {
		return
	}

	var req services.CreateQARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	entry, err := h.contentService.CreateQA(c.Request.Context(), &req, userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *ContentHandler) CreateMCQ(c *gin.Context) {
	userID := h.currentUserID(c)
	if userID == 0 {
		return
	}

	var req services.CreateMCQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	entry, err := h.contentService.CreateMCQ(c.Request.Context(), &req, userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *ContentHandler) CreateLegacyResource(c *gin.Context) {
	userID := h.currentUserID(c)
	if userID == 0 {
		return
	}

	var req services.CreateLegacyResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	resource, err := h.contentService.CreateLegacyResource(c.Request.Context(), &req, userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resource)
}
