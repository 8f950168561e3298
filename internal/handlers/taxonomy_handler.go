package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/models"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/services"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/utils"
)

type TaxonomyHandler struct {
	BaseHandler
	taxonomyService services.TaxonomyService
}

func NewTaxonomyHandler(taxonomyService services.TaxonomyService, logger utils.Logger) *TaxonomyHandler {
	return &TaxonomyHandler{
		BaseHandler:     NewBaseHandler(logger),
		taxonomyService: taxonomyService,
	}
}

// GetFields lists the six selector fields in display order.
func (h *TaxonomyHandler) GetFields(c *gin.Context) {
	c.JSON(http.StatusOK, SuccessResponse{Data: models.TaxonomyFields})
}

// GetOptions returns the option list for one field. Unknown fields yield
// an empty list so every dropdown renders.
func (h *TaxonomyHandler) GetOptions(c *gin.Context) {
	field := models.TaxonomyField(c.Param("field"))

	options, err := h.taxonomyService.GetOptions(c.Request.Context(), field)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Data: options})
}

// AppendOption adds a new label to one field. Duplicates are reported in
// the message, not as an error.
func (h *TaxonomyHandler) AppendOption(c *gin.Context) {
	userID := h.currentUserID(c)
	if userID == 0 {
		return
	}

	var req services.AppendOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	result, err := h.taxonomyService.AppendOption(c.Request.Context(), &req, userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	status := http.StatusOK
	if result.Appended {
		status = http.StatusCreated
	}
	c.JSON(status, result)
}
