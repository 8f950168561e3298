package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/models"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/repositories"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/services"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// AdminHandler serves the admin console: account review, approval and
// xlsx exports.
type AdminHandler struct {
	BaseHandler
	accountService services.AccountService
	exportService  services.ExportService
}

func NewAdminHandler(accountService services.AccountService, exportService services.ExportService, logger utils.Logger) *AdminHandler {
	return &AdminHandler{
		BaseHandler:    NewBaseHandler(logger),
		accountService: accountService,
		exportService:  exportService,
	}
}

// ListAccounts returns accounts filtered by payment status and role.
func (h *AdminHandler) ListAccounts(c *gin.Context) {
	adminID := h.currentUserID(c)
	if adminID == 0 {
		return
	}

	var filters repositories.AccountFilters
	if v := c.Query("payment_status"); v != "" {
		status := models.PaymentStatus(v)
		filters.PaymentStatus = &status
	}
	if v := c.Query("role"); v != "" {
		role := models.UserRole(v)
		filters.Role = &role
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			filters.Limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filters.Offset = n
		}
	}

	accounts, err := h.accountService.List(c.Request.Context(), filters, adminID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, accounts)
}

// ApproveAccount marks a submitted payment as verified and unlocks the
// account. Approval is terminal.
func (h *AdminHandler) ApproveAccount(c *gin.Context) {
	adminID := h.currentUserID(c)
	if adminID == 0 {
		return
	}
	accountID := h.parseIDParam(c, "id")
	if accountID == 0 {
		return
	}

	if err := h.accountService.Approve(c.Request.Context(), accountID, adminID); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Account approved"})
}

// RejectAccount sends a submitted payment back to pending so the student
// can resubmit with a corrected transaction id.
func (h *AdminHandler) RejectAccount(c *gin.Context) {
	adminID := h.currentUserID(c)
	if adminID == 0 {
		return
	}
	accountID := h.parseIDParam(c, "id")
	if accountID == 0 {
		return
	}

	if err := h.accountService.Reject(c.Request.Context(), accountID, adminID); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Payment rejected; account reset to pending"})
}

// ExportAccounts streams the account list as an xlsx download.
func (h *AdminHandler) ExportAccounts(c *gin.Context) {
	adminID := h.currentUserID(c)
	if adminID == 0 {
		return
	}

	data, err := h.exportService.ExportAccounts(c.Request.Context(), adminID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="accounts.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}

// ExportQABank streams the (optionally tag-filtered) Q&A bank as xlsx.
func (h *AdminHandler) ExportQABank(c *gin.Context) {
	adminID := h.currentUserID(c)
	if adminID == 0 {
		return
	}

	filters := repositories.QAFilters{TagFilters: tagFiltersFromQuery(c)}
	if v := c.Query("type"); v != "" {
		t := models.QuestionType(v)
		filters.Type = &t
	}

	data, err := h.exportService.ExportQABank(c.Request.Context(), filters, adminID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="qa_bank.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}
