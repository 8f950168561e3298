package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/services"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/utils"
)

type AccountHandler struct {
	BaseHandler
	accountService services.AccountService
	auth           *AuthMiddleware
}

func NewAccountHandler(accountService services.AccountService, auth *AuthMiddleware, logger utils.Logger) *AccountHandler {
	return &AccountHandler{
		BaseHandler:    NewBaseHandler(logger),
		accountService: accountService,
		auth:           auth,
	}
}

// LoginResponse bundles the session token with the account snapshot.
type LoginResponse struct {
	Token   string                    `json:"token"`
	Account *services.AccountResponse `json:"account"`
}

// Register creates a new student account. The account starts unapproved;
// premium content stays locked until an admin verifies the payment.
func (h *AccountHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	account, err := h.accountService.Register(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	token, err := h.auth.IssueToken(account.Account)
	if err != nil {
		h.LogError(c, "Failed to issue session token", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, LoginResponse{Token: token, Account: account})
}

// Login authenticates by email and password and returns a session token.
func (h *AccountHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	account, err := h.accountService.Authenticate(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	token, err := h.auth.IssueToken(account.Account)
	if err != nil {
		h.LogError(c, "Failed to issue session token", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token, Account: account})
}

// Me returns the authenticated account, including its current payment
// status, so clients can render the locked/unlocked state.
func (h *AccountHandler) Me(c *gin.Context) {
	userID := h.currentUserID(c)
	if userID == 0 {
		return
	}

	account, err := h.accountService.GetByID(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

// SubmitPayment records the student-entered transaction id and moves the
// account to the submitted state for admin review.
func (h *AccountHandler) SubmitPayment(c *gin.Context) {
	userID := h.currentUserID(c)
	if userID == 0 {
		return
	}

	var req services.SubmitPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	if err := h.accountService.SubmitPayment(c.Request.Context(), userID, &req); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Payment submitted; access unlocks after admin verification",
	})
}
