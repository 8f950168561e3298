package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/models"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/services"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/utils"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/validator"
)

type HandlerManager struct {
	accountHandler  *AccountHandler
	taxonomyHandler *TaxonomyHandler
	contentHandler  *ContentHandler
	quizHandler     *QuizHandler
	searchHandler   *SearchHandler
	adminHandler    *AdminHandler
	auth            *AuthMiddleware

	serviceManager services.ServiceManager
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	validator *validator.Validator,
	logger utils.Logger,
	jwtSecret string,
	sessionTTL time.Duration,
) *HandlerManager {
	auth := NewAuthMiddleware(jwtSecret, sessionTTL, serviceManager.Account())

	return &HandlerManager{
		accountHandler:  NewAccountHandler(serviceManager.Account(), auth, logger),
		taxonomyHandler: NewTaxonomyHandler(serviceManager.Taxonomy(), logger),
		contentHandler:  NewContentHandler(serviceManager.Content(), logger),
		quizHandler:     NewQuizHandler(serviceManager.Quiz(), serviceManager.Content(), validator, logger),
		searchHandler:   NewSearchHandler(serviceManager.Search(), validator, logger),
		adminHandler:    NewAdminHandler(serviceManager.Account(), serviceManager.Export(), logger),
		auth:            auth,
		serviceManager:  serviceManager,
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", hm.healthCheck)

	v1 := router.Group("/api/v1")

	// Public routes: signup and login
	auth := v1.Group("/auth")
	{
		auth.POST("/register", hm.accountHandler.Register)
		auth.POST("/login", hm.accountHandler.Login)
	}

	// Taxonomy reads are open to guests; writes stay behind the admin gate
	taxonomy := v1.Group("/taxonomy")
	{
		taxonomy.GET("/fields", hm.taxonomyHandler.GetFields)
		taxonomy.GET("/:field", hm.taxonomyHandler.GetOptions)
		taxonomy.POST("", hm.auth.RequireAuth(), hm.auth.RequireRole(models.RoleAdmin), hm.taxonomyHandler.AppendOption)
	}

	// Authenticated routes
	authed := v1.Group("")
	authed.Use(hm.auth.RequireAuth())
	{
		// Account self-service
		account := authed.Group("/account")
		{
			account.GET("/me", hm.accountHandler.Me)
			account.POST("/payment", hm.accountHandler.SubmitPayment)
		}

		// Premium content: approved accounts (and admins) only
		gated := authed.Group("")
		gated.Use(hm.auth.RequireApproved())
		{
			gated.GET("/resources", hm.contentHandler.ListStaticResources)
			gated.GET("/resources/legacy", hm.contentHandler.ListLegacyResources)
			gated.GET("/qa", hm.contentHandler.ListQA)
			gated.POST("/qa/search", hm.searchHandler.Search)
			gated.POST("/qa/solve", hm.searchHandler.Solve)
			gated.GET("/quizzes", hm.quizHandler.ListMCQs)
			gated.POST("/quizzes/:id/check", hm.quizHandler.Check)
		}

		// Admin console
		admin := authed.Group("/admin")
		admin.Use(hm.auth.RequireRole(models.RoleAdmin))
		{
			admin.GET("/accounts", hm.adminHandler.ListAccounts)
			admin.POST("/accounts/:id/approve", hm.adminHandler.ApproveAccount)
			admin.POST("/accounts/:id/reject", hm.adminHandler.RejectAccount)
			admin.GET("/accounts/export", hm.adminHandler.ExportAccounts)

			admin.POST("/resources", hm.contentHandler.CreateStaticResource)
			admin.POST("/resources/legacy", hm.contentHandler.CreateLegacyResource)
			admin.POST("/qa", hm.contentHandler.CreateQA)
			admin.GET("/qa/export", hm.adminHandler.ExportQABank)
			admin.POST("/quizzes", hm.contentHandler.CreateMCQ)
		}
	}
}

func (hm *HandlerManager) healthCheck(c *gin.Context) {
	if err := hm.serviceManager.HealthCheck(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "physics-master",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
