package router

import (
	"net/http"
	"time"

	"tablero/config"
	"tablero/internal/handler"
	"tablero/internal/middleware"
	"tablero/internal/repository"
	"tablero/internal/service"
	"tablero/pkg/powerbi"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, pbi powerbi.Client) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.Origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	reportRepo := repository.NewReportRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	reactionRepo := repository.NewReactionRepository(db)

	// Services
	authSvc := service.NewAuthService(cfg, userRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	commentHandler := handler.NewCommentHandler(commentRepo, authSvc)
	reactionHandler := handler.NewReactionHandler(reactionRepo, authSvc)
	powerbiHandler := handler.NewPowerBIHandler(pbi, reportRepo, authSvc)

	authMw := middleware.AuthRequired(&cfg.JWT)
	optionalMw := middleware.AuthOptional(&cfg.JWT)
	adminMw := middleware.AdminRequired(userRepo)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "message": "PowerBI Backend API is running"})
	})

	api := r.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/refresh", authMw, authHandler.Refresh)
		api.GET("/auth/me", authMw, authHandler.Me)

		api.GET("/comments", optionalMw, commentHandler.List)
		api.POST("/comments", authMw, commentHandler.Create)
		api.POST("/comments/:id/like", authMw, commentHandler.ToggleLike)
		api.DELETE("/comments/:id", authMw, commentHandler.Delete)

		api.GET("/reactions", reactionHandler.Stats)
		api.POST("/reactions", authMw, reactionHandler.Toggle)
		api.GET("/reactions/user", authMw, reactionHandler.ListMine)

		api.GET("/powerbi/report-url", authMw, powerbiHandler.ReportURL)
		api.GET("/powerbi/reports", authMw, powerbiHandler.ListReports)
		api.POST("/powerbi/reports", authMw, adminMw, powerbiHandler.CreateReport)
	}

	return r
}
