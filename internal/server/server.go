package server

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/urbancare/urbancare-api/internal/config"
	"github.com/urbancare/urbancare-api/internal/middleware"
	"github.com/urbancare/urbancare-api/pkg/storage"

	attachmentHttp "github.com/urbancare/urbancare-api/internal/modules/attachment/delivery/http"
	attachmentService "github.com/urbancare/urbancare-api/internal/modules/attachment/service"

	authHttp "github.com/urbancare/urbancare-api/internal/modules/auth/delivery/http"
	authRepo "github.com/urbancare/urbancare-api/internal/modules/auth/repository"
	authService "github.com/urbancare/urbancare-api/internal/modules/auth/service"

	issueHttp "github.com/urbancare/urbancare-api/internal/modules/issue/delivery/http"
	issueRepo "github.com/urbancare/urbancare-api/internal/modules/issue/repository"
	issueService "github.com/urbancare/urbancare-api/internal/modules/issue/service"

	statHttp "github.com/urbancare/urbancare-api/internal/modules/stat/delivery/http"
	statService "github.com/urbancare/urbancare-api/internal/modules/stat/service"
)

type Server struct {
	engine *gin.Engine
}

func NewServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	userRepo := authRepo.NewUserRepository(db)
	authSvc := authService.NewAuthService(userRepo)
	authHandler := authHttp.NewAuthHandler(authSvc)

	issuesRepo := issueRepo.NewIssueRepository(db)
	issueSvc := issueService.NewIssueService(issuesRepo)
	issueHandler := issueHttp.NewIssueHandler(issueSvc)

	statSvc := statService.NewStatService(issuesRepo, redisClient, cfg.StatsCacheTTL)
	statHandler := statHttp.NewStatHandler(statSvc)

	imageStorage, err := storage.NewCloudinaryStorage()
	if err != nil {
		// Uploads are optional infrastructure; everything else still works.
		log.Printf("image uploads disabled: %v", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	setupCORS(router, cfg)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login",
			middleware.LoginRateLimiter(redisClient, cfg.LoginRateLimit, cfg.LoginRateWindow),
			authHandler.Login,
		)
		auth.POST("/check-email", authHandler.CheckEmail)
	}

	issues := api.Group("/issues")
	{
		issues.POST("", issueHandler.CreateIssue)
		issues.GET("", issueHandler.ListIssues)
		issues.GET("/stats/overview", statHandler.GetOverview)
		issues.GET("/:id", issueHandler.GetIssue)
		issues.PUT("/:id", issueHandler.UpdateIssue)
		issues.POST("/:id/updates", issueHandler.AppendUpdate)
		issues.GET("/:id/updates", issueHandler.ListUpdates)
	}

	if imageStorage != nil {
		attachmentSvc := attachmentService.NewAttachmentService(imageStorage, cfg.CloudinaryUploadFolder)
		attachmentHandler := attachmentHttp.NewAttachmentHandler(attachmentSvc)
		api.POST("/upload", attachmentHandler.UploadImage)
	}

	return &Server{engine: router}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// Engine exposes the router for httptest-based tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func setupCORS(router *gin.Engine, cfg *config.Config) {
	var origins []string
	if cfg.AllowedOrigins != "" {
		origins = strings.Split(cfg.AllowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
