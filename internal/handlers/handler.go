package handlers

import (
	"time"

	"wordblog/internal/logger"
	"wordblog/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(h.requestID)
	router.Use(corsMiddleware())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	api := router.Group("/api")
	{
		h.registerAuthRoutes(api)
		h.registerArticleRoutes(api)
	}

	return router
}

func (h *Handler) registerAuthRoutes(api *gin.RouterGroup) {
	api.POST("/login", h.login)
	api.POST("/logout", h.logout)
	api.GET("/check_login", h.checkLogin)
}

func (h *Handler) registerArticleRoutes(api *gin.RouterGroup) {
	api.GET("/getWordList", h.listArticles)
	api.POST("/article", h.addArticle)
	api.GET("/article/:slug", h.getArticle)
	api.DELETE("/article/:title", h.deleteArticle)

	// Update is the only session-gated operation.
	api.PUT("/article/:slug", h.sessionRequired, h.updateArticle)
}

// corsMiddleware permits credentialed cross-origin requests: the session
// cookie has to survive a browser frontend served from another origin.
func corsMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		AllowOriginFunc:  func(origin string) bool { return true },
		MaxAge:           12 * time.Hour,
	})
}
