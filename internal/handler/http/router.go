package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/mikiasgoitom/Commune/internal/handler/http/middleware"
	usecasecontract "github.com/mikiasgoitom/Commune/internal/usecase/contract"
	"github.com/mikiasgoitom/Commune/internal/usecase/legacy"
)

type Router struct {
	userHandler          *UserHandler
	communityPostHandler *CommunityPostHandler
	legacyPostHandler    *LegacyPostHandler
	interactionHandler   *InteractionHandler
	adminHandler         *AdminHandler
	identity             usecasecontract.IIdentityResolver
	logger               *zap.Logger
	config               usecasecontract.IConfigProvider
}

func NewRouter(
	userUsecase usecasecontract.IUserUseCase,
	postUsecase usecasecontract.ICommunityPostUseCase,
	legacyPosts legacy.IPostUseCase,
	likeUsecase usecasecontract.ILikeUseCase,
	identity usecasecontract.IIdentityResolver,
	logger *zap.Logger,
	config usecasecontract.IConfigProvider,
) *Router {
	return &Router{
		userHandler:          NewUserHandler(userUsecase),
		communityPostHandler: NewCommunityPostHandler(postUsecase),
		legacyPostHandler:    NewLegacyPostHandler(legacyPosts),
		interactionHandler:   NewInteractionHandler(likeUsecase),
		adminHandler:         NewAdminHandler(postUsecase),
		identity:             identity,
		logger:               logger,
		config:               config,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(r.logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     r.config.GetCORSAllowOrigins(),
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length", middleware.LayoutHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.RateLimiter(middleware.NewLimiter(r.config.GetRateLimitPerSecond())))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) { MessageHandler(c, http.StatusOK, "ok") })

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.userHandler.CreateUser)
		auth.POST("/login", r.userHandler.Login)
	}

	// Public routes (no authentication required)
	v1.GET("/users/:userID", r.userHandler.GetUser)
	v1.GET("/users/:userID/community-posts", r.communityPostHandler.GetCommunityPostsByUserHandler)
	v1.GET("/community-posts", r.communityPostHandler.GetCommunityPostsHandler)
	v1.GET("/community-posts/filter", r.communityPostHandler.FilterCommunityPostsHandler)
	v1.GET("/community-posts/:postID", r.communityPostHandler.GetCommunityPostHandler)
	v1.GET("/community-posts/:postID/likes/count", r.interactionHandler.LikeCountHandler)

	// Like checks resolve the caller themselves; anonymous callers are answered too.
	likes := v1.Group("/likes", middleware.OptionalAuth())
	{
		likes.GET("/is-liked", r.interactionHandler.IsLikedHandler)
		likes.GET("/status", r.interactionHandler.LikeStatusHandler)
	}

	// Legacy routes kept for older mobile builds
	v1.GET("/posts", r.legacyPostHandler.GetPostsHandler)
	v1.GET("/posts/filter", r.legacyPostHandler.FilterPostsHandler)
	v1.GET("/posts/:postID", r.legacyPostHandler.GetPostHandler)
	v1.GET("/users/:userID/posts", r.legacyPostHandler.GetPostsByUserHandler)

	// Protected routes (authentication required)
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleWare(r.identity))
	{
		protected.GET("/me", r.userHandler.GetCurrentUser)

		protected.POST("/community-posts", r.communityPostHandler.CreateCommunityPostHandler)
		protected.DELETE("/community-posts/:postID", r.communityPostHandler.DeleteCommunityPostHandler)
		protected.POST("/community-posts/:postID/like", r.interactionHandler.ToggleLikeHandler)

		protected.POST("/posts", r.legacyPostHandler.CreatePostHandler)
		protected.DELETE("/posts/:postID", r.legacyPostHandler.DeletePostHandler)
	}

	admin := v1.Group("/admin", middleware.AdminLayout(), middleware.AuthMiddleWare(r.identity), middleware.RequireAdmin())
	{
		admin.GET("/community-posts", r.adminHandler.ListPostsHandler)
		admin.DELETE("/community-posts/:postID", r.adminHandler.DeletePostHandler)
	}
}
