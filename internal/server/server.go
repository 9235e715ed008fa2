// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"log"
	"time"

	"artfolio/internal/cache"
	"artfolio/internal/config"
	"artfolio/internal/database"
	"artfolio/internal/middleware"
	"artfolio/internal/models"
	"artfolio/internal/repository"
	"artfolio/internal/service"
	"artfolio/internal/storage"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	blobs          storage.BlobStore

	userRepo        repository.UserRepository
	artworkRepo     repository.ArtworkRepository
	commentRepo     repository.CommentRepository
	followRepo      repository.FollowRepository
	likeRepo        repository.LikeRepository
	saveRepo        repository.SaveRepository
	hashtagRepo     repository.HashtagRepository
	leaderboardRepo repository.LeaderboardRepository

	userService        *service.UserService
	artworkService     *service.ArtworkService
	commentService     *service.CommentService
	engagementService  *service.EngagementService
	feedService        *service.FeedService
	searchService      *service.SearchService
	leaderboardService *service.LeaderboardService
	hashtagService     *service.HashtagService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	// Initialize Redis
	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	// Initialize blob storage; fall back to the in-process store when no
	// bucket is configured so local development works without S3.
	var blobs storage.BlobStore
	if cfg.BucketName != "" {
		blobs, err = storage.NewS3Store(cfg)
		if err != nil {
			return nil, fmt.Errorf("blob store setup failed: %w", err)
		}
	} else {
		log.Println("No bucket configured, using in-memory blob store")
		blobs = storage.NewMemoryStore()
	}

	return NewServerWithDeps(cfg, db, redisClient, blobs)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis and
// optionally performs explicit seeding.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, blobs storage.BlobStore) (*Server, error) {
	middleware.InitMiddleware(cfg)

	// Initialize Prometheus metrics
	prom := middleware.InitMetrics("artfolio-api")

	server := &Server{
		config:          cfg,
		db:              db,
		redis:           redisClient,
		promMiddleware:  prom,
		blobs:           blobs,
		userRepo:        repository.NewUserRepository(db),
		artworkRepo:     repository.NewArtworkRepository(db),
		commentRepo:     repository.NewCommentRepository(db),
		followRepo:      repository.NewFollowRepository(db),
		likeRepo:        repository.NewLikeRepository(db),
		saveRepo:        repository.NewSaveRepository(db),
		hashtagRepo:     repository.NewHashtagRepository(db),
		leaderboardRepo: repository.NewLeaderboardRepository(db),
	}

	server.hashtagService = service.NewHashtagService(server.hashtagRepo)
	server.userService = service.NewUserService(server.userRepo, server.blobs)
	server.artworkService = service.NewArtworkService(server.artworkRepo, server.userRepo, server.hashtagService, server.blobs)
	server.commentService = service.NewCommentService(server.commentRepo, server.artworkRepo)
	server.engagementService = service.NewEngagementService(server.likeRepo, server.saveRepo, server.followRepo, server.userRepo, server.artworkRepo)
	server.feedService = service.NewFeedService(server.artworkRepo, server.followRepo)
	server.searchService = service.NewSearchService(server.userRepo, server.hashtagRepo, server.artworkRepo)
	server.leaderboardService = service.NewLeaderboardService(server.leaderboardRepo)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context Middleware to propagate Request ID and User ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// Distributed tracing spans per request
	if s.config.TracingEnabled {
		app.Use(middleware.TracingMiddleware())
	}

	// CORS middleware should run before middlewares that can short-circuit
	// (e.g. limiter) so browser clients still receive CORS headers on error
	// responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they should be handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Artfolio Backend Metrics Dashboard",
	}))

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/signup", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "signup"), s.Signup)
	auth.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)

	// Public artwork routes (browse/search). OptionalAuth lets logged-in
	// viewers get their per-viewer liked flag on public reads.
	publicArtworks := api.Group("/artworks", middleware.OptionalAuth)
	publicArtworks.Get("/", s.GetDiscoverFeed)
	// Define specific /:id/:resource routes BEFORE generic /:id route
	publicArtworks.Get("/:id/comments", s.GetComments)
	publicArtworks.Get("/:id/likes", s.GetLikers)
	publicArtworks.Get("/:id/hashtags", s.GetArtworkHashtags)
	publicArtworks.Get("/:id", s.GetArtwork)

	// Public search routes
	search := api.Group("/search")
	search.Get("/users", middleware.RateLimit(
		s.redis, 10, time.Minute, "search_users"), s.SearchUsers)
	search.Get("/hashtags", middleware.RateLimit(
		s.redis, 10, time.Minute, "search_hashtags"), s.SearchHashtags)

	// Hashtag feed (exact-tag artwork listing)
	api.Get("/hashtags/:tag/artworks", middleware.OptionalAuth, s.GetHashtagFeed)

	// Leaderboards
	leaderboards := api.Group("/leaderboards")
	leaderboards.Get("/artworks", s.GetTopArtworks)
	leaderboards.Get("/artists", s.GetTopArtists)

	// Public user routes
	publicUsers := api.Group("/users", middleware.OptionalAuth)
	publicUsers.Get("/:id/artworks", s.GetUserArtworks)
	publicUsers.Get("/:id/followers", s.GetFollowers)
	publicUsers.Get("/:id/following", s.GetFollowing)
	publicUsers.Get("/:id", s.GetUserProfile)

	// Protected routes
	protected := api.Group("", middleware.AuthRequired)

	// Current-user routes
	me := protected.Group("/me")
	me.Get("/", s.GetMyProfile)
	me.Put("/", s.UpdateMyProfile)
	me.Get("/feed", s.GetFeed)
	me.Get("/likes", s.GetMyLikedArtworks)
	me.Get("/saves", s.GetMySavedArtworks)

	// Follow edges
	users := protected.Group("/users")
	users.Post("/:id/follow", s.FollowUser)
	users.Delete("/:id/follow", s.UnfollowUser)
	users.Get("/:id/follow", s.GetFollowStatus)

	// Protected artwork routes
	artworks := protected.Group("/artworks")
	artworks.Post("/", middleware.RateLimit(
		s.redis, 5, 5*time.Minute, "create_artwork"), s.CreateArtwork)
	// Define specific /:id/:resource routes BEFORE generic /:id route
	artworks.Post("/:id/like", s.LikeArtwork)
	artworks.Delete("/:id/like", s.UnlikeArtwork)
	artworks.Get("/:id/like", s.GetLikeStatus)
	artworks.Post("/:id/save", s.SaveArtwork)
	artworks.Delete("/:id/save", s.UnsaveArtwork)
	artworks.Get("/:id/save", s.GetSaveStatus)
	artworks.Post("/:id/comments", middleware.RateLimit(
		s.redis, 10, time.Minute, "create_comment"), s.CreateComment)
	artworks.Put("/:id/comments/:commentId", s.UpdateComment)
	artworks.Delete("/:id/comments/:commentId", s.DeleteComment)
	// Generic /:id routes (for item update, delete)
	artworks.Put("/:id", s.UpdateArtwork)
	artworks.Delete("/:id", s.DeleteArtwork)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		// Rate limiting and caches degrade gracefully without Redis, so its
		// absence does not fail readiness.
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"message": "Artfolio",
		"version": "1.0.0",
		"status":  overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName:   "Artfolio API",
		BodyLimit: 20 * 1024 * 1024, // image uploads
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	// Close database connection
	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	// Close Redis connection
	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
