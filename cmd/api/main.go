package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/skillhub/skillhub-api/config"
	"github.com/skillhub/skillhub-api/internal/handlers"
	"github.com/skillhub/skillhub-api/internal/middleware"
	"github.com/skillhub/skillhub-api/internal/repository"
	"github.com/skillhub/skillhub-api/internal/services"
	"github.com/skillhub/skillhub-api/pkg/auth"
	"github.com/skillhub/skillhub-api/pkg/db"
	"github.com/skillhub/skillhub-api/pkg/jwt"
	"github.com/skillhub/skillhub-api/pkg/logger"
	"github.com/skillhub/skillhub-api/pkg/metrics"
	"go.uber.org/zap"
)

// registerPublicRoutes registers the routes that need no session
func registerPublicRoutes(
	router *gin.Engine,
	tokenManager *jwt.TokenManager,
	generalRateLimiter, authRateLimiter *middleware.RateLimiter,
	authHandler *handlers.AuthHandler,
	directoryHandler *handlers.DirectoryHandler,
	skillHandler *handlers.SkillHandler,
	userSkillHandler *handlers.UserSkillHandler,
	healthHandler *handlers.HealthHandler,
) {
	router.POST("/register", authRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(16*1024), authHandler.Register)
	router.POST("/login", authRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(16*1024), authHandler.Login)
	router.POST("/logout", generalRateLimiter.Middleware(), authHandler.Logout)
	router.GET("/me", generalRateLimiter.Middleware(), middleware.OptionalSessionMiddleware(tokenManager), authHandler.Me)

	router.GET("/users", generalRateLimiter.Middleware(), directoryHandler.ListUsers)
	router.GET("/courses", generalRateLimiter.Middleware(), directoryHandler.ListCourses)
	router.GET("/skills", generalRateLimiter.Middleware(), skillHandler.ListSkills)
	router.GET("/browse-skills", generalRateLimiter.Middleware(), userSkillHandler.Browse)
	router.GET("/courses/:id/skills", generalRateLimiter.Middleware(), skillHandler.ListCourseSkills)

	router.GET("/healthcheck", generalRateLimiter.Middleware(), healthHandler.Healthcheck)
	router.GET("/metrics", generalRateLimiter.Middleware(), gin.WrapH(promhttp.Handler()))
}

// registerSessionRoutes registers the routes behind the session cookie
func registerSessionRoutes(
	router *gin.Engine,
	cfg *config.Config,
	tokenManager *jwt.TokenManager,
	generalRateLimiter *middleware.RateLimiter,
	authHandler *handlers.AuthHandler,
	directoryHandler *handlers.DirectoryHandler,
	sessionRequestHandler *handlers.SessionRequestHandler,
	skillHandler *handlers.SkillHandler,
	userSkillHandler *handlers.UserSkillHandler,
	skillRequestHandler *handlers.SkillRequestHandler,
) {
	authed := router.Group("/")
	authed.Use(generalRateLimiter.Middleware())
	authed.Use(middleware.SessionMiddleware(tokenManager, cfg.Session.CookieSecure))
	authed.Use(middleware.BodySizeLimitMiddleware(64 * 1024))

	authed.POST("/courses", directoryHandler.CreateCourse)

	// Course session request workflow
	authed.POST("/request", sessionRequestHandler.Create)
	authed.GET("/student-sessions", sessionRequestHandler.StudentSessions)
	authed.GET("/requests", sessionRequestHandler.InstructorRequests)
	authed.POST("/requests/:id/:status", sessionRequestHandler.UpdateStatus)

	// Skill vocabulary and attachments
	authed.POST("/skills", skillHandler.EnsureSkill)
	authed.POST("/courses/:id/skills", skillHandler.AddCourseSkill)
	authed.DELETE("/courses/:id/skills/:skillId", skillHandler.RemoveCourseSkill)

	// Self-declared skills
	authed.GET("/user-skills", userSkillHandler.List)
	authed.POST("/user-skills", userSkillHandler.Add)
	authed.PUT("/user-skills/:id", userSkillHandler.Update)
	authed.DELETE("/user-skills/:id", userSkillHandler.Delete)

	// Peer skill request workflow
	authed.POST("/skill-request", skillRequestHandler.Create)
	authed.GET("/skill-requests-received", skillRequestHandler.Received)
	authed.GET("/skill-requests-sent", skillRequestHandler.Sent)
	authed.POST("/skill-requests/:id/:status", skillRequestHandler.UpdateStatus)
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting SkillHub API",
		zap.String("version", "1.0.0"),
		zap.String("environment", cfg.Server.AppEnv),
	)

	// Start infrastructure metrics collection
	metrics.RecordInfrastructureMetrics()

	// Initialize PostgreSQL connection pool
	pool, err := db.NewPool(context.Background(), db.PoolConfig{
		URL:      cfg.Database.URL,
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		logger.Fatal("Failed to initialize database connection pool", zap.Error(err))
	}
	defer pool.Close()

	// NOTE: Database migrations are run separately via the migrate command

	// Initialize repositories
	userRepo := repository.NewUserRepository(pool)
	courseRepo := repository.NewCourseRepository(pool)
	skillRepo := repository.NewSkillRepository(pool)
	userSkillRepo := repository.NewUserSkillRepository(pool)
	sessionRequestRepo := repository.NewSessionRequestRepository(pool)
	skillRequestRepo := repository.NewSkillRequestRepository(pool)

	// Initialize services
	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)
	tokenManager := jwt.NewTokenManager(cfg.Session.JWTSecret, cfg.Session.JWTIssuer, cfg.Session.SessionTTLHours)

	authService := services.NewAuthService(userRepo, hasher, tokenManager)
	directoryService := services.NewDirectoryService(userRepo, courseRepo)
	skillService := services.NewSkillService(skillRepo, courseRepo)
	userSkillService := services.NewUserSkillService(userSkillRepo, skillRepo)
	sessionRequestService := services.NewSessionRequestService(sessionRequestRepo)
	skillRequestService := services.NewSkillRequestService(skillRequestRepo)

	// Initialize handlers
	sessionTTLSeconds := cfg.Session.SessionTTLHours * 3600
	authHandler := handlers.NewAuthHandler(authService, sessionTTLSeconds, cfg.Session.CookieSecure)
	directoryHandler := handlers.NewDirectoryHandler(directoryService)
	skillHandler := handlers.NewSkillHandler(skillService)
	userSkillHandler := handlers.NewUserSkillHandler(userSkillService)
	sessionRequestHandler := handlers.NewSessionRequestHandler(sessionRequestService)
	skillRequestHandler := handlers.NewSkillRequestHandler(skillRequestService)
	healthHandler := handlers.NewHealthHandler(pool)

	// Set up Gin router
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// CORS: only allow the configured origins
	allowedOrigins := cfg.Server.AllowedOrigins
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://127.0.0.1:3000")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-CSRF-Token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true, // Required for session cookies
		MaxAge:           12 * time.Hour,
	}))

	// Rate limiters per endpoint class
	generalRateLimiter := middleware.NewRateLimiter(100, 200) // 100 req/sec, burst of 200
	authRateLimiter := middleware.NewRateLimiter(2, 5)        // 2 req/sec, burst of 5 (login abuse prevention)

	registerPublicRoutes(router, tokenManager, generalRateLimiter, authRateLimiter,
		authHandler, directoryHandler, skillHandler, userSkillHandler, healthHandler)
	registerSessionRoutes(router, cfg, tokenManager, generalRateLimiter,
		authHandler, directoryHandler, sessionRequestHandler, skillHandler, userSkillHandler, skillRequestHandler)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
