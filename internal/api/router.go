package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/empowerup/empowerup-api/internal/api/handler"
	"github.com/empowerup/empowerup-api/internal/api/middleware"
	"github.com/empowerup/empowerup-api/internal/auth"
	"github.com/empowerup/empowerup-api/internal/core/ports"
	"github.com/empowerup/empowerup-api/internal/core/service"
	"github.com/empowerup/empowerup-api/internal/infrastructure/queue"
	"github.com/empowerup/empowerup-api/internal/infrastructure/ratelimit"
	"github.com/empowerup/empowerup-api/internal/pkg/config"

	mongodb "github.com/empowerup/empowerup-api/internal/infrastructure/db/mongo"
	redisdb "github.com/empowerup/empowerup-api/internal/infrastructure/db/redis"
)

// NewRouter builds the Echo instance with all middleware, dependencies and
// routes registered. The audit dispatcher is returned so the caller can start
// and drain it alongside the server lifecycle.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Secure())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("empowerup"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	groupRepo := mongodb.NewGroupRepository(db)
	eventRepo := mongodb.NewEventRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)

	sessionStore := redisdb.NewSessionStore(rdb, cfg.Session.TTL)

	var limiter ports.RateLimiter = redisdb.NewRateLimiter(rdb)
	if cfg.RateLimit.Backend == "memory" {
		limiter = ratelimit.NewMemoryLimiter(ratelimit.MemoryLimiterConfig{})
	}

	// --- Audit trail worker pool ---
	dispatcher := queue.NewDispatcher(0, auditRepo, log)

	// --- Token codecs (distinct secrets per audience) ---
	userCodec := auth.NewCodec(cfg.Auth.UserSecret, cfg.Auth.TokenTTL)
	adminCodec := auth.NewCodec(cfg.Auth.AdminSecret, cfg.Auth.TokenTTL)

	// --- Services ---
	authService := service.NewAuthService(userRepo, sessionStore, userCodec, adminCodec, dispatcher, log)
	postService := service.NewPostService(postRepo, dispatcher, log)
	groupService := service.NewGroupService(groupRepo, dispatcher, log)
	eventService := service.NewEventService(eventRepo, dispatcher, log)
	feedService := service.NewFeedService(postRepo, groupRepo, eventRepo)
	statsService := service.NewStatsService(userRepo, postRepo, groupRepo, eventRepo, auditRepo)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, cfg.Session.CookieName, cfg.Session.TTL, cfg.Session.Secure, cfg.Session.SameSiteMode())
	postHandler := handler.NewPostHandler(postService)
	groupHandler := handler.NewGroupHandler(groupService)
	eventHandler := handler.NewEventHandler(eventService)
	feedHandler := handler.NewFeedHandler(feedService)
	statsHandler := handler.NewStatsHandler(statsService)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	// --- Auth resolver + rate limiting ---
	resolver := middleware.NewResolver(userRepo, sessionStore, userCodec, adminCodec, cfg.Session.CookieName, log)
	throttle := middleware.RateLimit(limiter, cfg.RateLimit.Limit, cfg.RateLimit.Window, log)

	// --- Routes ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	v1 := e.Group("/v1")

	// Credential endpoints carry the brute-force throttle.
	v1.POST("/auth/register", authHandler.Register, throttle)
	v1.POST("/auth/login", authHandler.Login, throttle)
	v1.POST("/auth/logout", authHandler.Logout)
	// Browser bootstrap: resolves strictly from the session cookie so SPAs can
	// restore a logged-in state without holding a token.
	v1.GET("/auth/session", authHandler.Me, resolver.RequireSession())
	v1.GET("/me", authHandler.Me, resolver.RequireUser())

	v1.GET("/posts", postHandler.List)
	v1.GET("/posts/:id", postHandler.Get)
	v1.POST("/posts", postHandler.Create, resolver.RequireUser())
	v1.DELETE("/posts/:id", postHandler.Delete, resolver.RequireUser())

	v1.GET("/groups", groupHandler.List)
	v1.POST("/groups", groupHandler.Create, resolver.RequireUser())
	v1.POST("/groups/:id/join", groupHandler.Join, resolver.RequireUser())
	v1.POST("/groups/:id/leave", groupHandler.Leave, resolver.RequireUser())

	v1.GET("/events", eventHandler.List)
	v1.POST("/events", eventHandler.Create, resolver.RequireUser())

	v1.GET("/feed", feedHandler.Feed, resolver.OptionalUser())

	v1.POST("/admin/login", authHandler.AdminLogin, throttle)
	v1.GET("/admin/stats", statsHandler.Dashboard, resolver.RequireAdmin())

	return e, dispatcher
}
