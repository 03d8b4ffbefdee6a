package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wunif/site-api/internal/api/handler"
	"github.com/wunif/site-api/internal/api/middleware"
	"github.com/wunif/site-api/internal/core/domain"
	"github.com/wunif/site-api/internal/core/ports"
	"github.com/wunif/site-api/internal/core/service"
	mongodb "github.com/wunif/site-api/internal/infrastructure/db/mongo"
	redisdb "github.com/wunif/site-api/internal/infrastructure/db/redis"
)

// Options carries the router's runtime settings.
type Options struct {
	JWTSecret string
	TokenTTL  time.Duration
	// BodyLimit caps request bodies; inline base64 images can be large.
	BodyLimit string
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	bodyLimit := opts.BodyLimit
	if bodyLimit == "" {
		bodyLimit = "50M"
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.BodyLimit(bodyLimit))
	e.Use(echoprometheus.NewMiddleware("wunif"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	newsRepo := mongodb.NewNewsRepository(db)
	contactRepo := mongodb.NewContactRepository(db)
	complaintRepo := mongodb.NewComplaintRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)

	// Declared as the port so a nil *redis.Client leaves the interface nil too.
	var newsCache ports.NewsCache
	if rdb != nil {
		newsCache = redisdb.NewNewsCache(rdb)
	}

	authHandler := handler.NewAuthHandler(service.NewAuthService(userRepo, opts.JWTSecret, opts.TokenTTL))
	userHandler := handler.NewUserHandler(service.NewUserService(userRepo, opts.Logger))
	newsHandler := handler.NewNewsHandler(service.NewNewsService(newsRepo, newsCache, opts.Logger))
	contactHandler := handler.NewContactHandler(service.NewContactService(contactRepo))
	complaintHandler := handler.NewComplaintHandler(service.NewComplaintService(complaintRepo, opts.Logger))
	commentHandler := handler.NewCommentHandler(service.NewCommentService(commentRepo))

	auth := middleware.Auth(opts.JWTSecret)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin, domain.RoleSuperAdmin)
	superAdminOnly := middleware.RequireReservedAdmin()

	// --- Public routes ---
	e.POST("/api/register", authHandler.Register)
	e.POST("/api/login", authHandler.Login)
	e.GET("/api/news", newsHandler.List)
	e.GET("/api/news/:id", newsHandler.Get)
	e.POST("/api/contactmessages", contactHandler.Submit)
	e.POST("/api/complaints-suggestions", complaintHandler.Submit)
	e.GET("/api/comments/:postId", commentHandler.ListByPost)

	// --- Authenticated routes ---
	e.POST("/api/comments", commentHandler.Create, auth)
	e.DELETE("/api/comments/:id", commentHandler.Delete, auth)

	// --- Admin routes ---
	admin := e.Group("/api/admin", auth, adminOnly)
	admin.GET("/users", userHandler.List)
	admin.POST("/news", newsHandler.Create)
	admin.PUT("/news/:id", newsHandler.Update)
	admin.DELETE("/news/:id", newsHandler.Delete)
	admin.GET("/contactmessages", contactHandler.List)
	admin.DELETE("/contactmessages/:id", contactHandler.Delete)
	admin.GET("/complaints-suggestions", complaintHandler.List)
	admin.PUT("/complaints-suggestions/:id/reply", complaintHandler.Reply)
	admin.DELETE("/complaints-suggestions/:id", complaintHandler.Delete)

	// --- Super-admin routes (reserved admin account only) ---
	admin.POST("/grant-admin", userHandler.GrantAdmin, superAdminOnly)
	admin.PUT("/revoke-admin", userHandler.RevokeAdmin, superAdminOnly)
	admin.DELETE("/users/:id", userHandler.Delete, superAdminOnly)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
