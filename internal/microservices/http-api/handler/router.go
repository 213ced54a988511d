package handler

import (
	"log/slog"
	"time"

	"awardshub/internal/logging"
	"awardshub/internal/microservices/http-api/middleware"
	"awardshub/internal/microservices/http-api/models"
	"awardshub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

// Deps is everything NewRouter needs to mount the API.
type Deps struct {
	Logger       *slog.Logger
	DB           Pinger
	Roles        middleware.RoleLookup
	Uploader     ImageUploader
	Limiter      *middleware.RateLimiter
	CORSOrigins  []string
	QueryTimeout time.Duration

	Auth         service.AuthService
	Categories   service.CategoryService
	Nominees     service.NomineeService
	Votes        service.VoteService
	Content      service.ContentService
	Academy      service.AcademyService
	Events       service.EventService
	Users        service.UserAdminService
	VotingConfig service.VotingConfigService
	Results      service.ResultsService
	Stats        service.StatsService
}

// NewRouter wires the public, voter and admin route groups.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logging.GinLogger(d.Logger))
	r.Use(middleware.CORS(d.CORSOrigins))

	limit := func(c *gin.Context) { c.Next() }
	if d.Limiter != nil {
		limit = d.Limiter.Middleware()
	}

	health := NewHealthHandler(d.DB)
	r.GET("/healthz", health.Health)

	authHandler := NewAuthHandler(d.Auth, d.QueryTimeout)
	categoryHandler := NewCategoryHandler(d.Categories, d.QueryTimeout)
	nomineeHandler := NewNomineeHandler(d.Nominees, d.Uploader, d.QueryTimeout)
	voteHandler := NewVoteHandler(d.Votes, d.QueryTimeout)
	contentHandler := NewContentHandler(d.Content, d.QueryTimeout)
	academyHandler := NewAcademyHandler(d.Academy, d.Uploader, d.QueryTimeout)
	eventHandler := NewEventHandler(d.Events, d.Uploader, d.QueryTimeout)
	userHandler := NewUserHandler(d.Users, d.QueryTimeout)
	votingHandler := NewVotingHandler(d.VotingConfig, d.Results, d.QueryTimeout)
	statsHandler := NewStatsHandler(d.Stats, d.QueryTimeout)

	api := r.Group("/api")
	{
		authHandler.RegisterRoutes(api.Group("/auth"), limit)
		categoryHandler.RegisterRoutes(api.Group("/categories"))
		nomineeHandler.RegisterRoutes(api.Group("/nominees"))
		academyHandler.RegisterRoutes(api.Group("/academy"))
		eventHandler.RegisterRoutes(api.Group("/events"))
		contentHandler.RegisterRoutes(api.Group("/content"))
		votingHandler.RegisterRoutes(api, middleware.OptionalAuth(d.Auth, d.Roles))

		votes := api.Group("/votes")
		votes.Use(middleware.AuthMiddleware(d.Auth))
		voteHandler.RegisterRoutes(votes, limit)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(d.Auth), middleware.RoleGate(d.Roles, models.RoleAdmin))
	{
		admin.GET("/stats", statsHandler.Dashboard)
		votingHandler.RegisterAdminRoutes(admin)
		categoryHandler.RegisterAdminRoutes(admin.Group("/categories"))
		nomineeHandler.RegisterAdminRoutes(admin.Group("/nominees"))
		contentHandler.RegisterAdminRoutes(admin.Group("/content"))
		academyHandler.RegisterAdminRoutes(admin.Group("/academy"))
		eventHandler.RegisterAdminRoutes(admin.Group("/events"))
		userHandler.RegisterAdminRoutes(admin.Group("/users"))
	}

	return r
}
