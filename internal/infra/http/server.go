package http

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"notesd/internal/config"
	"notesd/internal/domain"
	"notesd/internal/infra/auth/guard"
	"notesd/internal/infra/db"
	"notesd/internal/infra/ratelimit"
	"notesd/internal/usecase"
)

type Server struct {
	cfg config.Config
	r   *gin.Engine

	orgs  *usecase.OrganizationService
	users *usecase.UserService
	notes *usecase.NoteService

	guard *guard.Guard

	rateLimiter         domain.RateLimiter
	rateLimitRequests   int
	rateLimitWindow     time.Duration
	rateLimitFailClosed bool
}

type ServerDeps struct {
	Orgs        *usecase.OrganizationService
	Users       *usecase.UserService
	Notes       *usecase.NoteService
	Directory   domain.UserDirectory
	RateLimiter domain.RateLimiter
}

func NewServer(cfg config.Config, store *db.Store) *Server {
	orgRepo := db.NewOrganizationRepository(store.DB)
	userRepo := db.NewUserRepository(store.DB)
	noteRepo := db.NewNoteRepository(store.DB)

	deps := ServerDeps{
		Orgs:      usecase.NewOrganizationService(orgRepo),
		Users:     usecase.NewUserService(orgRepo, userRepo),
		Notes:     usecase.NewNoteService(noteRepo),
		Directory: userRepo,
	}
	if cfg.RateLimitRequests > 0 {
		deps.RateLimiter = newRateLimiter(cfg)
	}
	return NewServerWithDeps(cfg, deps)
}

func NewServerWithDeps(cfg config.Config, deps ServerDeps) *Server {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestIDMiddleware())

	s := &Server{
		cfg:                 cfg,
		r:                   r,
		orgs:                deps.Orgs,
		users:               deps.Users,
		notes:               deps.Notes,
		guard:               guard.New(deps.Directory),
		rateLimiter:         deps.RateLimiter,
		rateLimitRequests:   cfg.RateLimitRequests,
		rateLimitWindow:     cfg.RateLimitWindow(),
		rateLimitFailClosed: cfg.RateLimitFailClosed,
	}
	s.routes()
	return s
}

func newRateLimiter(cfg config.Config) domain.RateLimiter {
	if cfg.RedisAddr != "" {
		limiter, err := ratelimit.NewRedisLimiter(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, nil)
		if err == nil {
			return limiter
		}
		log.Printf("redis rate limiter unavailable (%v); falling back to memory", err)
	}
	return ratelimit.NewMemoryLimiter(ratelimit.MemoryConfig{MaxKeys: cfg.RateLimitMaxKeys})
}

func (s *Server) Run() error {
	addr := s.cfg.HTTPAddr
	if addr == "" {
		addr = ":8080"
	}
	log.Printf("notesd listening on %s", addr)
	return s.r.Run(addr)
}

func (s *Server) routes() {
	s.r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "notesd"})
	})

	// Organization endpoints are public by design: tenants have to be
	// bootstrapped before any user can exist in them.
	s.r.POST("/organizations", s.publicRateLimit(routeOrgs), s.handleCreateOrganization)
	s.r.GET("/organizations/:org_id", s.publicRateLimit(routeOrgs), s.handleGetOrganization)

	users := s.r.Group("/organizations/:org_id/users")
	{
		users.POST("", s.requireAuth(domain.RoleAdmin, routeUsers), s.handleCreateUser)
		users.GET("", s.requireAuth(domain.RoleAdmin, routeUsers), s.handleListUsers)
		users.GET("/:user_id", s.requireAuth(domain.RoleAdmin, routeUsers), s.handleGetUser)
		users.PUT("/:user_id", s.requireAuth(domain.RoleAdmin, routeUsers), s.handleUpdateUser)
	}

	notes := s.r.Group("/notes")
	{
		notes.POST("", s.requireAuth(domain.RoleReader, routeNotes), s.handleCreateNote)
		notes.GET("", s.requireAuth(domain.RoleReader, routeNotesList), s.handleListNotes)
		notes.GET("/:note_id", s.requireAuth(domain.RoleReader, routeNotes), s.handleGetNote)
		notes.PUT("/:note_id", s.requireAuth(domain.RoleWriter, routeNotes), s.handleUpdateNote)
		notes.DELETE("/:note_id", s.requireAuth(domain.RoleAdmin, routeNotes), s.handleDeleteNote)
	}
}
