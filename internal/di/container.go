package di

import (
	"github.com/thanarat-p/eventbook/internal/handler"
	"github.com/thanarat-p/eventbook/internal/repository"
	"github.com/thanarat-p/eventbook/internal/service"
	"github.com/thanarat-p/eventbook/internal/storage"
	"github.com/thanarat-p/eventbook/pkg/database"
	"github.com/thanarat-p/eventbook/pkg/logger"
	"github.com/thanarat-p/eventbook/pkg/redis"
)

// Container holds all dependencies for the API server
type Container struct {
	// Infrastructure
	DB    *database.PostgresDB
	Redis *redis.Client

	// Repositories
	UserRepo    repository.UserRepository
	EventRepo   repository.EventRepository
	EventCache  *repository.CachedEventRepository
	OutboxRepo  repository.OutboxRepository
	BookingRepo repository.BookingRepository

	// Services
	AuthService    service.AuthService
	EventService   service.EventService
	BookingService service.BookingService

	// Handlers
	HealthHandler *handler.HealthHandler
	AuthHandler   *handler.AuthHandler
	EventHandler  *handler.EventHandler
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	DB         *database.PostgresDB
	Redis      *redis.Client
	ImageStore storage.ImageStore
	AuthConfig *service.AuthServiceConfig
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	log := logger.Get()

	c := &Container{
		DB:    cfg.DB,
		Redis: cfg.Redis,
	}

	// Initialize repositories
	c.UserRepo = repository.NewPostgresUserRepository(c.DB.Pool())
	c.OutboxRepo = repository.NewPostgresOutboxRepository(c.DB.Pool())
	c.BookingRepo = repository.NewPostgresBookingRepository(c.DB.Pool(), c.OutboxRepo)

	eventRepo := repository.NewPostgresEventRepository(c.DB.Pool())
	if c.Redis != nil {
		c.EventCache = repository.NewCachedEventRepository(eventRepo, c.Redis, log)
		c.EventRepo = c.EventCache
	} else {
		c.EventRepo = eventRepo
	}

	// Initialize services
	c.AuthService = service.NewAuthService(c.UserRepo, cfg.AuthConfig)
	c.EventService = service.NewEventService(c.EventRepo, c.UserRepo, cfg.ImageStore)

	var eventCache service.EventCache
	if c.EventCache != nil {
		eventCache = c.EventCache
	}
	c.BookingService = service.NewBookingService(c.EventRepo, c.UserRepo, c.BookingRepo, eventCache)

	// Initialize handlers
	c.HealthHandler = handler.NewHealthHandler(c.DB, c.Redis)
	c.AuthHandler = handler.NewAuthHandler(c.AuthService, c.EventService, log)
	c.EventHandler = handler.NewEventHandler(c.EventService, c.BookingService, log)

	return c
}
