package di

import (
	"time"

	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/client"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/events"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/handler"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/repository"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/service"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/pkg/database"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/pkg/redis"
)

// Container holds all dependencies of the pricing service
type Container struct {
	// Infrastructure
	DB    *database.PostgresDB
	Redis *redis.Client

	// Clients
	PMSClient client.PMSClient
	Audit     events.AuditPublisher

	// Repositories
	PropertyRepo repository.PropertyRepository

	// Services
	PropertyService  service.PropertyService
	PricingService   service.PricingService
	PushService      service.PushService
	OccupancyService service.OccupancyService

	// Handlers
	Handlers *handler.Handlers
}

// ContainerConfig contains configuration for building the container.
// DB and Redis may be nil: without a database properties live in memory,
// without Redis occupancy reads skip the cache.
type ContainerConfig struct {
	DB                *database.PostgresDB
	Redis             *redis.Client
	PMSClient         client.PMSClient
	Audit             events.AuditPublisher
	OccupancyCacheTTL time.Duration
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		DB:        cfg.DB,
		Redis:     cfg.Redis,
		PMSClient: cfg.PMSClient,
		Audit:     cfg.Audit,
	}
	if c.PMSClient == nil {
		c.PMSClient = client.NewNoOpPMSClient()
	}
	if c.Audit == nil {
		c.Audit = events.NewNoOpAuditPublisher()
	}

	// Initialize repositories
	if c.DB != nil {
		c.PropertyRepo = repository.NewPostgresPropertyRepository(c.DB.Pool())
	} else {
		c.PropertyRepo = repository.NewMemoryPropertyRepository()
	}

	// Initialize services
	c.PropertyService = service.NewPropertyService(c.PropertyRepo)
	c.PricingService = service.NewPricingService(c.PropertyRepo)
	c.PushService = service.NewPushService(c.PropertyRepo, c.PMSClient, c.Audit)

	var cache service.OccupancyCache
	if c.Redis != nil {
		cache = c.Redis
	}
	c.OccupancyService = service.NewOccupancyService(c.PropertyRepo, c.PMSClient, cache, cfg.OccupancyCacheTTL)

	// Initialize handlers
	checks := map[string]handler.Pinger{}
	if c.DB != nil {
		checks["postgres"] = c.DB
	}
	if c.Redis != nil {
		checks["redis"] = c.Redis
	}
	c.Handlers = &handler.Handlers{
		Property:  handler.NewPropertyHandler(c.PropertyService),
		Pricing:   handler.NewPricingHandler(c.PricingService, c.PropertyService),
		Push:      handler.NewPushHandler(c.PushService),
		Occupancy: handler.NewOccupancyHandler(c.OccupancyService),
		Health:    handler.NewHealthHandler(checks),
	}

	return c
}

// Close releases the container's infrastructure connections
func (c *Container) Close() {
	c.Audit.Close()
	if c.Redis != nil {
		c.Redis.Close()
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
