package container

import (
	"log/slog"

	"github.com/gatherly/api/internal/config"
	"github.com/gatherly/api/internal/models"
	"github.com/gatherly/api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Logger *slog.Logger
	Config *config.Config
	Store  models.Store

	UserService     *services.UserService
	EventService    *services.EventService
	CategoryService *services.CategoryService
	BookingService  *services.BookingService
}

// NewContainer creates a new dependency injection container
func NewContainer(logger *slog.Logger, cfg *config.Config, store models.Store) *Container {
	return &Container{
		Logger:          logger,
		Config:          cfg,
		Store:           store,
		UserService:     services.NewUserService(store),
		EventService:    services.NewEventService(store),
		CategoryService: services.NewCategoryService(store),
		BookingService:  services.NewBookingService(store),
	}
}
