package routes

import (
	"github.com/gatherly/api/internal/container"
	"github.com/gatherly/api/internal/handlers"
	"github.com/gatherly/api/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(c *container.Container) *gin.Engine {
	if c.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	secret := []byte(c.Config.JWTSecret)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{c.Config.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(c.Logger))
	r.Use(middleware.ErrorHandler(c.Logger))
	r.Use(gin.Recovery())

	api := r.Group("/api")
	{
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(200, gin.H{
				"status":  "OK",
				"service": "gatherly-api",
			})
		})

		// public routes
		api.POST("/register", handlers.Register(c.UserService, secret))
		api.POST("/login", handlers.Login(c.UserService, secret))

		api.GET("/categories", handlers.ListCategories(c.CategoryService))
		api.GET("/events", handlers.ListEvents(c.EventService))
		api.GET("/events/featured", handlers.FeaturedEvents(c.EventService))
		api.GET("/events/:id", handlers.GetEvent(c.EventService))
	}

	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(secret, c.UserService, c.Logger))
	{
		protected.POST("/logout", handlers.Logout())
		protected.GET("/user", handlers.CurrentUser(c.UserService))
		protected.PATCH("/user", handlers.UpdateProfile(c.UserService))

		protected.POST("/events", handlers.CreateEvent(c.EventService))
		protected.PUT("/events/:id", handlers.UpdateEvent(c.EventService))
		protected.DELETE("/events/:id", handlers.DeleteEvent(c.EventService))

		protected.GET("/bookings", handlers.ListBookings(c.BookingService))
		protected.POST("/bookings", handlers.CreateBooking(c.BookingService))
		protected.DELETE("/bookings/:id", handlers.CancelBooking(c.BookingService))
	}

	return r
}
