package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/roamio/travelagency/cache/memory"
	"github.com/roamio/travelagency/config"
	"github.com/roamio/travelagency/notification"
	notifkafka "github.com/roamio/travelagency/notification/kafka"
	"github.com/roamio/travelagency/repository/postgres"
	"github.com/roamio/travelagency/service"
)

func SetupRouter(cfg *config.Config, logger *zap.Logger) (*gin.Engine, error) {
	// Initialize repository
	repo, err := postgres.NewRepository(&cfg.Database)
	if err != nil {
		return nil, err
	}

	// Initialize the query cache
	queryCache := memory.New(
		memory.WithTTL(cfg.Cache.TTL()),
		memory.WithMaxEntries(cfg.Cache.MaxEntries),
	)

	// Initialize the notification publisher
	var notifier notification.Publisher = notification.Noop{}
	if cfg.Kafka.Enabled {
		notifier = notifkafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.NotificationTopic)
	}

	// Initialize services
	lifecycle := service.NewBookingLifecycle(repo, notifier, logger, cfg.Booking.StrictTransitions)
	reviews := service.NewReviewService(repo, logger)

	// Initialize JWT service
	jwtService := NewJWTService(cfg.JWTSecret)

	// Initialize handlers
	tourHandler := NewTourHandler(repo, queryCache, logger)
	visaHandler := NewVisaHandler(repo, queryCache, logger)
	jobHandler := NewJobHandler(repo, logger)
	authHandler := NewAuthHandler(repo, jwtService, logger)
	bookingHandler := NewBookingHandler(repo, lifecycle, logger)
	reviewHandler := NewReviewHandler(repo, reviews, logger)
	dashboardHandler := NewDashboardHandler(repo, logger)

	// Setup Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(CORSMiddleware())
	r.Use(LoggingMiddleware(logger))

	// Health check endpoint (no auth required)
	r.GET("/health", authHandler.HealthCheck)

	// API routes
	api := r.Group("/api")

	// Public catalog endpoints
	api.GET("/tours", tourHandler.ListTours)
	api.GET("/tours/featured", tourHandler.ListFeaturedTours)
	api.GET("/tours/:slug", tourHandler.GetTour)
	api.GET("/visa-packages", visaHandler.ListVisaPackages)
	api.GET("/visa-packages/:slug", visaHandler.GetVisaPackage)
	api.GET("/jobs", jobHandler.ListJobPostings)
	api.GET("/jobs/:slug", jobHandler.GetJobPosting)
	api.POST("/reviews", reviewHandler.SubmitReview)

	// Auth endpoints
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// Admin endpoints (require authentication and admin role)
	admin := api.Group("/admin")
	admin.Use(AuthMiddleware(jwtService))
	admin.Use(AdminMiddleware())

	admin.GET("/bookings", bookingHandler.ListBookings)
	admin.GET("/bookings/export", bookingHandler.ExportBookings)
	admin.GET("/bookings/:id", bookingHandler.GetBooking)
	admin.PUT("/bookings/:id/status", bookingHandler.SetBookingStatus)
	admin.PUT("/bookings/:id/payment-status", bookingHandler.SetPaymentStatus)
	admin.DELETE("/bookings/:id", bookingHandler.DeleteBooking)

	admin.GET("/reviews", reviewHandler.ListReviews)
	admin.PUT("/reviews/:id/approve", reviewHandler.ApproveReview)
	admin.PUT("/reviews/:id/reject", reviewHandler.RejectReview)
	admin.DELETE("/reviews/:id", reviewHandler.DeleteReview)

	admin.POST("/tours", tourHandler.CreateTour)
	admin.PUT("/tours/:id", tourHandler.UpdateTour)
	admin.DELETE("/tours/:id", tourHandler.DeleteTour)

	admin.GET("/dashboard/stats", dashboardHandler.GetStats)
	admin.GET("/dashboard/trends", dashboardHandler.GetTrend)
	admin.GET("/dashboard/popular-destinations", dashboardHandler.GetPopularDestinations)

	return r, nil
}
