package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eventstay/hotel-booking-backend/internal/config"
	"github.com/eventstay/hotel-booking-backend/internal/database"
	"github.com/eventstay/hotel-booking-backend/internal/handlers"
	"github.com/eventstay/hotel-booking-backend/internal/metrics"
	"github.com/eventstay/hotel-booking-backend/internal/middleware"
	"github.com/eventstay/hotel-booking-backend/internal/services"
	"github.com/eventstay/hotel-booking-backend/internal/utils"
	"github.com/eventstay/hotel-booking-backend/pkg/jwt"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

var (
	version   = "1.0.0"
	buildTime = "unknown"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	logger.Info("Starting EventStay hotel booking backend")
	logger.Infof("Version: %s, Build Time: %s", version, buildTime)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	logLevel, err := logrus.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		logger.Warn("Invalid log level, using INFO")
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	logger.Info("Connecting to database...")
	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	logger.Info("Database connection established")

	// Repositories
	bookingRepo := database.NewBookingRepository(db)
	roomRepo := database.NewRoomRepository(db)
	hotelRepo := database.NewHotelRepository(db)
	enrollmentRepo := database.NewEnrollmentRepository(db)
	ticketRepo := database.NewTicketRepository(db)

	// Services
	jwtService := jwt.NewService(
		cfg.JWT.Secret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	bookingMetrics := metrics.New()
	eligibilityService := services.NewEligibilityService(enrollmentRepo, ticketRepo, logger)
	bookingService := services.NewBookingService(bookingRepo, roomRepo, eligibilityService, bookingMetrics, logger)
	hotelService := services.NewHotelService(hotelRepo, roomRepo, enrollmentRepo, ticketRepo, logger)

	// Handlers
	bookingHandler := handlers.NewBookingHandler(bookingService)
	hotelHandler := handlers.NewHotelHandler(hotelService)
	ticketHandler := handlers.NewTicketHandler(ticketRepo)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", healthCheckHandler(db))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		booking := v1.Group("/booking")
		booking.Use(middleware.AuthMiddleware(jwtService))
		{
			booking.GET("", bookingHandler.GetMyBooking)
			booking.POST("", bookingHandler.CreateBooking)
			booking.PUT("/:bookingId", bookingHandler.UpdateBooking)
		}

		hotels := v1.Group("/hotels")
		hotels.Use(middleware.AuthMiddleware(jwtService))
		{
			hotels.GET("", hotelHandler.GetHotels)
			hotels.GET("/:hotelId", hotelHandler.GetHotelRooms)
		}

		ticketTypes := v1.Group("/ticket-types")
		ticketTypes.Use(middleware.AuthMiddleware(jwtService))
		{
			ticketTypes.GET("", ticketHandler.GetTicketTypes)
		}
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Infof("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited successfully")
}

// requestLogger middleware for logging HTTP requests.
func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		device := utils.ParseUserAgent(c.Request.UserAgent())

		fields := logrus.Fields{
			"status":      c.Writer.Status(),
			"method":      c.Request.Method,
			"path":        path,
			"query":       query,
			"ip":          c.ClientIP(),
			"latency_ms":  latency.Milliseconds(),
			"device_type": device.DeviceType,
			"os":          device.OS,
			"browser":     device.Browser,
		}

		if userCtx, exists := middleware.GetUserContext(c); exists {
			fields["user_id"] = userCtx.UserID
		}

		entry := logger.WithFields(fields)

		status := c.Writer.Status()
		switch {
		case status >= 500:
			entry.Error("Request completed with server error")
		case status >= 400:
			entry.Warn("Request completed with client error")
		default:
			entry.Info("Request completed successfully")
		}
	}
}

// healthCheckHandler returns a health check endpoint.
func healthCheckHandler(db database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": "unhealthy",
				"error":    err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"database":  "healthy",
			"version":   version,
			"timestamp": time.Now().Unix(),
		})
	}
}
