package routes

import (
	"ClinicRecords/cache"
	"ClinicRecords/config"
	"ClinicRecords/controllers"
	"ClinicRecords/handlers"
	"ClinicRecords/middlewares"
	"ClinicRecords/repositories"
	"ClinicRecords/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB) http.Handler {
	gin.SetMode(gin.ReleaseMode)

	router := gin.Default()

	allowedOrigins := config.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}
	router.Use(middlewares.CorsMiddleware(&middlewares.CorsConfig{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15,
		Burst:             30,
	}))

	router.Use(middlewares.RequestIDMiddleware())
	router.Use(middlewares.LoggingMiddleware())

	// Initialize repositories, services, and handlers
	patientRepo := repositories.NewPatientRepository(cache)
	appointmentRepo := repositories.NewAppointmentRepository(cache, patientRepo)

	patientHandler := handlers.NewPatientHandler(services.NewPatientService(patientRepo))
	appointmentHandler := handlers.NewAppointmentHandler(services.NewAppointmentService(appointmentRepo))

	controllers.SetupClinicRoutes(router, patientHandler, appointmentHandler)
	controllers.SetupRootRoute(router)

	return router
}
