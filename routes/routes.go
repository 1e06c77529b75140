package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"cabadmin/handlers"
	"cabadmin/middleware"
)

// RegisterWizardRoutes sets up the booking wizard session endpoints.
func RegisterWizardRoutes(r *gin.Engine) {
	wizard := r.Group("/api/wizard")
	{
		wizard.Use(middleware.UpstreamAuthMiddleware())
		wizard.POST("/session", handlers.StartCreateSession)
		wizard.POST("/session/edit/:bookingID", handlers.StartEditSession)
		wizard.GET("/session/:id", handlers.GetSession)
		wizard.DELETE("/session/:id", handlers.CancelSession)

		wizard.PUT("/session/:id/details/location", handlers.SetLocationInput)
		wizard.PUT("/session/:id/details/select-city", handlers.SelectCity)
		wizard.POST("/session/:id/details", handlers.SubmitDetails)

		wizard.POST("/session/:id/vehicle", handlers.SelectVehicle)

		wizard.POST("/session/:id/contact/check-email", handlers.CheckContactEmail)
		wizard.GET("/session/:id/address-suggestions", handlers.AddressSuggestions)
		wizard.POST("/session/:id/contact", handlers.SubmitContact)

		wizard.POST("/session/:id/confirm", handlers.ConfirmSession)
	}
}

// RegisterBookingRoutes sets up the booking listing endpoints.
func RegisterBookingRoutes(r *gin.Engine) {
	bookings := r.Group("/api/bookings")
	{
		bookings.Use(middleware.UpstreamAuthMiddleware())
		bookings.GET("", handlers.ListBookings)
		bookings.DELETE("/:id", handlers.DeleteBooking)
	}
}

// RegisterLookupRoutes sets up the reference data endpoint.
func RegisterLookupRoutes(r *gin.Engine) {
	lookups := r.Group("/api/lookups")
	{
		lookups.Use(middleware.UpstreamAuthMiddleware())
		lookups.GET("", handlers.GetLookups)
	}
}

// RegisterDriverRoutes sets up the driver management passthrough.
func RegisterDriverRoutes(r *gin.Engine) {
	drivers := r.Group("/api/admin/drivers")
	{
		drivers.Use(middleware.UpstreamAuthMiddleware())
		drivers.GET("", handlers.ListDrivers)
		drivers.GET("/:id", handlers.GetDriver)
		drivers.POST("/register", handlers.AddDriver)
		drivers.PATCH("/:id", handlers.UpdateDriver)
		drivers.DELETE("/:id", handlers.DeleteDriver)
	}
}

// RegisterCityRoutes sets up the city management passthrough.
func RegisterCityRoutes(r *gin.Engine) {
	cities := r.Group("/api/admin/cities")
	{
		cities.Use(middleware.UpstreamAuthMiddleware())
		cities.GET("", handlers.ListCities)
		cities.POST("", handlers.AddCity)
		cities.PATCH("/:id", handlers.UpdateCity)
		cities.DELETE("/:id", handlers.DeleteCity)
	}
}

// RegisterVehicleRoutes sets up the vehicle management passthrough.
func RegisterVehicleRoutes(r *gin.Engine) {
	vehicles := r.Group("/api/admin/vehicles")
	{
		vehicles.Use(middleware.UpstreamAuthMiddleware())
		vehicles.GET("", handlers.ListVehicles)
		vehicles.GET("/check-registration", handlers.CheckRegistration)
		vehicles.GET("/:id", handlers.GetVehicle)
		vehicles.POST("", handlers.AddVehicle)
		vehicles.PATCH("/:id", handlers.UpdateVehicle)
		vehicles.DELETE("/:id", handlers.DeleteVehicle)
	}
}

// RegisterAuthRoutes sets up the console token exchange.
func RegisterAuthRoutes(r *gin.Engine) {
	r.POST("/api/auth/token", handlers.IssueConsoleToken)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.Health)
}

// RegisterRoutes wires CORS plus all route groups onto the engine.
func RegisterRoutes(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r)
	RegisterWizardRoutes(r)
	RegisterBookingRoutes(r)
	RegisterLookupRoutes(r)
	RegisterDriverRoutes(r)
	RegisterCityRoutes(r)
	RegisterVehicleRoutes(r)
}
