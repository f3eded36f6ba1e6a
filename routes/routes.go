package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/molatlhegiM/2Gether-Travels-sub000/handlers"
)

// RegisterCatalogRoutes registers the read-only reference data endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/packages", hb.ListPackagesHandler)
		api.GET("/packages/:id", hb.GetPackageHandler)
		api.GET("/hotels", hb.ListHotelsHandler)
		api.GET("/hotels/:id", hb.GetHotelHandler)
		api.GET("/transfers", hb.ListTransfersHandler)
		api.GET("/transfers/:id", hb.GetTransferHandler)
		api.GET("/tours", hb.ListToursHandler)
	}
}

// RegisterWizardRoutes sets up the endpoints for the booking wizard session.
func RegisterWizardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	wizardGroup := r.Group("/api/wizard/sessions")
	{
		wizardGroup.POST("", hb.CreateSessionHandler)
		wizardGroup.GET("/:sessionID", hb.GetSessionHandler)
		wizardGroup.GET("/:sessionID/summary", hb.GetSummaryHandler)
		wizardGroup.POST("/:sessionID/select-package", hb.SelectPackageHandler)
		wizardGroup.POST("/:sessionID/select-hotel", hb.SelectHotelHandler)
		wizardGroup.POST("/:sessionID/select-transfer", hb.SelectTransferHandler)
		wizardGroup.POST("/:sessionID/tours/:tourID", hb.AddTourHandler)
		wizardGroup.DELETE("/:sessionID/tours/:tourID", hb.RemoveTourHandler)
		wizardGroup.PUT("/:sessionID/traveler", hb.SetTravelerDetailsHandler)
		wizardGroup.PATCH("/:sessionID/traveler", hb.PatchTravelerDetailsHandler)
		wizardGroup.PUT("/:sessionID/payment", hb.SetPaymentMethodHandler)
		wizardGroup.PUT("/:sessionID/invoice-details", hb.SetInvoiceDetailsHandler)
		wizardGroup.POST("/:sessionID/next", hb.AdvanceHandler)
		wizardGroup.POST("/:sessionID/previous", hb.BackHandler)
		wizardGroup.POST("/:sessionID/reset", hb.ResetHandler)
	}
}

// RegisterBookingRoutes registers booking submission and retrieval.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.POST("", hb.CreateBookingHandler)
		bookingGroup.GET("/:id", hb.GetBookingHandler)
	}
}

// RegisterFormRoutes registers the marketing site forms.
func RegisterFormRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/contact", hb.ContactHandler)
		api.POST("/newsletter", hb.NewsletterHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm 2Gether Travels"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCatalogRoutes(r, hb)
	RegisterWizardRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterFormRoutes(r, hb)
	RegisterHealthRoute(r)
}
