// File: handlers/handlerBundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Catalog endpoints
	ListPackagesHandler  gin.HandlerFunc
	GetPackageHandler    gin.HandlerFunc
	ListHotelsHandler    gin.HandlerFunc
	GetHotelHandler      gin.HandlerFunc
	ListTransfersHandler gin.HandlerFunc
	GetTransferHandler   gin.HandlerFunc
	ListToursHandler     gin.HandlerFunc

	// Wizard endpoints
	CreateSessionHandler        gin.HandlerFunc
	GetSessionHandler           gin.HandlerFunc
	GetSummaryHandler           gin.HandlerFunc
	SelectPackageHandler        gin.HandlerFunc
	SelectHotelHandler          gin.HandlerFunc
	SelectTransferHandler       gin.HandlerFunc
	AddTourHandler              gin.HandlerFunc
	RemoveTourHandler           gin.HandlerFunc
	SetTravelerDetailsHandler   gin.HandlerFunc
	PatchTravelerDetailsHandler gin.HandlerFunc
	SetPaymentMethodHandler     gin.HandlerFunc
	SetInvoiceDetailsHandler    gin.HandlerFunc
	AdvanceHandler              gin.HandlerFunc
	BackHandler                 gin.HandlerFunc
	ResetHandler                gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler gin.HandlerFunc
	GetBookingHandler    gin.HandlerFunc

	// Marketing form endpoints
	ContactHandler    gin.HandlerFunc
	NewsletterHandler gin.HandlerFunc
}
