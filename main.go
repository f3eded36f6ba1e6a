// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"

	"github.com/molatlhegiM/2Gether-Travels-sub000/config"
	"github.com/molatlhegiM/2Gether-Travels-sub000/database"
	bookingRepoPkg "github.com/molatlhegiM/2Gether-Travels-sub000/database/repository/booking"
	catalogRepoPkg "github.com/molatlhegiM/2Gether-Travels-sub000/database/repository/catalog"
	formsRepoPkg "github.com/molatlhegiM/2Gether-Travels-sub000/database/repository/forms"
	"github.com/molatlhegiM/2Gether-Travels-sub000/handlers"
	"github.com/molatlhegiM/2Gether-Travels-sub000/middleware"
	"github.com/molatlhegiM/2Gether-Travels-sub000/routes"
	"github.com/molatlhegiM/2Gether-Travels-sub000/services/booking"
	"github.com/molatlhegiM/2Gether-Travels-sub000/services/catalog"
	"github.com/molatlhegiM/2Gether-Travels-sub000/services/forms"
	"github.com/molatlhegiM/2Gether-Travels-sub000/services/wizard"
	"github.com/molatlhegiM/2Gether-Travels-sub000/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitWizardCache()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// repositories.
	catalogRepo := catalogRepoPkg.NewSeededCatalogRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	formsRepo := formsRepoPkg.NewMongoFormsRepo()

	// services.
	sessionService := &wizard.DefaultSessionService{
		Catalog:     catalogRepo,
		CacheClient: utils.GetWizardCacheClient(),
		TTL:         time.Duration(config.AppConfig.WizardSessionTTLMin) * time.Minute,
		Currency:    config.AppConfig.Currency,
		Logger:      logger,
	}
	catalogService := &catalog.DefaultCatalogService{
		Repo:        catalogRepo,
		CacheClient: utils.GetCacheClient(),
		Logger:      logger,
	}
	bookingService := &booking.DefaultBookingService{
		Sessions: sessionService,
		Resolver: sessionService,
		Repo:     bookingRepo,
		Payments: booking.NewPaymentHandler(logger),
		Currency: config.AppConfig.Currency,
		Logger:   logger,
	}
	formsService := &forms.DefaultFormsService{
		Repo:   formsRepo,
		Logger: logger,
	}

	// handlers.
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	wizardHandler := handlers.NewWizardHandler(sessionService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	formsHandler := handlers.NewFormsHandler(formsService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Catalog endpoints.
		ListPackagesHandler:  catalogHandler.ListPackagesHandler,
		GetPackageHandler:    catalogHandler.GetPackageHandler,
		ListHotelsHandler:    catalogHandler.ListHotelsHandler,
		GetHotelHandler:      catalogHandler.GetHotelHandler,
		ListTransfersHandler: catalogHandler.ListTransfersHandler,
		GetTransferHandler:   catalogHandler.GetTransferHandler,
		ListToursHandler:     catalogHandler.ListToursHandler,

		// Wizard endpoints.
		CreateSessionHandler:        wizardHandler.CreateSessionHandler,
		GetSessionHandler:           wizardHandler.GetSessionHandler,
		GetSummaryHandler:           wizardHandler.GetSummaryHandler,
		SelectPackageHandler:        wizardHandler.SelectPackageHandler,
		SelectHotelHandler:          wizardHandler.SelectHotelHandler,
		SelectTransferHandler:       wizardHandler.SelectTransferHandler,
		AddTourHandler:              wizardHandler.AddTourHandler,
		RemoveTourHandler:           wizardHandler.RemoveTourHandler,
		SetTravelerDetailsHandler:   wizardHandler.SetTravelerDetailsHandler,
		PatchTravelerDetailsHandler: wizardHandler.PatchTravelerDetailsHandler,
		SetPaymentMethodHandler:     wizardHandler.SetPaymentMethodHandler,
		SetInvoiceDetailsHandler:    wizardHandler.SetInvoiceDetailsHandler,
		AdvanceHandler:              wizardHandler.AdvanceHandler,
		BackHandler:                 wizardHandler.BackHandler,
		ResetHandler:                wizardHandler.ResetHandler,

		// Booking endpoints.
		CreateBookingHandler: bookingHandler.CreateBookingHandler,
		GetBookingHandler:    bookingHandler.GetBookingHandler,

		// Marketing form endpoints.
		ContactHandler:    formsHandler.ContactHandler,
		NewsletterHandler: formsHandler.NewsletterHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
