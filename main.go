package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"parenthub/config"
	"parenthub/database"
	bookingRepo "parenthub/database/repository/booking"
	cartRepo "parenthub/database/repository/cart"
	catalogRepo "parenthub/database/repository/catalog"
	chatRepo "parenthub/database/repository/chat"
	historyRepo "parenthub/database/repository/history"
	ratingRepo "parenthub/database/repository/rating"
	userRepoPkg "parenthub/database/repository/user"
	"parenthub/handlers"
	"parenthub/middleware"
	"parenthub/routes"
	"parenthub/services/assistant"
	"parenthub/services/cart"
	"parenthub/services/catalog"
	"parenthub/services/checkout"
	"parenthub/services/consultation"
	"parenthub/services/history"
	"parenthub/services/schedule"
	"parenthub/services/storage"
	"parenthub/services/user"
	"parenthub/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	storageService, err := storage.NewCloudinaryStorage()
	if err != nil {
		logger.Sugar().Warnf("main: image uploads disabled: %v", err)
	}

	replies, err := assistant.NewGeminiClient(config.AppConfig.GeminiAPIKey)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize gemini client: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	cRepo := cartRepo.NewMongoCartRepo()
	hRepo := historyRepo.NewMongoHistoryRepo()
	msgRepo := chatRepo.NewMongoChatRepo()
	productRepo := catalogRepo.NewMongoProductRepo()
	sitterRepo := catalogRepo.NewMongoSitterRepo()
	doctorRepo := catalogRepo.NewMongoDoctorRepo()
	daycareRepo := catalogRepo.NewMongoDaycareRepo()
	donationRepo := catalogRepo.NewMongoDonationRepo()
	sitterBookings := bookingRepo.NewMongoBookingRepo(bookingRepo.SitterAppointments)
	doctorBookings := bookingRepo.NewMongoBookingRepo(bookingRepo.DoctorAppointments)

	// services.
	sessions := user.NewRedisSessionStore()
	userService := &user.DefaultUserService{
		Repo:     userRepo,
		Sessions: sessions,
	}
	if utils.FirebaseAuthClient != nil {
		userService.Verifier = utils.FirebaseAuthClient
	}

	catalogService := &catalog.Service{
		Products:  productRepo,
		Sitters:   sitterRepo,
		Doctors:   doctorRepo,
		Daycares:  daycareRepo,
		Donations: donationRepo,
	}
	cartService := &cart.Service{Cart: cRepo, Products: productRepo}
	sitterSchedule := &schedule.Service{Bookings: sitterBookings}
	doctorSchedule := &schedule.Service{Bookings: doctorBookings}

	checkoutService := &checkout.DefaultCheckoutService{
		Users:          userRepo,
		Cart:           cRepo,
		History:        hRepo,
		Products:       productRepo,
		Sitters:        sitterRepo,
		Doctors:        doctorRepo,
		Daycares:       daycareRepo,
		Donations:      donationRepo,
		SitterBookings: sitterBookings,
		DoctorBookings: doctorBookings,
	}

	historyService := &history.Service{
		History: hRepo,
		Ratings: ratingRepo.NewMongoAggregator(),
	}

	assistantService := &assistant.Service{
		Messages: msgRepo,
		Context:  assistant.NewRedisContextStore(),
		Replies:  replies,
	}
	consultationService := &consultation.Service{
		Messages: msgRepo,
		Doctors:  doctorRepo,
		Replies:  replies,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Sessions: sessions,

		RegisterHandler:     handlers.RegisterHandler(userService),
		LoginHandler:        handlers.LoginHandler(userService),
		GoogleSignInHandler: handlers.GoogleSignInHandler(userService),
		SignOutHandler:      handlers.SignOutHandler(userService),

		GetProfileHandler:    handlers.GetProfileHandler(userService),
		UpdateProfileHandler: handlers.UpdateProfileHandler(userService),

		ListProductsHandler:  handlers.ListProductsHandler(catalogService),
		GetProductHandler:    handlers.GetProductHandler(catalogService),
		AddProductHandler:    handlers.AddProductHandler(catalogService),
		ListSittersHandler:   handlers.ListSittersHandler(catalogService),
		GetSitterHandler:     handlers.GetSitterHandler(catalogService),
		ListDoctorsHandler:   handlers.ListDoctorsHandler(catalogService),
		GetDoctorHandler:     handlers.GetDoctorHandler(catalogService),
		ListDaycaresHandler:  handlers.ListDaycaresHandler(catalogService),
		GetDaycareHandler:    handlers.GetDaycareHandler(catalogService),
		ListDonationsHandler: handlers.ListDonationsHandler(catalogService),
		GetDonationHandler:   handlers.GetDonationHandler(catalogService),
		BookingDatesHandler:  handlers.BookingDatesHandler(),
		SitterSlotsHandler:   handlers.SitterSlotsHandler(sitterSchedule),
		DoctorSlotsHandler:   handlers.DoctorSlotsHandler(doctorSchedule),

		AddToCartHandler:          handlers.AddToCartHandler(cartService),
		ListCartHandler:           handlers.ListCartHandler(cartService),
		UpdateCartQuantityHandler: handlers.UpdateCartQuantityHandler(cartService),
		SelectCartItemHandler:     handlers.SelectCartItemHandler(cartService),
		DeleteCartItemsHandler:    handlers.DeleteCartItemsHandler(cartService),
		WatchCartHandler:          handlers.WatchCartHandler(cartService),

		CheckoutQuoteHandler: handlers.CheckoutQuoteHandler(checkoutService),
		CheckoutPayHandler:   handlers.CheckoutPayHandler(checkoutService),

		ListHistoryHandler:  handlers.ListHistoryHandler(historyService),
		SubmitReviewHandler: handlers.SubmitReviewHandler(historyService),
		WatchHistoryHandler: handlers.WatchHistoryHandler(historyService),

		ConsultationRoomHandler:  handlers.ConsultationRoomHandler(consultationService),
		ConsultationSendHandler:  handlers.ConsultationSendHandler(consultationService),
		WatchConsultationHandler: handlers.WatchConsultationHandler(consultationService),
		AssistantThreadHandler:   handlers.AssistantThreadHandler(assistantService),
		AssistantAskHandler:      handlers.AssistantAskHandler(assistantService),
	}
	if storageService != nil {
		handlerBundle.UploadImageHandler = handlers.UploadImageHandler(storageService)
	} else {
		handlerBundle.UploadImageHandler = func(c *gin.Context) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Image uploads are not configured"})
		}
	}

	routes.Setup(router, handlerBundle)

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
