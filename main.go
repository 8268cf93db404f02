package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meetbot/config"
	"meetbot/cron"
	"meetbot/database"
	reservationRepo "meetbot/database/repository/reservation"
	roomRepo "meetbot/database/repository/room"
	"meetbot/handlers"
	"meetbot/middleware"
	"meetbot/routes"
	"meetbot/services/booking"
	"meetbot/services/card"
	"meetbot/services/directory"
	"meetbot/services/nlu"
	"meetbot/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	store, err := database.NewFileStore(config.AppConfig.DataDir)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize data store: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	rooms := roomRepo.NewFileRoomRepo(store)
	reservations := reservationRepo.NewFileReservationRepo(store)

	// services.
	sessions := booking.NewSessionStore()
	bookingService := &booking.DefaultReservationService{
		Rooms:        rooms,
		Reservations: reservations,
		Sessions:     sessions,
	}
	renderer := card.NewRenderer(directory.NewService(rooms))

	var refiner nlu.Refiner
	if key := config.AppConfig.GeminiAPIKey; key != "" {
		gemini, err := nlu.NewGeminiRefiner(context.Background(), key)
		if err != nil {
			logger.Sugar().Warnf("main: gemini refiner unavailable, continuing without enrichment: %v", err)
		} else {
			refiner = gemini
		}
	}
	extractor := nlu.NewExtractor(refiner)

	meetingHandler := handlers.NewMeetingHandler(extractor, renderer, bookingService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		MeetingCommandHandler: meetingHandler.CommandHandler,
		MeetingActionsHandler: meetingHandler.ActionsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Periodic eviction of stale dropdown selections.
	ttl := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	sweeper, err := cron.StartSessionSweeper(sessions, ttl, config.AppConfig.SessionSweepSpec)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to start session sweeper: %v", err)
	}

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

	sweeper.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
