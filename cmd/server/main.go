package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotel-rooms-backend/internal/config"
	"hotel-rooms-backend/internal/database"
	"hotel-rooms-backend/internal/handler"
	"hotel-rooms-backend/internal/repository"
	"hotel-rooms-backend/internal/service"
	"hotel-rooms-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize JWT utilities for guest tokens
	utils.InitJWT(cfg.JWT.AccessSecret, cfg.JWT.AccessTokenExpiry)

	// 3. Connect the room store
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mongoClient, roomsColl, err := database.ConnectMongo(ctx, cfg.Mongo)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	roomRepo := repository.NewRoomRepo(roomsColl)
	if err := roomRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("Warning: Failed to ensure room indexes: %v", err)
	}

	// 4. Connect the status store
	session, err := database.ConnectCassandra(cfg.Cassandra)
	if err != nil {
		log.Fatalf("Failed to connect to Cassandra: %v", err)
	}
	statusRepo := repository.NewStatusRepo(session, cfg.Cassandra.Keyspace, cfg.Cassandra.Table)

	// 5. Initialize services
	roomService := service.NewRoomService(roomRepo, statusRepo,
		service.WithLocation(cfg.Status.Location),
		service.WithLookupLimit(cfg.Status.LookupConcurrency),
		service.WithLookupTimeout(cfg.Status.LookupTimeout),
	)
	statusService := service.NewStatusService(statusRepo, time.Now, cfg.Status.Location)

	healthService := service.NewHealthService(cfg.Status.HealthCheckInterval)
	healthService.Register("mongodb", roomRepo)
	healthService.Register("cassandra", statusRepo)

	handlers := handler.Handlers{
		Rooms:    handler.NewRoomHandler(roomService),
		Statuses: handler.NewStatusHandler(statusService),
		Health:   handler.NewHealthHandler(healthService),
	}

	// 6. Optional guest store
	var closeGuests func() error
	if cfg.Guests.Enabled() {
		db, err := database.ConnectRelational(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to guest database: %v", err)
		}
		closeGuests, err = database.RelationalCloser(db)
		if err != nil {
			log.Fatalf("Failed to get guest database handle: %v", err)
		}

		guestRepo := repository.NewGuestRepo(db)
		healthService.Register("guestdb", guestRepo)
		handlers.Guests = handler.NewGuestHandler(service.NewGuestService(guestRepo, nil))
	} else {
		log.Println("GUEST_DB_DSN not set, guest routes disabled")
	}

	// 7. Start background health checks
	go healthService.Start(ctx)

	// 8. Setup Gin
	gin.SetMode(cfg.Server.GinMode)
	r := handler.NewRouter(cfg, handlers)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// 9. Setup graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	// Stop health checks and release the stores
	cancel()
	session.Close()
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Printf("Warning: MongoDB disconnect: %v", err)
	}
	if closeGuests != nil {
		if err := closeGuests(); err != nil {
			log.Printf("Warning: guest database close: %v", err)
		}
	}
	log.Println("Server exited")
}
