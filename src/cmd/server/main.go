package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/whiteshadows42/AccountManager/src/internal/adapter/http/controller"
	"github.com/whiteshadows42/AccountManager/src/internal/adapter/http/middleware"
	"github.com/whiteshadows42/AccountManager/src/internal/adapter/http/router"
	"github.com/whiteshadows42/AccountManager/src/internal/adapter/repository/postgres"
	"github.com/whiteshadows42/AccountManager/src/internal/config"
	"github.com/whiteshadows42/AccountManager/src/internal/events"
	eventskafka "github.com/whiteshadows42/AccountManager/src/internal/events/kafka"
	"github.com/whiteshadows42/AccountManager/src/internal/platform"
	"github.com/whiteshadows42/AccountManager/src/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		log.Fatalf("load time zone %q: %v", cfg.TimeZone, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := postgres.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if err := postgres.RunMigrations(ctx, db, cfg.MigrationsDir); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	var publisher events.Publisher = events.NoopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher := eventskafka.NewPublisher(cfg.KafkaBrokers, cfg.MovementTopic)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	clientRepo := postgres.NewClientRepository(db)
	accountRepo := postgres.NewAccountRepository(db)
	movementRepo := postgres.NewMovementRepository(db)

	ids := platform.UUIDGenerator{}
	clock := platform.NewSystemClock(loc)

	clientService := services.NewClientService(clientRepo, ids, clock)
	accountService := services.NewAccountService(accountRepo, clientService, ids)
	movementService := services.NewMovementService(movementRepo, accountService, publisher, ids, clock)

	mux := router.New(
		controller.NewClientController(clientService),
		controller.NewAccountController(accountService),
		controller.NewMovementController(movementService),
		middleware.BasicAuth(cfg.ChannelID, cfg.ChannelKey),
	)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("account manager listening on %s", cfg.HTTPAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("serve http: %v", err)
	}
}
