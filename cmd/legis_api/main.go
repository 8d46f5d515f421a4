package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/phlegis/batasan-api/internal/config"
	"github.com/phlegis/batasan-api/internal/database/neo4j"
	"github.com/phlegis/batasan-api/internal/legis_service/api"
	"github.com/phlegis/batasan-api/internal/legis_service/service"
	"github.com/phlegis/batasan-api/internal/legis_service/store"
	"github.com/phlegis/batasan-api/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	level, err := logrus.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.Init(level)
	appLogger := logger.New("legis_api", "")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := neo4j.GetClient(ctx, &cfg.Neo4j)
	if err != nil {
		appLogger.Fatal(err.Error())
	}
	defer client.Close(context.Background())
	appLogger.Info("Connected to Neo4j")

	legisStore := store.NewStore(client)
	legisService := service.NewService(legisStore)
	apiHandler := api.NewHandler(legisService)

	router := api.SetupRouter(apiHandler)
	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: router,
	}

	go func() {
		appLogger.Info("Starting server on " + cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal(err.Error())
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server shutdown: " + err.Error())
	}
}
