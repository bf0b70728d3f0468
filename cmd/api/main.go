package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"edumath-pro/internal/catalog"
	"edumath-pro/internal/client"
	"edumath-pro/internal/config"
	"edumath-pro/internal/repository"
	"edumath-pro/internal/server"
	"edumath-pro/internal/service"
	"edumath-pro/internal/store"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	db := client.InitSqliteClient(cfg.DatabaseURL)
	payfastClient := client.NewPayfastClient(&cfg.Payfast, cfg.BaseURL)

	kv := store.NewGormStore(db)
	attemptRepo := repository.NewAttemptRepository(db)

	sessionService := service.NewSessionService(kv, payfastClient, attemptRepo)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	// Init HTTP server
	srv := server.NewServer(cfg, sessionService, catalog.New())

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	_, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
