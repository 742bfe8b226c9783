package main

import (
	"log"
	"os"

	"assetledger/internal/handlers"
	"assetledger/internal/ledger"
	"assetledger/internal/notify"
	"assetledger/internal/routes"
	"assetledger/pkg/config"
)

func main() {
	// Initialize database
	config.InitDB()

	hub := notify.NewHub()
	sinks := notify.Multi{hub}

	// Initialize RabbitMQ (optional, will log warning if not configured)
	if os.Getenv("RABBITMQ_HOST") != "" {
		config.InitRabbitMQ()
		defer func() {
			if config.RabbitMQ != nil {
				config.RabbitMQ.Close()
			}
		}()

		queue, err := notify.NewQueueNotifier()
		if err != nil {
			log.Fatal("Failed to create event publisher:", err)
		}
		defer queue.Close()
		sinks = append(sinks, queue)

		log.Println("RabbitMQ initialized successfully")
	} else {
		log.Println("RabbitMQ not configured, skipping initialization")
	}

	// Build the ledger service with the bootstrap admin
	admin := os.Getenv("BOOTSTRAP_ADMIN")
	if admin == "" {
		log.Fatal("BOOTSTRAP_ADMIN must be set")
	}

	svc, err := ledger.New(config.DB, ledger.NewSettlementLedger(), sinks, admin)
	if err != nil {
		log.Fatal("Failed to initialize ledger:", err)
	}
	handlers.Init(svc)

	// Set up router
	r := routes.SetupRouter(hub)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
