package main

import (
	"encoding/json"

	"assetledger/internal/notify"
	"assetledger/pkg/config"
	"assetledger/schedule"

	"github.com/robfig/cron/v3"
	logrus "github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(logrus.InfoLevel)

	// Initialize database
	config.InitDB()

	// Initialize RabbitMQ
	config.InitRabbitMQ()
	defer config.RabbitMQ.Close()

	// Periodic market stat snapshots
	c := cron.New()
	if _, err := c.AddFunc("*/5 * * * *", func() {
		if err := schedule.RecordMarketStat(config.DB); err != nil {
			logrus.Errorf("Market stat snapshot failed: %v", err)
		}
	}); err != nil {
		logrus.Fatal("Failed to schedule market stat job: ", err)
	}
	c.Start()
	defer c.Stop()

	// Create consumer for the ledger event queue
	msgConsumer, err := config.NewConsumer(notify.EventQueue)
	if err != nil {
		logrus.Fatal("Failed to create consumer: ", err)
	}
	defer msgConsumer.Close()

	logrus.Info("Ledger event worker started, waiting for messages...")

	// Start consuming messages
	err = msgConsumer.Consume(func(msg []byte) error {
		var event notify.Event
		if err := json.Unmarshal(msg, &event); err != nil {
			logrus.Errorf("Failed to unmarshal event: %v", err)
			return err
		}

		logrus.WithFields(logrus.Fields{
			"id":       event.ID,
			"action":   event.ActionType,
			"actor":    event.Actor,
			"asset_id": event.AssetID,
			"amount":   event.Amount,
			"detail":   event.Detail,
		}).Info("ledger event received")
		return nil
	})
	if err != nil {
		logrus.Fatal("Consumer stopped: ", err)
	}
}
