package main

import (
	"encoding/json"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oskargbc/dws-wallet-service/configs"
	"github.com/oskargbc/dws-wallet-service/internal/pkg/rabbitmq"
	"github.com/oskargbc/dws-wallet-service/internal/types"
	log "github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
)

func main() {
	// Configure logging
	log.SetFormatter(&log.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(log.InfoLevel)

	// Load configuration
	cfg, err := configs.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	log.Info("Starting dws-wallet-service notifier")

	// Initialize RabbitMQ
	rmqService, err := rabbitmq.GetRabbitMQServiceInstance(cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize RabbitMQ service")
	}
	defer func() {
		if err := rmqService.Close(); err != nil {
			log.WithError(err).Error("Failed to close RabbitMQ connection")
		}
	}()

	// Start consuming messages
	if err := consumePassMessages(rmqService); err != nil {
		log.WithError(err).Fatal("Failed to start notifier")
	}
}

func consumePassMessages(rmqService *rabbitmq.RabbitMQService) error {
	// Get channel from RabbitMQ service
	msgs, err := rmqService.ConsumePassIssued()
	if err != nil {
		return err
	}

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	log.Info("Notifier started, waiting for messages...")

	// Process messages
	go func() {
		for msg := range msgs {
			if err := processPassMessage(msg); err != nil {
				log.WithError(err).Error("Failed to process message")
				msg.Nack(false, false) // Drop: a malformed message will not parse on redelivery either
			} else {
				msg.Ack(false) // Acknowledge successful processing
			}
		}
	}()

	// Wait for shutdown signal
	<-sigChan
	log.Info("Shutting down notifier...")
	return nil
}

func processPassMessage(msg amqp.Delivery) error {
	// Parse message
	var passMsg types.PassIssuedMessage
	if err := json.Unmarshal(msg.Body, &passMsg); err != nil {
		log.WithError(err).Error("Failed to unmarshal message")
		return err
	}

	log.WithFields(log.Fields{
		"object_id":          passMsg.ObjectID,
		"class_id":           passMsg.ClassID,
		"event_name":         passMsg.EventName,
		"ticket_holder_name": passMsg.TicketHolderName,
	}).Info("Processing pass issued message")

	// Simulate email dispatch (in real app: call the mail provider)
	time.Sleep(500 * time.Millisecond)

	// Send confirmation email (mock)
	sendConfirmationEmail(passMsg)

	return nil
}

func sendConfirmationEmail(passMsg types.PassIssuedMessage) {
	// Mock email sending
	log.WithFields(log.Fields{
		"object_id":          passMsg.ObjectID,
		"ticket_holder_name": passMsg.TicketHolderName,
		"event_name":         passMsg.EventName,
		"wallet_link":        passMsg.WalletLink,
	}).Info("📧 Sending pass confirmation email (mock)")

	// In production: integrate with SendGrid, AWS SES, or similar
}
