// The consumer is the gateway side of the outbound topic: it reads the
// messages the report cycle queues for managers. The real chat gateway
// relays them; this binary prints them, which is enough for local runs.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/corpeats/lunchbot/internal/kafka"
)

const groupID = "outbound-message-gateway"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		brokers = "localhost:9092"
	}
	topic := os.Getenv("OUTBOUND_TOPIC")
	if topic == "" {
		topic = "outbound-messages"
	}

	log.Println("Starting outbound message consumer...")

	r := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        strings.Split(brokers, ","),
		GroupID:        groupID,
		Topic:          topic,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		MaxWait:        3 * time.Second,
	})
	defer func() {
		if err := r.Close(); err != nil {
			log.Printf("Error closing Kafka reader: %v", err)
		}
	}()

	log.Printf("Consumer connected to topic '%s' on brokers %s", topic, brokers)

	for {
		select {
		case <-ctx.Done():
			log.Println("Shutdown signal received, stopping consumer.")
			return
		default:
			m, err := r.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				log.Printf("Error reading message: %v", err)
				time.Sleep(5 * time.Second)
				continue
			}

			var msg kafka.OutboundMessage
			if err := json.Unmarshal(m.Value, &msg); err != nil {
				log.Printf("Skipping malformed outbound message at offset %d: %v", m.Offset, err)
				continue
			}

			fmt.Printf("\n--- OUTBOUND MESSAGE ---\n")
			fmt.Printf("To chat:   %d\n", msg.ChatID)
			fmt.Printf("Timestamp: %s\n", m.Time.Format(time.RFC3339))
			fmt.Printf("%s\n", msg.Text)
			fmt.Println("--- END MESSAGE ---")
		}
	}
}
