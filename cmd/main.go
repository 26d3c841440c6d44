package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/corpeats/lunchbot/internal/cache"
	"github.com/corpeats/lunchbot/internal/db"
	"github.com/corpeats/lunchbot/internal/kafka"
	"github.com/corpeats/lunchbot/internal/logger"
	"github.com/corpeats/lunchbot/internal/repository/postgresql"
	"github.com/corpeats/lunchbot/internal/schedule"
	"github.com/corpeats/lunchbot/internal/server"
	"github.com/corpeats/lunchbot/internal/session"
	"github.com/corpeats/lunchbot/internal/storage"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	zl := logger.New()
	defer func() {
		_ = zl.Sync()
	}()

	database, err := db.NewDb(ctx)
	if err != nil {
		fmt.Println("Database init error:", err)
		return
	}
	defer database.GetPool().Close()

	tz, err := time.LoadLocation(envOr("SCHED_TZ", "Europe/Moscow"))
	if err != nil {
		zl.Fatal("failed to load operating timezone", zap.Error(err))
	}

	venueRepo := postgresql.NewVenueRepo(database)
	orderRepo := postgresql.NewOrderRepo(database)
	staffRepo := postgresql.NewStaffRepo(database)
	outboxRepo := postgresql.NewOutboxTaskRepo()
	authRepo := postgresql.NewAuthRepo(database)

	if adminUsername := os.Getenv("ADMIN_USERNAME"); adminUsername != "" {
		if err := authRepo.EnsureUser(ctx, adminUsername, os.Getenv("ADMIN_PASSWORD")); err != nil {
			zl.Fatal("failed to seed admin user", zap.Error(err))
		}
	} else {
		zl.Warn("ADMIN_USERNAME not set, admin endpoints will reject all requests")
	}

	roster := cache.NewRosterCache(staffRepo)
	if err := roster.LoadInitialData(ctx); err != nil {
		zl.Fatal("failed to load rosters", zap.Error(err))
	}

	catalog := storage.NewCatalog(database, venueRepo, orderRepo)
	orders := storage.NewOrders(database, orderRepo, venueRepo, outboxRepo, tz)

	var producer kafka.Producer
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		producer = kafka.NewKafkaProducer(strings.Split(brokers, ","))
	} else {
		producer = kafka.NewConsoleProducer()
	}

	publisher := kafka.NewPublisher(database, outboxRepo, producer, kafka.PublisherConfig{
		PollInterval: 2 * time.Second,
		BatchSize:    20,
		MaxAttempts:  5,
	})

	topic := envOr("OUTBOUND_TOPIC", "outbound-messages")
	reporter := schedule.NewReporter(catalog, orders, roster, tz, topic, zl)

	sessions := session.NewEngine(catalog, orders, roster, tz)
	srv := server.New(catalog, orders, sessions, staffRepo, authRepo, roster, zl)
	port := envOr("HTTP_PORT", "9000")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(port)
	})
	g.Go(func() error {
		reporter.Run(gctx)
		return nil
	})
	g.Go(func() error {
		publisher.Run(gctx)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		reporter.Shutdown()
		publisher.Shutdown()
		return srv.Shutdown(shutdownCtx)
	})

	log.Printf("Server started on port %s", port)

	if err := g.Wait(); err != nil {
		zl.Fatal("service stopped with error", zap.Error(err))
	}
	log.Println("Service gracefully stopped")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
