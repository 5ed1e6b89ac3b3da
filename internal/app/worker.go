package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-hrm/internal/candidate"
	"go-hrm/internal/employee"
	"go-hrm/internal/filestore"
	"go-hrm/internal/messaging/kafka"
	"go-hrm/internal/messaging/kafka/producer"
	"go-hrm/internal/shared/connection"
	"go-hrm/internal/shared/counter"

	"go.uber.org/zap"
)

// RunWorker relays outbox events to Kafka and periodically reconciles
// candidate/employee drift.
func RunWorker() error {
	logger := zap.L().Named("app.worker")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	kafkaWriter, err := connection.ConnectKafkaWithRetry(kafkaBroker, 5)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(gormDB)

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	files, err := filestore.NewDiskStore(uploadDir)
	if err != nil {
		return err
	}

	candidateRepo := candidate.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	candidateService := candidate.NewService(gormDB, candidateRepo, employeeRepo, counterRepo, outboxRepo, files)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		kafkaWriter,
		logger,
		3*time.Second,
	)

	go runReconciliation(ctx, candidateService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()

	return nil
}

func runReconciliation(ctx context.Context, candidateService candidate.Service, logger *zap.Logger) {
	log := logger.Named("reconciliation")

	interval := 5 * time.Minute
	if raw := os.Getenv("RECONCILE_INTERVAL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			interval = d
		}
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info("reconciliation sweep started", zap.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			log.Info("reconciliation sweep stopped")
			return
		case <-ticker.C:
			repaired, err := candidateService.ReconcilePromotions(ctx)
			if err != nil {
				log.Error("reconcile promotions failed", zap.Error(err))
				continue
			}
			if repaired > 0 {
				log.Warn("promotions reconciled", zap.Int("repaired", repaired))
			}
		}
	}
}
