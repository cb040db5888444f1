package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-ems/internal/events"
	"go-ems/internal/messaging/kafka/consumer"
	"go-ems/internal/salary"
	"go-ems/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

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

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	profileRepo := salary.NewProfileRepository(gormDB)

	correctedReader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.SalaryCorrectedTopic,
		GroupID:        "go-ems-salary-profile",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer correctedReader.Close()

	deletedReader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.SalaryDeletedTopic,
		GroupID:        "go-ems-salary-profile",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer deletedReader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeSalaryCorrected(ctx, correctedReader, profileRepo, logger)
	go consumer.ConsumeSalaryDeleted(ctx, deletedReader, profileRepo, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
