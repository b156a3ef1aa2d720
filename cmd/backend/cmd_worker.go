package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"

	clientpkg "github.com/linkstream-org/backend/internal/client"
	eventpkg "github.com/linkstream-org/backend/internal/event"
	ormpkg "github.com/linkstream-org/backend/internal/orm"
	workerpkg "github.com/linkstream-org/backend/internal/worker"
)

var workerCommand = &cobra.Command{
	Use:   "worker",
	Short: "worker",
	Long:  "",
	RunE: func(cmd *cobra.Command, args []string) error {
		return workerCommandImpl()
	},
}

func workerCommandImpl() error {
	if os.Getenv("DEBUG") == "1" {
		godotenv.Load()
	}

	// Application
	application := fx.New(
		fx.NopLogger,
		fx.Provide(
			func() *zap.Logger {
				if os.Getenv("DEBUG") == "1" {
					logger, _ := zap.NewDevelopment()
					return logger
				}
				logger, _ := zap.NewProduction()
				return logger
			},

			// Kafka client
			func(logger *zap.Logger) (*eventpkg.KafkaClient, error) {
				return eventpkg.NewKafkaClient(
					getenv("KAFKA_HOST", "127.0.0.1"),
					getenv("KAFKA_PORT", "9092"),
					getenv("KAFKA_TOPIC", "engagement"),
					getenv("KAFKA_GROUP", "engagement"),
				)
			},

			// Mail client
			func(logger *zap.Logger) (*clientpkg.MailClient, error) {
				mailClient := clientpkg.NewMailClient(
					getenv("SMTP_HOST", "127.0.0.1"),
					getenv("SMTP_PORT", "587"),
					getenv("SMTP_USER", "user"),
					getenv("SMTP_PASSWORD", "password"),
				)
				return mailClient, nil
			},

			func(logger *zap.Logger) (*ormpkg.PostgresClient, error) {
				return ormpkg.NewPostgresClient(
					getenv("POSTGRES_HOST", "127.0.0.1"),
					getenv("POSTGRES_PORT", "5432"),
					getenv("POSTGRES_USER", "postgres"),
					getenv("POSTGRES_PASSWORD", "postgres"),
					getenv("POSTGRES_DB", "linkstream"),
				)
			},

			// Application
			func(
				lifecycle fx.Lifecycle,
				logger *zap.Logger,
				kafkaClient *eventpkg.KafkaClient,
				mailClient *clientpkg.MailClient,
				databaseClient *ormpkg.PostgresClient,
			) (*workerpkg.Worker, error) {
				config := &workerpkg.Config{
					ClientURL: getenv("CLIENT_URL", "http://localhost:3000"),
					FromEmail: getenv("MAIL_FROM", "no-reply@linkstream.org"),
				}

				worker := workerpkg.NewWorker(logger, kafkaClient, mailClient, databaseClient, config)

				lifecycle.Append(fx.Hook{
					OnStart: func(ctx context.Context) error {
						return worker.Start()
					},
					OnStop: func(ctx context.Context) error {
						return worker.Stop()
					},
				})

				return worker, nil
			},
		),
		fx.Invoke(
			func(*workerpkg.Worker) {},
		),
	)
	application.Run()

	err := application.Err()
	if err != nil {
		os.Exit(1)
	}

	return nil
}

func init() {
	rootCommand.AddCommand(workerCommand)
}
