package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"

	apipkg "github.com/linkstream-org/backend/internal/api"
	notificationhandlerpkg "github.com/linkstream-org/backend/internal/api/handlers/notification"
	posthandlerpkg "github.com/linkstream-org/backend/internal/api/handlers/post"
	clientpkg "github.com/linkstream-org/backend/internal/client"
	eventpkg "github.com/linkstream-org/backend/internal/event"
	jwtpkg "github.com/linkstream-org/backend/internal/jwt"
	ormpkg "github.com/linkstream-org/backend/internal/orm"
	servicespkg "github.com/linkstream-org/backend/internal/services"
	engagementservicepkg "github.com/linkstream-org/backend/internal/services/engagement"
	feedservicepkg "github.com/linkstream-org/backend/internal/services/feed"
	postservicepkg "github.com/linkstream-org/backend/internal/services/post"
)

var serverCommand = &cobra.Command{
	Use:   "server",
	Short: "server",
	Long:  "",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serverCommandImpl()
	},
}

func getenv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func serverCommandImpl() error {
	if os.Getenv("DEBUG") == "1" {
		godotenv.Load()
	}

	// Application
	application := fx.New(
		fx.Provide(
			// Logger
			func() *zap.Logger {
				if os.Getenv("DEBUG") == "1" {
					logger, _ := zap.NewDevelopment()
					return logger
				}
				logger, _ := zap.NewProduction()
				return logger
			},

			// Config/Secrets from .env
			func(logger *zap.Logger) (*jwtpkg.JWT, error) {
				jwtSecret := getenv("JWT_SECRET", "123456")
				return jwtpkg.NewJWT(jwtSecret), nil
			},

			// Clients
			func(logger *zap.Logger) (*ormpkg.PostgresClient, error) {
				database, err := ormpkg.NewPostgresClient(
					getenv("POSTGRES_HOST", "127.0.0.1"),
					getenv("POSTGRES_PORT", "5432"),
					getenv("POSTGRES_USER", "postgres"),
					getenv("POSTGRES_PASSWORD", "postgres"),
					getenv("POSTGRES_DB", "linkstream"),
				)
				if err != nil {
					return nil, err
				}
				if err := database.Migrate(); err != nil {
					return nil, err
				}
				return database, nil
			},
			func(logger *zap.Logger) (*eventpkg.KafkaClient, error) {
				return eventpkg.NewKafkaClient(
					getenv("KAFKA_HOST", "127.0.0.1"),
					getenv("KAFKA_PORT", "9092"),
					getenv("KAFKA_TOPIC", "engagement"),
					getenv("KAFKA_GROUP", "engagement"),
				)
			},
			func(logger *zap.Logger) (*clientpkg.RedisClient, error) {
				return clientpkg.NewRedisClient(
					context.Background(),
					getenv("REDIS_HOST", "127.0.0.1"),
					getenv("REDIS_PORT", "6379"),
					os.Getenv("REDIS_PASSWORD"),
				)
			},
			func(logger *zap.Logger) (*clientpkg.S3Client, error) {
				return clientpkg.NewS3Client(
					context.Background(),
					getenv("S3_BUCKET", "linkstream-media"),
					getenv("S3_PUBLIC_URL", "https://media.linkstream.org"),
				)
			},

			// Services
			func(db *ormpkg.PostgresClient, s3 *clientpkg.S3Client, redis *clientpkg.RedisClient, logger *zap.Logger) servicespkg.PostService {
				return postservicepkg.NewPostService(db, s3, redis, logger)
			},
			func(db *ormpkg.PostgresClient, kafka *eventpkg.KafkaClient, logger *zap.Logger) servicespkg.EngagementService {
				return engagementservicepkg.NewEngagementService(db, kafka, logger)
			},
			func(db *ormpkg.PostgresClient, redis *clientpkg.RedisClient, logger *zap.Logger) servicespkg.FeedService {
				return feedservicepkg.NewFeedService(db, redis, logger)
			},

			// Handlers
			func(posts servicespkg.PostService, engagement servicespkg.EngagementService, feed servicespkg.FeedService, logger *zap.Logger) *posthandlerpkg.Handler {
				return posthandlerpkg.NewHandler(posts, engagement, feed, logger)
			},
			func(feed servicespkg.FeedService, logger *zap.Logger) *notificationhandlerpkg.Handler {
				return notificationhandlerpkg.NewHandler(feed, logger)
			},

			// HTTP server
			func(
				lc fx.Lifecycle,
				logger *zap.Logger,
				jwt *jwtpkg.JWT,
				db *ormpkg.PostgresClient,
				postHandler *posthandlerpkg.Handler,
				notificationHandler *notificationhandlerpkg.Handler,
			) *apipkg.Server {
				server := apipkg.NewServer(
					logger,
					jwt,
					db,
					getenv("HTTP_HOST", "0.0.0.0"),
					getenv("HTTP_PORT", "8080"),
					postHandler,
					notificationHandler,
				)
				lc.Append(fx.Hook{
					OnStart: func(ctx context.Context) error {
						return server.Start()
					},
					OnStop: func(ctx context.Context) error {
						return server.Stop()
					},
				})
				return server
			},
		),
		fx.Invoke(func(*apipkg.Server) {}),
	)
	application.Run()

	err := application.Err()
	if err != nil {
		os.Exit(1)
	}

	return nil
}

func init() {
	rootCommand.AddCommand(serverCommand)
}
