package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	notificationhandlerpkg "github.com/linkstream-org/backend/internal/api/handlers/notification"
	posthandlerpkg "github.com/linkstream-org/backend/internal/api/handlers/post"
	routespkg "github.com/linkstream-org/backend/internal/api/routes"
	jwtpkg "github.com/linkstream-org/backend/internal/jwt"
	middlewarepkg "github.com/linkstream-org/backend/internal/middleware"
	ormpkg "github.com/linkstream-org/backend/internal/orm"
)

// Server is the HTTP boundary: JSON over chi, bearer-token authentication on
// every /api/v1 route, prometheus metrics on /metrics.
type Server struct {
	logger *zap.Logger
	host   string
	port   string
	server *http.Server
}

func NewServer(
	logger *zap.Logger,
	jwt *jwtpkg.JWT,
	db *ormpkg.PostgresClient,
	host string,
	port string,
	postHandler *posthandlerpkg.Handler,
	notificationHandler *notificationhandlerpkg.Handler,
) *Server {
	router := chi.NewRouter()
	router.Use(middlewarepkg.NewMetricsMiddleware())

	router.Handle("/metrics", promhttp.Handler())
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	authMiddleware := middlewarepkg.NewAuthorizationMiddleware(logger, jwt, db)
	router.Route("/api/v1", func(r chi.Router) {
		r.Use(authMiddleware)
		routespkg.RegisterPostRoutes(r, postHandler)
		routespkg.RegisterNotificationRoutes(r, notificationHandler)
	})

	return &Server{
		logger: logger,
		host:   host,
		port:   port,
		server: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", host, port),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func (s *Server) Start() error {
	go func() {
		s.logger.Info("HTTP server started", zap.String("addr", s.server.Addr))
		err := s.server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			s.logger.Error("HTTP server stopped", zap.Error(err))
		}
	}()

	return nil
}

func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.logger.Info("HTTP server stopped gracefully")
	return nil
}
