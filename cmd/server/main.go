package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"xgrowth-backend/internal/api/routes"
	"xgrowth-backend/internal/config"
	"xgrowth-backend/internal/database"
	"xgrowth-backend/internal/events"
	"xgrowth-backend/internal/logger"
	"xgrowth-backend/internal/supervisor"
	"xgrowth-backend/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"

	_ "xgrowth-backend/docs" // This is needed for swag
)

//	@title			XGrowth Backend API
//	@version		1.0
//	@description	Backend API for the XGrowth B2B marketplace: organizations, companies and their relations, supplier posts, briefs and notifications.

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log := logger.New()

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize database")
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	publisher, conn, shutdownEvents, err := setupEvents(cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize events")
	}
	defer shutdownEvents()

	server, err := routes.SetupRoutes(db, cfg, publisher)
	if err != nil {
		log.WithError(err).Fatal("Failed to set up routes")
	}

	port := cfg.Port
	if port == "" {
		port = "7008"
	}
	httpServer := &http.Server{
		Addr:              ":" + port,
		Handler:           server.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdownTimeout := cfg.ShutdownTimeout()
	tree := supervisor.NewTree(supervisor.TreeConfig{ShutdownTimeout: shutdownTimeout})
	tree.AddAPIService(supervisor.NewHTTPServerService(httpServer, shutdownTimeout))
	if conn != nil {
		tree.AddWorker(worker.NewNotificationWorker(conn, server.Notifications))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithField("port", port).Info("Starting server")
	if err := tree.Serve(ctx); err != nil && ctx.Err() == nil {
		log.WithError(err).Error("Supervisor stopped")
	}
	log.Info("Server stopped")
}

// setupEvents returns the publisher used by services and, when events are
// enabled, the connection notification workers consume from.
func setupEvents(cfg *config.Config) (events.Publisher, *nats.Conn, func(), error) {
	if !cfg.EventsEnabled {
		logger.New().Warn("Events disabled; notifications will not be created")
		return events.NoopPublisher{}, nil, func() {}, nil
	}

	url := cfg.NATSURL
	var embedded *events.EmbeddedServer
	if cfg.NATSEmbedded {
		var err error
		embedded, err = events.StartEmbeddedServer("127.0.0.1", cfg.NATSPort)
		if err != nil {
			return nil, nil, nil, err
		}
		url = embedded.ClientURL()
	}

	conn, err := events.Connect(url)
	if err != nil {
		if embedded != nil {
			embedded.Shutdown()
		}
		return nil, nil, nil, err
	}

	shutdown := func() {
		if err := conn.Drain(); err != nil {
			conn.Close()
		}
		if embedded != nil {
			embedded.Shutdown()
		}
	}
	return events.NewNATSPublisher(conn, events.DefaultBreakerConfig()), conn, shutdown, nil
}
