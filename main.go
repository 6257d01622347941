package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"HostelHub/config"
	_ "HostelHub/docs"
	"HostelHub/events"
	"HostelHub/repository"
	"HostelHub/routes"

	"github.com/gin-gonic/gin"
)

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @title HostelHub API
// @version 1.0
// @description Backend for the hostel meal management application.
// @termsOfService http://swagger.io/terms/

// @contact.name Hostel Management Team
// @contact.email support@hostel.example

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	ctx := context.Background()
	db, err := config.ConnectDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Disconnect(context.Background()); err != nil {
			slog.Warn("MongoDB disconnect failed", "error", err)
		}
	}()

	if err := db.EnsureIndexes(ctx); err != nil {
		return err
	}

	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.AMQPURL != "" {
		amqpPublisher, err := events.DialAMQP(cfg.AMQPURL, cfg.AMQPQueue)
		if err != nil {
			return err
		}
		publisher = amqpPublisher
		slog.Info("publishing events", "queue", cfg.AMQPQueue)
	}
	defer closePublisher(publisher)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	routes.Routes(router, cfg, routes.Deps{
		Users:    repository.NewUserRepository(db.Collection(config.UsersCollection)),
		Meals:    repository.NewMealRepository(db.Collection(config.MealsCollection)),
		Likes:    repository.NewLikeRepository(db.Collection(config.LikesCollection)),
		Requests: repository.NewRequestedMealRepository(db.Collection(config.RequestedMealCollection)),
		Reviews:  repository.NewReviewRepository(db.Collection(config.ReviewsCollection)),
		DB:       db,
		Events:   publisher,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("hostel management server listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case sig := <-quit:
		slog.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// closePublisher closes the broker connection. A failure is logged, it does
// not change the exit status.
func closePublisher(p events.Publisher) error {
	err := p.Close()
	if err != nil {
		slog.Warn("event publisher close failed", "error", err)
	}
	return err
}
