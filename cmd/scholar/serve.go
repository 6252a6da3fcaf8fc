package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/sirius-scholar/scholar"
	"github.com/sirius-scholar/scholar/app"
	"github.com/sirius-scholar/scholar/session"
	"github.com/sirius-scholar/scholar/session/bolt"
	"github.com/sirius-scholar/scholar/session/inmem"
	redisstore "github.com/sirius-scholar/scholar/session/redis"
	"github.com/sirius-scholar/scholar/web"
)

var ServeCmd = cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long:  "Start the web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		store, closeStore, err := createStateStore(ctx)
		if err != nil {
			return err
		}
		defer closeStore()

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		manager := session.NewManager(store, logger.WithField("component", "session"))
		if err := manager.StartSweeper(ctx, cfg.Sessions.Sweep, cfg.Sessions.Idle); err != nil {
			return err
		}

		controller := app.NewController(client, logger)
		handler, err := web.New(web.ServerConfig{
			Env:          env,
			Secret:       cfg.Server.Secret,
			CookieMaxAge: cfg.Sessions.Idle,
		}, controller, manager, logger)
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr:    cfg.Server.Addr,
			Handler: handler,
		}

		errc := make(chan error, 1)
		go func() {
			logger.Printf("server started, listening on %s", cfg.Server.Addr)
			errc <- srv.ListenAndServe()
		}()

		select {
		case err := <-errc:
			return err
		case <-ctx.Done():
		}

		logger.Print("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func createStateStore(ctx context.Context) (scholar.StateStore, func(), error) {
	switch cfg.Sessions.Store {
	case "bolt":
		if err := os.MkdirAll(filepath.Dir(cfg.Sessions.BoltPath), 0755); err != nil {
			return nil, nil, err
		}
		store, err := bolt.Open(cfg.Sessions.BoltPath)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open session db: %w", err)
		}
		return store, func() { store.Close() }, nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Sessions.RedisAddr,
			Password: cfg.Sessions.RedisPassword,
			DB:       cfg.Sessions.RedisDB,
		})
		store := redisstore.NewStore(client, cfg.Sessions.Idle)
		if err := store.Ping(ctx); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("could not reach redis: %w", err)
		}
		return store, func() { client.Close() }, nil
	}

	return inmem.NewStore(), func() {}, nil
}
