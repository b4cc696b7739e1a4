package commands

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"realestate/internal/broker"
	"realestate/internal/handler"
	"realestate/internal/hub"
	"realestate/internal/service"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the REST API, /events stream and /metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				cfg.Server.Addr = addr
			}
			return serve(contextOf(cmd))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}

func serve(parent context.Context) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	log.Println(cfg.Summary())

	sseHub := hub.New()
	go sseHub.Run(ctx)

	sseEvents := make(chan service.Event, 100)
	a.bus.Subscribe(sseEvents)
	defer a.bus.Unsubscribe(sseEvents)
	go sseHub.Forward(ctx, sseEvents)

	if cfg.Events.RedisURL != "" {
		pub, err := broker.Dial(ctx, cfg.Events)
		if err != nil {
			// The API still works without fan-out.
			log.Printf("Redis unavailable, events stay local: %v", err)
		} else {
			defer pub.Close()
			redisEvents := make(chan service.Event, 100)
			a.bus.Subscribe(redisEvents)
			defer a.bus.Unsubscribe(redisEvents)
			go pub.Run(ctx, redisEvents)
			log.Printf("Publishing events to redis channel %s", pub.Channel())
		}
	}

	router := handler.NewRouter(handler.Deps{
		Services:    a.services,
		Portfolio:   a.portfolio,
		Store:       a.store,
		Events:      sseHub,
		CORSOrigins: cfg.Server.CORSOrigins,
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout.Duration(),
		WriteTimeout: cfg.Server.WriteTimeout.Duration(),
		IdleTimeout:  cfg.Server.IdleTimeout.Duration(),
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("Server listening on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serveErr:
		return err
	case <-quit:
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")

	// Stop the hub first so open /events streams return.
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
	return nil
}
