package commands

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"realestate/internal/config"
	"realestate/internal/repository/sqlstore"
	"realestate/internal/service"
)

var (
	configPath string
	cfg        *config.Config
)

// Execute runs the realestate command tree
func Execute() error {
	err := newRootCmd().Execute()
	if err != nil {
		log.Printf("Error: %v", err)
	}
	return err
}

func newRootCmd() *cobra.Command {
	configPath = ""
	root := &cobra.Command{
		Use:           "realestate",
		Short:         "Real estate catalog: agencies, realtors and property listings",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.SetFlags(log.LstdFlags | log.Lshortfile)

			loaded, path, err := loadConfig()
			if err != nil {
				return err
			}
			if err := loaded.Validate(); err != nil {
				return fmt.Errorf("invalid config %s: %w", path, err)
			}
			if path != "" {
				log.Printf("Loaded config from %s", path)
			}
			cfg = loaded
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default: search "+config.EnvConfigPath+", ./"+config.ConfigFileName+", XDG dirs)")

	root.AddCommand(serveCmd(), shellCmd(), migrateCmd(), importCmd(), watchCmd(), configCmd())
	return root
}

func loadConfig() (*config.Config, string, error) {
	if configPath == "" {
		return config.Load()
	}
	c, path, err := config.LoadFromPath(configPath)
	if err != nil {
		return nil, path, err
	}
	c.ApplyEnv()
	return c, path, nil
}

// app is the storage and service graph shared by every command
type app struct {
	store     *sqlstore.Store
	bus       *service.EventBus
	services  service.Services
	portfolio *service.Portfolio
}

func openApp(ctx context.Context) (*app, error) {
	store, err := sqlstore.Open(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	bus := service.NewEventBus()
	services := service.Services{
		Agencies:   service.NewAgencyService(store.Agencies(), bus),
		Realtors:   service.NewRealtorService(store.Realtors(), bus),
		Properties: service.NewPropertyService(store.Properties(), bus),
	}

	return &app{
		store:     store,
		bus:       bus,
		services:  services,
		portfolio: service.NewPortfolio(services, bus),
	}, nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		log.Printf("Failed to close database: %v", err)
	}
}
