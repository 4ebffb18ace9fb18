package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mdelacruz/volunteerhub/cmd/cli/commands"
	"github.com/mdelacruz/volunteerhub/internal/config"
	"github.com/mdelacruz/volunteerhub/pkg/db"
	"github.com/mdelacruz/volunteerhub/pkg/postgres"
	"github.com/mdelacruz/volunteerhub/pkg/sqlitestore"
	"github.com/mdelacruz/volunteerhub/pkg/store"
	"github.com/mdelacruz/volunteerhub/pkg/utils/logging"
)

var (
	profile string
	cfgPath string

	// app is shared by every command; initApp fills it in before any RunE.
	app = &commands.AppContext{}
)

func main() {
	// A .env file is optional; it can carry the database URL override.
	godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "volunteerhub",
		Short: "VolunteerHub CLI - Manage volunteering events and registrations",
		Long:  `A CLI tool for managing volunteering events, registration requests, and volunteer assignments.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil {
				if app.Store != nil {
					app.Store.Close()
				}
				if app.Logger != nil {
					app.Logger.Sync()
				}
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&profile, "profile", "p", "local", "Profile name used for log files")
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "Path to config file (default: volunteerhub.yaml in cwd or home)")

	// Add all commands
	rootCmd.AddCommand(commands.CreateEventCmd(app))
	rootCmd.AddCommand(commands.EditEventCmd(app))
	rootCmd.AddCommand(commands.CancelEventCmd(app))
	rootCmd.AddCommand(commands.DeleteEventCmd(app))
	rootCmd.AddCommand(commands.ListEventsCmd(app))
	rootCmd.AddCommand(commands.EventReportCmd(app))
	rootCmd.AddCommand(commands.RegisterCmd(app))
	rootCmd.AddCommand(commands.ApproveCmd(app))
	rootCmd.AddCommand(commands.RejectCmd(app))
	rootCmd.AddCommand(commands.CancelRequestCmd(app))
	rootCmd.AddCommand(commands.ListPendingCmd(app))
	rootCmd.AddCommand(commands.SetPositionCmd(app))
	rootCmd.AddCommand(commands.RemoveVolunteerCmd(app))
	rootCmd.AddCommand(commands.WithdrawCmd(app))
	rootCmd.AddCommand(commands.ListVolunteersCmd(app))
	rootCmd.AddCommand(commands.MyEventsCmd(app))
	rootCmd.AddCommand(commands.SaveEventCmd(app))
	rootCmd.AddCommand(commands.UnsaveEventCmd(app))
	rootCmd.AddCommand(commands.SavedEventsCmd(app))
	rootCmd.AddCommand(commands.SignUpCmd(app))
	rootCmd.AddCommand(commands.LoginCmd(app))
	rootCmd.AddCommand(commands.UpdateProfileCmd(app))
	rootCmd.AddCommand(commands.ChangePasswordCmd(app))
	rootCmd.AddCommand(commands.WatchCmd(app))
	rootCmd.AddCommand(commands.InteractiveCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, store engine, and database
func initApp() error {
	var err error
	app.Ctx = context.Background()

	// Initialize logger
	app.Logger, err = logging.InitLogger(profile)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("profile", profile))

	// Load configuration
	app.Logger.Info("Loading configuration")
	if cfgPath != "" {
		app.Cfg, err = config.LoadFromPath(cfgPath)
	} else {
		app.Cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully")

	// Open the store engine
	app.Logger.Info("Opening store", zap.String("driver", app.Cfg.Storage.Driver))
	app.Store, err = openStore(app.Ctx, app.Cfg)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	app.Logger.Debug("Store opened successfully")

	// Initialize DB layer
	app.Database = db.NewDB(app.Store, app.Logger)
	app.Logger.Info("Database initialized successfully")

	return nil
}

// openStore picks the key-value engine named by the config.
func openStore(ctx context.Context, cfg *config.Config) (store.KV, error) {
	switch cfg.Storage.Driver {
	case "sqlite":
		return sqlitestore.Open(cfg.Storage.Path)
	case "postgres":
		return postgres.Open(ctx, cfg.Storage.DSN)
	case "memory":
		return store.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}
}
