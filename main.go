package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"dancestudio_backend/internals/configs"
	database "dancestudio_backend/internals/databases"
	routes "dancestudio_backend/internals/route"
	"dancestudio_backend/internals/seeds"
)

const (
	Version = "0.1.0"
	appName = "studio"
)

func main() {
	configs.LoadEnv()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Dance studio scheduling backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}

	var seedFile string
	seed := &cobra.Command{
		Use:   "seed",
		Short: "Load branches, teachers and classes from a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(db *gorm.DB) error {
				if err := database.Migrate(db); err != nil {
					return err
				}
				return seeds.RunAllSeeds(cmd.Context(), db, seedFile)
			})
		},
	}
	seed.Flags().StringVarP(&seedFile, "file", "f", seeds.DefaultFile, "seed file (YAML)")

	cmd.AddCommand(
		serve,
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update tables and indexes, then exit",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDB(database.Migrate)
			},
		},
		seed,
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Printf("%s version %s\n", appName, Version)
			},
		},
	)
	return cmd
}

// withDB: config DB saja yang wajib untuk migrate/seed.
func withDB(fn func(db *gorm.DB) error) error {
	cfg := configs.Load()
	if cfg.DatabaseDSN == "" {
		return fmt.Errorf("DB_DSN atau DB_HOST/DB_NAME belum diset")
	}
	db, err := database.ConnectDB(cfg)
	if err != nil {
		return err
	}
	defer database.Close(db)
	return fn(db)
}

func runServe() error {
	cfg := configs.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// 🔌 DB connect + pool + migrasi
	db, err := database.ConnectDB(cfg)
	if err != nil {
		return err
	}
	defer database.Close(db)
	database.TunePool(db)
	if err := database.Migrate(db); err != nil {
		return err
	}

	app := routes.NewApp(cfg, db)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	errCh := make(chan error, 1)
	go func() {
		log.Printf("✅ Listening on :%s", cfg.Port)
		errCh <- app.Listen("0.0.0.0:" + cfg.Port)
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-quit:
	}

	log.Println("[INFO] Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return app.ShutdownWithContext(ctx)
}
