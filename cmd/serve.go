package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/adebayo-ak/carechat/internal/chat"
	"github.com/adebayo-ak/carechat/internal/complaints"
	"github.com/adebayo-ak/carechat/internal/config"
	"github.com/adebayo-ak/carechat/internal/db"
	"github.com/adebayo-ak/carechat/internal/reminders"
	"github.com/adebayo-ak/carechat/internal/router"
	"github.com/adebayo-ak/carechat/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the carechat server",
	Long:  `Starts the carechat HTTP server with the chat API, complaint tracking, and reminder dispatch.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		port := cfg.Port
		if servePort != 0 {
			port = servePort
		}

		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return fmt.Errorf("creating data dir: %w", err)
		}

		dbPath := filepath.Join(cfg.DataDir, "carechat.db")
		database, err := db.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		complaintStore := complaints.NewStore(database)
		reminderStore := reminders.NewStore(database)
		dispatcher := reminders.NewDispatcher(reminderStore, cfg.ReminderWebhookURL)
		transcripts := chat.NewSessionStore(database)

		intentRouter := router.New(cfg.RouterAbuseConfig())
		chatSvc := chat.NewService(intentRouter, complaintStore, dispatcher, transcripts)

		srv := server.New(server.Config{
			Port:     port,
			DataDir:  cfg.DataDir,
			AllowAll: cfg.AllowAllOrigins,
		}, database, complaintStore, reminderStore, chatSvc)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "carechat server v%s starting on port %d\n", Version, port)
		fmt.Fprintf(os.Stderr, "  Database: %s\n", dbPath)
		if verbose {
			fmt.Fprintf(os.Stderr, "  Config: %s\n", cfgFile)
			if cfg.ReminderWebhookURL != "" {
				fmt.Fprintf(os.Stderr, "  Reminder webhook: %s\n", cfg.ReminderWebhookURL)
			}
		}

		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "override the configured HTTP port")
	rootCmd.AddCommand(serveCmd)
}
