package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/oceaniq/oceaniq/internal/chat"
	"github.com/oceaniq/oceaniq/internal/config"
	"github.com/oceaniq/oceaniq/internal/server"
	"github.com/oceaniq/oceaniq/internal/web"
)

var servePort int

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the OceanIQ web server",
	Long:  `Serves the eight OceanIQ pages, their chart images, and the assistant chat API and WebSocket. Stops gracefully on SIGINT or SIGTERM.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		defer logger.Sync()

		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
		}

		app, err := newApp(cfg, logger)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Info("oceaniq starting",
			zap.String("version", Version),
			zap.String("addr", app.srv.Addr()),
			zap.String("config", cfgFile))

		return app.run(ctx)
	},
}

// app is the wired server: HTTP routes, chat sessions and their sweeper.
type app struct {
	srv     *server.Server
	hub     *chat.Hub
	sweeper *chat.Sweeper
	logger  *zap.Logger
}

func newApp(cfg *config.Config, logger *zap.Logger) (*app, error) {
	site, err := web.New(cfg.Site, logger)
	if err != nil {
		return nil, fmt.Errorf("loading pages: %w", err)
	}

	responder := chat.NewCannedResponder(nil, cfg.Chat.MinDelay, cfg.Chat.Jitter, nil)
	hub := chat.NewHub(responder, logger)
	sweeper, err := chat.NewSweeper(hub, cfg.Chat.SweepSchedule, cfg.Chat.SessionTTL, logger)
	if err != nil {
		return nil, fmt.Errorf("scheduling session sweep: %w", err)
	}

	srv := server.New(cfg.Server, logger)
	chat.RegisterRoutes(srv.Router(), hub, logger)
	site.RegisterRoutes(srv.Timed())

	return &app{srv: srv, hub: hub, sweeper: sweeper, logger: logger}, nil
}

// run serves until ctx is cancelled or the listener fails, then shuts the
// server down and closes every chat session.
func (a *app) run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(a.srv.Start)
	g.Go(func() error { return a.sweeper.Run(gctx) })
	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err := a.srv.Shutdown(shutdownCtx)
		a.hub.CloseAll()
		return err
	})
	return g.Wait()
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "HTTP port (overrides server.port)")
	rootCmd.AddCommand(serveCmd)
}
