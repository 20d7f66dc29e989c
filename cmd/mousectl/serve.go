package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/frudas24/deskmouse/internal/app"
	"github.com/frudas24/deskmouse/internal/config"
	"github.com/frudas24/deskmouse/internal/monitor"
	"github.com/frudas24/deskmouse/internal/observability"
	"github.com/frudas24/deskmouse/internal/rtcinput"
	"github.com/frudas24/deskmouse/internal/session"
)

// serveCommand runs the remote control server.
func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "serve the remote touchpad UI and control transports",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML or TOML config file"},
			&cli.StringFlag{Name: "listen", Usage: "listen address (overrides LISTEN_ADDR)"},
			&cli.StringFlag{Name: "static", Usage: "serve UI assets from this directory instead of the embedded copy"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}
			if c.IsSet("display") {
				cfg.Display = c.String("display")
			}
			if c.IsSet("log-level") {
				cfg.LogLevel = c.String("log-level")
			}
			if c.IsSet("listen") {
				cfg.ListenAddr = c.String("listen")
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			log := observability.InitLogger("deskmouse", cfg.LogLevel)
			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, c.String("static"), log)
		},
	}
}

// serve wires the application and blocks until ctx is done.
func serve(ctx context.Context, cfg config.Config, staticDir string, log zerolog.Logger) error {
	logStartup(cfg, log)

	p, err := openPointer(cfg.Display, log.With().Str("component", "mouse").Logger())
	if err != nil {
		return err
	}
	defer p.Close()

	sess := session.New(cfg.UIPassword)
	discover := func() ([]monitor.Monitor, error) { return monitor.ListMonitorsDisplay(cfg.Display) }
	appInstance, err := app.New(cfg, sess, p, discover, rtcinput.ClientReplace, log)
	if err != nil {
		return err
	}
	if err := appInstance.Start(); err != nil {
		return err
	}
	defer func() {
		if err := appInstance.Shutdown(); err != nil {
			log.Warn().Err(err).Msg("shutdown")
		}
	}()

	mux := http.NewServeMux()
	appInstance.RegisterRoutes(mux, staticDir)
	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// logStartup reports configuration and a local URL helper.
func logStartup(cfg config.Config, log zerolog.Logger) {
	log.Info().
		Str("listen", cfg.ListenAddr).
		Str("data_dir", cfg.DataDir).
		Str("cage", cfg.CagePath).
		Int("monitor", cfg.MonitorIndex).
		Bool("input", cfg.InputEnabled).
		Bool("metrics", cfg.MetricsEnabled).
		Msg("deskmouse starting")
	host, port, err := net.SplitHostPort(cfg.ListenAddr)
	if err != nil {
		return
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	log.Info().Str("url", "http://"+net.JoinHostPort(host, port)).Msg("local url")
}
