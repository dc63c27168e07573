package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-farm/internal/config"
	"github.com/vovakirdan/tui-farm/internal/games/farm"
	"github.com/vovakirdan/tui-farm/internal/platform/tui"
	"github.com/vovakirdan/tui-farm/internal/platform/web"
	"github.com/vovakirdan/tui-farm/internal/storage"
)

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagIdleTimeout int
	flagServeDiff   string
	flagVerbose     bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the farm SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a mode picker menu.
Scores are stored per-server (all users share the same leaderboard).
With --http the leaderboard is also served as JSON.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.tui-farm/host_key

Examples:
  farm serve                           # Listen on :23234 with auto-generated key
  farm serve --ssh :2222               # Listen on port 2222
  farm serve --http :8080              # Also serve /api/scores/farm etc.
  farm serve --difficulty hard         # Every session plays hard

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "Leaderboard HTTP address (disabled when empty)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeDiff, "difficulty", "normal", "Difficulty preset for every session")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom farm config YAML")
	serveCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every HTTP request")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "farm-ssh",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	difficulty := string(config.ParsePreset(flagServeDiff))
	if difficulty == "" {
		logger.Warn("unknown difficulty, using normal", "difficulty", flagServeDiff)
		difficulty = string(config.DifficultyNormal)
	}
	farm.SetConfigPath(flagConfig)
	farm.SetDifficultyPreset(difficulty)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.Difficulty = difficulty

	server, err := tui.NewSSHServer(cfg, store, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpDone := make(chan struct{})
	if flagHTTPAddr != "" && store != nil {
		httpLogger := logger.WithPrefix("farm-http")
		go func() {
			defer close(httpDone)
			if err := web.NewServer(flagHTTPAddr, store, httpLogger).ListenAndServe(ctx); err != nil {
				httpLogger.Error("leaderboard server failed", "error", err)
			}
		}()
	} else {
		if flagHTTPAddr != "" {
			logger.Warn("leaderboard disabled, no scores database")
		}
		close(httpDone)
	}

	logger.Info("connect with", "cmd", "ssh localhost -p "+portOf(flagSSHAddr))
	err = server.ListenAndServe(ctx)
	stop()
	<-httpDone
	return err
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
