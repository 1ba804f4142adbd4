package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/tuikit"
	"github.com/grindlemire/tuikit/internal/debug"
)

var (
	configPath string
	debugLog   string
	backend    string
	gridCols   int
	gridRows   int
)

var rootCmd = &cobra.Command{
	Use:   "tuikit-demo",
	Short: "Interactive demo of tuikit input decoding and focus management",
	Long: `tuikit-demo draws a grid of buttons and routes terminal input through
tuikit. Use tab/shift+tab or the arrow keys to move focus, enter or a mouse
click to press a button, ? or F1 for a modal help dialog and q to quit.`,
	RunE:          runDemo,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML or YAML config file")
	rootCmd.Flags().StringVar(&debugLog, "debug-log", "", "write debug logs to this file (overrides "+debug.EnvVar+")")
	rootCmd.Flags().StringVarP(&backend, "backend", "b", "tcell", "input backend: raw or tcell")
	rootCmd.Flags().IntVar(&gridCols, "cols", 3, "button grid columns")
	rootCmd.Flags().IntVar(&gridRows, "rows", 3, "button grid rows")
}

// Execute runs the root command.
func Execute() error {
	rootCmd.Version = version
	return rootCmd.Execute()
}

func runDemo(cmd *cobra.Command, _ []string) error {
	if gridCols < 1 || gridRows < 1 {
		return fmt.Errorf("grid must be at least 1x1, got %dx%d", gridCols, gridRows)
	}

	var cfg tuikit.Config
	if configPath != "" {
		var err error
		if cfg, err = tuikit.LoadConfig(configPath); err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	logPath := debugLog
	if logPath == "" {
		logPath = cfg.DebugLog
	}
	if logPath != "" {
		if err := debug.Init(logPath); err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
	}
	defer debug.Close()

	// Config file values override the demo's defaults.
	opts := append([]tuikit.Option{tuikit.WithEscapeTimeout(25 * time.Millisecond)}, cfg.Options()...)
	sess, err := tuikit.NewSession(opts...)
	if err != nil {
		return err
	}
	defer sess.Close()

	d, err := newDemo(sess, gridCols, gridRows)
	if err != nil {
		return err
	}

	var loop func(context.Context, *demo) error
	switch backend {
	case "raw":
		loop = runRaw
	case "tcell":
		loop = runTCell
	default:
		return fmt.Errorf("unknown backend %q (want raw or tcell)", backend)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return loop(gctx, d)
	})
	g.Go(func() error {
		return watchSignals(gctx, cancel)
	})
	if err := g.Wait(); err != nil {
		return err
	}
	fmt.Printf("pressed %d buttons\n", d.totalPresses())
	return nil
}

// watchSignals cancels the input loop on SIGTERM or SIGHUP. In raw mode
// ctrl+c arrives as a key, not as SIGINT.
func watchSignals(ctx context.Context, cancel context.CancelFunc) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGHUP, os.Interrupt)
	defer signal.Stop(sigCh)

	select {
	case <-ctx.Done():
	case sig := <-sigCh:
		debug.Log("received %v, shutting down", sig)
		cancel()
	}
	return nil
}
