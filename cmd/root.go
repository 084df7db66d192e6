package cmd

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/VivekYadav7272/leetcode-runner-cli/client"
	"github.com/VivekYadav7272/leetcode-runner-cli/internal/config"
	lcerrors "github.com/VivekYadav7272/leetcode-runner-cli/internal/errors"
	"github.com/VivekYadav7272/leetcode-runner-cli/internal/logger"
	"github.com/VivekYadav7272/leetcode-runner-cli/ui/messages"
)

var (
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	orange = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	gray   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
)

// app is filled in by the root PersistentPreRunE before any command runs.
var app struct {
	cfg *config.Config
	log *zap.Logger
}

var rootCmd = &cobra.Command{
	Use:   "lc",
	Short: "Run and submit LeetCode solutions from your terminal",
	Long: `lc - LeetCode from the comfort of your editor

Fetch a question with its starter code, run it against the examples on
the judge, and submit once everything passes.

Quick Start:
  1. Authenticate:      lc auth
  2. Fetch a question:  lc question two-sum
  3. Run examples:      lc run
  4. Submit solution:   lc submit

Settings live in ~/.lc/config.json and can be overridden with LC_*
environment variables or a .env file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if app.log != nil {
			_ = app.log.Sync()
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, orange.Render("✗ "+err.Error()))
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")
	flags.Duration("poll-timeout", 0, "give up waiting for the judge after this long (0 waits forever)")
}

func setup(cmd *cobra.Command) error {
	if err := config.Init(); err != nil {
		return err
	}
	// flags win over config file and environment
	for key, flag := range map[string]string{
		"log_level":    "log-level",
		"log_format":   "log-format",
		"poll_timeout": "poll-timeout",
	} {
		if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
			if err := viper.BindPFlag(key, f); err != nil {
				return lcerrors.Wrap(err, lcerrors.Config)
			}
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return lcerrors.Wrap(err, lcerrors.Config)
	}

	app.cfg = cfg
	app.log = log
	return nil
}

// newSession authenticates with the stored cookie. Poll transitions go to
// ch when it is not nil.
func newSession(ch chan messages.Msg) (*client.Session, error) {
	if app.cfg.Cookie == "" {
		return nil, lcerrors.New(lcerrors.NotLoggedIn)
	}
	opts := []client.Option{
		client.WithBaseURL(app.cfg.BaseURL),
		client.WithLogger(app.log),
		client.WithPollTimeout(app.cfg.PollTimeout),
		client.WithTestcaseSink(client.FileSink(app.cfg.TestcaseFile)),
		client.WithHTTPClient(&http.Client{Timeout: requestTimeout}),
	}
	if ch != nil {
		opts = append(opts, client.WithStatusListener(messages.Listener(ch)))
	}
	return client.New(opts...).Authenticate(app.cfg.Cookie)
}

// requestTimeout bounds a single HTTP exchange, not the whole poll.
const requestTimeout = 30 * time.Second
