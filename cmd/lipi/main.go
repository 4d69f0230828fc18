package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/npillmayer/lipi"
	"github.com/npillmayer/lipi/internal/config"
	"github.com/npillmayer/lipi/internal/logging"
	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lipi",
		Short: "Detect the encoding scheme of Sanskrit and Indic text",
		Long: `lipi tells which script or romanization a text is written in.

It recognizes the native scripts Devanagari, Bengali, Gurmukhi, Gujarati,
Oriya, Tamil, Telugu, Kannada and Malayalam, and the romanizations IAST,
Kolkata, ITRANS, SLP1, Velthuis and Harvard-Kyoto.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.config/lipi/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: info or debug")

	rootCmd.AddCommand(
		newVersionCmd(),
		newDetectCmd(),
		newCandidatesCmd(),
		newVerifyCmd(),
		newSchemesCmd(),
	)
	return rootCmd
}

// settings are the resolved configuration of a command invocation.
type settings struct {
	config *config.Config
	logger *slog.Logger
}

// loadSettings resolves the configuration: defaults, then the config file,
// then environment variables, then command line flags.
func loadSettings(cmd *cobra.Command) (*settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadPath(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}
	if flags.Lookup("default") != nil && flags.Changed("default") {
		cfg.Detect.Default, _ = flags.GetString("default")
	}
	if flags.Lookup("skip-sgml") != nil && flags.Changed("skip-sgml") {
		cfg.Detect.SkipSGML, _ = flags.GetBool("skip-sgml")
	}
	if flags.Lookup("encoding") != nil && flags.Changed("encoding") {
		cfg.Input.Encoding, _ = flags.GetString("encoding")
	}
	if flags.Lookup("nfc") != nil && flags.Changed("nfc") {
		cfg.Input.NFC, _ = flags.GetBool("nfc")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())
	if logging.ParseLevel(cfg.Logging.Level) == slog.LevelDebug {
		logging.NewTracer(logger).Install()
	}
	logger.Debug("configuration loaded",
		"default", cfg.Detect.Default,
		"skip_sgml", cfg.Detect.SkipSGML,
		"encoding", cfg.Input.Encoding,
		"nfc", cfg.Input.NFC)
	return &settings{config: cfg, logger: logger}, nil
}

// detector creates a detector from the settings.
func (s *settings) detector() (*lipi.Detector, error) {
	fallback, err := s.config.DefaultScheme()
	if err != nil {
		return nil, err
	}
	return lipi.NewDetector(
		lipi.WithDefault(fallback),
		lipi.WithSkipSGML(s.config.Detect.SkipSGML),
	), nil
}

// schemeLabel names a scheme for output. None is printed as "none", which
// parses back to None.
func schemeLabel(s lipi.Scheme) string {
	if s == lipi.None {
		return "none"
	}
	return s.String()
}
