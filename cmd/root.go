package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/zmajumder/portfolio/internal/config"
	"github.com/zmajumder/portfolio/internal/content"
)

var (
	version     = "dev"
	configPath  string
	contentPath string
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio site, in the browser or the terminal",
	Long: `portfolio serves a single-page personal portfolio over HTTP, renders the same
page in the terminal, and composes contact messages for your own mail client.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "portfolio.yaml", "config file (YAML, optional)")
	rootCmd.PersistentFlags().StringVar(&contentPath, "content", "", "site content file (YAML); overrides content_file")
}

// loadConfig reads and validates the config and installs the process logger.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if contentPath != "" {
		cfg.ContentFile = contentPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	slog.SetDefault(cfg.NewLogger())
	return cfg, nil
}

func loadSite(cfg *config.Config) (*content.Site, error) {
	return content.Load(cfg.ContentFile)
}
