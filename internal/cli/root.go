package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/sotd/internal/model"
)

const version = "sotd v0.1.0"

var (
	cfgFile string
	envFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sotd",
	Short: "sotd - shave of the day hardware tallies",
	Long: `sotd reads r/wetshaving "Shave of the Day" threads and works out which
razors, brushes and Karve CB plates people used.

Free-text names are mapped to canonical product names with a curated
pattern catalog. Names the catalog does not know are reported as typed.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.sotd/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with SOTD_* variables, loaded if present")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	setDefaults(viper.GetViper(), model.DefaultConfig())

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(filepath.Join(home, ".sotd"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Variables already set in the environment win over the dotenv file
	if err := godotenv.Load(envFile); err == nil {
		if verbose {
			fmt.Fprintf(os.Stderr, "Loaded environment from %s\n", envFile)
		}
	} else if rootCmd.PersistentFlags().Changed("env-file") {
		fmt.Fprintf(os.Stderr, "Warning: could not load %s: %v\n", envFile, err)
	}

	// SOTD_SOURCE_SUBREDDIT overrides source.subreddit
	viper.SetEnvPrefix("SOTD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// setDefaults registers every config key so environment overrides apply
// even when no config file sets them
func setDefaults(v *viper.Viper, cfg *model.Config) {
	v.SetDefault("source.base_url", cfg.Source.BaseURL)
	v.SetDefault("source.subreddit", cfg.Source.Subreddit)
	v.SetDefault("source.title_marker", cfg.Source.TitleMarker)
	v.SetDefault("source.user_agent", cfg.Source.UserAgent)
	v.SetDefault("source.timeout", cfg.Source.Timeout)
	v.SetDefault("source.max_body_bytes", cfg.Source.MaxBodyBytes)
	v.SetDefault("source.search_limit", cfg.Source.SearchLimit)
	v.SetDefault("source.respect_robots", cfg.Source.RespectRobots)
	v.SetDefault("source.http_proxy", cfg.Source.HTTPProxy)
	v.SetDefault("source.https_proxy", cfg.Source.HTTPSProxy)
	v.SetDefault("source.no_proxy", cfg.Source.NoProxy)

	v.SetDefault("cache.enabled", cfg.Cache.Enabled)
	v.SetDefault("cache.dir", cfg.Cache.Dir)
	v.SetDefault("cache.memory_ttl", cfg.Cache.MemoryTTL)
	v.SetDefault("cache.disk_ttl", cfg.Cache.DiskTTL)

	v.SetDefault("concurrency.workers", cfg.Concurrency.Workers)

	v.SetDefault("rate_limiting.requests_per_second", cfg.RateLimiting.RequestsPerSecond)
	v.SetDefault("rate_limiting.burst_size", cfg.RateLimiting.BurstSize)

	v.SetDefault("output.verbose", cfg.Output.Verbose)
	v.SetDefault("output.top", cfg.Output.Top)
}

// loadConfig merges defaults, the config file, SOTD_* variables and --verbose
func loadConfig(v *viper.Viper) (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
