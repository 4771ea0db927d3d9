package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"creditnext/internal/config"
	"creditnext/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile string
	version = "dev"
	rootCmd = &cobra.Command{
		Use:   "creditnext",
		Short: "Credit scoring for freelancers and small merchants",
		Long: `creditnext scores a ledger of bank transactions: it classifies the
business, extracts cash-flow features and maps a trained default model onto a
300-900 credit score with per-feature explanations.

Run "creditnext serve" for the HTTP API or "creditnext score" for a one-off report.`,
		SilenceUsage:      true,
		PersistentPreRunE: initConfig,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./creditnext.yaml when present)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "log format (console, json)")

	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(scoreCmd())
	rootCmd.AddCommand(trainCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(tokenCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("creditnext")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("CREDITNEXT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

// loadConfig reads the service configuration and applies CLI overrides on top
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyOverrides(cfg, viper.GetViper())
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := logger.Init(logger.Options{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		OutputFile: cfg.Logging.OutputFile,
	}); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, nil
}

// applyOverrides copies every key set through flags, CREDITNEXT_* variables or
// the config file onto cfg
func applyOverrides(cfg *config.Config, v *viper.Viper) {
	if v.IsSet("server.host") {
		cfg.Server.Host = v.GetString("server.host")
	}
	if v.IsSet("server.port") {
		cfg.Server.Port = v.GetString("server.port")
	}
	if v.IsSet("database.driver") {
		cfg.Database.Driver = strings.ToLower(v.GetString("database.driver"))
	}
	if v.IsSet("database.sqlite_path") {
		cfg.Database.SQLitePath = v.GetString("database.sqlite_path")
	}
	if v.IsSet("database.migrations_path") {
		cfg.Database.MigrationsPath = v.GetString("database.migrations_path")
	}
	if v.IsSet("model.seed") {
		cfg.Model.Seed = v.GetInt64("model.seed")
	}
	if v.IsSet("model.samples") {
		cfg.Model.Samples = v.GetInt("model.samples")
	}
	if v.IsSet("model.trees") {
		cfg.Model.Trees = v.GetInt("model.trees")
	}
	if v.IsSet("model.explainer") {
		cfg.Model.Explainer = v.GetBool("model.explainer")
	}
	if v.IsSet("model.train_at_startup") {
		cfg.Model.TrainAtStartup = v.GetBool("model.train_at_startup")
	}
	if v.IsSet("ocr.mock_fallback") {
		cfg.OCR.MockFallback = v.GetBool("ocr.mock_fallback")
	}
	if level := v.GetString("logging.level"); level != "" {
		cfg.Logging.Level = level
	}
	if format := v.GetString("logging.format"); format != "" {
		cfg.Logging.Format = format
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "creditnext %s\n", version)
		},
	}
}

// log returns the process logger once loadConfig has run
func log() *zap.Logger {
	return logger.Get()
}
