// kontoflow loads bank statement exports, classifies transactions with
// user-defined substring rules, and reports aggregate spending.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mkempf/kontoflow/internal/common"
)

var (
	cfgFile string
	version = "dev"
	rootCmd = &cobra.Command{
		Use:   "kontoflow",
		Short: "Bank statement categorization and reporting",
		Long: `kontoflow ingests ;-separated bank statement exports, tags transactions
with rule-based categories, groups and ad-hoc lists, and reports aggregate
spending and income.

The taxonomy (categories, groups, lists) lives in a JSON document and is
re-applied to the configured statement files on every run.`,
		PersistentPreRunE: initConfig,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/kontoflow/config.yaml)")
	rootCmd.PersistentFlags().StringSlice("statement", nil, "statement CSV file (repeatable; overrides config)")
	rootCmd.PersistentFlags().String("taxonomy", "", "taxonomy JSON document path")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")

	_ = viper.BindPFlag("statements", rootCmd.PersistentFlags().Lookup("statement"))
	_ = viper.BindPFlag("taxonomy.path", rootCmd.PersistentFlags().Lookup("taxonomy"))
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(transactionsCmd())
	rootCmd.AddCommand(classifyCmd())
	rootCmd.AddCommand(assignCmd())
	rootCmd.AddCommand(unassignCmd())
	rootCmd.AddCommand(categoriesCmd())
	rootCmd.AddCommand(groupsCmd())
	rootCmd.AddCommand(listsCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(importCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		viper.AddConfigPath(fmt.Sprintf("%s/.config/kontoflow", home))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("KONTOFLOW")
	viper.AutomaticEnv()

	viper.SetDefault("taxonomy.path", "~/.local/share/kontoflow/taxonomy.json")
	viper.SetDefault("defaults.category_color", "#ffffff")
	viper.SetDefault("defaults.group_color", "#888888")
	viper.SetDefault("defaults.list_color", "#0000ff")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	return setupLogging()
}

func setupLogging() error {
	var level slog.Level
	switch viper.GetString("logging.level") {
	case "debug":
		level = slog.LevelDebug
	case "info", "":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level: %s", viper.GetString("logging.level"))
	}

	return common.SetupLogger(level, viper.GetString("logging.format"))
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("kontoflow %s\n", version)
		},
	}
}
