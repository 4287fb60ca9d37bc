// Package cmd provides the command-line interface for styletree with
// configuration management supporting multiple configuration sources.
//
// Configuration System:
//
//	The CLI supports flexible configuration with clear precedence:
//	1. Command-line flags (--config, --format, etc.) - highest priority
//	2. STYLETREE_CONFIG_FILE environment variable - custom config file path
//	3. Individual environment variables (STYLETREE_FORMAT, etc.)
//	4. Configuration files (.styletree.yml) - lowest priority
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/styletree/styletree/internal/logging"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "styletree",
	Short: "Ahead-of-time compiler for nested style trees",
	Long: `Styletree compiles nested style trees into plain CSS files ahead of time;
no runtime styling engine is involved.

Style trees are YAML files using a small selector convention:
  $         declaration block of the current node
  @...      at-rule scope, e.g. "@media (max-width: 600px)"
  :...      pseudo suffix concatenated onto the parent selector
  &         parent reference inside a selector template
  $use      list of partial files spliced in before this file's rules

Units (style source, output path, exclusions) are declared in .styletree.yml.

Quick Start:
  styletree build                 Compile all configured units
  styletree watch                 Recompile on change
  styletree build --format minify Override the output format`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .styletree.yml, can also use STYLETREE_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringP("format", "f", "", "output format (default, minify, pretty)")
	bindFlags(rootCmd.PersistentFlags())
}

// bindFlags connects persistent flags to their viper keys so flags override
// config file and environment values.
func bindFlags(flags *pflag.FlagSet) {
	_ = viper.BindPFlag("log-level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("format", flags.Lookup("format"))
}

// initConfig initializes the configuration system.
//
// Configuration Loading Priority (highest to lowest):
//  1. --config flag: Explicitly specified config file path
//  2. STYLETREE_CONFIG_FILE environment variable: Custom config file path
//  3. Default: .styletree.yml in current directory
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("STYLETREE_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".styletree")
	}

	viper.SetEnvPrefix("STYLETREE")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Missing or unreadable config files fall back to defaults so the tool
	// still works from flags and environment alone.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newLogger builds the process logger from the effective log level.
func newLogger() logging.Logger {
	return logging.New(&logging.Config{
		Level:  logging.ParseLevel(viper.GetString("log-level")),
		Format: "text",
		Output: os.Stderr,
	})
}
