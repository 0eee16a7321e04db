// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "ajmdecode",
	Short: "Probe and decode MP3 files the way the audio job accelerator does",
	Long: `Walk MP3 frame headers or decode a stream in bounded windows into
16-bit PCM.

Examples:
  # List frame headers
  ajmdecode probe --frames song.mp3

  # Decode into a WAV file using 1 KiB input windows
  ajmdecode decode --in-chunk 1024 song.mp3 song.wav`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file path (e.g. ajmdecode.yaml)")
	rootCmd.PersistentFlags().
		String("log-level", "warn", "set the logging level (e.g. debug, info, warn, error)")
	rootCmd.PersistentFlags().
		String("log-style", "terminal", "set the logging output style (terminal, json, noop)")

	mustBindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	mustBindPFlag("log.style", rootCmd.PersistentFlags().Lookup("log-style"))

	viper.SetDefault("log.level", "warn")
	viper.SetDefault("log.style", "terminal")
}

func mustBindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", key, err))
	}
}

// initConfig reads the config file and AJMDECODE_* environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("ajmdecode")
	}

	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("AJMDECODE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		fmt.Fprintf(os.Stderr, "Error reading config file [%s]: %v\n", cfgFile, err)
		os.Exit(1)
	}
}

// newLogger builds a zap logger from the log.level and log.style settings.
func newLogger() (*zap.Logger, error) {
	style := viper.GetString("log.style")
	if style == "noop" {
		return zap.NewNop(), nil
	}

	level, err := zapcore.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		return nil, err
	}

	var cfg zap.Config
	switch style {
	case "json":
		cfg = zap.NewProductionConfig()
	case "terminal":
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		return nil, fmt.Errorf("unknown log style %q", style)
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	return cfg.Build()
}
