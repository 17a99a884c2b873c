// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the venture-advisor CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/venture-advisor/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the venture-advisor CLI.
var rootCmd = &cobra.Command{
	Use:   "venture-advisor",
	Short: "Interactive advisor for deep-tech venture development",
	Long: `venture-advisor guides a research project from the lab toward a venture.
It runs three resumable pipelines over a local workspace: business development
(markets, segments, personas, pricing), technology development (research
planning and literature research), and a free-form advisory conversation.

Run "venture-advisor run" to pick a project and a pipeline. Progress persists
in the workspace database, so every pipeline can be stopped and resumed.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./venture-advisor.yaml or ~/.config/venture-advisor/config.yaml)")
	rootCmd.PersistentFlags().String("log-mode", "dev", "log encoder mode (dev or prod)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("venture-advisor")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "venture-advisor"))
		}
	}

	viper.SetEnvPrefix("VENTURE_ADVISOR")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig overlays file and environment values onto the defaults. Only
// keys that are actually set override the built-in values.
func loadConfig() types.Config {
	cfg := types.Defaults()

	overlayString(&cfg.Generation.Model, "generation.model")
	overlayString(&cfg.Generation.ReasoningModel, "generation.reasoning_model")
	overlayString(&cfg.Generation.ReportModel, "generation.report_model")
	overlayString(&cfg.Generation.EmbeddingModel, "generation.embedding_model")
	overlayDuration(&cfg.Generation.Timeout, "generation.timeout")

	overlayString(&cfg.Research.Model, "research.model")
	overlayDuration(&cfg.Research.Timeout, "research.timeout")

	overlayString(&cfg.Store.RootDir, "store.root_dir")

	overlayString(&cfg.Graph.URI, "graph.uri")
	overlayString(&cfg.Graph.Username, "graph.username")
	overlayString(&cfg.Graph.Password, "graph.password")
	overlayString(&cfg.Graph.Database, "graph.database")
	overlayFloat(&cfg.Graph.SimilarityThreshold, "graph.similarity_threshold")

	return cfg
}

func overlayString(dst *string, key string) {
	if viper.IsSet(key) {
		*dst = viper.GetString(key)
	}
}

func overlayFloat(dst *float64, key string) {
	if viper.IsSet(key) {
		*dst = viper.GetFloat64(key)
	}
}

func overlayDuration(dst *time.Duration, key string) {
	if viper.IsSet(key) {
		*dst = viper.GetDuration(key)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
