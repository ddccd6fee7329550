// Package cmd implements the CLI commands for docmd using Cobra.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var flagVerbose bool

// log is shared by all commands; --verbose switches it to debug level.
var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "docmd",
	Short: "docmd — convert files of various formats into Markdown",
	Long: `docmd is a pluggable conversion pipeline that turns files (plain text,
CSV, HTML, JSON, YAML, source code, DOCX, ODT, XLSX, PDF, images) and web
pages into Markdown.

Usage:
  docmd convert <path|url>... [flags]`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetOutput(os.Stderr)
		if flagVerbose {
			log.SetLevel(logrus.DebugLevel)
		} else {
			log.SetLevel(logrus.WarnLevel)
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./docmd.yaml or ~/.config/docmd/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

// initConfig loads the optional config file and binds DOCMD_* env vars.
func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("docmd")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "docmd"))
		}
	}

	viper.SetEnvPrefix("DOCMD")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.WithField("file", viper.ConfigFileUsed()).Debug("using config file")
	}
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
