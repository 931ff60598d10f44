package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "review-cli",
	Short: "review-cli runs AI code reviews and publishes them as PDF reports.",
	Long: `A CLI for the code review reporter. It sends local source files to the configured
inference provider, renders the review into a PDF and uploads it to the report bucket.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to a config.yaml file")
	rootCmd.AddCommand(newReviewCmd())
}

// initConfig lets RR_* variables fill flags that were not set explicitly.
func initConfig() {
	viper.SetEnvPrefix("RR")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}
