package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lumicon",
	Short: "Generate placeholder icons for the Lumos extension",
	Long:  "Lumicon renders single-letter placeholder icons at the standard extension sizes.",
}

func init() {
	rootCmd.PersistentFlags().String("config", "lumicon.yaml", "path to config file")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable verbose output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
