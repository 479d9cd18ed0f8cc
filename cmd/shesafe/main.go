package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const appName = "shesafe"

var configPath string

var rootCmd = &cobra.Command{
	Use:           appName,
	Short:         "SheSafe personal-safety backend",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config/shesafe.env", "env file loaded when APP_ENV=local")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
