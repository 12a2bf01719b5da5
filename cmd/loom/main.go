package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/benaskins/loom/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "loom",
	Short: "Loom command-line interface",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	},
}

var helloCmd = &cobra.Command{
	Use:   "hello",
	Short: "Print a greeting",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Loom CLI")
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", config.DefaultPath(), "config file path")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(helloCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
