package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sysdrill",
	Short: "SysDrill is a terminal troubleshooting game for sysadmins",
	Long: `SysDrill drops you into a simulated broken server and scores you on
fixing it with real commands: inspecting processes, freeing disk space,
reviving containers and unsticking Kubernetes pods.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("levels", "", "Path to a custom level catalog (YAML)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().Int("attempts", 5, "Wrong submissions allowed per task")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colors and the typing effect")
	rootCmd.PersistentFlags().Int("typing-delay", 20, "Typing effect delay per character in milliseconds")
	rootCmd.PersistentFlags().String("diag", "", "Serve diagnostics (health, state, metrics) on this address, e.g. :2112")
	rootCmd.PersistentFlags().String("start-level", "", "Start at the given level id")
}
