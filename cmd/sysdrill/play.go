package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"sysdrill/internal/cli"
)

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start an interactive troubleshooting session",
	Long:  `Boots the simulated server and walks you through the campaign level by level.`,
	Run: func(cmd *cobra.Command, args []string) {
		levelsPath, _ := cmd.Flags().GetString("levels")
		debug, _ := cmd.Flags().GetBool("debug")
		attempts, _ := cmd.Flags().GetInt("attempts")
		noColor, _ := cmd.Flags().GetBool("no-color")
		delayMs, _ := cmd.Flags().GetInt("typing-delay")
		diagAddr, _ := cmd.Flags().GetString("diag")
		startLevel, _ := cmd.Flags().GetString("start-level")

		opts := cli.PlayOptions{
			Attempts:    attempts,
			NoColor:     noColor,
			TypingDelay: time.Duration(delayMs) * time.Millisecond,
			Debug:       debug,
			DiagAddr:    diagAddr,
			LevelsPath:  levelsPath,
			StartLevel:  startLevel,
		}
		if err := cli.RunPlay(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(playCmd)

	// Make a bare 'sysdrill' start a session.
	rootCmd.Run = playCmd.Run
}
