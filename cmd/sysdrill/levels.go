package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sysdrill/internal/cli"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the campaign levels",
	Long:  `Prints a summary of every level in the catalog. With --export the built-in catalog is written as YAML, ready to edit and play via --levels.`,
	Run: func(cmd *cobra.Command, args []string) {
		levelsPath, _ := cmd.Flags().GetString("levels")
		export, _ := cmd.Flags().GetBool("export")
		graph, _ := cmd.Flags().GetBool("graph")

		err := cli.RunLevels(cli.LevelsOptions{
			LevelsPath: levelsPath,
			Export:     export,
			Graph:      graph,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(levelsCmd)

	levelsCmd.Flags().Bool("export", false, "Print the built-in catalog as YAML")
	levelsCmd.Flags().Bool("graph", false, "Print the campaign as a Mermaid flowchart")
}
