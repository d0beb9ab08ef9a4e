package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sysdrill"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of sysdrill",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sysdrill version %s\n", sysdrill.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
