package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Apurbabhaumik/snakegame/version"
)

var rootCmd = &cobra.Command{
	Use:     "snake",
	Short:   "snake is a classic grid snake game for the terminal",
	Version: version.Version,
	Run: func(c *cobra.Command, args []string) {
		playCmd.Run(c, args)
	},
}

// Execute runs the root command
func Execute() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
