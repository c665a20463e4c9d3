package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume",
	Short: "Achievement résumé for Lodestone characters",
	Long: `resume reports, for each tracked achievement a character has earned, how many
days after release it was earned and whether that fell within the minor-patch
and major-patch windows.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Err: %v\n", err)
		os.Exit(1)
	}
}
