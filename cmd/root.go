package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "notewalk",
	Short: "Note transition graphs over midi",
	Long:  `Builds weighted note-transition graphs from midi files and walks them to generate new sequences.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
