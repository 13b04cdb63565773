package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "riskreport",
	Short: "Batch dropout-risk reporting for student datasets",
	Long:  "riskreport scores a student dataset with the dropout-risk rules, writes the per-student results CSV, and trains the optional failure-prediction model.",
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
