// Package main provides the dklineup command line tool for generating
// DraftKings classic lineups from season stats and a salary export.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dklineup",
	Short: "DraftKings NFL lineup generator",
	Long:  "dklineup qualifies players from season statistics, joins them with a DraftKings salary export and samples random valid classic lineups.",
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
