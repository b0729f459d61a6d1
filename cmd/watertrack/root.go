package watertrack

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dbPath  string
	userID  string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "watertrack",
	Short: "watertrack logs water intake and shows hydration progress",
	Long:  "watertrack is a local-first water intake tracker with daily goals, trailing summaries, drinking patterns, and an optional dashboard API.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
	rootCmd.PersistentFlags().StringVar(&userID, "user", "", "User ID (default from config, else user123)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
}
