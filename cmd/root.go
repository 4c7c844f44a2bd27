package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	dataDir string
	dbPath  string
	region  string
)

var rootCmd = &cobra.Command{
	Use:   "lolreplay",
	Short: "LoL match timeline tool",
	Long:  "Fetch League of Legends match timelines, reconstruct point-in-time game state, and track player stats.",
}

// Execute runs the root command.
func Execute() {
	// .env is optional; already-set environment variables win.
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	base := filepath.Join(mustUserHome(), ".lolreplay")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", filepath.Join(base, "replays"), "directory for processed replay documents")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", filepath.Join(base, "stats.db"), "path to SQLite stats database")
	rootCmd.PersistentFlags().StringVar(&region, "region", "na1", "platform region (na1, euw1, kr, ...)")

	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(stateCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(dropCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(suggestCmd)
}

func mustUserHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

func riotAPIKey() (string, error) {
	key := os.Getenv("RIOT_API_KEY")
	if key == "" {
		return "", fmt.Errorf("RIOT_API_KEY is not set (export it or put it in a .env file)")
	}
	return key, nil
}

func matchCacheDir() string {
	return filepath.Join(mustUserHome(), ".lolreplay", "cache")
}
