// tileforge is a terminal toolkit for inspecting and browsing tile maps.
//
// Usage:
//
//	tileforge info <map.tmx>      - Show the layers inside a map file
//	tileforge export <map.tmx>    - Decode a layer and print it as CSV
//	tileforge view [map.tmx]      - Pan around a layer in the terminal
//	tileforge text <words>...     - Render text through the tile layout engine
//	tileforge scan <dir>          - Index .tmx files into the map catalog
//	tileforge maps                - List the cataloged maps
//	tileforge serve               - Start SSH server for remote browsing
//
// Global flags:
//
//	--config <path>  - Path to a custom config YAML
//	--db <path>      - Override the catalog database path
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tileforge/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tileforge",
	Short: "Tileforge - Inspect and browse tile maps in your terminal",
	Long: `Tileforge is a terminal toolkit for tile map files. It decodes TMX
layers into tile grids and lets you inspect, export, and pan around them.

Available commands:
  info     - Show the layers inside a map file
  export   - Decode a layer and print it as CSV
  view     - Pan around a layer interactively
  text     - Render text through the tile layout engine
  scan     - Index .tmx files into the map catalog
  maps     - List the cataloged maps
  serve    - Start SSH server for remote browsing

Examples:
  tileforge info dungeon.tmx
  tileforge export dungeon.tmx --layer ground
  tileforge view dungeon.tmx --layer ground
  tileforge scan ./maps
  tileforge serve --ssh :2222`,
}

// loadConfig resolves the effective config for a command run.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Command-line override wins over every config source
	if flagDBPath != "" {
		cfg.Catalog.DBPath = flagDBPath
	}

	return cfg
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to map catalog database (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(textCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(mapsCmd)
	rootCmd.AddCommand(serveCmd)
}
