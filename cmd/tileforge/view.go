package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tileforge/internal/platform/tui"
	"github.com/vovakirdan/tileforge/internal/storage"
	"github.com/vovakirdan/tileforge/internal/tilemap"
)

var flagViewLayer string

var viewCmd = &cobra.Command{
	Use:   "view [map.tmx]",
	Short: "Pan around a layer in the terminal",
	Long: `Open a map layer in the interactive viewer.

With a file argument the layer opens directly. Without arguments the viewer
starts at the map catalog so you can pick a layer interactively (run
'tileforge scan' first to populate the catalog).

Controls:
  Arrows/hjkl     - Move one cell
  PgUp/PgDn/HJKL  - Jump
  0/Home          - Back to origin
  Esc/B           - Back to the catalog (catalog mode only)
  Q/Ctrl+C        - Quit

Examples:
  tileforge view dungeon.tmx --layer ground
  tileforge view`,
	Args: cobra.MaximumNArgs(1),
	Run:  runView,
}

func init() {
	viewCmd.Flags().StringVar(&flagViewLayer, "layer", "", "Name of the layer to open (required with a file argument)")
}

func runView(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// No file argument: browse the catalog
	if len(args) == 0 {
		store, err := storage.Open(cfg.Catalog.DBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open map catalog: %v\n", err)
			// Continue without a catalog - the picker shows an empty list
			store = nil
		}

		runErr := tui.RunLocalSession(store, cfg.Viewer, width, height)

		// Close store before potential exit
		if store != nil {
			store.Close()
		}

		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
			os.Exit(1)
		}
		return
	}

	if flagViewLayer == "" {
		fmt.Fprintln(os.Stderr, "Error: --layer is required when opening a file")
		fmt.Fprintln(os.Stderr, "Run 'tileforge info <file>' to see its layers.")
		os.Exit(1)
	}

	g, err := tilemap.Load(args[0], flagViewLayer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	title := fmt.Sprintf("%s:%s", filepath.Base(args[0]), flagViewLayer)
	if err := tui.RunViewer(g, cfg.Viewer, title, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running viewer: %v\n", err)
		os.Exit(1)
	}
}
