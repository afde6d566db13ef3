package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tileforge/internal/storage"
)

var flagMapsLayers bool

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "List the cataloged maps",
	Long: `Show every map recorded in the catalog, with its layer count and the
time it was last scanned.

Examples:
  tileforge maps
  tileforge maps --layers`,
	Run: runMaps,
}

func init() {
	mapsCmd.Flags().BoolVar(&flagMapsLayers, "layers", false, "List individual layers instead of maps")
}

func runMaps(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	store, err := storage.Open(cfg.Catalog.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening map catalog: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagMapsLayers {
		listLayers(store)
		return
	}

	entries, err := store.Maps()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing catalog: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("No maps cataloged yet.")
		fmt.Println()
		fmt.Println("Run 'tileforge scan <dir>' to index your maps.")
		return
	}

	// Calculate column widths
	maxPathLen := 4 // "Path" header
	for _, entry := range entries {
		if len(entry.Path) > maxPathLen {
			maxPathLen = len(entry.Path)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-7s  %s\n", maxPathLen, "Path", "Layers", "Scanned")
	fmt.Printf("  %-*s  %-7s  %s\n", maxPathLen, "----", "------", "-------")

	// Print maps
	for _, entry := range entries {
		dateStr := entry.ScannedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-*s  %-7d  %s\n", maxPathLen, entry.Path, entry.LayerCount, dateStr)
	}

	fmt.Println()
	fmt.Println("Run 'tileforge view' to browse the catalog interactively.")
}

func listLayers(store *storage.Store) {
	entries, err := store.Maps()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing catalog: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("No maps cataloged yet.")
		fmt.Println()
		fmt.Println("Run 'tileforge scan <dir>' to index your maps.")
		return
	}

	for i, entry := range entries {
		if i > 0 {
			fmt.Println()
		}
		fmt.Println(entry.Path)

		layers, err := store.LayersFor(entry.ID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing layers of %s: %v\n", entry.Path, err)
			os.Exit(1)
		}
		if len(layers) == 0 {
			fmt.Println("  (no layers)")
			continue
		}

		// Calculate column width
		maxNameLen := 5 // "Layer" header
		for _, l := range layers {
			if len(l.Name) > maxNameLen {
				maxNameLen = len(l.Name)
			}
		}

		fmt.Printf("  %-*s  %-9s  %s\n", maxNameLen, "Layer", "Size", "Format")
		for _, l := range layers {
			format := l.Encoding
			if format == "" {
				format = "-"
			}
			if l.Compression != "" {
				format += "+" + l.Compression
			}
			size := fmt.Sprintf("%dx%d", l.Width, l.Height)
			fmt.Printf("  %-*s  %-9s  %s\n", maxNameLen, l.Name, size, format)
		}
	}
}
