package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tileforge/internal/tilemap"
)

var infoCmd = &cobra.Command{
	Use:   "info <map.tmx>",
	Short: "Show the layers inside a map file",
	Long: `Parse a map file and list its layers without decoding the tile data.

Examples:
  tileforge info dungeon.tmx`,
	Args: cobra.ExactArgs(1),
	Run:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) {
	info, err := tilemap.ReadInfo(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(info.Layers) == 0 {
		fmt.Printf("%s: no layers\n", info.Path)
		return
	}

	fmt.Printf("%s: %d layer(s)\n", info.Path, len(info.Layers))
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, l := range info.Layers {
		if len(l.Name) > maxNameLen {
			maxNameLen = len(l.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-9s  %-8s  %s\n", maxNameLen, "Name", "Size", "Encoding", "Compression")
	fmt.Printf("  %-*s  %-9s  %-8s  %s\n", maxNameLen, "----", "----", "--------", "-----------")

	// Print layers
	for _, l := range info.Layers {
		size := fmt.Sprintf("%dx%d", l.Width, l.Height)
		encoding := l.Encoding
		if encoding == "" {
			encoding = "-"
		}
		compression := l.Compression
		if compression == "" {
			compression = "-"
		}
		fmt.Printf("  %-*s  %-9s  %-8s  %s\n", maxNameLen, l.Name, size, encoding, compression)
	}

	fmt.Println()
	fmt.Println("Run 'tileforge view <file> --layer <name>' to open a layer.")
}
