package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tileforge/internal/grid"
	"github.com/vovakirdan/tileforge/internal/text"
)

var (
	flagTextWidth  int
	flagTextHeight int
	flagTextAlign  string
	flagTextWrap   bool
)

var textCmd = &cobra.Command{
	Use:   "text <line>...",
	Short: "Render text through the tile layout engine",
	Long: `Lay out one or more lines of text inside a box and print the result.

Each argument becomes one input line. Lines wrap at word boundaries by
default; alignment names combine a vertical (up, center, down) and a
horizontal (left, center, right) component.

Alignments:
  up-left    up      up-right
  left       center  right
  down-left  down    down-right

Examples:
  tileforge text "HELLO WORLD"
  tileforge text --width 20 --height 5 --align center "GAME OVER"
  tileforge text --wrap=false "ABCDEFGHIJ"`,
	Args: cobra.MinimumNArgs(1),
	Run:  runText,
}

func init() {
	textCmd.Flags().IntVar(&flagTextWidth, "width", 40, "Box width in cells")
	textCmd.Flags().IntVar(&flagTextHeight, "height", 10, "Box height in cells")
	textCmd.Flags().StringVar(&flagTextAlign, "align", "up-left", "Box alignment")
	textCmd.Flags().BoolVar(&flagTextWrap, "wrap", true, "Wrap lines at word boundaries")
}

func runText(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	align, err := text.ParseAlign(flagTextAlign)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagTextWidth < 1 || flagTextHeight < 1 {
		fmt.Fprintln(os.Stderr, "Error: box dimensions must be positive")
		os.Exit(1)
	}

	// Lay the text out into a fresh grid, then read it back as glyphs
	g := grid.New(flagTextWidth, flagTextHeight)
	text.Print(g, grid.Pt(0, 0), flagTextWidth, flagTextHeight, flagTextWrap, align, grid.ColorMax, args...)

	for y := 0; y < g.Height(); y++ {
		var sb strings.Builder
		for x := 0; x < g.Width(); x++ {
			sb.WriteString(cfg.Viewer.Glyph(g.TileAt(grid.Pt(x, y))))
		}
		fmt.Println(strings.TrimRight(sb.String(), " "))
	}
}
