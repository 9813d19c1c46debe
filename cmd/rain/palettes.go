package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-rain/internal/registry"
)

var palettesCmd = &cobra.Command{
	Use:   "palettes",
	Short: "List all available palettes",
	Long:  `Shows every palette with its hue, saturation and lightness ranges.`,
	Args:  cobra.NoArgs,
	Run:   runPalettes,
}

func runPalettes(_ *cobra.Command, _ []string) {
	writePalettes(os.Stdout)
}

// writePalettes prints the palette table.
func writePalettes(w io.Writer) {
	palettes := registry.List()

	if len(palettes) == 0 {
		fmt.Fprintln(w, "No palettes available.")
		return
	}

	fmt.Fprintln(w, "Available palettes:")
	fmt.Fprintln(w)

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, p := range palettes {
		if len(p.Name) > maxNameLen {
			maxNameLen = len(p.Name)
		}
	}

	fmt.Fprintf(w, "  %-*s  %-8s  %-9s  %-11s  %s\n", maxNameLen, "Name", "Title", "Hue", "Saturation", "Lightness")
	fmt.Fprintf(w, "  %-*s  %-8s  %-9s  %-11s  %s\n", maxNameLen, "----", "-----", "---", "----------", "---------")

	for _, p := range palettes {
		pal := p.Palette
		fmt.Fprintf(w, "  %-*s  %-8s  %-9s  %-11s  %s\n", maxNameLen, p.Name, p.Title,
			fmt.Sprintf("%g-%g", pal.Hue.Min, pal.Hue.Max),
			fmt.Sprintf("%g-%g%%", pal.Saturation.Min*100, pal.Saturation.Max*100),
			fmt.Sprintf("%g-%g%%", pal.Lightness.Min*100, pal.Lightness.Max*100),
		)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Run 'rain run --palette <name>' to use one. Default: %s\n", registry.DefaultPalette)
}
