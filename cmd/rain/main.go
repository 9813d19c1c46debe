// rain shows a grid of falling neon droplets in the terminal.
//
// Usage:
//
//	rain run                 - Interactive rain view
//	rain stream              - Print frames to stdout without a UI
//	rain serve               - Start SSH server showing the rain
//	rain palettes            - List available palettes
//
// Global flags:
//
//	--config <path>   - Custom config YAML
//	--rows, --cols    - Grid size (1-40, default from config)
//	--seed <value>    - RNG seed for reproducible rain
//	--palette <name>  - Colour palette
//	--debug           - Verbose logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagRows    int
	flagCols    int
	flagSeed    int64
	flagPalette string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rain",
	Short: "Neon Rain - falling droplets in your terminal",
	Long: `Neon Rain draws a grid of cells where lit droplets spawn in the top row
and fall one row per tick.

Available commands:
  run       - Interactive rain view
  stream    - Print frames to stdout without a UI
  serve     - Start SSH server showing the rain
  palettes  - List available palettes

Examples:
  rain run
  rain run --rows 20 --cols 30 --palette ember
  rain stream --ticks 50 --seed 7
  rain serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagRows, "rows", 0, "Grid rows, 1-40 (0 = from config)")
	rootCmd.PersistentFlags().IntVar(&flagCols, "cols", 0, "Grid columns, 1-40 (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagPalette, "palette", "", "Colour palette (see 'rain palettes')")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(streamCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(palettesCmd)
}
