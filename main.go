package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "facet",
	Short: "Build and measure validated convex polyhedra",
	Long: `facet evaluates a small Lisp language of points, polygons and convex
polyhedra. Every solid is checked for outward face orientation and a closed
surface before it is measured, placed or meshed.`,
	Version: "0.1.0",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
