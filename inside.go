package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	insideSolid string
	insidePoint string
)

var insideCmd = &cobra.Command{
	Use:   "inside [file]",
	Short: "Test whether a point lies inside a named solid",
	Long:  "Evaluate a facet program and report whether a point lies inside or on the boundary of one of its named solids.",
	Args:  cobra.ExactArgs(1),
	Run:   runInside,
}

func init() {
	insideCmd.Flags().StringVar(&insideSolid, "solid", "", "name given to the solid by defsolid")
	insideCmd.Flags().StringVar(&insidePoint, "point", "", "query point x,y,z")
	_ = insideCmd.MarkFlagRequired("solid")
	_ = insideCmd.MarkFlagRequired("point")
	rootCmd.AddCommand(insideCmd)
}

func runInside(cmd *cobra.Command, args []string) {
	source, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	p, err := parsePoint(insidePoint)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing --point: %v\n", err)
		os.Exit(1)
	}

	ph, err := NewApp().Solid(string(source), insideSolid)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if ph.ContainsPoint(p) {
		fmt.Printf("%s is inside %q\n", p, insideSolid)
	} else {
		fmt.Printf("%s is outside %q\n", p, insideSolid)
	}
}
