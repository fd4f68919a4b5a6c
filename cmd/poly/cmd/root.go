package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "poly",
	Short: "turn a raster image into a .poly PSLG",
	Long: `poly converts a raster image into a planar straight-line graph:
	- trace a Canny edge raster into closed polygons ('contour'), or
	- refine a triangle mesh against the image and extract its border ('mesh'),
	- tweak pipeline parameters (YAML files) with 'config'.`,
}

// Execute adds all child commands to the root command and runs it. Called
// once from main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
