package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Jose-Trivino/make-poly-from-image/config"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:   "config FILE",
	Short: "create a pipeline settings file",
	Long: `Create a pipeline settings file in YAML format, prefilled with
default values for both the contour and mesh pipelines.

If FILE is not provided, 'poly.yml' is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "poly.yml"
		if len(args) >= 1 {
			path = args[0]
		}

		ok, err := confirmIfExists(path, fmt.Sprintf("file '%s' already exists, overwrite? [y/N]", path))
		if !ok {
			if err == nil {
				fmt.Println("aborted by user...")
			} else {
				fmt.Println("aborted,", err)
			}
			return
		}

		check(config.Default().Save(path))
		fmt.Printf("pipeline settings written to '%s'\n", path)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}
