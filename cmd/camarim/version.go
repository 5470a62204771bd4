// Version command for the camarim CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"camarim/pkg/camarim"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the camarim version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("camarim", camarim.Version)
	},
}
