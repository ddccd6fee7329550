package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/knakagawa/docmd/core/convert"
	"github.com/knakagawa/docmd/core/detect"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported format tags and their file extensions",
	Run: func(cmd *cobra.Command, args []string) {
		registry := convert.NewDefaultRegistry()

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "FORMAT\tEXTENSIONS")
		for _, f := range registry.Formats() {
			fmt.Fprintf(w, "%s\t%s\n", f, strings.Join(detect.Extensions(f), " "))
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
