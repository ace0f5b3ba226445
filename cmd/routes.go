package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/oceaniq/oceaniq/internal/router"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the page route table",
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "PATH\tVIEW\tTITLE\tSHELL\tBUBBLES\tWAVE")
		for _, rt := range router.Routes() {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
				rt.Path, rt.View, rt.Title, yesNo(rt.Shell), yesNo(rt.Bubbles), yesNo(rt.Wave))
		}
		return tw.Flush()
	},
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func init() {
	rootCmd.AddCommand(routesCmd)
}
