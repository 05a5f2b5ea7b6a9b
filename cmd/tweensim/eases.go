package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phanxgames/tween"
)

var easesSamples int

var easesCmd = &cobra.Command{
	Use:   "eases [name]",
	Short: "List easing names or sample one curve",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if len(args) == 0 {
			for _, name := range tween.EaseNames() {
				fmt.Fprintln(out, name)
			}
			return nil
		}

		e, err := tween.EaseByName(args[0])
		if err != nil {
			return err
		}
		n := max(easesSamples, 2)
		for i := range n {
			t := float32(i) / float32(n-1)
			v := e(t)
			bar := strings.Repeat("#", max(int(v*40), 0))
			fmt.Fprintf(out, "%5.2f %8.4f %s\n", t, v, bar)
		}
		return nil
	},
}

func init() {
	easesCmd.Flags().IntVar(&easesSamples, "samples", 11, "number of samples when a name is given")
}
