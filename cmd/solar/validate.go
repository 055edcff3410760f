package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load config and bodies and build the scene without opening a window",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, ctx, err := buildScene()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "config ok (window %dx%d, scroll distance %v)\n",
			cfg.Window.Width, cfg.Window.Height, cfg.Camera.ScrollDistance)
		for _, p := range ctx.Registry.All() {
			kind := "orbits"
			if !p.Orbits() {
				kind = "fixed"
			}
			ring := ""
			if p.Ring != nil {
				ring = ", ringed"
			}
			fmt.Fprintf(out, "  %-8s %s%s\n", p.ID, kind, ring)
		}
		fmt.Fprintf(out, "%d bodies ok\n", ctx.Registry.Len())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
