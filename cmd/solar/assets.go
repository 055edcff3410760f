package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"solar-system/internal/solar"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "List the texture files the scene looks for and whether each exists",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, ctx, err := buildScene()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		missing := 0
		for _, path := range solar.TexturePaths(ctx) {
			status := "ok"
			if _, err := os.Stat(path); err != nil {
				status = "missing (drawn untextured)"
				missing++
			}
			fmt.Fprintf(out, "%-32s %s\n", path, status)
		}
		fmt.Fprintf(out, "%d missing\n", missing)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(assetsCmd)
}
