package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"planfind"
)

func newMetaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "meta [FILE]",
		Short: "Print the version header of a plan document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, closeIn, err := openInput(args, 0)
			if err != nil {
				return err
			}
			defer closeIn()
			root, meta, err := planfind.ReadPlan(in)
			if err != nil {
				return err
			}
			logger.Debug("plan loaded", zap.Int("nodes", root.Total()))
			fmt.Fprintf(cmd.OutOrStdout(), "format_version\t%s\n", meta.FormatVersion)
			fmt.Fprintf(cmd.OutOrStdout(), "terraform_version\t%s\n", meta.TerraformVersion)
			return nil
		},
	}
}
