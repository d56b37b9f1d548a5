package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"planfind"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [FILE]",
		Short: "Check that a document parses as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, closeIn, err := openInput(args, 0)
			if err != nil {
				return err
			}
			defer closeIn()
			data, err := io.ReadAll(in)
			if err != nil {
				return errors.Wrap(err, "read input")
			}
			if _, err := planfind.ParseBytes(data); err != nil {
				if perr, ok := err.(*planfind.ParseError); ok {
					row, col := perr.Where()
					return errors.Errorf("syntax error at %d:%d: %s", row+1, col+1, perr)
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}
}
