package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	logger *zap.Logger

	verbose bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "planfind",
		Short:         "Search Terraform plan JSON for keys",
		Long:          "planfind locates every occurrence of a key in a plan document\nand reports its access path together with the raw value.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := zap.NewDevelopmentConfig()
			if !verbose {
				cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
			}
			l, err := cfg.Build()
			if err != nil {
				return errors.Wrap(err, "build logger")
			}
			logger = l
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newFindCmd(), newValidateCmd(), newMetaCmd())
	return root
}

// openInput opens the argument at idx, or stdin when the argument is
// missing or "-".
func openInput(args []string, idx int) (io.Reader, func(), error) {
	if len(args) <= idx || args[idx] == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(args[idx])
	if err != nil {
		return nil, nil, errors.Wrap(err, "open input")
	}
	return f, func() { f.Close() }, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "planfind:", err)
		os.Exit(1)
	}
}
