package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"planfind"
)

func newFindCmd() *cobra.Command {
	var (
		yamlInput     bool
		jsonOut       bool
		failOnMissing bool
	)
	cmd := &cobra.Command{
		Use:   "find KEY [FILE]",
		Short: "Print the access path of every occurrence of KEY",
		Long: `Load a plan document from FILE (or stdin) and print one line per
occurrence of KEY anywhere in the tree: the dotted access path, a tab,
and the raw value as JSON. Values are not normalized; a bare scalar and
a {"constant_value": ...} wrapper are reported separately.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, closeIn, err := openInput(args, 1)
			if err != nil {
				return err
			}
			defer closeIn()
			var root *planfind.Node
			if yamlInput {
				root, err = planfind.FromYAML(in)
			} else {
				root, err = planfind.Parse(in)
			}
			if err != nil {
				return errors.Wrap(err, "load document")
			}
			matches := root.FindKey(args[0])
			logger.Debug("search finished",
				zap.String("key", args[0]),
				zap.Int("matches", len(matches)))
			if err := writeMatches(cmd.OutOrStdout(), matches, jsonOut); err != nil {
				return err
			}
			if failOnMissing && len(matches) == 0 {
				return errors.Errorf("key %q not found", args[0])
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&yamlInput, "yaml", false, "treat input as YAML")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit matches as a JSON array")
	cmd.Flags().BoolVar(&failOnMissing, "fail-on-missing", false, "exit non-zero when no match is found")
	return cmd
}

func writeMatches(w io.Writer, matches []planfind.Match, jsonOut bool) error {
	if !jsonOut {
		for _, m := range matches {
			fmt.Fprintf(w, "%s\t%s\n", m.Path, m.Node)
		}
		return nil
	}
	type match struct {
		Path  string          `json:"path"`
		Value json.RawMessage `json:"value"`
	}
	out := make([]match, 0, len(matches))
	for _, m := range matches {
		raw, err := m.Node.MarshalJSON()
		if err != nil {
			return errors.Wrap(err, "marshal value")
		}
		out = append(out, match{Path: m.Path.String(), Value: raw})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(out), "encode matches")
}
