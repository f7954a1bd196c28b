package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/phpcst/format"
	"github.com/dhamidi/phpcst/php/parser"
)

func newParseCmd(g *globals) *cobra.Command {
	var outputFormat string
	var includePositions bool

	cmd := &cobra.Command{
		Use:   "parse <file|->",
		Short: "Parse a PHP file and print its syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			var r io.Reader = cmd.InOrStdin()
			if filename != "-" {
				f, err := os.Open(filename)
				if err != nil {
					return fmt.Errorf("open source: %w", err)
				}
				defer f.Close()
				r = f
			} else {
				filename = "<stdin>"
			}

			opts := append([]parser.Option{parser.WithFile(filename)}, g.cfg.ParserOptions()...)
			file, src, err := parser.ParseReader(r, opts...)
			if err != nil {
				return err
			}

			var lines *parser.LineMap
			if includePositions {
				lines = parser.NewLineMap("", src)
			}
			enc, err := format.New(outputFormat, cmd.OutOrStdout(), src, lines)
			if err != nil {
				return err
			}
			if err := enc.Encode(file); err != nil {
				return fmt.Errorf("encode %s: %w", outputFormat, err)
			}
			if outputFormat == "json" {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format ("+strings.Join(format.Names, ", ")+")")
	cmd.Flags().BoolVar(&includePositions, "positions", false, "include line:column ranges in tree and json output")

	return cmd
}
