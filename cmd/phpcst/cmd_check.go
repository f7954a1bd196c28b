package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/phpcst/format"
	"github.com/dhamidi/phpcst/php/workspace"
)

func newCheckCmd(g *globals) *cobra.Command {
	var strict bool
	var quiet bool

	cmd := &cobra.Command{
		Use:   "check <path>...",
		Short: "Parse files and directories, report diagnostics and verify round trip",
		Long: `Check parses every PHP file named on the command line or found below a
named directory. It prints each diagnostic, verifies that reprinting the
tree reproduces the file exactly, and exits non-zero on a round-trip
mismatch. With --strict, diagnostics fail the check as well.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			var files []*workspace.FileInfo
			for _, arg := range args {
				stat, err := os.Stat(arg)
				if err != nil {
					return fmt.Errorf("check: %w", err)
				}
				ws := workspace.New(arg, g.cfg)
				if stat.IsDir() {
					if err := ws.ScanAll(); err != nil {
						return err
					}
				} else if err := ws.ScanFile(arg); err != nil {
					return err
				}
				for _, path := range ws.Files() {
					files = append(files, ws.GetFile(path))
				}
			}

			var diagnostics, mismatches int
			for _, f := range files {
				var buf bytes.Buffer
				if err := format.NewSourceEncoder(&buf, f.Content).Encode(f.Tree); err != nil {
					return fmt.Errorf("reprint %s: %w", f.Path, err)
				}
				if !bytes.Equal(buf.Bytes(), f.Content) {
					mismatches++
					fmt.Fprintf(out, "%s: round trip mismatch\n", f.Path)
				}
				diagnostics += len(f.Diagnostics)
				if !quiet {
					for _, d := range f.Diagnostics {
						fmt.Fprintln(out, d)
					}
				}
			}

			fmt.Fprintf(out, "%d files, %d diagnostics\n", len(files), diagnostics)
			switch {
			case mismatches > 0:
				return fmt.Errorf("%d files failed round trip", mismatches)
			case strict && diagnostics > 0:
				return fmt.Errorf("%d diagnostics", diagnostics)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail when any diagnostic is reported")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the summary")

	return cmd
}
