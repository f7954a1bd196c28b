package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dhamidi/phpcst/php/workspace"
)

func newWatchCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [dir]",
		Short: "Re-parse files as they change and print their diagnostics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			out := cmd.OutOrStdout()

			ws := workspace.New(dir, g.cfg)
			if err := ws.ScanAll(); err != nil {
				return err
			}
			fmt.Fprintf(out, "watching %s: %d files, %d diagnostics\n", dir, len(ws.Files()), ws.DiagnosticCount())

			watcher := workspace.NewFileWatcher(ws)
			watcher.OnChange = func(paths []string) {
				for _, path := range paths {
					f := ws.GetFile(path)
					if f == nil {
						fmt.Fprintf(out, "%s: removed\n", path)
						continue
					}
					fmt.Fprintf(out, "%s: %d diagnostics\n", path, len(f.Diagnostics))
					for _, d := range f.Diagnostics {
						fmt.Fprintf(out, "  %s\n", d)
					}
				}
			}
			if err := watcher.Start(); err != nil {
				return fmt.Errorf("watch %s: %w", dir, err)
			}
			defer watcher.Stop()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			<-ctx.Done()
			return nil
		},
	}
}
