package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/phpcst/php/workspace"
)

func newLSPCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := workspace.NewLSPServer(version, g.cfg)
			return server.RunStdio()
		},
	}
}
