package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/dhamidi/phpcst/format"
	"github.com/dhamidi/phpcst/php/parser"
)

const (
	promptPrefix  = "php> "
	promptPrefix2 = "...> "
)

var replCommands = []string{".exit", ".format", ".help", ".positions", ".reset"}

// repl collects input lines until they form a complete fragment, then
// prints the fragment's tree.
type repl struct {
	out       io.Writer
	opts      []parser.Option
	format    string
	positions bool
	pending   []string
}

func newReplCmd(g *globals) *cobra.Command {
	var historyPath string
	r := &repl{format: "tree"}

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactively parse PHP fragments",
		Long: `Repl reads PHP code line by line and prints the syntax tree of each
complete fragment. Input is parsed as if it followed "<?php". A fragment
with an unclosed construct continues on the next line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r.out = cmd.OutOrStdout()
			r.opts = g.cfg.ParserOptions()
			return r.run(historyPath)
		},
	}

	defaultHistory := ""
	if dir, err := os.UserCacheDir(); err == nil {
		defaultHistory = filepath.Join(dir, "phpcst", "history")
	}
	cmd.Flags().StringVar(&historyPath, "history", defaultHistory, "history file")
	cmd.Flags().StringVarP(&r.format, "format", "f", r.format, "output format ("+strings.Join(format.Names, ", ")+")")
	cmd.Flags().BoolVar(&r.positions, "positions", false, "include line:column ranges")

	return cmd
}

func (r *repl) run(historyPath string) error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(s string) []string {
		var completions []string
		for _, c := range replCommands {
			if strings.HasPrefix(c, s) {
				completions = append(completions, c)
			}
		}
		return completions
	})
	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			_, _ = line.ReadHistory(f)
			f.Close()
		}
	}

	fmt.Fprintln(r.out, "Write .help to list commands, Ctrl+D to exit")
	for {
		str, err := line.Prompt(r.prefix())
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			r.pending = nil
			continue
		}
		if err != nil {
			return fmt.Errorf("prompt: %w", err)
		}

		done, err := r.feed(str)
		if err != nil {
			fmt.Fprintln(r.out, err)
		}
		if v := strings.TrimSpace(str); v != "" {
			line.AppendHistory(v)
		}
		if done {
			break
		}
	}
	fmt.Fprintln(r.out)

	if historyPath != "" {
		if err := os.MkdirAll(filepath.Dir(historyPath), 0o755); err != nil {
			return fmt.Errorf("write history: %w", err)
		}
		f, err := os.Create(historyPath)
		if err != nil {
			return fmt.Errorf("write history: %w", err)
		}
		defer f.Close()
		if _, err := line.WriteHistory(f); err != nil {
			return fmt.Errorf("write history: %w", err)
		}
	}
	return nil
}

func (r *repl) prefix() string {
	if len(r.pending) > 0 {
		return promptPrefix2
	}
	return promptPrefix
}

// feed handles one input line. It reports true when the session should
// end.
func (r *repl) feed(str string) (bool, error) {
	trimmed := strings.TrimSpace(str)
	if trimmed == ".reset" || len(r.pending) == 0 && strings.HasPrefix(trimmed, ".") {
		return r.command(strings.Fields(trimmed))
	}

	r.pending = append(r.pending, str)
	src := []byte("<?php " + strings.Join(r.pending, "\n"))
	file := parser.Parse(src, r.opts...)
	if parser.Incomplete(file) {
		return false, nil
	}
	r.pending = nil

	var lines *parser.LineMap
	if r.positions {
		lines = parser.NewLineMap("", src)
	}
	enc, err := format.New(r.format, r.out, src, lines)
	if err != nil {
		return false, err
	}
	if err := enc.Encode(file); err != nil {
		return false, err
	}
	if r.format != "tree" {
		fmt.Fprintln(r.out)
	}
	return false, nil
}

func (r *repl) command(fields []string) (bool, error) {
	switch fields[0] {
	case ".exit":
		return true, nil
	case ".reset":
		r.pending = nil
	case ".positions":
		r.positions = !r.positions
		fmt.Fprintf(r.out, "positions %v\n", r.positions)
	case ".format":
		if len(fields) != 2 {
			return false, fmt.Errorf("usage: .format <%s>", strings.Join(format.Names, "|"))
		}
		if _, err := format.New(fields[1], io.Discard, nil, nil); err != nil {
			return false, err
		}
		r.format = fields[1]
	case ".help":
		fmt.Fprintln(r.out, ".exit              leave the repl")
		fmt.Fprintln(r.out, ".format <name>     switch output format")
		fmt.Fprintln(r.out, ".positions         toggle line:column ranges")
		fmt.Fprintln(r.out, ".reset             discard a pending fragment")
	default:
		return false, fmt.Errorf("unknown command %s", fields[0])
	}
	return false, nil
}
