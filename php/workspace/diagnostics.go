package workspace

import (
	"fmt"
	"strconv"

	"github.com/dhamidi/phpcst/php/parser"
)

// Diagnostic describes one error leaf of a tree.
type Diagnostic struct {
	Kind    parser.TokenKind
	Message string
	Start   parser.Position
	End     parser.Position
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Start, d.Message)
}

// Diagnose reports every Missing, Skipped and Unsupported leaf of tree
// in document order.
func Diagnose(tree *parser.SourceFile, src []byte, lines *parser.LineMap) []Diagnostic {
	var result []Diagnostic
	for _, tok := range parser.ErrorTokens(tree) {
		result = append(result, Diagnostic{
			Kind:    tok.Kind,
			Message: message(tok, src),
			Start:   lines.Position(tok.Start),
			End:     lines.Position(tok.End()),
		})
	}
	return result
}

func message(tok *parser.Token, src []byte) string {
	switch tok.Kind {
	case parser.TokenMissing:
		if tok.ErrorKind == parser.TokenUnknown {
			return "expected statement or expression"
		}
		return "expected " + describe(tok.ErrorKind)
	case parser.TokenSkipped:
		return "unexpected " + strconv.Quote(tok.Text(src))
	case parser.TokenUnsupported:
		return "unsupported class member " + strconv.Quote(tok.Text(src))
	}
	return tok.Kind.String()
}

var kindDescriptions = map[parser.TokenKind]string{
	parser.TokenName:                  "name",
	parser.TokenVariableName:          "variable",
	parser.TokenEndOfFile:             "end of file",
	parser.TokenTemplateStringEnd:     "end of string",
	parser.TokenScriptSectionStartTag: "<?php",
}

func describe(kind parser.TokenKind) string {
	if d, ok := kindDescriptions[kind]; ok {
		return d
	}
	return "'" + kind.String() + "'"
}
