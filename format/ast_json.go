package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/phpcst/php/parser"
)

type ASTJSONEncoder struct {
	w     io.Writer
	src   []byte
	lines *parser.LineMap
}

func NewASTJSONEncoder(w io.Writer, src []byte, lines *parser.LineMap) *ASTJSONEncoder {
	return &ASTJSONEncoder{w: w, src: src, lines: lines}
}

func (e *ASTJSONEncoder) Encode(file *parser.SourceFile) error {
	text, err := e.MarshalText(file)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *ASTJSONEncoder) MarshalText(file *parser.SourceFile) ([]byte, error) {
	return json.MarshalIndent(e.elementToJSON(file), "", "  ")
}

type astJSONNode struct {
	Kind     string         `json:"kind"`
	Span     *astJSONSpan   `json:"span,omitempty"`
	Offsets  astJSONOffsets `json:"offsets"`
	Token    string         `json:"token,omitempty"`
	Trivia   string         `json:"trivia,omitempty"`
	Error    *astJSONError  `json:"error,omitempty"`
	Children []*astJSONNode `json:"children,omitempty"`
}

type astJSONOffsets struct {
	FullStart int `json:"fullStart"`
	Start     int `json:"start"`
	End       int `json:"end"`
}

type astJSONSpan struct {
	Start astJSONPosition `json:"start"`
	End   astJSONPosition `json:"end"`
}

type astJSONPosition struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

type astJSONError struct {
	Kind     string `json:"kind"`
	Expected string `json:"expected,omitempty"`
	Got      string `json:"got,omitempty"`
}

func (e *ASTJSONEncoder) elementToJSON(el parser.Element) *astJSONNode {
	switch el := el.(type) {
	case *parser.Token:
		return e.tokenToJSON(el)
	case parser.Node:
		span := parser.SpanOf(el)
		jn := &astJSONNode{
			Kind:    el.Kind().String(),
			Span:    e.span(span.Start, span.End),
			Offsets: astJSONOffsets{FullStart: span.FullStart, Start: span.Start, End: span.End},
		}
		for _, child := range el.Children() {
			jn.Children = append(jn.Children, e.elementToJSON(child))
		}
		return jn
	}
	return nil
}

func (e *ASTJSONEncoder) tokenToJSON(tok *parser.Token) *astJSONNode {
	jn := &astJSONNode{
		Kind:    tok.Kind.String(),
		Span:    e.span(tok.Start, tok.End()),
		Offsets: astJSONOffsets{FullStart: tok.FullStart, Start: tok.Start, End: tok.End()},
		Token:   tok.Text(e.src),
		Trivia:  tok.Trivia(e.src),
	}

	switch tok.Kind {
	case parser.TokenMissing:
		jn.Error = &astJSONError{Kind: "missing"}
		if tok.ErrorKind != parser.TokenUnknown {
			jn.Error.Expected = tok.ErrorKind.String()
		}
	case parser.TokenSkipped:
		jn.Error = &astJSONError{Kind: "skipped", Got: tok.ErrorKind.String()}
	case parser.TokenUnsupported:
		jn.Error = &astJSONError{Kind: "unsupported", Got: tok.ErrorKind.String()}
	}
	return jn
}

func (e *ASTJSONEncoder) span(start, end int) *astJSONSpan {
	if e.lines == nil {
		return nil
	}
	s, t := e.lines.Position(start), e.lines.Position(end)
	return &astJSONSpan{
		Start: astJSONPosition{Line: s.Line, Column: s.Column},
		End:   astJSONPosition{Line: t.Line, Column: t.Column},
	}
}
