package format

import (
	"fmt"
	"io"

	"github.com/dhamidi/phpcst/php/parser"
)

// Encoder writes a parsed file to an output stream.
type Encoder interface {
	Encode(file *parser.SourceFile) error
}

// Names lists the formats accepted by New.
var Names = []string{"json", "tree", "source"}

// New returns the encoder registered under name. src must be the buffer
// the file was parsed from. lines is optional; when set, encoders that
// report locations include line and column ranges.
func New(name string, w io.Writer, src []byte, lines *parser.LineMap) (Encoder, error) {
	switch name {
	case "json":
		return NewASTJSONEncoder(w, src, lines), nil
	case "tree":
		return NewTreeEncoder(w, src, lines), nil
	case "source":
		return NewSourceEncoder(w, src), nil
	}
	return nil, fmt.Errorf("unknown format %q (want one of %v)", name, Names)
}

// TreeEncoder writes the indented dump produced by parser.Dump.
type TreeEncoder struct {
	w     io.Writer
	src   []byte
	lines *parser.LineMap
}

func NewTreeEncoder(w io.Writer, src []byte, lines *parser.LineMap) *TreeEncoder {
	return &TreeEncoder{w: w, src: src, lines: lines}
}

func (e *TreeEncoder) Encode(file *parser.SourceFile) error {
	text, err := e.MarshalText(file)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TreeEncoder) MarshalText(file *parser.SourceFile) ([]byte, error) {
	if e.lines != nil {
		return []byte(parser.DumpWithPositions(file, e.src, e.lines)), nil
	}
	return []byte(parser.Dump(file, e.src)), nil
}

// SourceEncoder reprints the file from its leaves. The output equals the
// parsed input byte for byte.
type SourceEncoder struct {
	w   io.Writer
	src []byte
}

func NewSourceEncoder(w io.Writer, src []byte) *SourceEncoder {
	return &SourceEncoder{w: w, src: src}
}

func (e *SourceEncoder) Encode(file *parser.SourceFile) error {
	for _, tok := range parser.Tokens(file) {
		if _, err := e.w.Write(e.src[tok.FullStart:tok.End()]); err != nil {
			return err
		}
	}
	return nil
}
