package format

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dhamidi/phpcst/php/parser"
)

func TestNewKnowsEveryName(t *testing.T) {
	src := []byte("<?php ;")
	for _, name := range Names {
		enc, err := New(name, &bytes.Buffer{}, src, nil)
		require.NoError(t, err, name)
		require.NotNil(t, enc, name)
	}

	_, err := New("yaml", &bytes.Buffer{}, src, nil)
	require.ErrorContains(t, err, `unknown format "yaml"`)
}

func TestTreeEncoder(t *testing.T) {
	src := []byte("<?php ;")
	var out bytes.Buffer
	require.NoError(t, NewTreeEncoder(&out, src, nil).Encode(parser.Parse(src)))
	require.Equal(t, parser.Dump(parser.Parse(src), src), out.String())

	out.Reset()
	lines := parser.NewLineMap("", src)
	require.NoError(t, NewTreeEncoder(&out, src, lines).Encode(parser.Parse(src)))
	require.Contains(t, out.String(), "EmptyStatement [1:7-1:8]")
}

func TestSourceEncoderPreservesBrokenInput(t *testing.T) {
	src := []byte("<?php class { ) function (")
	var out bytes.Buffer
	require.NoError(t, NewSourceEncoder(&out, src).Encode(parser.Parse(src)))
	require.Equal(t, string(src), out.String())
}

func TestASTJSONEncoder(t *testing.T) {
	src := []byte("<?php )\nfoo(")
	file := parser.Parse(src)

	var out bytes.Buffer
	require.NoError(t, NewASTJSONEncoder(&out, src, parser.NewLineMap("", src)).Encode(file))

	var root astJSONNode
	require.NoError(t, json.Unmarshal(out.Bytes(), &root))
	require.Equal(t, "SourceFile", root.Kind)
	require.NotNil(t, root.Span)
	require.Equal(t, 1, root.Span.Start.Line)
	require.Equal(t, len(src), root.Offsets.End)

	var errs []*astJSONError
	var walk func(n *astJSONNode)
	walk = func(n *astJSONNode) {
		if n.Error != nil {
			errs = append(errs, n.Error)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(&root)

	require.Equal(t, []*astJSONError{
		{Kind: "skipped", Got: ")"},
		{Kind: "missing", Expected: ")"},
		{Kind: "missing", Expected: ";"},
	}, errs)
}

func TestASTJSONEncoderOmitsSpansWithoutLineMap(t *testing.T) {
	src := []byte("<?php $x;")
	out, err := NewASTJSONEncoder(nil, src, nil).MarshalText(parser.Parse(src))
	require.NoError(t, err)
	require.NotContains(t, string(out), `"span"`)
	require.Contains(t, string(out), `"token": "$x"`)
}
