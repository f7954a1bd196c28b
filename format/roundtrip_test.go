package format

import (
	"bytes"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dhamidi/phpcst/php/parser"
)

var testcasesDir string
var testFilter string

func init() {
	flag.StringVar(&testcasesDir, "testcases", "testdata", "directory containing .php test files")
	flag.StringVar(&testFilter, "filter", "", "filter test files by substring match on filename")
}

func TestMain(m *testing.M) {
	flag.Parse()
	os.Exit(m.Run())
}

// TestRoundTrip_Testcases reprints every .php file under -testcases and
// compares the result with the input. Each file is its own subtest:
// go test ./format -run TestRoundTrip_Testcases/classes
func TestRoundTrip_Testcases(t *testing.T) {
	var files []string
	err := filepath.WalkDir(testcasesDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".php") {
			if testFilter != "" && !strings.Contains(path, testFilter) {
				return nil
			}
			files = append(files, path)
		}
		return nil
	})
	require.NoError(t, err)
	if len(files) == 0 {
		t.Skipf("no .php files found in %s", testcasesDir)
	}
	sort.Strings(files)

	for _, file := range files {
		relPath, err := filepath.Rel(testcasesDir, file)
		if err != nil {
			relPath = filepath.Base(file)
		}
		testName := strings.ReplaceAll(relPath, string(filepath.Separator), "_")
		testName = strings.TrimSuffix(testName, ".php")

		t.Run(testName, func(t *testing.T) {
			runRoundTripTest(t, file)
		})
	}
}

func runRoundTripTest(t *testing.T, filename string) {
	source, err := os.ReadFile(filename)
	require.NoError(t, err)

	file := parser.Parse(source, parser.WithFile(filename))

	var out bytes.Buffer
	require.NoError(t, NewSourceEncoder(&out, source).Encode(file))
	require.Equal(t, string(source), out.String())

	// The JSON form must be valid and keep every leaf.
	out.Reset()
	require.NoError(t, NewASTJSONEncoder(&out, source, parser.NewLineMap(filename, source)).Encode(file))
	var decoded astJSONNode
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	require.Equal(t, len(parser.Tokens(file)), countLeaves(&decoded))
}

func countLeaves(n *astJSONNode) int {
	if len(n.Children) == 0 {
		return 1
	}
	total := 0
	for _, c := range n.Children {
		total += countLeaves(c)
	}
	return total
}
