package engine

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimson-sun/winnow/internal/model"
)

// run normalizes input and returns the stats, output lines, and decoded
// discard entries.
func run(t *testing.T, input string, dedupe bool) (model.RunStats, []string, []map[string]any) {
	t.Helper()

	var out, disc bytes.Buffer
	stats, err := New(dedupe, nil).Normalize(strings.NewReader(input), &out, &disc)
	require.NoError(t, err)

	var outLines []string
	for _, ln := range strings.Split(out.String(), "\n") {
		if strings.TrimSpace(ln) != "" {
			outLines = append(outLines, ln)
		}
	}

	var discards []map[string]any
	for _, ln := range strings.Split(disc.String(), "\n") {
		if strings.TrimSpace(ln) == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(ln), &m), "discard line %q", ln)
		discards = append(discards, m)
	}

	// Holds for every run, whatever the input looked like.
	assert.Equal(t, stats.NormalizedSeen, stats.Written+stats.DuplicatesSkipped)
	assert.Equal(t, stats.DiscardedCount, len(discards))
	assert.Len(t, outLines, stats.Written)

	return stats, outLines, discards
}

func TestNormalizeMixedLines(t *testing.T) {
	input := `{"a":1,"b":2}` + "\n" +
		`[{"a":2},[7]]` + "\n" +
		`"just a string"` + "\n"

	stats, outLines, discards := run(t, input, false)

	require.Equal(t, []string{`{"a":1,"b":2}`, `{"a":2}`}, outLines)

	require.Len(t, discards, 2)
	require.Equal(t, model.ReasonNonDictElement, discards[0]["reason"])
	require.Equal(t, float64(2), discards[0]["line"])
	require.Equal(t, float64(1), discards[0]["index"])
	require.Equal(t, []any{float64(7)}, discards[0]["value"])
	require.Equal(t, model.ReasonNonDictTopLevel, discards[1]["reason"])
	require.Equal(t, float64(3), discards[1]["line"])
	require.Equal(t, "just a string", discards[1]["value"])

	require.Equal(t, model.RunStats{NormalizedSeen: 2, Written: 2, DiscardedCount: 2}, stats)
}

func TestNormalizeDedupe(t *testing.T) {
	input := `{"id":1,"name":"foo"}` + "\n" +
		`{"id":1,"name":"foo"}` + "\n" +
		`{"id":2,"name":"bar"}` + "\n"

	stats, outLines, _ := run(t, input, true)

	require.Equal(t, 3, stats.NormalizedSeen)
	require.Equal(t, 2, stats.Written)
	require.Equal(t, 1, stats.DuplicatesSkipped)
	require.Equal(t, 0, stats.DiscardedCount)
	require.Equal(t, []string{`{"id":1,"name":"foo"}`, `{"id":2,"name":"bar"}`}, outLines)
}

func TestNormalizeDedupeIgnoresKeyOrder(t *testing.T) {
	input := `{"id":1,"name":"foo"}` + "\n" +
		`{"name":"foo","id":1}` + "\n"

	stats, outLines, _ := run(t, input, true)

	require.Equal(t, 1, stats.Written)
	require.Equal(t, 1, stats.DuplicatesSkipped)
	require.Equal(t, []string{`{"id":1,"name":"foo"}`}, outLines, "first occurrence wins")
}

func TestNormalizeClassicArray(t *testing.T) {
	// One classic JSON document spanning several physical lines must not be
	// split into line mode.
	input := "[\n" +
		`  {"id": 1, "kind": "keep"},` + "\n" +
		"  123,\n" +
		`  {"id": 2, "kind": "keep"},` + "\n" +
		`  "oops"` + "\n" +
		"]\n"

	stats, outLines, discards := run(t, input, false)

	require.Equal(t, 2, stats.Written)
	require.Len(t, outLines, 2)

	require.Len(t, discards, 2)
	for _, d := range discards {
		require.Equal(t, model.ReasonNonDictElement, d["reason"])
		require.Equal(t, float64(1), d["line"], "classic mode pins line to 1")
	}
	require.Equal(t, float64(1), discards[0]["index"])
	require.Equal(t, float64(3), discards[1]["index"])
}

func TestNormalizeClassicObject(t *testing.T) {
	stats, outLines, discards := run(t, "{\n  \"id\": 10,\n  \"name\": \"classic\"\n}\n", false)

	require.Equal(t, model.RunStats{NormalizedSeen: 1, Written: 1}, stats)
	require.Equal(t, []string{`{"id":10,"name":"classic"}`}, outLines)
	require.Empty(t, discards)
}

func TestNormalizeClassicScalar(t *testing.T) {
	stats, _, discards := run(t, `"a bare classic string"`, false)

	require.Equal(t, 0, stats.Written)
	require.Len(t, discards, 1)
	require.Equal(t, model.ReasonNonDictTopLevel, discards[0]["reason"])
	require.Equal(t, float64(1), discards[0]["line"])
}

func TestNormalizeEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   \n\t\n  "} {
		var out, disc bytes.Buffer
		stats, err := New(true, nil).Normalize(strings.NewReader(input), &out, &disc)
		require.NoError(t, err)

		require.Zero(t, stats)
		require.Empty(t, out.String())
		require.Empty(t, disc.String())
	}
}

func TestNormalizeDecodeErrorLine(t *testing.T) {
	input := `{"id":1,"name":"foo"}` + "\n" +
		"not a json line\n" +
		`{"id":2,"name":"bar"}` + "\n"

	stats, outLines, discards := run(t, input, false)

	require.Equal(t, 2, stats.Written)
	require.Len(t, outLines, 2)

	require.Len(t, discards, 1)
	require.Equal(t, model.ReasonDecodeError, discards[0]["reason"])
	require.Equal(t, "not a json line", discards[0]["raw"])
	require.Equal(t, float64(2), discards[0]["line"])
	require.NotEmpty(t, discards[0]["error"])
}

func TestNormalizeBlankLinesKeepNumbering(t *testing.T) {
	input := "\n\n" + `{"id":1}` + "\n\nnope\n"

	_, _, discards := run(t, input, false)

	require.Len(t, discards, 1)
	require.Equal(t, float64(5), discards[0]["line"], "blank lines still count toward line numbers")
}

func TestNormalizeCRLFInput(t *testing.T) {
	stats, outLines, _ := run(t, `{"id":1}`+"\r\n"+`{"id":2}`+"\r\n", false)

	require.Equal(t, 2, stats.Written)
	require.Equal(t, []string{`{"id":1}`, `{"id":2}`}, outLines)
}

func TestNormalizeIdempotentOnOwnOutput(t *testing.T) {
	input := `{"a":1}` + "\n" +
		`[{"b":2},"junk",{"c":3}]` + "\n" +
		"42\n"

	_, firstOut, _ := run(t, input, false)
	second, secondOut, discards := run(t, strings.Join(firstOut, "\n")+"\n", true)

	require.Equal(t, second.NormalizedSeen, second.Written)
	require.Zero(t, second.DuplicatesSkipped)
	require.Empty(t, discards)
	require.Equal(t, firstOut, secondOut)
}

func TestNormalizePreservesNonASCIIAndBigNumbers(t *testing.T) {
	input := `{"name":"café","html":"<a>&b</a>","id":12345678901234567890}` + "\n"

	_, outLines, _ := run(t, input, false)

	require.Len(t, outLines, 1)
	require.Contains(t, outLines[0], "café", "non-ASCII must not be escaped")
	require.Contains(t, outLines[0], "<a>&b</a>", "HTML characters must not be escaped")
	require.Contains(t, outLines[0], "12345678901234567890", "64-bit-plus integers must survive verbatim")
}

func TestNormalizeReadErrorPropagates(t *testing.T) {
	var out, disc bytes.Buffer
	_, err := New(false, nil).Normalize(failingReader{}, &out, &disc)
	require.Error(t, err)
	require.Contains(t, err.Error(), "read input")
}

func TestNormalizeWriteErrorPropagates(t *testing.T) {
	var disc bytes.Buffer
	_, err := New(false, nil).Normalize(strings.NewReader(`{"a":1}`), failingWriter{}, &disc)
	require.Error(t, err)
	require.Contains(t, err.Error(), "write record")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errBroken }

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errBroken }

var errBroken = assert.AnError
