package tokencss

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/tokencss/internal/cssgen"
)

func sampleResult() *GenerateResult {
	return &GenerateResult{
		CSS:        ".btn {\n    color: red;\n}\n\n",
		References: 5,
		Warnings:   []string{"scan patterns matched no files"},
		Summary: cssgen.Summary{
			Variant:      "dark",
			Themes:       []string{"dark", "default"},
			FilesScanned: 2,
			ClassesUsed:  4,
			Rules:        3,
			MediaBlocks:  1,
			Skipped:      1,
			Unresolved:   []string{"missing"},
			OutputPath:   "out/tokens.css",
			Bytes:        27,
		},
	}
}

func TestDetermineOutputFormat(t *testing.T) {
	tests := []struct {
		flag string
		want cssgen.OutputFormat
	}{
		{flag: "", want: cssgen.OutputText},
		{flag: "text", want: cssgen.OutputText},
		{flag: "json", want: cssgen.OutputJSON},
		{flag: "yaml", want: cssgen.OutputText},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineOutputFormat(tt.flag))
		})
	}
}

func TestWriteOutputText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, sampleResult(), OutputOptions{Format: cssgen.OutputText}))

	assert.Equal(t, "Generated 3 rules, 1 media block from 4 classes (out/tokens.css)\n"+
		"1 class without styles skipped\n"+
		"Unresolved 1 token: missing\n", buf.String())
}

func TestWriteOutputVerbose(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, sampleResult(), OutputOptions{Format: cssgen.OutputText, Verbose: true}))

	out := buf.String()
	assert.Contains(t, out, "Generation Statistics")
	assert.Contains(t, out, "Theme Variant:   dark")
	assert.Contains(t, out, "scan patterns matched no files")
}

func TestWriteOutputUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteOutput(&buf, sampleResult(), OutputOptions{Format: "xml"}))
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, sampleResult(), OutputOptions{Format: cssgen.OutputJSON}))

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "1.0", out.Version)
	assert.Equal(t, []string{"dark", "default"}, out.Themes)
	assert.Equal(t, JSONSummary{
		Variant:      "dark",
		FilesScanned: 2,
		References:   5,
		ClassesUsed:  4,
		Rules:        3,
		MediaBlocks:  1,
		Skipped:      1,
		Unresolved:   []string{"missing"},
		Output:       "out/tokens.css",
		Bytes:        27,
	}, out.Summary)
}

func TestBuildJSONOutputEmptyLists(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	out := buildJSONOutput(&GenerateResult{}, now)

	assert.Equal(t, "2024-05-01T12:00:00Z", out.Timestamp)

	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"unresolved_tokens":[]`)
	assert.Contains(t, string(data), `"themes":[]`)
	assert.Contains(t, string(data), `"warnings":[]`)
	assert.NotContains(t, string(data), `"output"`)
}

func TestWriteThemesJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteThemesJSON(&buf, []ThemeInfo{{Name: "default", Active: true, Tokens: 2}}))

	assert.JSONEq(t, `[{"name":"default","active":true,"tokens":2,"components":0,"styles":0}]`, buf.String())
}
