package cssgen

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/tokencss/internal/resolver"
	"github.com/yacobolo/tokencss/internal/schema"
)

func TestBuildCaretIndicator(t *testing.T) {
	reporter := &Reporter{}

	tests := []struct {
		name       string
		sourceLine string
		column     int
		want       string
	}{
		{
			name:       "spaces only",
			sourceLine: "    .btn {",
			column:     10,
			want:       "         ^",
		},
		{
			name:       "tabs and spaces",
			sourceLine: "\t\t.card {",
			column:     9,
			want:       "\t\t      ^",
		},
		{
			name:       "start of line",
			sourceLine: "}",
			column:     1,
			want:       "^",
		},
		{
			name:       "column 0 fallback",
			sourceLine: "some line",
			column:     0,
			want:       "^",
		},
		{
			name:       "column beyond line length",
			sourceLine: "short",
			column:     100,
			want:       "     ^",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reporter.buildCaretIndicator(tt.sourceLine, tt.column)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestPrintValidation(t *testing.T) {
	content := ".a {\n    color: red;\n}\n.b {\n}\n"
	err := Validate(content)
	require.Error(t, err)

	var buf bytes.Buffer
	r := &Reporter{w: &buf, printLines: true}
	r.PrintValidation("out.css", content, err)

	assert.Equal(t, "out.css:4:4: empty rule body\n\t.b {\n\t   ^\n", buf.String())

	buf.Reset()
	r.PrintValidation("out.css", content, errors.New("read failed"))
	assert.Equal(t, "out.css: read failed\n", buf.String())
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{w: &buf}

	r.PrintSummary(Summary{
		ClassesUsed: 1,
		Rules:       3,
		MediaBlocks: 1,
		Skipped:     2,
		Unresolved:  []string{"accent", "gap"},
		OutputPath:  "dist/app.css",
	})

	out := buf.String()
	assert.Contains(t, out, "Generated 3 rules, 1 media block from 1 class (dist/app.css)")
	assert.Contains(t, out, "2 classes without styles skipped")
	assert.Contains(t, out, "Unresolved 2 tokens: accent, gap")

	buf.Reset()
	r.PrintSummary(Summary{})
	assert.Equal(t, "Generated 0 rules, 0 media blocks from 0 classes (stdout)\n", buf.String())
}

func TestPrintStyle(t *testing.T) {
	theme, err := schema.Parse([]byte(`
components:
  button:
    base:
      class: btn
      styles:
        - color: var(--missing)
        - display: flex
      states:
        hover:
          color: navy
      media:
        "@media (min-width: 1280px)":
          gap: 2rem
        "@media (min-width: 640px)":
          gap: 1rem
`))
	require.NoError(t, err)
	res := resolver.New(theme).GetStyles("button", "")

	var buf bytes.Buffer
	NewVerboseReporter(&buf, false).PrintStyle("button", "", res)

	want := "button\n" +
		"  class: btn\n" +
		"  Layout\n" +
		"    display: flex\n" +
		"  Visual\n" +
		"    color: var(--missing)\n" +
		"  States\n" +
		"    hover\n" +
		"      color: navy;\n" +
		"  Media\n" +
		"    @media (min-width: 640px)\n" +
		"      gap: 1rem;\n" +
		"    @media (min-width: 1280px)\n" +
		"      gap: 2rem;\n"
	assert.Equal(t, want, buf.String())

	buf.Reset()
	NewVerboseReporter(&buf, false).PrintStyle("nope", "primary", resolver.New(nil).GetStyles("nope", "primary"))
	assert.Equal(t, "nope (primary)\n  no styles\n", buf.String())
}

func TestPluralizeCount(t *testing.T) {
	assert.Equal(t, "1 rule", pluralizeCount(1, "rule", "rules"))
	assert.Equal(t, "0 rules", pluralizeCount(0, "rule", "rules"))
	assert.Equal(t, "2 rules", pluralizeCount(2, "rule", "rules"))
}
