package cssgen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		css      string
		wantMsg  string
		wantLine int
		wantCol  int
	}{
		{name: "empty document", css: ""},
		{name: "single rule", css: ".a {\n    color: red;\n}\n"},
		{name: "nested media", css: "@media (min-width: 640px) {\n    .a {\n        color: red;\n    }\n}\n"},
		{name: "braces in strings", css: ".a {\n    content: \"{\";\n}\n"},
		{name: "comments", css: "/* } */\n.a { color: red; }\n"},
		{
			name:     "empty rule",
			css:      ".a {\n    color: red;\n}\n.b {\n}\n",
			wantMsg:  "empty rule body",
			wantLine: 4,
			wantCol:  4,
		},
		{
			name:     "empty media block",
			css:      "@media print {\n}\n",
			wantMsg:  "empty rule body",
			wantLine: 1,
			wantCol:  14,
		},
		{
			name:     "unclosed",
			css:      ".a {\n    color: red;\n",
			wantMsg:  "unclosed block",
			wantLine: 1,
			wantCol:  4,
		},
		{
			name:     "stray close",
			css:      ".a { color: red; }\n}\n",
			wantMsg:  "unexpected '}'",
			wantLine: 2,
			wantCol:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.css)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tt.wantMsg, verr.Msg)
			assert.Equal(t, tt.wantLine, verr.Line)
			assert.Equal(t, tt.wantCol, verr.Column)
		})
	}
}
