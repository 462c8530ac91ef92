package schema

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTokens(t *testing.T) {
	theme, err := Parse([]byte(`
tokens:
  color-primary: '#1a2b3c'
  color-secondary: '#3c4d5e'
  spacing-base: 1rem
  palette:
    light: '#fff'
    dark: '#000'
`))
	require.NoError(t, err)

	require.Len(t, theme.Tokens, 4)
	assert.Equal(t, Token{Name: "color-primary", Value: "#1a2b3c"}, theme.Tokens["color-primary"])
	assert.Equal(t, "#3c4d5e", theme.Tokens["color-secondary"].Value)
	assert.Equal(t, "1rem", theme.Tokens["spacing-base"].Value)

	// Nested values are stored as YAML text
	palette := theme.Tokens["palette"].Value
	assert.Contains(t, palette, "light: '#fff'")
	assert.Contains(t, palette, "dark: '#000'")
	assert.NotContains(t, palette, "\n\n")
}

func TestParseComponents(t *testing.T) {
	theme, err := Parse([]byte(`
components:
  button:
    description: Primary action
    base:
      class: btn
      styles:
        - border-radius: 0.25rem
        - padding: 0.5rem 1rem
      states:
        hover:
          background-color: lightblue
      media:
        "@media (min-width: 640px)":
          padding: 1rem
    variants:
      primary:
        class: btn--primary
        styles:
          - background-color: var(--color-primary)
    icon:
      class: btn__icon
`))
	require.NoError(t, err)
	require.Contains(t, theme.Components, "button")

	button := theme.Components["button"]
	assert.Equal(t, "button", button.Name)
	assert.Equal(t, "Primary action", button.Description)

	require.NotNil(t, button.Base)
	assert.Equal(t, "btn", button.Base.Class)
	assert.Equal(t, []StyleProperty{
		{Property: "border-radius", Value: "0.25rem"},
		{Property: "padding", Value: "0.5rem 1rem"},
	}, button.Base.Styles)
	assert.Equal(t, "lightblue", button.Base.States["hover"]["background-color"])
	assert.Equal(t, "1rem", button.Base.Media["@media (min-width: 640px)"]["padding"])

	require.Contains(t, button.Variants, "primary")
	assert.Equal(t, "btn--primary", button.Variants["primary"].Class)

	// Any non-reserved key is a part
	require.Len(t, button.Parts, 1)
	assert.Equal(t, "btn__icon", button.Parts["icon"].Class)
	for name := range button.Parts {
		assert.False(t, IsReservedKey(name))
	}
}

func TestParseReservedKeysAreCaseInsensitive(t *testing.T) {
	theme, err := Parse([]byte(`
components:
  card:
    Base:
      class: card
    VARIANTS:
      flat:
        class: card--flat
    header:
      class: card__header
`))
	require.NoError(t, err)

	card := theme.Components["card"]
	require.NotNil(t, card.Base)
	assert.Equal(t, "card", card.Base.Class)
	assert.Contains(t, card.Variants, "flat")
	assert.Equal(t, []string{"header"}, keys(card.Parts))
}

func TestParseFlatStyles(t *testing.T) {
	theme, err := Parse([]byte(`
flex-container:
  styles:
    - display: flex
    - flex-direction: column
button-group:
  class: btn-group
  styles:
    - display: flex
    - gap: 0.5rem
  states:
    focus-within:
      outline: 1px solid
version: 3
`))
	require.NoError(t, err)

	require.Len(t, theme.Styles, 2)

	flex := theme.Styles["flex-container"]
	assert.Equal(t, "flex-container", flex.Class, "class defaults to key")
	assert.Equal(t, []StyleProperty{
		{Property: "display", Value: "flex"},
		{Property: "flex-direction", Value: "column"},
	}, flex.Styles)

	group := theme.Styles["button-group"]
	assert.Equal(t, "btn-group", group.Class)
	assert.Equal(t, "1px solid", group.States["focus-within"]["outline"])

	// Scalar top-level values are not styles
	assert.NotContains(t, theme.Styles, "version")
}

func TestParseStylesOrderAndMultiKeyItems(t *testing.T) {
	theme, err := Parse([]byte(`
box:
  styles:
    - margin: 0
    - padding: 1rem
      color: red
    - just a string
    - border: none
`))
	require.NoError(t, err)

	assert.Equal(t, []StyleProperty{
		{Property: "margin", Value: "0"},
		{Property: "padding", Value: "1rem"},
		{Property: "color", Value: "red"},
		{Property: "border", Value: "none"},
	}, theme.Styles["box"].Styles)
}

func TestParseAnchorsAndAliases(t *testing.T) {
	theme, err := Parse([]byte(`
shared: &shared
  class: shared
  styles:
    - color: blue
components:
  alert:
    base: *shared
`))
	require.NoError(t, err)

	require.NotNil(t, theme.Components["alert"].Base)
	assert.Equal(t, "shared", theme.Components["alert"].Base.Class)
	assert.Equal(t, "blue", theme.Components["alert"].Base.Styles[0].Value)
}

func TestParseEmptyDocuments(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "empty", yaml: ""},
		{name: "whitespace", yaml: "   \n\n"},
		{name: "comment only", yaml: "# nothing here\n"},
		{name: "explicit null", yaml: "~\n"},
		{name: "null sections", yaml: "tokens:\ncomponents:\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)
			assert.Empty(t, theme.Tokens)
			assert.Empty(t, theme.Components)
			assert.Empty(t, theme.Styles)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		wantPath string
	}{
		{
			name: "bad indentation",
			yaml: "tokens:\n  a: 1\n b: 2\n",
		},
		{
			name:     "root is a sequence",
			yaml:     "- a\n- b\n",
			wantPath: "",
		},
		{
			name:     "tokens not a mapping",
			yaml:     "tokens:\n  - a\n",
			wantPath: "tokens",
		},
		{
			name:     "component not a mapping",
			yaml:     "components:\n  button: nope\n",
			wantPath: "components.button",
		},
		{
			name:     "styles not a sequence",
			yaml:     "components:\n  button:\n    base:\n      styles:\n        color: red\n",
			wantPath: "components.button.base.styles",
		},
		{
			name:     "class not a scalar",
			yaml:     "box:\n  class:\n    - a\n",
			wantPath: "box.class",
		},
		{
			name:     "style value not a scalar",
			yaml:     "box:\n  styles:\n    - color:\n        nested: true\n",
			wantPath: "box.styles[0].color",
		},
		{
			name:     "media not a mapping",
			yaml:     "box:\n  media: wide\n",
			wantPath: "box.media",
		},
		{
			name:     "part not a mapping",
			yaml:     "components:\n  card:\n    header: 3\n",
			wantPath: "components.card.header",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Nil(t, theme, "no partial theme on error")

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			if tt.wantPath != "" {
				assert.Equal(t, tt.wantPath, perr.Path)
				assert.Positive(t, perr.Line)
			}
		})
	}
}

func TestParseIgnoresUnknownShapes(t *testing.T) {
	theme, err := Parse([]byte(`
box:
  class: box
  unknown-key: whatever
  states:
    hover: not-a-map
`))
	require.NoError(t, err)

	box := theme.Styles["box"]
	assert.Equal(t, "box", box.Class)
	require.Contains(t, box.States, "hover")
	assert.Empty(t, box.States["hover"])
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tokens:\n  gap: 4px\n"), 0644))

	theme, err := ParseFile(path)
	require.NoError(t, err)
	v, ok := theme.Token("gap")
	assert.True(t, ok)
	assert.Equal(t, "4px", v)

	_, err = ParseFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func keys(m map[string]*Slot) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
