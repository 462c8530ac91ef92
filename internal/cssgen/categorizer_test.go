package cssgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/tokencss/internal/schema"
)

func TestCategorizeProperty(t *testing.T) {
	tests := []struct {
		name string
		want PropertyCategory
	}{
		{name: "color", want: CategoryVisual},
		{name: "border-top-left-radius", want: CategoryVisual},
		{name: "display", want: CategoryLayout},
		{name: "grid-auto-flow", want: CategoryLayout},
		{name: "margin-inline", want: CategoryLayout},
		{name: "font-size", want: CategoryTypography},
		{name: "text-shadow", want: CategoryTypography},
		{name: "transition", want: CategoryEffects},
		{name: "animation-fill-mode", want: CategoryEffects},
		{name: "-webkit-appearance", want: CategoryInternal},
		{name: "--local-gap", want: CategoryInternal},
		{name: "cursor", want: CategoryLayout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CategorizeProperty(tt.name))
		})
	}
}

func TestCategorize(t *testing.T) {
	groups := Categorize([]schema.StyleProperty{
		{Property: "padding", Value: "1rem"},
		{Property: "color", Value: "var(--text)"},
		{Property: "display", Value: "flex"},
		{Property: "color", Value: "red"},
		{Property: "font-weight", Value: "bold"},
	})

	require.Len(t, groups[CategoryLayout], 2)
	assert.Equal(t, "display", groups[CategoryLayout][0].Name)
	assert.Equal(t, "padding", groups[CategoryLayout][1].Name)

	require.Len(t, groups[CategoryVisual], 1)
	assert.Equal(t, "red", groups[CategoryVisual][0].Value, "last declaration wins")
	assert.False(t, groups[CategoryVisual][0].IsToken)

	assert.Len(t, groups[CategoryTypography], 1)
	assert.Empty(t, groups[CategoryEffects])
}

func TestIsTokenValue(t *testing.T) {
	assert.True(t, IsTokenValue("var(--missing)"))
	assert.True(t, IsTokenValue("calc(var(--gap) * 2)"))
	assert.False(t, IsTokenValue("#fff"))
}
