package cssgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectorBuilders(t *testing.T) {
	assert.Equal(t, "@media (min-width: 768px)", MinWidth(MD))
	assert.Equal(t, "@media (max-width: 1024px)", MaxWidth(LG))
	assert.Equal(t, "@media (min-width: 640px) and (max-width: 1280px)", Between(SM, XL))
	assert.Equal(t, "@media (max-width: 768px)", Mobile())
	assert.Equal(t, "@media (min-width: 768px) and (max-width: 1024px)", Tablet())
	assert.Equal(t, "@media (min-width: 1024px)", Desktop())
}

func TestBreakpointOrder(t *testing.T) {
	tests := []struct {
		selector string
		want     int
	}{
		{selector: "@media (min-width: 640px)", want: 1},
		{selector: "@media (min-width: 768px)", want: 2},
		{selector: "@media (max-width: 1024px)", want: 3},
		{selector: "@media (min-width: 1280px)", want: 4},
		{selector: "@media (min-width: 1536px)", want: 5},
		{selector: Between(MD, XL), want: 2},
		{selector: DarkMode, want: 99},
		{selector: "@media (min-width: 900px)", want: 99},
		{selector: "", want: 99},
	}

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			assert.Equal(t, tt.want, BreakpointOrder(tt.selector))
		})
	}
}

func TestSortSelectors(t *testing.T) {
	selectors := []string{
		DarkMode,
		MinWidth(XL),
		"@media print",
		MinWidth(SM),
		MinWidth(MD),
		ReducedMotion,
	}

	SortSelectors(selectors)
	assert.Equal(t, []string{
		MinWidth(SM),
		MinWidth(MD),
		MinWidth(XL),
		DarkMode,
		"@media print",
		ReducedMotion,
	}, selectors)
}

func TestPrefixSelector(t *testing.T) {
	tests := []struct {
		token        string
		wantSelector string
		wantClass    string
		wantOK       bool
	}{
		{token: "md:card", wantSelector: MinWidth(MD), wantClass: "card", wantOK: true},
		{token: "2xl:grid", wantSelector: MinWidth(XXL), wantClass: "grid", wantOK: true},
		{token: "dark:btn--primary", wantSelector: DarkMode, wantClass: "btn--primary", wantOK: true},
		{token: "motion-reduce:fade", wantSelector: ReducedMotion, wantClass: "fade", wantOK: true},
		{token: "tablet:col", wantSelector: Tablet(), wantClass: "col", wantOK: true},
		{token: "card", wantClass: "card"},
		{token: "hover:card", wantClass: "hover:card"},
		{token: "md:", wantClass: "md:"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			selector, class, ok := PrefixSelector(tt.token)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantSelector, selector)
			assert.Equal(t, tt.wantClass, class)
		})
	}
}
