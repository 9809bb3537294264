package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		raw  string
		want Category
		ok   bool
	}{
		{raw: "all", want: CategoryAll, ok: true},
		{raw: "ALL", want: CategoryAll, ok: true},
		{raw: " Agahan ", want: CategoryAgahan, ok: true},
		{raw: "tanghalian", want: CategoryTanghalian, ok: true},
		{raw: "HAPUNAN", want: CategoryHapunan, ok: true},
		{raw: "merienda", want: CategoryMerienda, ok: true},
		{raw: "brunch", ok: false},
		{raw: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseCategory(tt.raw)

			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCategory_IsAssignable(t *testing.T) {
	assert.False(t, CategoryAll.IsAssignable())
	assert.True(t, CategoryAgahan.IsAssignable())
	assert.True(t, CategoryMerienda.IsAssignable())
	assert.False(t, Category("BRUNCH").IsAssignable())
}

func TestCategory_Label(t *testing.T) {
	assert.Equal(t, "All", CategoryAll.Label())
	assert.Equal(t, "Agahan", CategoryAgahan.Label())
	// Unknown stored values fall back to the raw string.
	assert.Equal(t, "LEGACY", Category("LEGACY").Label())
}
