package usecase

import (
	"testing"

	"github.com/pantrycart/backend/internal/domain"
)

func TestCategorize(t *testing.T) {
	c := NewCategorizer()

	tests := []struct {
		name      string
		want      string
		wantKnown bool
	}{
		{"onion", domain.CategoryProduce, true},
		{"chicken breast", domain.CategoryMeatSeafood, true},
		{"flour", domain.CategoryPantry, true},
		{"salt", domain.CategorySpices, true},
		{"frozen pea", domain.CategoryFrozen, true},
		{"bread", domain.CategoryBakery, true},
		{"Butter", domain.CategoryDairy, true},
		// Last-word fallback.
		{"minced garlic", domain.CategoryProduce, true},
		{"sharp cheddar cheese", domain.CategoryDairy, true},
		// Unknown.
		{"unicorn dust", domain.CategoryOther, false},
		{"", domain.CategoryOther, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, known := c.Categorize(tt.name)
			if got != tt.want {
				t.Errorf("Categorize(%q) = %q, want %q", tt.name, got, tt.want)
			}
			if known != tt.wantKnown {
				t.Errorf("Categorize(%q) known = %v, want %v", tt.name, known, tt.wantKnown)
			}
		})
	}
}

func TestDisplayRank(t *testing.T) {
	c := NewCategorizer()

	if c.DisplayRank(domain.CategoryProduce) >= c.DisplayRank(domain.CategoryDairy) {
		t.Error("produce should rank before dairy")
	}
	if c.DisplayRank(domain.CategoryFrozen) >= c.DisplayRank(domain.CategoryOther) {
		t.Error("frozen should rank before other")
	}
	if c.DisplayRank("made-up-category") <= c.DisplayRank(domain.CategoryOther) {
		t.Error("unknown categories should sort last")
	}
}
