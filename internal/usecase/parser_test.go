package usecase

import (
	"testing"

	"github.com/pantrycart/backend/internal/domain"
)

func TestLineParserParse(t *testing.T) {
	parser := NewLineParser(NewUnitTable())

	mustParse := func(t *testing.T, raw string) domain.ParsedIngredientLine {
		t.Helper()
		line, failure := parser.Parse(raw)
		if failure != nil {
			t.Fatalf("Parse(%q) failed: %s", raw, failure.Reason)
		}
		return line
	}

	t.Run("full line with quantity and unit", func(t *testing.T) {
		line := mustParse(t, "2 cups flour")
		if !line.Quantity.Value.Equal(domain.NewInt(2)) {
			t.Errorf("quantity = %v, want 2", line.Quantity.Value)
		}
		if line.Unit.Name != "cup" {
			t.Errorf("unit = %q, want cup", line.Unit.Name)
		}
		if line.IngredientText != "flour" {
			t.Errorf("name = %q, want flour", line.IngredientText)
		}
		if line.Confidence != 1.0 {
			t.Errorf("confidence = %v, want 1.0", line.Confidence)
		}
		if line.Status != domain.StatusParsed {
			t.Errorf("status = %s, want PARSED", line.Status)
		}
		if line.RawText != "2 cups flour" {
			t.Errorf("raw text = %q, want preserved verbatim", line.RawText)
		}
	})

	t.Run("connective of is skipped", func(t *testing.T) {
		line := mustParse(t, "2 cups of flour")
		if line.IngredientText != "flour" {
			t.Errorf("name = %q, want flour", line.IngredientText)
		}
	})

	t.Run("mixed number quantity", func(t *testing.T) {
		line := mustParse(t, "2 1/2 cups flour")
		if !line.Quantity.Value.Equal(domain.NewRational(5, 2)) {
			t.Errorf("quantity = %v, want 5/2", line.Quantity.Value)
		}
	})

	t.Run("unicode fraction quantity", func(t *testing.T) {
		line := mustParse(t, "½ cup sugar")
		if !line.Quantity.Value.Equal(domain.NewRational(1, 2)) {
			t.Errorf("quantity = %v, want 1/2", line.Quantity.Value)
		}
	})

	t.Run("range quantity", func(t *testing.T) {
		line := mustParse(t, "1-2 cloves garlic")
		if !line.Quantity.IsRange() {
			t.Fatal("quantity is not a range")
		}
		if !line.Quantity.Value.Equal(domain.NewInt(1)) || !line.Quantity.Upper.Equal(domain.NewInt(2)) {
			t.Errorf("range = %v, want 1-2", line.Quantity)
		}
		if line.Unit.Name != "clove" {
			t.Errorf("unit = %q, want clove", line.Unit.Name)
		}
	})

	t.Run("worded range", func(t *testing.T) {
		line := mustParse(t, "2 to 3 carrots")
		if !line.Quantity.IsRange() {
			t.Fatal("quantity is not a range")
		}
		if !line.Quantity.Upper.Equal(domain.NewInt(3)) {
			t.Errorf("upper = %v, want 3", line.Quantity.Upper)
		}
	})

	t.Run("missing unit defaults to count with penalty", func(t *testing.T) {
		line := mustParse(t, "2 eggs")
		if line.Unit.Name != "each" {
			t.Errorf("unit = %q, want each", line.Unit.Name)
		}
		if line.Confidence >= 1.0 {
			t.Errorf("confidence = %v, want < 1.0 for missing unit", line.Confidence)
		}
	})

	t.Run("missing quantity defaults to one with penalty", func(t *testing.T) {
		line := mustParse(t, "salt")
		if !line.Quantity.Value.Equal(domain.NewInt(1)) {
			t.Errorf("quantity = %v, want 1", line.Quantity.Value)
		}
		if line.Confidence >= 1.0 {
			t.Errorf("confidence = %v, want < 1.0 for missing quantity", line.Confidence)
		}
	})

	t.Run("leading article reads as quantity one without penalty", func(t *testing.T) {
		line := mustParse(t, "a pinch of salt")
		if !line.Quantity.Value.Equal(domain.NewInt(1)) {
			t.Errorf("quantity = %v, want 1", line.Quantity.Value)
		}
		if line.Unit.Name != "pinch" {
			t.Errorf("unit = %q, want pinch", line.Unit.Name)
		}
		if line.IngredientText != "salt" {
			t.Errorf("name = %q, want salt", line.IngredientText)
		}
		if line.Confidence != 1.0 {
			t.Errorf("confidence = %v, want 1.0", line.Confidence)
		}
	})

	t.Run("trailing to taste becomes the unit", func(t *testing.T) {
		line := mustParse(t, "salt to taste")
		if line.Unit.Dimension != domain.DimensionUnitless {
			t.Errorf("unit dimension = %s, want unitless", line.Unit.Dimension)
		}
		if line.IngredientText != "salt" {
			t.Errorf("name = %q, want salt", line.IngredientText)
		}
	})

	t.Run("descriptors are split from the name", func(t *testing.T) {
		line := mustParse(t, "2 large onions, finely diced")
		if line.IngredientText != "onions" {
			t.Errorf("name = %q, want onions", line.IngredientText)
		}
		want := map[string]bool{"large": true, "finely": true, "diced": true}
		if len(line.Descriptors) != len(want) {
			t.Fatalf("descriptors = %v, want 3 entries", line.Descriptors)
		}
		for _, d := range line.Descriptors {
			if !want[d] {
				t.Errorf("unexpected descriptor %q", d)
			}
		}
	})

	t.Run("parenthesized content never joins the name", func(t *testing.T) {
		line := mustParse(t, "1 can (15 oz) black beans")
		if line.IngredientText != "black beans" {
			t.Errorf("name = %q, want black beans", line.IngredientText)
		}
		if line.Unit.Name != "can" {
			t.Errorf("unit = %q, want can", line.Unit.Name)
		}
	})

	t.Run("empty line fails", func(t *testing.T) {
		_, failure := parser.Parse("   ")
		if failure == nil {
			t.Fatal("Parse() succeeded, want failure")
		}
		if failure.Reason != "empty line" {
			t.Errorf("reason = %q, want empty line", failure.Reason)
		}
	})

	t.Run("line without a name fails with raw text preserved", func(t *testing.T) {
		_, failure := parser.Parse("2 cups")
		if failure == nil {
			t.Fatal("Parse() succeeded, want failure")
		}
		if failure.RawText != "2 cups" {
			t.Errorf("raw text = %q, want preserved verbatim", failure.RawText)
		}
	})

	t.Run("confidence never goes negative", func(t *testing.T) {
		line, failure := parser.Parse("butter oil 3 (cold) salt, 7")
		if failure != nil {
			t.Skipf("line did not parse: %s", failure.Reason)
		}
		if line.Confidence < 0 {
			t.Errorf("confidence = %v, want >= 0", line.Confidence)
		}
	})
}

func TestLineParserRender(t *testing.T) {
	parser := NewLineParser(NewUnitTable())

	t.Run("rendered form re-parses to the same structure", func(t *testing.T) {
		inputs := []string{
			"2 cups flour",
			"1-2 cloves garlic",
			"2 1/2 tbsp olive oil",
		}
		for _, raw := range inputs {
			line, failure := parser.Parse(raw)
			if failure != nil {
				t.Fatalf("Parse(%q) failed: %s", raw, failure.Reason)
			}
			rendered := parser.Render(line)
			again, failure := parser.Parse(rendered)
			if failure != nil {
				t.Fatalf("Parse(render(%q)) = %q failed: %s", raw, rendered, failure.Reason)
			}
			if !again.Quantity.Equal(line.Quantity) {
				t.Errorf("%q: quantity %v -> %v", raw, line.Quantity, again.Quantity)
			}
			if again.Unit.Name != line.Unit.Name {
				t.Errorf("%q: unit %q -> %q", raw, line.Unit.Name, again.Unit.Name)
			}
			if again.IngredientText != line.IngredientText {
				t.Errorf("%q: name %q -> %q", raw, line.IngredientText, again.IngredientText)
			}
		}
	})

	t.Run("omits the implicit each unit", func(t *testing.T) {
		line, failure := parser.Parse("2 eggs")
		if failure != nil {
			t.Fatalf("Parse() failed: %s", failure.Reason)
		}
		if got := parser.Render(line); got != "2 eggs" {
			t.Errorf("Render() = %q, want %q", got, "2 eggs")
		}
	})
}
