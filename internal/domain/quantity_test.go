package domain

import "testing"

func TestNewRational(t *testing.T) {
	t.Run("reduces to lowest terms", func(t *testing.T) {
		r := NewRational(4, 8)
		if r.Num != 1 || r.Den != 2 {
			t.Errorf("NewRational(4, 8) = %d/%d, want 1/2", r.Num, r.Den)
		}
	})

	t.Run("normalizes sign to the numerator", func(t *testing.T) {
		r := NewRational(3, -4)
		if r.Num != -3 || r.Den != 4 {
			t.Errorf("NewRational(3, -4) = %d/%d, want -3/4", r.Num, r.Den)
		}
	})

	t.Run("treats zero denominator as zero", func(t *testing.T) {
		r := NewRational(5, 0)
		if !r.IsZero() {
			t.Errorf("NewRational(5, 0) = %v, want zero", r)
		}
	})
}

func TestRationalArithmetic(t *testing.T) {
	t.Run("adds with exact results", func(t *testing.T) {
		got := NewRational(1, 3).Add(NewRational(1, 6))
		if !got.Equal(NewRational(1, 2)) {
			t.Errorf("1/3 + 1/6 = %v, want 1/2", got)
		}
	})

	t.Run("multiplies with cross reduction", func(t *testing.T) {
		// Both operands carry large terms; naive multiplication of the
		// numerators would overflow int64.
		a := NewRational(3785411784, 16000000)
		b := NewRational(16000000, 3785411784)
		got := a.Mul(b)
		if !got.Equal(NewInt(1)) {
			t.Errorf("a * 1/a = %v, want 1", got)
		}
	})

	t.Run("division is multiplication by the reciprocal", func(t *testing.T) {
		got := NewRational(3, 4).Div(NewRational(3, 2))
		if !got.Equal(NewRational(1, 2)) {
			t.Errorf("(3/4) / (3/2) = %v, want 1/2", got)
		}
	})

	t.Run("division by zero yields zero", func(t *testing.T) {
		got := NewRational(3, 4).Div(NewInt(0))
		if !got.IsZero() {
			t.Errorf("(3/4) / 0 = %v, want 0", got)
		}
	})

	t.Run("scale up then down restores the original exactly", func(t *testing.T) {
		start := NewRational(7, 3)
		roundTrip := start.Mul(NewRational(3, 2)).Mul(NewRational(2, 3))
		if roundTrip != start {
			t.Errorf("round trip = %v, want %v", roundTrip, start)
		}
	})

	t.Run("compares across denominators", func(t *testing.T) {
		if NewRational(1, 3).Cmp(NewRational(1, 2)) != -1 {
			t.Error("1/3 should compare less than 1/2")
		}
		if NewRational(2, 4).Cmp(NewRational(1, 2)) != 0 {
			t.Error("2/4 should compare equal to 1/2")
		}
	})

	t.Run("comparison survives large reduced terms", func(t *testing.T) {
		// Naive cross multiplication of 2^62/3 against 3 would wrap
		// around int64 and flip the sign.
		big := NewRational(1<<62, 3)
		small := NewRational(1<<61, 3)
		if big.Cmp(small) != 1 {
			t.Error("2^62/3 should compare greater than 2^61/3")
		}
		if small.Cmp(big) != -1 {
			t.Error("2^61/3 should compare less than 2^62/3")
		}
		if big.Cmp(big) != 0 {
			t.Error("a rational should compare equal to itself")
		}
	})
}

func TestRationalRendering(t *testing.T) {
	tests := []struct {
		name  string
		r     Rational
		str   string
		mixed string
	}{
		{"whole number", NewInt(3), "3", "3"},
		{"proper fraction", NewRational(1, 2), "1/2", "1/2"},
		{"improper fraction", NewRational(5, 2), "5/2", "2 1/2"},
		{"negative", NewRational(-3, 4), "-3/4", "-3/4"},
		{"zero", NewInt(0), "0", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
			if got := tt.r.Mixed(); got != tt.mixed {
				t.Errorf("Mixed() = %q, want %q", got, tt.mixed)
			}
		})
	}
}

func TestParseRational(t *testing.T) {
	tests := []struct {
		input   string
		want    Rational
		wantErr bool
	}{
		{"3", NewInt(3), false},
		{"1/2", NewRational(1, 2), false},
		{"2 1/2", NewRational(5, 2), false},
		{" 2 1/2 ", NewRational(5, 2), false},
		{"", Rational{}, true},
		{"1/0", Rational{}, true},
		{"abc", Rational{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRational(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseRational(%q) error = nil, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRational(%q) error = %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseRational(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestQuantity(t *testing.T) {
	t.Run("scales ranges on both bounds", func(t *testing.T) {
		q := NewQuantityRange(NewInt(1), NewInt(2))
		scaled := q.Scale(NewRational(3, 2))
		if !scaled.Value.Equal(NewRational(3, 2)) {
			t.Errorf("lower bound = %v, want 3/2", scaled.Value)
		}
		if scaled.Upper == nil || !scaled.Upper.Equal(NewInt(3)) {
			t.Errorf("upper bound = %v, want 3", scaled.Upper)
		}
	})

	t.Run("adding a range to a single value widens to a range", func(t *testing.T) {
		sum := NewQuantity(1, 1).Add(NewQuantityRange(NewInt(1), NewInt(2)))
		if !sum.Value.Equal(NewInt(2)) {
			t.Errorf("lower = %v, want 2", sum.Value)
		}
		if sum.Upper == nil || !sum.Upper.Equal(NewInt(3)) {
			t.Errorf("upper = %v, want 3", sum.Upper)
		}
	})

	t.Run("addition is commutative", func(t *testing.T) {
		a := NewQuantity(1, 3)
		b := NewQuantityRange(NewRational(1, 2), NewInt(1))
		if !a.Add(b).Equal(b.Add(a)) {
			t.Errorf("a+b = %v, b+a = %v", a.Add(b), b.Add(a))
		}
	})

	t.Run("renders ranges with a dash", func(t *testing.T) {
		q := NewQuantityRange(NewInt(1), NewInt(2))
		if got := q.String(); got != "1-2" {
			t.Errorf("String() = %q, want %q", got, "1-2")
		}
	})

	t.Run("renders mixed numbers", func(t *testing.T) {
		q := NewQuantity(5, 2)
		if got := q.String(); got != "2 1/2" {
			t.Errorf("String() = %q, want %q", got, "2 1/2")
		}
	})
}
