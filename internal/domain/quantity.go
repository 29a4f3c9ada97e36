package domain

import (
	"fmt"
	"strings"
)

// Rational is an exact fraction. Quantities are never stored as floats so
// that repeated scaling and merging stays drift-free and reproducible.
type Rational struct {
	Num int64 `json:"num"`
	Den int64 `json:"den"`
}

// NewRational returns a normalized rational (reduced, denominator positive).
// A zero denominator is treated as an invalid input and normalized to 0/1.
func NewRational(num, den int64) Rational {
	if den == 0 {
		return Rational{Num: 0, Den: 1}
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(abs64(num), den)
	if g > 1 {
		num /= g
		den /= g
	}
	return Rational{Num: num, Den: den}
}

// NewInt returns the rational n/1.
func NewInt(n int64) Rational {
	return Rational{Num: n, Den: 1}
}

// Add returns r + other.
func (r Rational) Add(other Rational) Rational {
	return NewRational(r.Num*other.Den+other.Num*r.Den, r.Den*other.Den)
}

// Mul returns r * other. Cross terms are reduced before multiplying to
// keep intermediate products small when unit factors carry large
// denominators.
func (r Rational) Mul(other Rational) Rational {
	g1 := gcd(abs64(r.Num), other.Den)
	g2 := gcd(abs64(other.Num), r.Den)
	return NewRational((r.Num/g1)*(other.Num/g2), (r.Den/g2)*(other.Den/g1))
}

// Div returns r / other. Division by zero returns 0/1.
func (r Rational) Div(other Rational) Rational {
	if other.Num == 0 {
		return Rational{Num: 0, Den: 1}
	}
	return r.Mul(NewRational(other.Den, other.Num))
}

// Cmp compares r against other: -1 if r < other, 0 if equal, 1 if r > other.
func (r Rational) Cmp(other Rational) int {
	// Cross-reduce before multiplying, same as Mul, so large reduced
	// terms cancel instead of overflowing.
	g1 := gcd(abs64(r.Num), abs64(other.Num))
	g2 := gcd(r.Den, other.Den)
	left := (r.Num / g1) * (other.Den / g2)
	right := (other.Num / g1) * (r.Den / g2)
	switch {
	case left < right:
		return -1
	case left > right:
		return 1
	default:
		return 0
	}
}

// Equal reports exact equality after normalization.
func (r Rational) Equal(other Rational) bool {
	return NewRational(r.Num, r.Den) == NewRational(other.Num, other.Den)
}

// IsZero reports whether the rational equals zero.
func (r Rational) IsZero() bool {
	return r.Num == 0
}

// Float64 returns an approximate float value for display purposes only.
func (r Rational) Float64() float64 {
	return float64(r.Num) / float64(r.Den)
}

// String renders the rational as "3", "1/2", or "-3/4".
func (r Rational) String() string {
	n := NewRational(r.Num, r.Den)
	if n.Den == 1 {
		return fmt.Sprintf("%d", n.Num)
	}
	return fmt.Sprintf("%d/%d", n.Num, n.Den)
}

// Mixed renders the rational as a mixed number, e.g. "2 1/2".
func (r Rational) Mixed() string {
	n := NewRational(r.Num, r.Den)
	if n.Den == 1 || n.Num == 0 {
		return n.String()
	}
	whole := n.Num / n.Den
	rem := n.Num % n.Den
	if whole == 0 {
		return fmt.Sprintf("%d/%d", rem, n.Den)
	}
	if rem < 0 {
		rem = -rem
	}
	return fmt.Sprintf("%d %d/%d", whole, rem, n.Den)
}

// Quantity is an exact amount with an optional range upper bound,
// covering phrasing like "1-2 cloves".
type Quantity struct {
	Value Rational  `json:"value"`
	Upper *Rational `json:"upper,omitempty"`
}

// NewQuantity returns a single-valued quantity.
func NewQuantity(num, den int64) Quantity {
	return Quantity{Value: NewRational(num, den)}
}

// NewQuantityRange returns a ranged quantity spanning lo to hi.
func NewQuantityRange(lo, hi Rational) Quantity {
	upper := NewRational(hi.Num, hi.Den)
	return Quantity{Value: NewRational(lo.Num, lo.Den), Upper: &upper}
}

// IsRange reports whether the quantity carries an upper bound.
func (q Quantity) IsRange() bool {
	return q.Upper != nil
}

// Scale multiplies the quantity by an exact ratio. Ranges scale both bounds.
func (q Quantity) Scale(ratio Rational) Quantity {
	out := Quantity{Value: q.Value.Mul(ratio)}
	if q.Upper != nil {
		upper := q.Upper.Mul(ratio)
		out.Upper = &upper
	}
	return out
}

// Add sums two quantities. When either side is a range the result is a
// range: the bound of a non-range side is its single value.
func (q Quantity) Add(other Quantity) Quantity {
	sum := Quantity{Value: q.Value.Add(other.Value)}
	if q.Upper != nil || other.Upper != nil {
		upper := q.upperOrValue().Add(other.upperOrValue())
		sum.Upper = &upper
	}
	return sum
}

// Equal reports exact equality of value and bounds.
func (q Quantity) Equal(other Quantity) bool {
	if !q.Value.Equal(other.Value) {
		return false
	}
	if (q.Upper == nil) != (other.Upper == nil) {
		return false
	}
	if q.Upper != nil && !q.Upper.Equal(*other.Upper) {
		return false
	}
	return true
}

// String renders "2 1/2" or "1-2" for ranges.
func (q Quantity) String() string {
	if q.Upper == nil {
		return q.Value.Mixed()
	}
	return q.Value.Mixed() + "-" + q.Upper.Mixed()
}

func (q Quantity) upperOrValue() Rational {
	if q.Upper != nil {
		return *q.Upper
	}
	return q.Value
}

// ParseRational parses "3", "1/2", or "2 1/2" into an exact rational.
func ParseRational(s string) (Rational, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Rational{}, fmt.Errorf("empty rational")
	}
	parts := strings.Fields(s)
	total := NewInt(0)
	for _, part := range parts {
		var num, den int64 = 0, 1
		if strings.Contains(part, "/") {
			if _, err := fmt.Sscanf(part, "%d/%d", &num, &den); err != nil {
				return Rational{}, fmt.Errorf("invalid fraction %q", part)
			}
			if den == 0 {
				return Rational{}, fmt.Errorf("zero denominator in %q", part)
			}
		} else {
			if _, err := fmt.Sscanf(part, "%d", &num); err != nil {
				return Rational{}, fmt.Errorf("invalid number %q", part)
			}
		}
		total = total.Add(NewRational(num, den))
	}
	return total, nil
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
