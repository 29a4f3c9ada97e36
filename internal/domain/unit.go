package domain

// Dimension is a unit family. Conversions are only ever performed within a
// dimension; crossing dimensions (volume to count, say) needs knowledge the
// system does not have and is rejected rather than guessed.
type Dimension string

const (
	DimensionVolume   Dimension = "volume"
	DimensionWeight   Dimension = "weight"
	DimensionCount    Dimension = "count"
	DimensionUnitless Dimension = "unitless"
)

// Unit is one entry of the fixed unit vocabulary. Factor is the exact
// multiple of the dimension's base unit (milliliter for volume, gram for
// weight, one item for count).
type Unit struct {
	Name      string    `json:"name"`
	Dimension Dimension `json:"dimension"`
	Factor    Rational  `json:"factor"`
}

// IsZero reports whether the unit is the unset zero value.
func (u Unit) IsZero() bool {
	return u.Name == "" && u.Dimension == ""
}
