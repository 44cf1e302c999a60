package floateq

import "strconv"

// UlpsDiff is the ULPs difference between two floats. It is invalid when the
// difference cannot be counted, for example when one of the values is NaN.
//
// The zero value is invalid.
type UlpsDiff[U Ulps] struct {
	Ulps  U
	Valid bool
}

// Get returns the difference and whether it is valid.
func (d UlpsDiff[U]) Get() (U, bool) {
	return d.Ulps, d.Valid
}

// String returns the difference in decimal, or "none" if it is invalid.
func (d UlpsDiff[U]) String() string {
	if !d.Valid {
		return "none"
	}
	return strconv.FormatUint(uint64(d.Ulps), 10)
}
