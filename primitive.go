package floateq

import (
	"math"
	"unsafe"
)

// Float is satisfied by types whose underlying type is float32 or float64.
type Float interface {
	~float32 | ~float64
}

// Ulps is satisfied by types which count representable values between two
// floats: uint32 for float32 and uint64 for float64.
type Ulps interface {
	~uint32 | ~uint64
}

// EqAbs reports whether |a - b| <= maxDiff.
func EqAbs[T Float](a, b, maxDiff T) bool {
	return a == b || abs(a-b) <= maxDiff
}

// EqRmax reports whether |a - b| <= max(|a|, |b|) * maxDiff.
func EqRmax[T Float](a, b, maxDiff T) bool {
	return a == b || abs(a-b) <= DebugRmaxEpsilon(a, b, maxDiff)
}

// EqRel is the default relative comparison. It is [EqRmax].
func EqRel[T Float](a, b, maxDiff T) bool {
	return EqRmax(a, b, maxDiff)
}

// EqRmin reports whether |a - b| <= min(|a|, |b|) * maxDiff.
func EqRmin[T Float](a, b, maxDiff T) bool {
	return a == b || abs(a-b) <= DebugRminEpsilon(a, b, maxDiff)
}

// EqR1st reports whether |a - b| <= |a| * maxDiff.
func EqR1st[T Float](a, b, maxDiff T) bool {
	return a == b || abs(a-b) <= DebugR1stEpsilon(a, b, maxDiff)
}

// EqR2nd reports whether |a - b| <= |b| * maxDiff.
func EqR2nd[T Float](a, b, maxDiff T) bool {
	return a == b || abs(a-b) <= DebugR2ndEpsilon(a, b, maxDiff)
}

// EqUlps reports whether a and b are at most maxDiff representable values
// apart. Values of opposite signs are only equal when both are zero.
func EqUlps[T Float, U Ulps](a, b T, maxDiff U) bool {
	if isNaN(a) || isNaN(b) {
		return false
	}
	if signbit(a) != signbit(b) {
		return a == b
	}
	return ulpsBetween(a, b) <= uint64(maxDiff)
}

// DebugAbsDiff returns |a - b|.
func DebugAbsDiff[T Float](a, b T) T {
	return abs(a - b)
}

// DebugUlpsDiff returns the number of representable values between a and b.
// The result is invalid if either value is NaN or if their signs differ,
// unless they are equal.
func DebugUlpsDiff[T Float, U Ulps](a, b T) UlpsDiff[U] {
	switch {
	case a == b:
		return UlpsDiff[U]{Valid: true}
	case isNaN(a) || isNaN(b):
		return UlpsDiff[U]{}
	case signbit(a) != signbit(b):
		return UlpsDiff[U]{}
	}
	return UlpsDiff[U]{Ulps: U(ulpsBetween(a, b)), Valid: true}
}

// DebugAbsEpsilon returns the tolerance [EqAbs] applies, which is maxDiff.
func DebugAbsEpsilon[T Float](a, b, maxDiff T) T {
	return maxDiff
}

// DebugRmaxEpsilon returns the tolerance [EqRmax] applies.
func DebugRmaxEpsilon[T Float](a, b, maxDiff T) T {
	return maxNum(abs(a), abs(b)) * maxDiff
}

// DebugRelEpsilon is [DebugRmaxEpsilon].
func DebugRelEpsilon[T Float](a, b, maxDiff T) T {
	return DebugRmaxEpsilon(a, b, maxDiff)
}

// DebugRminEpsilon returns the tolerance [EqRmin] applies.
func DebugRminEpsilon[T Float](a, b, maxDiff T) T {
	return minNum(abs(a), abs(b)) * maxDiff
}

// DebugR1stEpsilon returns the tolerance [EqR1st] applies.
func DebugR1stEpsilon[T Float](a, b, maxDiff T) T {
	return abs(a) * maxDiff
}

// DebugR2ndEpsilon returns the tolerance [EqR2nd] applies.
func DebugR2ndEpsilon[T Float](a, b, maxDiff T) T {
	return abs(b) * maxDiff
}

// DebugUlpsEpsilon returns the tolerance [EqUlps] applies, which is maxDiff.
func DebugUlpsEpsilon[T Float, U Ulps](a, b T, maxDiff U) U {
	return maxDiff
}

func abs[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// maxNum returns the greater of x and y. A NaN operand is ignored unless both
// are NaN.
func maxNum[T Float](x, y T) T {
	switch {
	case isNaN(x):
		return y
	case isNaN(y):
		return x
	}
	return max(x, y)
}

// minNum is [maxNum] for the lesser value.
func minNum[T Float](x, y T) T {
	switch {
	case isNaN(x):
		return y
	case isNaN(y):
		return x
	}
	return min(x, y)
}

func isNaN[T Float](x T) bool {
	return math.IsNaN(float64(x))
}

func signbit[T Float](x T) bool {
	return math.Signbit(float64(x))
}

// bits returns the IEEE 754 representation of x, widened to 64 bits.
func bits[T Float](x T) uint64 {
	if unsafe.Sizeof(x) == 4 {
		return uint64(math.Float32bits(float32(x)))
	}
	return math.Float64bits(float64(x))
}

// ulpsBetween counts representable values between a and b. Both must have
// the same sign and neither may be NaN.
func ulpsBetween[T Float](a, b T) uint64 {
	x, y := bits(a), bits(b)
	if x > y {
		return x - y
	}
	return y - x
}
