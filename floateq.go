// Package floateq compares floating point values, and aggregates of them,
// approximately.
//
// The package has two halves. The primitives ([EqAbs], [EqRmax], [EqUlps],
// ...) compare single float32 or float64 values under a given tolerance.
// The interfaces ([FloatEq], [FloatEqAll], [AssertFloatEq], ...) describe the
// same operations for user-defined types, and the floateq command generates
// their implementations field by field.
//
// To derive the comparisons for a type, annotate its declaration with a
// floateq:derive directive. ulps_epsilon and debug_ulps_diff name the
// companion types to generate, and all_epsilon optionally enables the
// comparisons sharing one tolerance across all fields:
//
//	//floateq:derive ulps_epsilon="PointUlps" debug_ulps_diff="PointDebugUlpsDiff" all_epsilon="float64"
//	type Point struct {
//		X, Y float64
//	}
//
// Then run the floateq command. It writes floateq_gen.go next to the
// annotated types:
//
//	go run github.com/bcliden/floateq/cmd/floateq
//
//	// generated: (simplified)
//	type PointUlps struct {
//		X uint64
//		Y uint64
//	}
//
//	func (p Point) EqAbs(other, maxDiff Point) bool {
//		return floateq.EqAbs(p.X, other.X, maxDiff.X) && floateq.EqAbs(p.Y, other.Y, maxDiff.Y)
//	}
//
// Code calling the generated methods must be excluded from the floateq build
// tag, which the command loads packages with:
//
//	//go:build !floateq
//
// Structs with named fields, defined array types such as [3]float64, and
// empty structs can be derived. Fields may be floats, arrays, or types which
// are derived themselves. Empty types compare equal under every policy.
//
// # Policies
//
//   - abs: |a - b| <= maxDiff
//   - rmax: |a - b| <= max(|a|, |b|) * maxDiff
//   - rmin: |a - b| <= min(|a|, |b|) * maxDiff
//   - r1st: |a - b| <= |a| * maxDiff
//   - r2nd: |a - b| <= |b| * maxDiff
//   - ulps: a and b are at most maxDiff representable values apart
//
// Equal values, including equal infinities, always compare equal. NaN never
// compares equal to anything.
package floateq

// FloatEqUlpsEpsilon binds a type to the type of its ULPs tolerance. The
// method is never called for its value; it exists so that the ULPs type of T
// can be recovered from T alone.
type FloatEqUlpsEpsilon[U any] interface {
	FloatEqUlpsEpsilon() U
}

// FloatEqDebugUlpsDiff binds a type to the type describing the ULPs
// difference between two of its values.
type FloatEqDebugUlpsDiff[D any] interface {
	FloatEqDebugUlpsDiff() D
}

// FloatEq compares two values of T, with a tolerance given per field.
type FloatEq[T, U any] interface {
	FloatEqUlpsEpsilon[U]

	EqAbs(other, maxDiff T) bool
	EqRmax(other, maxDiff T) bool
	EqRmin(other, maxDiff T) bool
	EqR1st(other, maxDiff T) bool
	EqR2nd(other, maxDiff T) bool
	EqUlps(other T, maxDiff U) bool
}

// FloatEqAll compares two values of T, with one tolerance of type E shared by
// every field. UE is the ULPs type of E.
type FloatEqAll[T, E, UE any] interface {
	EqAbsAll(other T, maxDiff E) bool
	EqRmaxAll(other T, maxDiff E) bool
	EqRminAll(other T, maxDiff E) bool
	EqR1stAll(other T, maxDiff E) bool
	EqR2ndAll(other T, maxDiff E) bool
	EqUlpsAll(other T, maxDiff UE) bool
}

// AssertFloatEq reports the differences and effective tolerances behind a
// [FloatEq] comparison, for diagnostics.
type AssertFloatEq[T, U, D any] interface {
	FloatEqDebugUlpsDiff[D]

	DebugAbsDiff(other T) T
	DebugUlpsDiff(other T) D
	DebugAbsEpsilon(other, maxDiff T) T
	DebugRmaxEpsilon(other, maxDiff T) T
	DebugRminEpsilon(other, maxDiff T) T
	DebugR1stEpsilon(other, maxDiff T) T
	DebugR2ndEpsilon(other, maxDiff T) T
	DebugUlpsEpsilon(other T, maxDiff U) U
}

// AssertFloatEqAll reports the effective tolerances behind a [FloatEqAll]
// comparison. U is the ULPs type of T, UE the ULPs type of E.
type AssertFloatEqAll[T, E, UE, U any] interface {
	DebugAbsAllEpsilon(other T, maxDiff E) T
	DebugRmaxAllEpsilon(other T, maxDiff E) T
	DebugRminAllEpsilon(other T, maxDiff E) T
	DebugR1stAllEpsilon(other T, maxDiff E) T
	DebugR2ndAllEpsilon(other T, maxDiff E) T
	DebugUlpsAllEpsilon(other T, maxDiff UE) U
}
