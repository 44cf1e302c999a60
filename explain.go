package floateq

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// Policy names a comparison policy for [Explain].
type Policy string

const (
	Abs  Policy = "abs"
	Rmax Policy = "rmax"
	Rmin Policy = "rmin"
	R1st Policy = "r1st"
	R2nd Policy = "r2nd"
)

// Explain describes the comparison of a and b under policy: both operands,
// their absolute and ULPs differences, and the tolerance the policy applied.
// It is meant for test failure messages:
//
//	if !got.EqRmax(want, tol) {
//		t.Errorf("position mismatch:\n%s", floateq.Explain(floateq.Rmax, got, want, tol))
//	}
//
// Explain panics if policy is unknown.
func Explain[T, U, D any](policy Policy, a AssertFloatEq[T, U, D], b, maxDiff T) string {
	var eps T
	switch policy {
	case Abs:
		eps = a.DebugAbsEpsilon(b, maxDiff)
	case Rmax:
		eps = a.DebugRmaxEpsilon(b, maxDiff)
	case Rmin:
		eps = a.DebugRminEpsilon(b, maxDiff)
	case R1st:
		eps = a.DebugR1stEpsilon(b, maxDiff)
	case R2nd:
		eps = a.DebugR2ndEpsilon(b, maxDiff)
	default:
		panic(fmt.Sprintf("floateq: unknown policy %q", policy))
	}
	return explain(string(policy), a, b, a.DebugAbsDiff(b), a.DebugUlpsDiff(b), eps)
}

// ExplainUlps is [Explain] for the ULPs policy.
func ExplainUlps[T, U, D any](a AssertFloatEq[T, U, D], b T, maxDiff U) string {
	return explain("ulps", a, b, a.DebugAbsDiff(b), a.DebugUlpsDiff(b), a.DebugUlpsEpsilon(b, maxDiff))
}

func explain(policy string, left, right, absDiff, ulpsDiff, eps any) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 1, ' ', 0)
	fmt.Fprintf(w, "left:\t%+v\n", left)
	fmt.Fprintf(w, "right:\t%+v\n", right)
	fmt.Fprintf(w, "abs_diff:\t%+v\n", absDiff)
	fmt.Fprintf(w, "ulps_diff:\t%+v\n", ulpsDiff)
	fmt.Fprintf(w, "[%s] epsilon:\t%+v\n", policy, eps)
	_ = w.Flush()
	return strings.TrimSuffix(b.String(), "\n")
}
