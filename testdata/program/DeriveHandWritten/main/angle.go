package main

import (
	"math"

	"github.com/bcliden/floateq"
)

// Angle is a heading in degrees. Headings a whole turn apart are equal.
type Angle float64

func (Angle) FloatEqUlpsEpsilon() uint64                      { return 0 }
func (Angle) FloatEqDebugUlpsDiff() floateq.UlpsDiff[uint64] { return floateq.UlpsDiff[uint64]{} }

// near turns b by whole turns to be nearest to a.
func (a Angle) near(b Angle) Angle {
	return b + 360*Angle(math.Round(float64(a-b)/360))
}

func (a Angle) EqAbs(b, maxDiff Angle) bool  { return floateq.EqAbs(a, a.near(b), maxDiff) }
func (a Angle) EqRmax(b, maxDiff Angle) bool { return floateq.EqRmax(a, a.near(b), maxDiff) }
func (a Angle) EqRmin(b, maxDiff Angle) bool { return floateq.EqRmin(a, a.near(b), maxDiff) }
func (a Angle) EqR1st(b, maxDiff Angle) bool { return floateq.EqR1st(a, a.near(b), maxDiff) }
func (a Angle) EqR2nd(b, maxDiff Angle) bool { return floateq.EqR2nd(a, a.near(b), maxDiff) }

func (a Angle) EqUlps(b Angle, maxDiff uint64) bool {
	return floateq.EqUlps(a, a.near(b), maxDiff)
}

func (a Angle) DebugAbsDiff(b Angle) Angle { return floateq.DebugAbsDiff(a, a.near(b)) }

func (a Angle) DebugUlpsDiff(b Angle) floateq.UlpsDiff[uint64] {
	return floateq.DebugUlpsDiff[Angle, uint64](a, a.near(b))
}

func (a Angle) DebugAbsEpsilon(b, maxDiff Angle) Angle {
	return floateq.DebugAbsEpsilon(a, a.near(b), maxDiff)
}

func (a Angle) DebugRmaxEpsilon(b, maxDiff Angle) Angle {
	return floateq.DebugRmaxEpsilon(a, a.near(b), maxDiff)
}

func (a Angle) DebugRminEpsilon(b, maxDiff Angle) Angle {
	return floateq.DebugRminEpsilon(a, a.near(b), maxDiff)
}

func (a Angle) DebugR1stEpsilon(b, maxDiff Angle) Angle {
	return floateq.DebugR1stEpsilon(a, a.near(b), maxDiff)
}

func (a Angle) DebugR2ndEpsilon(b, maxDiff Angle) Angle {
	return floateq.DebugR2ndEpsilon(a, a.near(b), maxDiff)
}

func (a Angle) DebugUlpsEpsilon(b Angle, maxDiff uint64) uint64 {
	return floateq.DebugUlpsEpsilon(a, a.near(b), maxDiff)
}

var _ floateq.AssertFloatEq[Angle, uint64, floateq.UlpsDiff[uint64]] = Angle(0)

//floateq:derive ulps_epsilon="CompassUlps" debug_ulps_diff="CompassDiff"
type Compass struct {
	Heading Angle
	Speed   float64
}
