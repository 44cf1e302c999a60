//go:build !floateq

package main

import (
	"fmt"
	"math"

	"github.com/bcliden/floateq"
)

func allClose[T floateq.FloatEq[T, U], U any](xs, ys []T, maxDiff T) bool {
	for i := range xs {
		if !xs[i].EqAbs(ys[i], maxDiff) {
			return false
		}
	}
	return true
}

func main() {
	a := Point{X: 1, Y: 2}
	b := Point{X: 1, Y: 2.5}
	c := Point{X: 1, Y: math.Nextafter(2, 3)}
	d := Point{X: -1, Y: 2}
	nan := Point{X: math.NaN(), Y: 2}
	inf := Point{X: math.Inf(1), Y: 2}

	fmt.Println("abs:", a.EqAbs(b, Point{X: 0.1, Y: 0.5}), a.EqAbs(b, Point{X: 0.1, Y: 0.4}))
	fmt.Println("abs all:", a.EqAbsAll(b, 0.5), a.EqAbsAll(b, 0.25))
	fmt.Println("rmin all:", a.EqRminAll(b, 0.2))
	fmt.Println("r1st:", a.EqR1st(b, Point{Y: 0.25}))
	fmt.Println("r2nd:", a.EqR2nd(b, Point{Y: 0.1}))
	fmt.Println("ulps:", a.EqUlps(c, PointUlps{Y: 1}), a.EqUlpsAll(c, 0))
	fmt.Println("nan:", nan.EqAbs(nan, Point{X: 1, Y: 1}), nan.EqUlpsAll(nan, 100))
	fmt.Println("inf:", inf.EqAbs(inf, Point{}), inf.EqUlpsAll(inf, 0))
	fmt.Printf("abs diff: %+v\n", a.DebugAbsDiff(b))
	fmt.Printf("ulps diff: %+v %+v\n", a.DebugUlpsDiff(c), a.DebugUlpsDiff(d))
	fmt.Printf("rmax epsilon: %+v\n", a.DebugRmaxEpsilon(b, Point{X: 0.5, Y: 0.5}))
	fmt.Printf("ulps epsilon: %+v\n", a.DebugUlpsAllEpsilon(c, 3))
	fmt.Println("generic:", allClose[Point, PointUlps]([]Point{a}, []Point{b}, Point{Y: 0.5}))
}
