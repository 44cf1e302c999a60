//go:build !floateq

package main

import (
	"fmt"
	"math"
)

func main() {
	l := Line{From: Point{1, 1}, To: Point{2, 2}}
	m := Line{From: Point{1, 1.25}, To: Point{2, 2}}
	fmt.Println(l.EqAbsAll(m, 0.25), l.EqAbsAll(m, 0.125))
	fmt.Println(l.EqAbs(m, Line{From: Point{Y: 0.5}}))
	fmt.Printf("%+v\n", l.DebugAbsDiff(m))
	fmt.Printf("%+v\n", l.DebugUlpsDiff(m))

	p := Poly{
		Corners: [3]Point{{0, 0}, {1, 0}, {0, 1}},
		Weights: [2][2]float64{{1, 2}, {3, 4}},
	}
	q := p
	q.Weights[1][1] = 4.5
	fmt.Println(p.EqAbsAll(q, 0.5), p.EqAbsAll(q, 0.25))
	fmt.Println(p.EqRmax(q, Poly{Weights: [2][2]float64{{0, 0}, {0, 0.2}}}))
	fmt.Printf("%+v\n", p.DebugAbsDiff(q))

	q.Corners[2].X = math.Nextafter(0, 1)
	fmt.Printf("%+v\n", p.DebugUlpsDiff(q).Corners)
	fmt.Println(p.Corners[2].EqUlps(q.Corners[2], PointUlps{X: 1}))
}
