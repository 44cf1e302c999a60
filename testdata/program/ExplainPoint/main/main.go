//go:build !floateq

package main

import (
	"fmt"

	"github.com/bcliden/floateq"
)

func main() {
	a := Point{X: 1, Y: 4}
	if !a.EqRmin(Point{X: 1, Y: -2}, Point{X: 0.5, Y: 0.5}) {
		fmt.Println(floateq.Explain(floateq.Rmin, a, Point{X: 1, Y: -2}, Point{X: 0.5, Y: 0.5}))
	}
	fmt.Println(floateq.ExplainUlps(a, Point{X: 1, Y: 4}, PointUlps{X: 1, Y: 1}))
}
