//go:build !floateq

package main

import (
	"fmt"

	"example.com/DeriveCrossPackage/geo"
)

func main() {
	r := Ray{Origin: geo.Vec{X: 0, Y: 0}, Dir: geo.Vec{X: 1, Y: 0}}
	s := Ray{Origin: geo.Vec{X: 0, Y: 0}, Dir: geo.Vec{X: 1, Y: 0.5}}
	fmt.Println(r.EqAbsAll(s, 0.5), r.EqAbsAll(s, 0.25))
	fmt.Printf("%+v\n", r.DebugAbsDiff(s))
	fmt.Printf("%T\n", r.FloatEqUlpsEpsilon().Dir)
}
