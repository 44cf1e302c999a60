//go:build !floateq

package main

import "fmt"

func main() {
	c := Compass{Heading: 359, Speed: 10}
	d := Compass{Heading: 1, Speed: 10.5}
	fmt.Println(c.EqAbs(d, Compass{Heading: 2, Speed: 0.5}), c.EqAbs(d, Compass{Heading: 1, Speed: 0.5}))
	fmt.Printf("%+v\n", c.DebugAbsDiff(d))
	fmt.Printf("%T %T\n", c.FloatEqUlpsEpsilon().Heading, c.FloatEqDebugUlpsDiff().Heading)
}
