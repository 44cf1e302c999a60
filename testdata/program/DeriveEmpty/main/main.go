//go:build !floateq

package main

import "fmt"

func main() {
	var n Nothing
	fmt.Println(n.EqAbs(n, n), n.EqRmax(n, n), n.EqUlps(n, NothingUlps{}), n.EqAbsAll(n, 0), n.EqUlpsAll(n, 0))
	fmt.Printf("%+v %+v\n", n.DebugAbsDiff(n), n.DebugUlpsDiff(n))

	var z Zero
	fmt.Println(z.EqR1st(z, z), z.DebugUlpsDiff(z))

	var b Blank
	fmt.Println(b.EqR2nd(b, b), b.DebugUlpsEpsilon(b, BlankUlps{}))
}
