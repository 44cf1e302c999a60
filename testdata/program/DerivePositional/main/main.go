//go:build !floateq

package main

import "fmt"

func main() {
	v := V{1}
	w := V{1.5}
	fmt.Println(v.EqAbs(w, V{0.5}), v.EqAbs(w, V{0.25}))
	fmt.Println(v.DebugAbsDiff(w), v.DebugUlpsDiff(w))

	p := Vec3{1, 2, 3}
	q := Vec3{1, 2, 3.5}
	fmt.Println(p.EqAbsAll(q, 0.5), p.EqRmaxAll(q, 0.1))
	fmt.Println(p.DebugR2ndAllEpsilon(q, 0.5))
	fmt.Println(p.DebugUlpsDiff(q))
}
