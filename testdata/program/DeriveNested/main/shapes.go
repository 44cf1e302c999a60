package main

//floateq:derive ulps_epsilon="PointUlps" debug_ulps_diff="PointDiff" all_epsilon="float64"
type Point struct{ X, Y float64 }

//floateq:derive ulps_epsilon="LineUlps" debug_ulps_diff="LineDiff" all_epsilon="float64"
type Line struct {
	From, To Point
}

//floateq:derive ulps_epsilon="PolyUlps" debug_ulps_diff="PolyDiff" all_epsilon="float64"
type Poly struct {
	Corners [3]Point
	Weights [2][2]float64
}
