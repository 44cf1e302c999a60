package main

//floateq:derive ulps_epsilon="PointUlps" debug_ulps_diff="PointDebugUlpsDiff" all_epsilon="float64"
type Point struct {
	X, Y float64
}
