package main

//floateq:derive ulps_epsilon="PointUlps" debug_ulps_diff="PointDebugUlpsDiff"
type Point struct{ X, Y float64 }
