package main

//floateq:derive debug_ulps_diff="PointDebugUlpsDiff"
type Point struct{ X, Y float64 }

func main() {}
