package main

import "example.com/DeriveCrossPackage/geo"

//floateq:derive ulps_epsilon="RayUlps" debug_ulps_diff="RayDiff" all_epsilon="float64"
type Ray struct {
	Origin geo.Vec
	Dir    geo.Vec
}
