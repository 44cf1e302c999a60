package main

//floateq:derive ulps_epsilon="VUlps" debug_ulps_diff="VDiff"
type V [1]float32

//floateq:derive ulps_epsilon="Vec3Ulps" debug_ulps_diff="Vec3Diff" all_epsilon="float64"
type Vec3 [3]float64
