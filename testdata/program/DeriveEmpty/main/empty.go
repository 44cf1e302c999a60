package main

//floateq:derive ulps_epsilon="NothingUlps" debug_ulps_diff="NothingDiff" all_epsilon="float32"
type Nothing struct{}

//floateq:derive ulps_epsilon="ZeroUlps" debug_ulps_diff="ZeroDiff"
type Zero [0]float64

// Blank has no comparable field.
//
//floateq:derive ulps_epsilon="BlankUlps" debug_ulps_diff="BlankDiff"
type Blank struct {
	_ float64
}
