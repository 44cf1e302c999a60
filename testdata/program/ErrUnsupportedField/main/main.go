package main

//floateq:derive ulps_epsilon="SampleUlps" debug_ulps_diff="SampleDiff"
type Sample struct {
	Label string
	Value float64
}

func main() {}
