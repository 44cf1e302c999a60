package main

//floateq:derive ulps_epsilon="PUlps" debug_ulps_diff="PDiff" all_epsilon="float64"
type P struct {
	X float32
}

func main() {}
