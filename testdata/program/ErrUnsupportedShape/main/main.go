package main

//floateq:derive ulps_epsilon="CelsiusUlps" debug_ulps_diff="CelsiusDiff"
type Celsius float64

func main() {}
