package main

//floateq:derive ulps_epsilon="LineUlps" all_epsilon="float64"
type Line struct{ From, To float64 }

func main() {}
