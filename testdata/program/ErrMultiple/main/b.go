package main

//floateq:derive ulps_epsilon="BUlps" debug_ulps_diff="BDiff"
func main() {}
