package main

//floateq:derive ulps_epsilon="AUlps" debug_ulps_diff="ADiff" all_eps="float64"
type A struct{ X float64 }
