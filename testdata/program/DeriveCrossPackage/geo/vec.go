package geo

//floateq:derive ulps_epsilon="VecUlps" debug_ulps_diff="VecDiff" all_epsilon="float64"
type Vec struct{ X, Y float64 }
