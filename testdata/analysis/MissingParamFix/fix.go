package fix

//floateq:derive debug_ulps_diff="PointDebugUlpsDiff"
type Point struct{ X, Y float64 } // want `missing epsilon ULPs type name required to derive FloatEq`
