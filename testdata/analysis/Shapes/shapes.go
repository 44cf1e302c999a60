package shapes

type Point struct{ X, Y float64 }

//floateq:derive ulps_epsilon="CelsiusUlps" debug_ulps_diff="CelsiusDiff"
type Celsius float64 // want `cannot derive FloatEq for Celsius: underlying type float64 is not a struct or an array`

//floateq:derive ulps_epsilon="PairUlps" debug_ulps_diff="PairDiff"
type Pair[T any] struct{ A, B T } // want `cannot derive FloatEq for Pair: generic type is not supported`

//floateq:derive ulps_epsilon="AliasUlps" debug_ulps_diff="AliasDiff"
type Alias = Point // want `cannot derive FloatEq for Alias: type alias is not supported`

//floateq:derive ulps_epsilon="ListUlps" debug_ulps_diff="ListDiff"
type List []float64 // want `cannot derive FloatEq for List: underlying type \[\]float64 is not a struct or an array`
