package partial

//floateq:derive debug_ulps_diff="BrokenDiff"
type Broken struct{ X float64 } // want `missing epsilon ULPs type name required to derive FloatEq`

// Sample is still checked although Broken does not parse.
//
//floateq:derive ulps_epsilon="SampleUlps" debug_ulps_diff="SampleDiff"
type Sample struct {
	Label string // want `cannot derive FloatEq for Sample: field Label has type string`
	Value float64
}
