package fields

//floateq:derive ulps_epsilon="SampleUlps" debug_ulps_diff="SampleDiff"
type Sample struct {
	Label string     // want `cannot derive FloatEq for Sample: field Label has type string, which cannot be compared approximately`
	Z     complex128 // want `field Z has type complex128, which cannot be compared approximately\s+help: complex numbers are not supported`
	Value float64
}

type Plain struct{ X float64 }

//floateq:derive ulps_epsilon="HolderUlps" debug_ulps_diff="HolderDiff"
type Holder struct {
	P Plain // want `field P has type Plain, which cannot be compared approximately\s+help: annotate Plain with //floateq:derive`
}

//floateq:derive ulps_epsilon="RowUlps" debug_ulps_diff="RowDiff"
type Row [4]int // want `cannot derive FloatEq for Row: element has type int`

//floateq:derive ulps_epsilon="MixedUlps" debug_ulps_diff="MixedDiff" all_epsilon="float64"
type Mixed struct {
	A float64
	B float32 // want `cannot derive FloatEqAll for Mixed: field B has all_epsilon type float32, not float64`
}
