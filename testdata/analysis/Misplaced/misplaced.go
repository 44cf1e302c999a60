package misplaced

//floateq:derive ulps_epsilon="FUlps" debug_ulps_diff="FDiff"
func F() {} // want `//floateq:derive must annotate a type declaration, not func F`

//floateq:derive ulps_epsilon="VUlps" debug_ulps_diff="VDiff"
var V float64 // want `//floateq:derive must annotate a type declaration, not var`

//floateq:derive ulps_epsilon="GUlps" debug_ulps_diff="GDiff"
type ( // want `//floateq:derive on a grouped type declaration must annotate one of its specs`
	G1 struct{ X float64 }
	G2 struct{ Y float64 }
)

const (
	//floateq:derive ulps_epsilon="CUlps" debug_ulps_diff="CDiff"
	C = 1.0 // want `//floateq:derive must annotate a type declaration, not const C`
)

type (
	// Grouped specs may be annotated one by one.
	//
	//floateq:derive ulps_epsilon="H1Ulps" debug_ulps_diff="H1Diff"
	H1 struct{ X float64 }
	H2 struct{ Y float64 }
)
