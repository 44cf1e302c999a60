package valid

//floateq:derive ulps_epsilon="PointUlps" debug_ulps_diff="PointDebugUlpsDiff" all_epsilon="float64"
type Point struct{ X, Y float64 }

// Path is a polyline.
//
//floateq:derive ulps_epsilon="PathUlps" debug_ulps_diff="PathDiff" all_epsilon="float64"
type Path struct {
	Points [4]Point
	Length float64
	_      string
	hidden float64
}

//floateq:derive ulps_epsilon="GridUlps", debug_ulps_diff = "GridDiff"
type Grid [2][3]float32

//floateq:derive ulps_epsilon="EmptyUlps" debug_ulps_diff="EmptyDiff"
type Empty struct{}
