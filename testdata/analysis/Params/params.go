package params

//floateq:derive debug_ulps_diff="NoUlpsDiff"
type NoUlps struct{ X float64 } // want `missing epsilon ULPs type name required to derive FloatEq\s+help: try specifying ulps_epsilon="NoUlpsUlps"`

//floateq:derive ulps_epsilon="NoDiffUlps"
type NoDiff struct{ X float64 } // want `missing debug ULPs diff type name required to derive AssertFloatEq`

//floateq:derive ulps_epsilon="TypoUlps" debug_ulps_diff="TypoDiff" all_epsilom="float64"
type Typo struct{ X float64 } // want `unknown parameter all_epsilom in //floateq:derive of Typo\s+help: did you mean all_epsilon\?`

//floateq:derive ulps_epsilon="TwiceUlps" ulps_epsilon="TwiceUlps2" debug_ulps_diff="TwiceDiff"
type Twice struct{ X float64 } // want `duplicate parameter ulps_epsilon in //floateq:derive of Twice`

//floateq:derive ulps_epsilon="Bad Ulps" debug_ulps_diff="BadDiff"
type Bad struct{ X float64 } // want `ulps_epsilon of Bad must be a type name, got "Bad Ulps"`

//floateq:derive ulps_epsilon="AllUlps" debug_ulps_diff="AllDiff" all_epsilon="float6"
type All struct{ X float64 } // want `all_epsilon of All must be a type`

//floateq:derive ulps_epsilon="TwoUlps" debug_ulps_diff="TwoDiff"
//floateq:derive all_epsilon="float64"
type Two struct{ X float64 } // want `duplicate //floateq:derive on Two`
