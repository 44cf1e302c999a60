package expand

// result is the result type of a comparison method.
type result int

const (
	boolResult result = iota
	selfResult        // the compared type
	ulpsResult        // the ULPs epsilon type
	diffResult        // the debug ULPs diff type
)

// epsilon is the type of maxDiff.
type epsilon int

const (
	noEpsilon   epsilon = iota
	selfEpsilon         // the compared type, or the all_epsilon type
	ulpsEpsilon         // the ULPs type of either
)

// op is a method of the runtime interfaces. Derived types implement it by
// applying it to every field.
type op struct {
	// Method is the method name on derived types.
	Method string

	// Func is the runtime function comparing floats.
	Func string

	Epsilon epsilon
	Result  result

	// All means a single epsilon is shared by all fields.
	All bool

	// Ulps means Func takes the ULPs type as its second type parameter.
	Ulps bool

	// Explicit means the ULPs type parameter cannot be inferred from the
	// arguments.
	Explicit bool
}

var policies = []string{"Abs", "Rmax", "Rmin", "R1st", "R2nd"}

// Traits in emission order.
const (
	TraitUlpsEpsilon      = "FloatEqUlpsEpsilon"
	TraitFloatEq          = "FloatEq"
	TraitDebugUlpsDiff    = "FloatEqDebugUlpsDiff"
	TraitAssertFloatEq    = "AssertFloatEq"
	TraitFloatEqAll       = "FloatEqAll"
	TraitAssertFloatEqAll = "AssertFloatEqAll"
)

func floatEqOps() []op {
	var ops []op
	for _, p := range policies {
		ops = append(ops, op{Method: "Eq" + p, Func: "Eq" + p, Epsilon: selfEpsilon})
	}
	return append(ops, op{Method: "EqUlps", Func: "EqUlps", Epsilon: ulpsEpsilon, Ulps: true})
}

func floatEqAllOps() []op {
	var ops []op
	for _, p := range policies {
		ops = append(ops, op{Method: "Eq" + p + "All", Func: "Eq" + p, Epsilon: selfEpsilon, All: true})
	}
	return append(ops, op{Method: "EqUlpsAll", Func: "EqUlps", Epsilon: ulpsEpsilon, All: true, Ulps: true})
}

func assertFloatEqOps() []op {
	ops := []op{
		{Method: "DebugAbsDiff", Func: "DebugAbsDiff", Result: selfResult},
		{Method: "DebugUlpsDiff", Func: "DebugUlpsDiff", Result: diffResult, Ulps: true, Explicit: true},
	}
	for _, p := range policies {
		name := "Debug" + p + "Epsilon"
		ops = append(ops, op{Method: name, Func: name, Epsilon: selfEpsilon, Result: selfResult})
	}
	return append(ops, op{Method: "DebugUlpsEpsilon", Func: "DebugUlpsEpsilon", Epsilon: ulpsEpsilon, Result: ulpsResult, Ulps: true})
}

func assertFloatEqAllOps() []op {
	var ops []op
	for _, p := range policies {
		ops = append(ops, op{
			Method:  "Debug" + p + "AllEpsilon",
			Func:    "Debug" + p + "Epsilon",
			Epsilon: selfEpsilon,
			Result:  selfResult,
			All:     true,
		})
	}
	return append(ops, op{
		Method:  "DebugUlpsAllEpsilon",
		Func:    "DebugUlpsEpsilon",
		Epsilon: ulpsEpsilon,
		Result:  ulpsResult,
		All:     true,
		Ulps:    true,
	})
}
