package expand

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bcliden/floateq/internal/codefmt"
	"github.com/bcliden/floateq/internal/floateqgen/parse"
)

// method writes one method of the runtime interfaces.
type method struct {
	*gen
	w  *codefmt.Writer
	op op
}

// methodsWriter returns a writer of the methods, each with a fresh namespace
// for its parameters.
func (g *gen) methodsWriter(ops []op) func(w *codefmt.Writer) {
	return func(w *codefmt.Writer) {
		for i, op := range ops {
			if i > 0 {
				w.Printf("\n")
			}
			m := method{gen: g, w: w.WithNS(g.ns.Clone()), op: op}
			m.write()
		}
	}
}

func (m method) write() {
	self := m.typ(m.d.Type())
	recv := m.w.Name(receiverName(m.d.Name))
	other := m.w.Name("other")

	params := other + " " + self
	var maxDiff string
	if m.op.Epsilon != noEpsilon {
		maxDiff = m.w.Name("maxDiff")
		if eps := m.epsilonType(); eps == self {
			params = other + ", " + maxDiff + " " + self
		} else {
			params += ", " + maxDiff + " " + eps
		}
	}

	res := m.resultType()
	m.w.Printf("func (%s %s) %s(%s) %s {\n", recv, self, m.op.Method, params, res)
	defer m.w.Printf("}\n")

	fields := m.d.Shape.Fields
	if m.op.Result == boolResult {
		if len(fields) == 0 {
			m.w.Printf("return true\n")
			return
		}
		exprs := make([]string, len(fields))
		for i, f := range fields {
			x, y, md := m.access(f, recv, other, maxDiff)
			exprs[i] = m.expr(m.fields[i], x, y, md)
		}
		m.w.Printf("return %s\n", strings.Join(exprs, " && "))
		return
	}

	if len(fields) == 0 {
		m.w.Printf("return %s{}\n", res)
		return
	}
	m.w.Printf("return %s{\n", res)
	for i, f := range fields {
		x, y, md := m.access(f, recv, other, maxDiff)
		expr := m.expr(m.fields[i], x, y, md)
		if m.d.Shape.Kind == parse.Named {
			m.w.Printf("%s: %s,\n", f.Name, expr)
		} else {
			m.w.Printf("%s,\n", expr)
		}
	}
	m.w.Printf("}\n")
}

// access returns the expressions selecting the field from the receiver, the
// other value and maxDiff. A shared maxDiff is not selected into.
func (m method) access(f parse.Field, recv, other, maxDiff string) (x, y, md string) {
	sel := "." + f.Name
	if m.d.Shape.Kind == parse.Positional {
		sel = "[" + strconv.Itoa(f.Index) + "]"
	}

	x, y = recv+sel, other+sel
	switch {
	case maxDiff == "":
	case m.op.All:
		md = maxDiff
	default:
		md = maxDiff + sel
	}
	return x, y, md
}

// epsilonType returns the type of maxDiff of the annotated type.
func (m method) epsilonType() string {
	switch {
	case m.op.All && m.op.Epsilon == ulpsEpsilon:
		return m.ulpsType(m.all)
	case m.op.All:
		return m.typ(m.d.AllEpsilon)
	case m.op.Epsilon == ulpsEpsilon:
		return m.d.UlpsName()
	}
	return m.typ(m.d.Type())
}

// resultType returns the result type of the method of the annotated type.
func (m method) resultType() string {
	switch m.op.Result {
	case selfResult:
		return m.typ(m.d.Type())
	case ulpsResult:
		return m.d.UlpsName()
	case diffResult:
		return m.d.DiffName()
	}
	return "bool"
}

// operandEpsilonType is [method.epsilonType] for an operand.
func (m method) operandEpsilonType(o *Operand) string {
	switch {
	case m.op.All:
		return m.epsilonType()
	case m.op.Epsilon == ulpsEpsilon:
		return m.ulpsType(o)
	}
	return m.typ(o.Type)
}

// operandResultType is [method.resultType] for an operand.
func (m method) operandResultType(o *Operand) string {
	switch m.op.Result {
	case selfResult:
		return m.typ(o.Type)
	case ulpsResult:
		return m.ulpsType(o)
	case diffResult:
		return m.diffType(o)
	}
	return "bool"
}

// expr returns an expression applying the method to x and y of the operand.
// md is the epsilon expression, empty for methods without one.
func (m method) expr(o *Operand, x, y, md string) string {
	args := []string{x, y}
	if md != "" {
		args = append(args, md)
	}

	switch o.Kind {
	case FloatOperand:
		fn := m.feq + "." + m.op.Func
		if m.op.Explicit {
			fn += "[" + m.typ(o.Type) + ", " + o.UlpsBasic() + "]"
		}
		return fn + "(" + joinArgs(args) + ")"

	case MethodOperand:
		return x + "." + m.op.Method + "(" + joinArgs(args[1:]) + ")"
	}

	f := m.elemFunc(o.Elem)
	x, y = x+"[:]", y+"[:]"
	switch {
	case m.op.Result == boolResult && m.op.All:
		return m.feq + ".EqEachAll(" + joinArgs([]string{x, y, md, f}) + ")"
	case m.op.Result == boolResult:
		return m.feq + ".EqEach(" + joinArgs([]string{x, y, md + "[:]", f}) + ")"
	case m.op.Epsilon == noEpsilon:
		return m.operandResultType(o) + "(" + m.feq + ".DiffEach(" + joinArgs([]string{x, y, f}) + "))"
	case m.op.All:
		return m.operandResultType(o) + "(" + m.feq + ".EpsilonEachAll(" + joinArgs([]string{x, y, md, f}) + "))"
	}
	return m.operandResultType(o) + "(" + m.feq + ".EpsilonEach(" + joinArgs([]string{x, y, md + "[:]", f}) + "))"
}

// elemFunc returns a function value applying the method to array elements.
func (m method) elemFunc(o *Operand) string {
	switch o.Kind {
	case FloatOperand:
		targs := m.typ(o.Type)
		if m.op.Ulps {
			targs += ", " + o.UlpsBasic()
		}
		return m.feq + "." + m.op.Func + "[" + targs + "]"

	case MethodOperand:
		return m.w.Sprintf("%q", o.Type) + "." + m.op.Method
	}

	a, b := m.w.Name("a"), m.w.Name("b")
	params := a + ", " + b + " " + m.typ(o.Type)
	var md string
	if m.op.Epsilon != noEpsilon {
		md = m.w.Name("m")
		params += ", " + md + " " + m.operandEpsilonType(o)
	}
	return "func(" + params + ") " + m.operandResultType(o) + " { return " + m.expr(o, a, b, md) + " }"
}

// receiverName returns the lowered first letter of the type name.
func receiverName(typeName string) string {
	r, _ := utf8.DecodeRuneInString(typeName)
	if !unicode.IsLetter(r) {
		return "v"
	}
	return string(unicode.ToLower(r))
}

func joinArgs(args []string) string {
	return strings.Join(args, ", ")
}

func arrayOf(n int64, elem string) string {
	return "[" + strconv.FormatInt(n, 10) + "]" + elem
}
