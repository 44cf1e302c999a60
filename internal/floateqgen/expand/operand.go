package expand

import (
	"go/token"
	"go/types"

	"github.com/bcliden/floateq/internal/floateqgen/parse"
	"github.com/bcliden/floateq/internal/typeinfo"
)

// OperandKind tells how values of a field type are compared.
type OperandKind int

const (
	// FloatOperand is compared by the runtime functions of floateq.
	FloatOperand OperandKind = iota

	// MethodOperand implements the comparisons as methods, either derived in
	// this run or written by hand.
	MethodOperand

	// ArrayOperand is compared element by element.
	ArrayOperand
)

// Operand is a field type resolved for comparison.
type Operand struct {
	Kind OperandKind
	Type types.Type

	// Bits is 32 or 64 for a float operand.
	Bits int

	// Ulps and Diff are the companion types of a method operand.
	Ulps, Diff types.Type

	// AllEpsilon is the type of the epsilon shared by all fields. It is nil
	// if the operand cannot be compared with a shared epsilon.
	AllEpsilon types.Type

	// Elem and Len describe an array operand.
	Elem *Operand
	Len  int64
}

// Resolver resolves field types to operands.
type Resolver struct {
	// derived holds the types annotated in this run. Their methods do not
	// exist yet, so their companion types are taken from the directives.
	derived *typeinfo.Lookup[*parse.Derive]
}

// NewResolver creates a new [Resolver]. derived may be nil.
func NewResolver(derived *typeinfo.Lookup[*parse.Derive]) *Resolver {
	return &Resolver{derived: derived}
}

// Resolve finds how to compare values of the type. It tries the types derived
// in this run, then hand-written implementations, then floats and arrays of
// anything resolvable.
func (r *Resolver) Resolve(t types.Type) (*Operand, bool) {
	ti := typeinfo.TypeOf(types.Unalias(t))

	if d, ok := r.derived.Get(ti); ok {
		pkg := d.Obj.Pkg()
		return &Operand{
			Kind:       MethodOperand,
			Type:       t,
			Ulps:       companion(pkg, d.UlpsName()),
			Diff:       companion(pkg, d.DiffName()),
			AllEpsilon: d.AllEpsilon,
		}, true
	}

	if ulps, ok := ti.MethodResult("FloatEqUlpsEpsilon"); ok {
		if diff, ok := ti.MethodResult("FloatEqDebugUlpsDiff"); ok {
			op := &Operand{Kind: MethodOperand, Type: t, Ulps: ulps.T, Diff: diff.T}
			if fn, ok := ti.Method("EqAbsAll"); ok && fn.Signature().Params().Len() == 2 {
				op.AllEpsilon = fn.Signature().Params().At(1).Type()
			}
			return op, true
		}
	}

	if bits := ti.FloatBits(); bits != 0 {
		return &Operand{Kind: FloatOperand, Type: t, Bits: bits, AllEpsilon: t}, true
	}

	if ti.IsArray() {
		elem, ok := r.Resolve(ti.Array.Elem())
		if !ok {
			return nil, false
		}
		return &Operand{
			Kind:       ArrayOperand,
			Type:       t,
			Elem:       elem,
			Len:        ti.Len,
			AllEpsilon: elem.AllEpsilon,
		}, true
	}

	return nil, false
}

// UlpsBasic returns the unsigned integer type as wide as a float operand.
func (o *Operand) UlpsBasic() string {
	if o.Bits == 32 {
		return "uint32"
	}
	return "uint64"
}

// companion creates a placeholder for a companion type which is not
// generated yet. It is only good for printing.
func companion(pkg *types.Package, name string) types.Type {
	obj := types.NewTypeName(token.NoPos, pkg, name, nil)
	return types.NewNamed(obj, types.NewStruct(nil, nil), nil)
}
