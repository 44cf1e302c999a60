// Package expand writes the implementations of the floateq interfaces for
// annotated types.
package expand

import (
	"bytes"
	"go/types"

	"golang.org/x/tools/go/packages"

	"github.com/bcliden/floateq/internal/codefmt"
	"github.com/bcliden/floateq/internal/floateqgen/parse"
	"github.com/bcliden/floateq/internal/typeinfo"
)

// RuntimePath is the import path of the package generated code depends on.
const RuntimePath = "github.com/bcliden/floateq"

// Decl is the generated code implementing one interface for a type.
type Decl struct {
	// Trait is the name of the implemented interface.
	Trait string

	// Code is the Go source of the declarations.
	Code string

	// Assert is the interface assertion, like
	// "floateq.FloatEq[Point, PointUlps]". The type block is closed by
	// asserting each of them on a zero value.
	Assert string
}

// Expander expands annotated types of a package.
type Expander struct {
	pkg *packages.Package
	w   *codefmt.Writer
	ns  codefmt.NS
	res *Resolver
}

// Pkg implements [codefmt.Pkger].
func (e *Expander) Pkg() *packages.Package { return e.pkg }

// New creates a new [Expander] writing with w. derived holds every type
// annotated in this run, including those of pkg.
func New(w *codefmt.Writer, pkg *packages.Package, derived *typeinfo.Lookup[*parse.Derive]) *Expander {
	ns := codefmt.NewNS(pkg.Types.Scope())

	// Companion types are not in the scope until they are generated.
	for _, d := range derived.Range() {
		if d.Obj.Pkg().Path() == pkg.PkgPath {
			ns.Reserve(d.UlpsName())
			ns.Reserve(d.DiffName())
		}
	}

	return &Expander{
		pkg: pkg,
		w:   w,
		ns:  ns,
		res: NewResolver(derived),
	}
}

// Expand generates the companion types and the methods of an annotated type.
// Either every declaration is generated or none.
func (e *Expander) Expand(d *parse.Derive) ([]Decl, error) {
	g, err := e.prepare(d)
	if err != nil {
		return nil, err
	}

	decls := []Decl{
		g.decl(TraitUlpsEpsilon, g.writeUlpsCompanion),
		g.decl(TraitFloatEq, g.methodsWriter(floatEqOps())),
		g.decl(TraitDebugUlpsDiff, g.writeDiffCompanion),
		g.decl(TraitAssertFloatEq, g.methodsWriter(assertFloatEqOps())),
	}
	if d.HasAll() {
		decls = append(decls,
			g.decl(TraitFloatEqAll, g.methodsWriter(floatEqAllOps())),
			g.decl(TraitAssertFloatEqAll, g.methodsWriter(assertFloatEqAllOps())),
		)
	}
	return decls, nil
}

// gen expands a single type whose fields are all resolved.
type gen struct {
	*Expander
	d *parse.Derive

	// fields are the operands of d.Shape.Fields.
	fields []*Operand

	// all is the operand of the all_epsilon type.
	all *Operand

	// feq is the name the runtime package is imported as.
	feq string
}

// prepare resolves every field. All unsupported fields are reported at once.
func (e *Expander) prepare(d *parse.Derive) (*gen, error) {
	g := &gen{Expander: e, d: d, fields: make([]*Operand, d.Shape.Len())}

	var errs []error
	for i, f := range d.Shape.Fields {
		op, ok := e.res.Resolve(f.Type)
		if !ok {
			errs = append(errs, e.unsupportedField(d, f))
			if d.Shape.Kind == parse.Positional {
				// Elements share the type.
				break
			}
			continue
		}
		g.fields[i] = op
	}
	if len(errs) != 0 {
		return nil, parse.JoinErrors(errs)
	}

	if d.HasAll() {
		all, ok := e.res.Resolve(d.AllEpsilon)
		if !ok {
			err := e.errorf(d, "cannot derive FloatEqAll for %s: all_epsilon type %t has no ULPs type", d.Name, d.AllEpsilon)
			return nil, parse.Mark(err, parse.ErrMalformedParam)
		}
		g.all = all

		for i, f := range d.Shape.Fields {
			if err := e.checkAll(d, f, g.fields[i]); err != nil {
				errs = append(errs, err)
				if d.Shape.Kind == parse.Positional {
					break
				}
			}
		}
		if len(errs) != 0 {
			return nil, parse.JoinErrors(errs)
		}
	}

	g.feq = e.w.Import(RuntimePath, "floateq")
	return g, nil
}

// checkAll checks that the field can be compared with the shared epsilon.
func (e *Expander) checkAll(d *parse.Derive, f parse.Field, op *Operand) error {
	if op.AllEpsilon == nil {
		err := e.errorf(codefmt.Pos(f.Pos), "cannot derive FloatEqAll for %s: %s of type %t has no all_epsilon comparisons",
			d.Name, fieldDesc(d, f), f.Type)
		hint := e.sprintf("add all_epsilon=%q to the //floateq:derive of %t", e.sprintf("%t", d.AllEpsilon), f.Type)
		return parse.Mark(err, parse.ErrUnsupportedField, hint)
	}
	if !types.Identical(op.AllEpsilon, d.AllEpsilon) {
		err := e.errorf(codefmt.Pos(f.Pos), "cannot derive FloatEqAll for %s: %s has all_epsilon type %t, not %t",
			d.Name, fieldDesc(d, f), op.AllEpsilon, d.AllEpsilon)
		return parse.Mark(err, parse.ErrUnsupportedField)
	}
	return nil
}

func (e *Expander) unsupportedField(d *parse.Derive, f parse.Field) error {
	err := e.errorf(codefmt.Pos(f.Pos), "cannot derive FloatEq for %s: %s has type %t, which cannot be compared approximately",
		d.Name, fieldDesc(d, f), f.Type)

	var hints []string
	ti := typeinfo.TypeOf(types.Unalias(f.Type))
	switch {
	case ti.IsBasic() && ti.Basic.Info()&types.IsComplex != 0:
		hints = append(hints, "complex numbers are not supported; store the real and imaginary parts as float fields")
	case ti.IsNamed() && (ti.IsStruct() || ti.IsArray()):
		if pkg := ti.Pkg(); pkg != nil && pkg.Path() != e.pkg.PkgPath {
			hints = append(hints, e.sprintf("if %t is annotated with //floateq:derive, generate for its package %s in the same run", f.Type, pkg.Path()))
		} else {
			hints = append(hints, e.sprintf("annotate %t with //floateq:derive", f.Type))
		}
	}
	return parse.Mark(err, parse.ErrUnsupportedField, hints...)
}

// fieldDesc describes a field for messages.
func fieldDesc(d *parse.Derive, f parse.Field) string {
	if d.Shape.Kind == parse.Positional {
		return "element"
	}
	return "field " + f.Name
}

// decl writes a declaration into its own buffer. Imports are still collected
// into the writer of the file.
func (g *gen) decl(trait string, write func(w *codefmt.Writer)) Decl {
	var buf bytes.Buffer
	write(g.w.WithBuf(&buf).WithNS(g.ns.Clone()))
	return Decl{Trait: trait, Code: buf.String(), Assert: g.assert(trait)}
}

// assert returns the instantiated interface which the type implements by the
// trait.
func (g *gen) assert(trait string) string {
	self := g.typ(g.d.Type())
	ulps, diff := g.d.UlpsName(), g.d.DiffName()

	args := []string{self, ulps}
	switch trait {
	case TraitUlpsEpsilon:
		args = []string{ulps}
	case TraitDebugUlpsDiff:
		args = []string{diff}
	case TraitAssertFloatEq:
		args = []string{self, ulps, diff}
	case TraitFloatEqAll:
		args = []string{self, g.typ(g.d.AllEpsilon), g.ulpsType(g.all)}
	case TraitAssertFloatEqAll:
		args = []string{self, g.typ(g.d.AllEpsilon), g.ulpsType(g.all), ulps}
	}
	return g.feq + "." + trait + "[" + joinArgs(args) + "]"
}

func (g *gen) typ(t types.Type) string {
	return g.w.Sprintf("%t", t)
}

// ulpsType returns the ULPs epsilon type of an operand.
func (g *gen) ulpsType(o *Operand) string {
	switch o.Kind {
	case FloatOperand:
		return o.UlpsBasic()
	case MethodOperand:
		return g.typ(o.Ulps)
	}
	return arrayOf(o.Len, g.ulpsType(o.Elem))
}

// diffType returns the debug ULPs diff type of an operand.
func (g *gen) diffType(o *Operand) string {
	switch o.Kind {
	case FloatOperand:
		return g.feq + ".UlpsDiff[" + o.UlpsBasic() + "]"
	case MethodOperand:
		return g.typ(o.Diff)
	}
	return arrayOf(o.Len, g.diffType(o.Elem))
}

func (e *Expander) errorf(poser codefmt.Poser, format string, args ...any) error {
	return codefmt.Errorf(e, poser, format, args...)
}

func (e *Expander) sprintf(format string, args ...any) string {
	return codefmt.Sprintf(e, format, args...)
}
