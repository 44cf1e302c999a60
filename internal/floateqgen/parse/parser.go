package parse

import (
	"fmt"
	"go/ast"
	"go/scanner"
	"go/token"
	"go/types"

	"github.com/cockroachdb/errors"
	"golang.org/x/tools/go/packages"

	"github.com/bcliden/floateq/internal/codefmt"
)

// Parser parses an AST of the underlying package to collect types annotated
// with floateq:derive directives.
type Parser struct {
	pkg *packages.Package

	// consumed holds directives which annotate a type. The others are
	// misplaced.
	consumed map[*ast.Comment]bool
}

func (p *Parser) Pkg() *packages.Package { return p.pkg }

// New creates a new [Parser].
func New(pkg *packages.Package) (*Parser, error) {
	if pkg.Name == "" {
		return nil, fmt.Errorf("need pkg name")
	}
	if pkg.PkgPath == "" {
		return nil, fmt.Errorf("need pkg path")
	}
	if pkg.Types == nil {
		return nil, fmt.Errorf("need pkg types")
	}
	if pkg.Fset == nil {
		return nil, fmt.Errorf("need pkg fset")
	}
	if pkg.Syntax == nil {
		return nil, fmt.Errorf("need pkg syntax")
	}
	if pkg.TypesInfo == nil {
		return nil, fmt.Errorf("need pkg types info")
	}
	return &Parser{pkg: pkg, consumed: make(map[*ast.Comment]bool)}, nil
}

// Derive is a type annotated with a floateq:derive directive.
type Derive struct {
	Name      string
	Obj       *types.TypeName
	Spec      *ast.TypeSpec
	Directive *ast.Comment
	Params    *Params
	Shape     Shape

	// AllEpsilon is the type of all_epsilon. It is nil if all_epsilon is not
	// given.
	AllEpsilon types.Type
}

// Pos returns the position of the type name. Errors about the type are
// reported there.
func (d *Derive) Pos() token.Pos { return d.Spec.Name.Pos() }

// End returns the end position of the type name.
func (d *Derive) End() token.Pos { return d.Spec.Name.End() }

// Type returns the annotated type.
func (d *Derive) Type() types.Type { return d.Obj.Type() }

// UlpsName returns the name of the ULPs epsilon companion type.
func (d *Derive) UlpsName() string {
	name, _ := d.Params.Get(ParamUlpsEpsilon)
	return name
}

// DiffName returns the name of the debug ULPs diff companion type.
func (d *Derive) DiffName() string {
	name, _ := d.Params.Get(ParamDebugUlpsDiff)
	return name
}

// HasAll reports whether the comparisons sharing one epsilon are derived.
func (d *Derive) HasAll() bool { return d.AllEpsilon != nil }

// ParseDerives collects all annotated types in the package in source order.
// Types which fail to parse are not returned. Errors of all types and of
// misplaced directives are returned together.
func (p *Parser) ParseDerives() ([]*Derive, error) {
	var derives []*Derive
	var errs []error

	for _, file := range p.pkg.Syntax {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}

			for _, spec := range gen.Specs {
				spec := spec.(*ast.TypeSpec)
				dirs := p.directivesOf(gen, spec)
				if len(dirs) == 0 {
					continue
				}

				d, err := p.parseDerive(spec, dirs)
				if err != nil {
					errs = append(errs, err)
					continue
				}
				derives = append(derives, d)
			}
		}
	}

	errs = append(errs, p.validateDirectives()...)
	return derives, JoinErrors(errs)
}

// directivesOf finds the directives annotating the type spec. A directive on
// a type declaration belongs to its spec only when the declaration has a
// single spec.
func (p *Parser) directivesOf(gen *ast.GenDecl, spec *ast.TypeSpec) []*ast.Comment {
	dirs := findDirectives(spec.Doc)
	if len(gen.Specs) == 1 {
		dirs = append(findDirectives(gen.Doc), dirs...)
	}
	return dirs
}

func (p *Parser) parseDerive(spec *ast.TypeSpec, dirs []*ast.Comment) (*Derive, error) {
	for _, dir := range dirs {
		p.consumed[dir] = true
	}

	obj, ok := p.pkg.TypesInfo.Defs[spec.Name].(*types.TypeName)
	if !ok {
		return nil, p.errorf(spec.Name, "cannot resolve type %s", spec.Name.Name) // unreachable
	}

	d := &Derive{
		Name:      spec.Name.Name,
		Obj:       obj,
		Spec:      spec,
		Directive: dirs[0],
	}

	var errs []error
	if len(dirs) > 1 {
		err := p.errorf(d, "duplicate //%s on %s", directiveName, d.Name)
		errs = append(errs, Mark(err, ErrMisplacedDirective))
	}

	params, err := p.readParams(d)
	if err != nil {
		errs = append(errs, err)
	}
	if params != nil {
		d.Params = params
		if err := p.requireParams(d); err != nil {
			errs = append(errs, err)
		}
		if expr, ok := params.Get(ParamAllEpsilon); ok {
			// Invalid types were reported by readParams.
			d.AllEpsilon, _ = p.evalType(expr, d.Pos())
		}
	}

	shape, err := p.ExtractShape(d)
	if err != nil {
		errs = append(errs, err)
	}
	d.Shape = shape

	if len(errs) != 0 {
		return nil, JoinErrors(errs)
	}
	return d, nil
}

// evalType evaluates a type expression in the file scope at pos, so that
// imported packages may be referred to.
func (p *Parser) evalType(expr string, pos token.Pos) (types.Type, error) {
	if expr == "" {
		return nil, errors.New("empty type")
	}

	// Eval parses expr into the given file set. A private one keeps the
	// package's file set intact.
	tv, err := types.Eval(token.NewFileSet(), p.pkg.Types, pos, expr)
	if err != nil {
		var typesErr types.Error
		if errors.As(err, &typesErr) {
			return nil, errors.New(typesErr.Msg)
		}
		var scanErrs scanner.ErrorList
		if errors.As(err, &scanErrs) && len(scanErrs) != 0 {
			return nil, errors.New(scanErrs[0].Msg)
		}
		return nil, err
	}
	if !tv.IsType() {
		return nil, fmt.Errorf("%s is not a type", expr)
	}
	return tv.Type, nil
}

func (p *Parser) errorf(poser codefmt.Poser, format string, args ...any) error {
	return codefmt.Errorf(p, poser, format, args...)
}

func (p *Parser) fixErrorf(poser codefmt.Poser, fix codefmt.Fix, format string, args ...any) error {
	return codefmt.FixErrorf(p, poser, fix, format, args...)
}
