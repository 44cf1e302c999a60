// Package floateqgen generates the implementations of the floateq interfaces
// for types annotated with floateq:derive.
package floateqgen

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"slices"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"

	"github.com/bcliden/floateq/internal/codefmt"
	"github.com/bcliden/floateq/internal/floateqgen/expand"
	"github.com/bcliden/floateq/internal/floateqgen/parse"
	"github.com/bcliden/floateq/internal/typeinfo"
)

// Generator generates code for one package. Call [Generator.Parse] on the
// generators of every package in a run, then [Generator.Build] with all the
// parsed types, then [Generator.Generate]. All potential errors are returned
// by Parse and Build. Once Build succeeds, Generate never fails.
type Generator struct {
	p   *parse.Parser
	log *zap.Logger
	buf *bytes.Buffer
	w   *codefmt.Writer

	derives []*parse.Derive
	decls   map[*parse.Derive][]expand.Decl
}

// New creates a new [Generator] for the given package. The package must have
// its Syntax, Types and TypesInfo, and it must not have any errors. log may be
// nil.
func New(pkg *packages.Package, log *zap.Logger) (*Generator, error) {
	parser, err := parse.New(pkg)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	var buf bytes.Buffer
	return &Generator{
		p:     parser,
		log:   log.With(zap.String("pkg", pkg.PkgPath)),
		buf:   &buf,
		w:     codefmt.NewWriter(&buf, pkg),
		decls: make(map[*parse.Derive][]expand.Decl),
	}, nil
}

// Pkg implements [codefmt.Pkger].
func (g *Generator) Pkg() *packages.Package { return g.p.Pkg() }

// Parse collects the annotated types of the package. The types which parsed
// are returned even if others failed.
func (g *Generator) Parse() ([]*parse.Derive, error) {
	derives, err := g.p.ParseDerives()
	g.derives = derives
	return derives, err
}

// Build expands every annotated type of the package. derived holds the types
// annotated in the whole run. It must be called after [Generator.Parse].
func (g *Generator) Build(derived *typeinfo.Lookup[*parse.Derive]) error {
	if len(g.derives) == 0 {
		return nil
	}

	e := expand.New(g.w, g.Pkg(), derived)

	var errs []error
	for _, d := range g.derives {
		decls, err := e.Expand(d)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		g.decls[d] = decls
		g.log.Debug("derived", zap.String("type", d.Name), zap.Int("traits", len(decls)))
	}
	return parse.JoinErrors(errs)
}

// Generate generates code for the package. It returns nil if the package has
// no annotated types. It must be called after [Generator.Build] succeeds.
func (g *Generator) Generate() []byte {
	if len(g.decls) == 0 {
		return nil
	}
	g.writeDeriveCode()
	return g.frameCode()
}

// writeDeriveCode writes the declarations of every type in source order, each
// closed by its interface assertions.
func (g *Generator) writeDeriveCode() {
	derives := slices.Clone(g.derives)
	slices.SortFunc(derives, func(a, b *parse.Derive) int {
		return int(a.Pos() - b.Pos())
	})

	for _, d := range derives {
		decls := g.decls[d]
		if len(decls) == 0 {
			continue
		}

		fmt.Fprintf(g.buf, "// floateq: %s\n\n", d.Name)
		for _, decl := range decls {
			io.WriteString(g.buf, decl.Code)
			io.WriteString(g.buf, "\n")
		}

		fmt.Fprintf(g.buf, "var (\n")
		for _, decl := range decls {
			fmt.Fprintf(g.buf, "_ %s = %s{}\n", decl.Assert, d.Name)
		}
		fmt.Fprintf(g.buf, ")\n\n")
	}
}

func (g *Generator) frameCode() []byte {
	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "//go:build !floateq\n\n")
	fmt.Fprintf(&buf, "// Code generated by github.com/bcliden/floateq%s. DO NOT EDIT.\n\n", versionSuffix)
	fmt.Fprintf(&buf, "package %s\n\n", g.Pkg().Name)

	if imports := g.w.Imports(); len(imports) != 0 {
		names := make([]string, 0, len(imports))
		for name := range imports {
			names = append(names, name)
		}
		slices.SortFunc(names, func(a, b string) int {
			return strings.Compare(imports[a].Path(), imports[b].Path())
		})

		fmt.Fprintf(&buf, "import (\n")
		for _, name := range names {
			imp := imports[name]
			if imp.HasAlias {
				fmt.Fprintf(&buf, "%s %q\n", name, imp.Path())
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path())
			}
		}
		fmt.Fprintf(&buf, ")\n\n")
	}

	_, _ = io.Copy(&buf, g.buf)
	code := buf.Bytes()

	// Apply gofmt if succeeded
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	} else {
		g.log.Warn("generated code is not formatted", zap.Error(err))
	}
	return code
}
