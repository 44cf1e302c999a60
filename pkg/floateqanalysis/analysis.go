// Package floateqanalysis reports misuse of floateq:derive directives as an
// analysis pass, so that editors and linters show them without running the
// generator.
package floateqanalysis

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"github.com/bcliden/floateq/internal/codefmt"
	"github.com/bcliden/floateq/internal/floateqgen"
	"github.com/bcliden/floateq/internal/floateqgen/parse"
	"github.com/bcliden/floateq/internal/typeinfo"
)

// Analyzer validates floateq:derive directives in the package.
var Analyzer = &analysis.Analyzer{
	Name: "floateq",
	Doc:  "linter for floateq:derive directives",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	pkg := &packages.Package{
		Name:      pass.Pkg.Name(),
		PkgPath:   pass.Pkg.Path(),
		Types:     pass.Pkg,
		Fset:      pass.Fset,
		Syntax:    pass.Files,
		TypesInfo: pass.TypesInfo,
	}

	g, err := floateqgen.New(pkg, nil)
	if err != nil {
		return nil, err
	}

	// Types of other packages are resolved by their methods, which exist
	// once their code is generated. The types which parsed are built even if
	// others failed.
	derived := typeinfo.NewLookup[*parse.Derive]()
	derives, parseErr := g.Parse()
	for _, d := range derives {
		derived.Put(typeinfo.TypeOf(d.Type()), d)
	}
	report(pass, parseErr)
	report(pass, g.Build(derived))

	return nil, nil
}

// report reports every positioned error joined in err.
func report(pass *analysis.Pass, err error) {
	for _, err := range parse.Flatten(err) {
		var codeErr *codefmt.CodeError
		if !errors.As(err, &codeErr) {
			continue
		}

		msg := codeErr.Unwrap().Error()
		for _, hint := range errors.GetAllHints(err) {
			msg += "\n\thelp: " + hint
		}
		diag := analysis.Diagnostic{
			Pos:     codeErr.Pos(),
			End:     codeErr.End(),
			Message: msg,
		}
		if fix := codeErr.Fix(); fix != nil {
			diag.SuggestedFixes = []analysis.SuggestedFix{{
				Message: fix.Message,
				TextEdits: []analysis.TextEdit{{
					Pos:     fix.Pos,
					End:     fix.End,
					NewText: []byte(fix.NewText),
				}},
			}}
		}
		pass.Report(diag)
	}
}
