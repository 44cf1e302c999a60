package parse

import (
	"go/ast"
	"go/token"

	"github.com/bcliden/floateq/internal/codefmt"
)

// validateDirectives reports directives which do not annotate a type. It must
// be called after every type is parsed, because it relies on the directives
// the types consumed.
func (p *Parser) validateDirectives() []error {
	var errs []error
	for _, file := range p.pkg.Syntax {
		for _, group := range file.Comments {
			for _, c := range group.List {
				if !IsDirective(c.Text) || p.consumed[c] {
					continue
				}
				errs = append(errs, p.misplaced(file, group, c))
			}
		}
	}
	return errs
}

// misplaced builds an error for a directive which does not annotate a type. It
// is reported at the declaration the directive documents, so that the error
// lands on a line of code rather than on the comment.
func (p *Parser) misplaced(file *ast.File, group *ast.CommentGroup, c *ast.Comment) error {
	for _, decl := range file.Decls {
		switch decl := decl.(type) {
		case *ast.FuncDecl:
			if decl.Doc == group {
				err := p.errorf(decl.Name, "//%s must annotate a type declaration, not func %s", directiveName, decl.Name.Name)
				return Mark(err, ErrMisplacedDirective)
			}

		case *ast.GenDecl:
			if decl.Doc == group {
				if decl.Tok == token.TYPE {
					err := p.errorf(codefmt.Pos(decl.TokPos), "//%s on a grouped type declaration must annotate one of its specs", directiveName)
					return Mark(err, ErrMisplacedDirective)
				}
				err := p.errorf(codefmt.Pos(decl.TokPos), "//%s must annotate a type declaration, not %s", directiveName, decl.Tok)
				return Mark(err, ErrMisplacedDirective)
			}

			for _, spec := range decl.Specs {
				if spec, ok := spec.(*ast.ValueSpec); ok && spec.Doc == group {
					err := p.errorf(spec.Names[0], "//%s must annotate a type declaration, not %s %s", directiveName, decl.Tok, spec.Names[0].Name)
					return Mark(err, ErrMisplacedDirective)
				}
			}
		}
	}

	err := p.errorf(c, "//%s must annotate a type declaration", directiveName)
	return Mark(err, ErrMisplacedDirective)
}
