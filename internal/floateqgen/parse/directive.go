package parse

import (
	"go/ast"
	"strings"

	"github.com/bcliden/floateq/internal/codefmt"
)

const (
	directiveName = "floateq:derive"

	// Directive starts a comment line which annotates a type to derive
	// approximate comparisons for.
	Directive = "//" + directiveName
)

// IsDirective reports whether the comment text is a floateq:derive directive.
func IsDirective(text string) bool {
	rest, ok := strings.CutPrefix(text, Directive)
	if !ok {
		return false
	}
	return rest == "" || rest[0] == ' ' || rest[0] == '\t'
}

// findDirectives returns the directives in the comment group.
func findDirectives(doc *ast.CommentGroup) []*ast.Comment {
	if doc == nil {
		return nil
	}

	var dirs []*ast.Comment
	for _, c := range doc.List {
		if IsDirective(c.Text) {
			dirs = append(dirs, c)
		}
	}
	return dirs
}

// codefmtFix returns a fix which appends a parameter to the directive of d.
func codefmtFix(d *Derive, param string) codefmt.Fix {
	text := " " + param
	if strings.HasSuffix(strings.TrimSpace(d.Directive.Text), ",") {
		text = " " + param + ","
	}
	return codefmt.Fix{
		Message: "Add " + param,
		Pos:     d.Directive.End(),
		End:     d.Directive.End(),
		NewText: text,
	}
}
