package codefmt

import (
	"fmt"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/packages"
)

type (
	Pkger interface{ Pkg() *packages.Package }
	Poser interface{ Pos() token.Pos }
	Ender interface{ End() token.Pos }
)

// wrapPrintfArgs wraps the types in args so that the type verbs render them
// as written in the package being generated for.
func (f Formatter) wrapPrintfArgs(args []any) []any {
	for i, arg := range args {
		if typ, ok := arg.(types.Type); ok {
			args[i] = typeArg{typ, f}
		}
	}
	return args
}

type typeArg struct {
	typ types.Type
	fmt Formatter
}

// Format implements fmt.Formatter interface.
//
// Supported verbs:
//
//	%t: the type, qualified by package name outside the current package
//	%q: the type as the operand of a method expression, in parentheses if
//	    it is a pointer
//
// For other verbs, it falls back to the default formatting of fmt package.
func (a typeArg) Format(s fmt.State, verb rune) {
	switch verb {
	case 't':
		_, _ = s.Write([]byte(a.fmt.Type(a.typ)))
	case 'q':
		_, _ = s.Write([]byte(a.fmt.TypeParen(a.typ)))
	default:
		fmt.Fprintf(s, fmt.FormatString(s, verb), a.typ)
	}
}

// Sprintf is [fmt.Sprintf] with the type verbs.
func (f Formatter) Sprintf(format string, args ...any) string {
	args = f.wrapPrintfArgs(args)
	return fmt.Sprintf(format, args...)
}
