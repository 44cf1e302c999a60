// Package pkgtest type-checks Go sources in memory for tests.
package pkgtest

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"path"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"
)

type importerFunc func(path string) (*types.Package, error)

func (f importerFunc) Import(path string) (*types.Package, error) { return f(path) }

// Load type-checks src as the package at pkgPath. Its file is named after the
// last element of pkgPath, like "shapes.go" for "example.com/shapes". deps
// are the packages src may import.
func Load(t testing.TB, pkgPath, src string, deps ...*packages.Package) *packages.Package {
	t.Helper()

	fset := token.NewFileSet()
	filename := path.Base(pkgPath) + ".go"
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	require.NoError(t, err)

	conf := types.Config{
		Importer: importerFunc(func(p string) (*types.Package, error) {
			for _, dep := range deps {
				if dep.PkgPath == p {
					return dep.Types, nil
				}
			}
			return nil, fmt.Errorf("package %s not found", p)
		}),
	}
	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Implicits:  make(map[ast.Node]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Scopes:     make(map[ast.Node]*types.Scope),
	}
	pkg, err := conf.Check(pkgPath, fset, []*ast.File{file}, info)
	require.NoError(t, err)

	return &packages.Package{
		ID:        pkgPath,
		Name:      pkg.Name(),
		PkgPath:   pkg.Path(),
		Fset:      fset,
		Syntax:    []*ast.File{file},
		Types:     pkg,
		TypesInfo: info,
		GoFiles:   []string{filename},
	}
}
