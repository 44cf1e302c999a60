// Package golangcilintfloateq registers the floateq analyzer as a
// golangci-lint module plugin. To build a custom golangci-lint binary with
// it, run the following command at this package's directory:
//
//	golangci-lint custom
package golangcilintfloateq

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/bcliden/floateq/pkg/floateqanalysis"
)

func init() {
	register.Plugin("floateq", New)
}

func New(settings any) (register.LinterPlugin, error) {
	return FloateqLinter{}, nil
}

type FloateqLinter struct{}

func (FloateqLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{floateqanalysis.Analyzer}, nil
}

// GetLoadMode asks for type information, which the analyzer resolves field
// types with.
func (FloateqLinter) GetLoadMode() string {
	return register.LoadModeTypesInfo
}
