package parse_test

import (
	"go/types"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"

	"github.com/bcliden/floateq/internal/codefmt"
	"github.com/bcliden/floateq/internal/floateqgen/parse"
	"github.com/bcliden/floateq/internal/pkgtest"
)

// load type-checks src as the package example.com/shapes.
func load(t *testing.T, src string) *packages.Package {
	t.Helper()
	return pkgtest.Load(t, "example.com/shapes", src)
}

func parseDerives(t *testing.T, src string) ([]*parse.Derive, error) {
	t.Helper()
	p, err := parse.New(load(t, src))
	require.NoError(t, err)
	return p.ParseDerives()
}

func TestNewNeedsTypes(t *testing.T) {
	_, err := parse.New(&packages.Package{Name: "shapes", PkgPath: "example.com/shapes"})
	assert.EqualError(t, err, "need pkg types")
}

func TestParseDerives(t *testing.T) {
	derives, err := parseDerives(t, `package shapes

//floateq:derive ulps_epsilon="PointUlps" debug_ulps_diff="PointDebugUlpsDiff" all_epsilon="float64"
type Point struct {
	X, Y float64
}

type Plain struct{ X float64 }
`)
	require.NoError(t, err)
	require.Len(t, derives, 1)

	d := derives[0]
	assert.Equal(t, "Point", d.Name)
	assert.Equal(t, "PointUlps", d.UlpsName())
	assert.Equal(t, "PointDebugUlpsDiff", d.DiffName())
	assert.Equal(t, []string{"ulps_epsilon", "debug_ulps_diff", "all_epsilon"}, d.Params.Names())
	assert.True(t, d.HasAll())
	assert.Equal(t, types.Typ[types.Float64], d.AllEpsilon)

	assert.Equal(t, parse.Named, d.Shape.Kind)
	require.Equal(t, 2, d.Shape.Len())
	assert.Equal(t, "X", d.Shape.Fields[0].Selector())
	assert.Equal(t, "Y", d.Shape.Fields[1].Selector())
	assert.True(t, d.Shape.Fields[0].Exported())
}

func TestParseDerivesLooseSyntax(t *testing.T) {
	derives, err := parseDerives(t, `package shapes

//floateq:derive ulps_epsilon = "PU", debug_ulps_diff= PD,
type Point struct{ X float64 }
`)
	require.NoError(t, err)
	require.Len(t, derives, 1)
	assert.Equal(t, "PU", derives[0].UlpsName())
	assert.Equal(t, "PD", derives[0].DiffName())
	assert.False(t, derives[0].HasAll())
}

func TestParseDerivesGroupedSpec(t *testing.T) {
	derives, err := parseDerives(t, `package shapes

type (
	//floateq:derive ulps_epsilon="AUlps" debug_ulps_diff="ADiff"
	A struct{ X float32 }

	B struct{ X float32 }

	//floateq:derive ulps_epsilon="CUlps" debug_ulps_diff="CDiff"
	C [2]float32
)
`)
	require.NoError(t, err)
	require.Len(t, derives, 2)
	assert.Equal(t, "A", derives[0].Name)
	assert.Equal(t, "C", derives[1].Name)
}

func TestParseDerivesNone(t *testing.T) {
	derives, err := parseDerives(t, `package shapes

// Point is a point.
//
//floateq:derived is not a directive
type Point struct{ X float64 }
`)
	require.NoError(t, err)
	assert.Empty(t, derives)
}

func TestMissingUlpsEpsilon(t *testing.T) {
	_, err := parseDerives(t, `package shapes

//floateq:derive debug_ulps_diff="PointDebugUlpsDiff"
type Point struct{ X float64 }
`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, parse.ErrMissingParam))
	assert.Equal(t, "shapes.go:4:6: missing epsilon ULPs type name required to derive FloatEq", err.Error())
	assert.Equal(t, []string{`try specifying ulps_epsilon="PointUlps" in //floateq:derive`}, errors.GetAllHints(err))

	var codeErr *codefmt.CodeError
	require.True(t, errors.As(err, &codeErr))
	require.NotNil(t, codeErr.Fix())
	assert.Equal(t, ` ulps_epsilon="PointUlps"`, codeErr.Fix().NewText)
}

func TestMissingDebugUlpsDiff(t *testing.T) {
	_, err := parseDerives(t, `package shapes

//floateq:derive ulps_epsilon="PointUlps"
type Point struct{ X float64 }
`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, parse.ErrMissingParam))
	assert.Equal(t, "shapes.go:4:6: missing debug ULPs diff type name required to derive AssertFloatEq", err.Error())
	assert.Equal(t, []string{`try specifying debug_ulps_diff="PointDebugUlpsDiff" in //floateq:derive`}, errors.GetAllHints(err))
}

func TestMissingBothReportsUlpsFirst(t *testing.T) {
	_, err := parseDerives(t, `package shapes

//floateq:derive
type vec struct{ x float64 }
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing epsilon ULPs type name")
	assert.NotContains(t, err.Error(), "debug ULPs diff")

	// The suggestion keeps the case of the type name.
	assert.Equal(t, []string{`try specifying ulps_epsilon="vecUlps" in //floateq:derive`}, errors.GetAllHints(err))
}

func TestUnknownParam(t *testing.T) {
	_, err := parseDerives(t, `package shapes

//floateq:derive ulps_epsilon="PointUlps" debug_ulps_diff="PointDebugUlpsDiff" all_eps="float64"
type Point struct{ X float64 }
`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, parse.ErrUnknownParam))
	assert.Equal(t, "shapes.go:4:6: unknown parameter all_eps in //floateq:derive of Point", err.Error())
	assert.Equal(t, []string{"did you mean all_epsilon?"}, errors.GetAllHints(err))
}

func TestDuplicateParam(t *testing.T) {
	_, err := parseDerives(t, `package shapes

//floateq:derive ulps_epsilon="PointUlps" debug_ulps_diff="PointDebugUlpsDiff" ulps_epsilon="Other"
type Point struct{ X float64 }
`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, parse.ErrDuplicateParam))
	assert.Equal(t, "shapes.go:4:6: duplicate parameter ulps_epsilon in //floateq:derive of Point", err.Error())
}

func TestMalformedParam(t *testing.T) {
	for name, directive := range map[string]string{
		"Unquoted":       `//floateq:derive ulps_epsilon="PointUlps debug_ulps_diff="PointDebugUlpsDiff"`,
		"NoValue":        `//floateq:derive ulps_epsilon debug_ulps_diff="PointDebugUlpsDiff"`,
		"NotIdent":       `//floateq:derive ulps_epsilon="Point Ulps" debug_ulps_diff="PointDebugUlpsDiff"`,
		"Empty":          `//floateq:derive ulps_epsilon="" debug_ulps_diff="PointDebugUlpsDiff"`,
		"AllUndefined":   `//floateq:derive ulps_epsilon="PointUlps" debug_ulps_diff="PointDebugUlpsDiff" all_epsilon="float"`,
		"AllNotType":     `//floateq:derive ulps_epsilon="PointUlps" debug_ulps_diff="PointDebugUlpsDiff" all_epsilon="1 + 2"`,
		"AllNotTypeExpr": `//floateq:derive ulps_epsilon="PointUlps" debug_ulps_diff="PointDebugUlpsDiff" all_epsilon="[3"`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := parseDerives(t, "package shapes\n\n"+directive+"\ntype Point struct{ X float64 }\n")
			require.Error(t, err)
			assert.True(t, errors.Is(err, parse.ErrMalformedParam), err.Error())
		})
	}
}

func TestAllEpsilonNamedType(t *testing.T) {
	derives, err := parseDerives(t, `package shapes

type Meters float32

//floateq:derive ulps_epsilon="PathUlps" debug_ulps_diff="PathDiff" all_epsilon="Meters"
type Path [4]Meters
`)
	require.NoError(t, err)
	require.Len(t, derives, 1)
	assert.Equal(t, "example.com/shapes.Meters", derives[0].AllEpsilon.String())
}

func TestMisplacedDirective(t *testing.T) {
	for name, tc := range map[string]struct {
		src  string
		want string
	}{
		"Func": {
			src:  "//floateq:derive ulps_epsilon=\"U\" debug_ulps_diff=\"D\"\nfunc f() {}\n",
			want: "shapes.go:4:6: //floateq:derive must annotate a type declaration, not func f",
		},
		"Var": {
			src:  "//floateq:derive ulps_epsilon=\"U\" debug_ulps_diff=\"D\"\nvar x = 1.0\n",
			want: "shapes.go:4:1: //floateq:derive must annotate a type declaration, not var",
		},
		"GroupedType": {
			src:  "//floateq:derive ulps_epsilon=\"U\" debug_ulps_diff=\"D\"\ntype (\n\tA struct{}\n\tB struct{}\n)\n",
			want: "shapes.go:4:1: //floateq:derive on a grouped type declaration must annotate one of its specs",
		},
		"Floating": {
			src:  "//floateq:derive ulps_epsilon=\"U\" debug_ulps_diff=\"D\"\n\nvar x = 1.0\n",
			want: "shapes.go:3:1: //floateq:derive must annotate a type declaration",
		},
	} {
		t.Run(name, func(t *testing.T) {
			derives, err := parseDerives(t, "package shapes\n\n"+tc.src)
			require.Error(t, err)
			assert.Empty(t, derives)
			assert.True(t, errors.Is(err, parse.ErrMisplacedDirective))
			assert.Equal(t, tc.want, err.Error())
		})
	}
}

func TestDuplicateDirective(t *testing.T) {
	_, err := parseDerives(t, `package shapes

//floateq:derive ulps_epsilon="PointUlps" debug_ulps_diff="PointDebugUlpsDiff"
//floateq:derive ulps_epsilon="PointUlps2" debug_ulps_diff="PointDebugUlpsDiff2"
type Point struct{ X float64 }
`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, parse.ErrMisplacedDirective))
	assert.Equal(t, "shapes.go:5:6: duplicate //floateq:derive on Point", err.Error())
}

func TestErrorsAcrossTypes(t *testing.T) {
	derives, err := parseDerives(t, `package shapes

//floateq:derive ulps_epsilon="AUlps"
type A struct{ X float64 }

//floateq:derive ulps_epsilon="BUlps" debug_ulps_diff="BDiff"
type B struct{ X float64 }

//floateq:derive ulps_epsilon="CUlps" debug_ulps_diff="CDiff"
type C int
`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, parse.ErrMissingParam))
	assert.True(t, errors.Is(err, parse.ErrUnsupportedShape))

	// Valid types are still parsed.
	require.Len(t, derives, 1)
	assert.Equal(t, "B", derives[0].Name)
}
