package parse

import (
	"fmt"
	"go/token"
	"slices"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/kballard/go-shellquote"

	"github.com/bcliden/floateq/internal/lcs"
)

// Parameter names of a floateq:derive directive.
const (
	ParamUlpsEpsilon   = "ulps_epsilon"
	ParamDebugUlpsDiff = "debug_ulps_diff"
	ParamAllEpsilon    = "all_epsilon"
)

var knownParams = []string{ParamUlpsEpsilon, ParamDebugUlpsDiff, ParamAllEpsilon}

// Params is the ordered set of parameters given to a directive.
type Params struct {
	m *linkedhashmap.Map
}

// NewParams creates an empty [Params].
func NewParams() *Params {
	return &Params{linkedhashmap.New()}
}

// Get returns the value of the parameter.
func (ps *Params) Get(name string) (string, bool) {
	v, ok := ps.m.Get(name)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Has reports whether the parameter is given.
func (ps *Params) Has(name string) bool {
	_, ok := ps.m.Get(name)
	return ok
}

// Names returns the parameter names in the order they were given.
func (ps *Params) Names() []string {
	names := make([]string, 0, ps.m.Size())
	for _, k := range ps.m.Keys() {
		names = append(names, k.(string))
	}
	return names
}

// Len returns the number of parameters.
func (ps *Params) Len() int { return ps.m.Size() }

// String renders the parameters as they would be written in a directive.
func (ps *Params) String() string {
	var b strings.Builder
	it := ps.m.Iterator()
	for it.Next() {
		if b.Len() != 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%q", it.Key(), it.Value())
	}
	return b.String()
}

// set adds a parameter. It returns false without any change if the name is
// already given.
func (ps *Params) set(name, value string) bool {
	if ps.Has(name) {
		return false
	}
	ps.m.Put(name, value)
	return true
}

// pair is a name=value word of a directive.
type pair struct {
	name, value string
}

// splitPairs splits the text after the directive name into pairs. It accepts
// name=value, name = value, and name= value, quoted by shell rules, with
// optional commas between pairs.
func splitPairs(text string) ([]pair, error) {
	words, err := shellquote.Split(text)
	if err != nil {
		return nil, err
	}

	var toks []string
	for _, w := range words {
		w = strings.TrimSuffix(w, ",")
		if w != "" {
			toks = append(toks, w)
		}
	}

	var pairs []pair
	for i := 0; i < len(toks); i++ {
		tok := toks[i]

		// name=value or name=
		if name, value, ok := strings.Cut(tok, "="); ok {
			if name == "" {
				return nil, fmt.Errorf("%q has no parameter name", tok)
			}
			if value == "" && i+1 < len(toks) && !strings.Contains(toks[i+1], "=") {
				// name= value
				value = toks[i+1]
				i++
			}
			pairs = append(pairs, pair{name, value})
			continue
		}

		// name = value or name =value
		if i+1 < len(toks) && strings.HasPrefix(toks[i+1], "=") {
			value := strings.TrimPrefix(toks[i+1], "=")
			i++
			if value == "" && i+1 < len(toks) {
				value = toks[i+1]
				i++
			}
			pairs = append(pairs, pair{tok, value})
			continue
		}

		return nil, fmt.Errorf("%q is not name=value", tok)
	}
	return pairs, nil
}

// readParams reads the parameters of the directive annotating d. It does not
// check for missing parameters.
func (p *Parser) readParams(d *Derive) (*Params, error) {
	text := strings.TrimPrefix(d.Directive.Text, Directive)

	pairs, err := splitPairs(text)
	if err != nil {
		return nil, Mark(p.errorf(d, "cannot read //%s of %s: %s", directiveName, d.Name, err.Error()), ErrMalformedParam)
	}

	ps := NewParams()
	var errs []error
	for _, pair := range pairs {
		if !slices.Contains(knownParams, pair.name) {
			err := p.errorf(d, "unknown parameter %s in //%s of %s", pair.name, directiveName, d.Name)
			var hints []string
			if guess, ok := lcs.Closest(pair.name, knownParams); ok {
				hints = append(hints, fmt.Sprintf("did you mean %s?", guess))
			}
			errs = append(errs, Mark(err, ErrUnknownParam, hints...))
			continue
		}

		if !ps.set(pair.name, pair.value) {
			err := p.errorf(d, "duplicate parameter %s in //%s of %s", pair.name, directiveName, d.Name)
			errs = append(errs, Mark(err, ErrDuplicateParam))
			continue
		}

		if err := p.validateParam(d, pair); err != nil {
			errs = append(errs, err)
		}
	}
	return ps, JoinErrors(errs)
}

// validateParam checks the value of a known parameter.
func (p *Parser) validateParam(d *Derive, pair pair) error {
	switch pair.name {
	case ParamUlpsEpsilon, ParamDebugUlpsDiff:
		if !token.IsIdentifier(pair.value) {
			err := p.errorf(d, "%s of %s must be a type name, got %q", pair.name, d.Name, pair.value)
			return Mark(err, ErrMalformedParam)
		}
	case ParamAllEpsilon:
		if _, err := p.evalType(pair.value, d.Pos()); err != nil {
			err := p.errorf(d, "%s of %s must be a type: %s", pair.name, d.Name, err.Error())
			return Mark(err, ErrMalformedParam)
		}
	}
	return nil
}

// requireParams checks for the required parameters in order. Only the first
// missing one is reported, with a hint and a fix suggesting a name derived
// from the type name.
func (p *Parser) requireParams(d *Derive) error {
	for _, req := range []struct {
		name, suffix, what, trait string
	}{
		{ParamUlpsEpsilon, "Ulps", "epsilon ULPs type name", "FloatEq"},
		{ParamDebugUlpsDiff, "DebugUlpsDiff", "debug ULPs diff type name", "AssertFloatEq"},
	} {
		if d.Params.Has(req.name) {
			continue
		}

		suggestion := fmt.Sprintf("%s=%q", req.name, d.Name+req.suffix)
		fix := codefmtFix(d, suggestion)
		err := p.fixErrorf(d, fix, "missing %s required to derive %s", req.what, req.trait)
		return Mark(err, ErrMissingParam, fmt.Sprintf("try specifying %s in //%s", suggestion, directiveName))
	}
	return nil
}
