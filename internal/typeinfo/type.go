package typeinfo

import (
	"go/token"
	"go/types"
)

// Type describes a type information. It holds information of [types.Type] that
// is necessary to derive approximate comparisons.
type Type struct {
	T types.Type

	Basic     *types.Basic
	Array     *types.Array
	Slice     *types.Slice
	Map       *types.Map
	Struct    *types.Struct
	Interface *types.Interface
	Pointer   *types.Pointer
	Named     *types.Named
	Alias     *types.Alias

	Elem *Type
	Len  int64
}

func (t Type) Type() types.Type { return t.T }
func (t Type) String() string   { return t.T.String() }

func (t Type) IsBasic() bool     { return t.Basic != nil }
func (t Type) IsArray() bool     { return t.Array != nil }
func (t Type) IsSlice() bool     { return t.Slice != nil }
func (t Type) IsMap() bool       { return t.Map != nil }
func (t Type) IsStruct() bool    { return t.Struct != nil }
func (t Type) IsInterface() bool { return t.Interface != nil }
func (t Type) IsPointer() bool   { return t.Pointer != nil }
func (t Type) IsNamed() bool     { return t.Named != nil }
func (t Type) IsAlias() bool     { return t.Alias != nil }

func (t Type) Identical(u Type) bool { return types.Identical(t.T, u.T) }

// IsFloat reports whether the underlying type is float32 or float64.
func (t Type) IsFloat() bool {
	return t.FloatBits() != 0
}

// FloatBits returns 32 or 64 for float32 or float64 underlying types, and 0
// for any other type.
func (t Type) FloatBits() int {
	if t.Basic == nil {
		return 0
	}
	switch t.Basic.Kind() {
	case types.Float32:
		return 32
	case types.Float64:
		return 64
	}
	return 0
}

// TypeOf inspects the given type and returns a new [Type].
func TypeOf(t types.Type) Type {
	if alias, ok := t.(*types.Alias); ok {
		info := TypeOf(types.Unalias(alias))
		info.T = t
		info.Alias = alias
		return info
	}

	switch tt := t.(type) {
	case *types.Basic:
		return Type{T: t, Basic: tt}
	case *types.Array:
		elem := TypeOf(tt.Elem())
		return Type{T: t, Array: tt, Elem: &elem, Len: tt.Len()}
	case *types.Slice:
		elem := TypeOf(tt.Elem())
		return Type{T: t, Slice: tt, Elem: &elem}
	case *types.Map:
		elem := TypeOf(tt.Elem())
		return Type{T: t, Map: tt, Elem: &elem}
	case *types.Struct:
		return Type{T: t, Struct: tt}
	case *types.Interface:
		return Type{T: t, Interface: tt}
	case *types.Pointer:
		elem := TypeOf(tt.Elem())
		return Type{T: t, Pointer: tt, Elem: &elem}
	case *types.Named:
		info := TypeOf(tt.Underlying())
		info.T = t
		info.Named = tt
		return info
	}
	// Channels, signatures, type parameters, and tuples carry nothing to
	// compare.
	return Type{T: t}
}

// Pkg returns the package where the type is defined. It returns nil if the type
// is not a named type.
func (t Type) Pkg() *types.Package {
	if !t.IsNamed() {
		return nil
	}
	return t.Named.Obj().Pkg()
}

// Pos returns the position where the type is defined. It returns token.NoPos if
// the type is not a named type.
func (t Type) Pos() token.Pos {
	if t.IsNamed() {
		return t.Named.Obj().Pos()
	}
	return token.NoPos
}

// Method returns the method with the given name in the value method set of the
// type. Methods with pointer receivers are not found. If no such method
// exists, it returns nil and false.
func (t Type) Method(name string) (*types.Func, bool) {
	sel := types.NewMethodSet(t.T).Lookup(nil, name)
	if sel == nil {
		return nil, false
	}
	fn, ok := sel.Obj().(*types.Func)
	return fn, ok
}

// MethodResult returns the result type of the named method if it takes no
// arguments and returns exactly one value.
func (t Type) MethodResult(name string) (Type, bool) {
	fn, ok := t.Method(name)
	if !ok {
		return Type{}, false
	}
	sig := fn.Signature()
	if sig.Params().Len() != 0 || sig.Results().Len() != 1 {
		return Type{}, false
	}
	return TypeOf(sig.Results().At(0).Type()), true
}

// IsGeneric reports whether the type is generic or has any generic type
// parameters. Even though the type has type parameters, if all type arguments
// are concrete types, it returns false.
func (t Type) IsGeneric() bool {
	return isGeneric(t.T)
}

func isGeneric(t types.Type) bool {
	switch t := types.Unalias(t).(type) {
	case *types.Named:
		if t.TypeParams().Len() == 0 {
			// No type parameters
			// e.g., Foo
			return false
		}

		targs := t.TypeArgs()
		if targs.Len() == 0 {
			// Have type parameters but no arguments
			// e.g., Foo[T]
			return true
		}

		for i := 0; i < targs.Len(); i++ {
			if isGeneric(targs.At(i)) {
				// Some type argument is generic
				// e.g., Foo[int, T]
				return true
			}
		}
	case *types.Array:
		return isGeneric(t.Elem())
	case *types.Struct:
		for f := range t.Fields() {
			if isGeneric(f.Type()) {
				return true
			}
		}
	case *types.TypeParam:
		return true
	}
	return false
}
