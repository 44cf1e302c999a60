package parse

import (
	"go/token"
	"go/types"
	"strconv"

	"github.com/bcliden/floateq/internal/typeinfo"
)

// ShapeKind classifies the fields of an annotated type.
type ShapeKind int

const (
	// Empty is a struct without fields or a zero-length array.
	Empty ShapeKind = iota

	// Named is a struct with named fields.
	Named

	// Positional is an array. Its fields are its elements.
	Positional
)

func (k ShapeKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Named:
		return "named"
	case Positional:
		return "positional"
	}
	return "ShapeKind(" + strconv.Itoa(int(k)) + ")"
}

// Field is a field of an annotated type.
type Field struct {
	// Name is the field name of a struct. It is empty for array elements.
	Name string

	// Index is the position of the field in declaration order.
	Index int

	Type types.Type
	Pos  token.Pos
}

// Selector returns the identity of the field: its name, or its index for
// array elements.
func (f Field) Selector() string {
	if f.Name == "" {
		return strconv.Itoa(f.Index)
	}
	return f.Name
}

// Exported reports whether the field is visible outside its package. Array
// elements are visible as the array is.
func (f Field) Exported() bool {
	return f.Name == "" || token.IsExported(f.Name)
}

// Shape is the kind and the fields of an annotated type.
type Shape struct {
	Kind   ShapeKind
	Fields []Field
}

// Len returns the number of fields.
func (s Shape) Len() int { return len(s.Fields) }

// ExtractShape classifies the annotated type. Blank struct fields are not part
// of the shape. Types other than structs and arrays are not supported.
func (p *Parser) ExtractShape(d *Derive) (Shape, error) {
	if d.Obj.IsAlias() {
		err := p.errorf(d, "cannot derive FloatEq for %s: type alias is not supported; annotate the aliased type instead", d.Name)
		return Shape{}, Mark(err, ErrUnsupportedShape)
	}
	if d.Spec.TypeParams != nil && d.Spec.TypeParams.NumFields() != 0 {
		err := p.errorf(d, "cannot derive FloatEq for %s: generic type is not supported", d.Name)
		return Shape{}, Mark(err, ErrUnsupportedShape)
	}

	t := typeinfo.TypeOf(d.Type())
	switch {
	case t.IsStruct():
		var fields []Field
		for v := range t.Struct.Fields() {
			if v.Name() == "_" {
				continue
			}
			fields = append(fields, Field{
				Name:  v.Name(),
				Index: len(fields),
				Type:  v.Type(),
				Pos:   v.Pos(),
			})
		}
		if len(fields) == 0 {
			return Shape{Kind: Empty}, nil
		}
		return Shape{Kind: Named, Fields: fields}, nil

	case t.IsArray():
		if t.Len == 0 {
			return Shape{Kind: Empty}, nil
		}
		fields := make([]Field, t.Len)
		for i := range fields {
			fields[i] = Field{
				Index: i,
				Type:  t.Array.Elem(),
				Pos:   d.Spec.Type.Pos(),
			}
		}
		return Shape{Kind: Positional, Fields: fields}, nil
	}

	err := p.errorf(d, "cannot derive FloatEq for %s: underlying type %t is not a struct or an array", d.Name, t.T.Underlying())
	return Shape{}, Mark(err, ErrUnsupportedShape)
}
