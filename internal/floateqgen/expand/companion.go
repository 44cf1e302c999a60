package expand

import (
	"github.com/bcliden/floateq/internal/codefmt"
	"github.com/bcliden/floateq/internal/floateqgen/parse"
)

// writeUlpsCompanion writes the ULPs epsilon type mirroring the shape of the
// annotated type, and the method binding it.
func (g *gen) writeUlpsCompanion(w *codefmt.Writer) {
	name := g.d.UlpsName()
	w.Printf("// %s is the ULPs epsilon of %s, with one unsigned integer of the same\n", name, g.d.Name)
	w.Printf("// width for every float.\n")
	g.writeCompanion(w, name, g.ulpsType)
	w.Printf("\n")
	w.Printf("func (%s) FloatEqUlpsEpsilon() %s { return %s{} }\n", g.d.Name, name, name)
}

// writeDiffCompanion writes the debug ULPs diff type mirroring the shape of
// the annotated type, and the method binding it.
func (g *gen) writeDiffCompanion(w *codefmt.Writer) {
	name := g.d.DiffName()
	w.Printf("// %s is the ULPs difference between two values of %s.\n", name, g.d.Name)
	g.writeCompanion(w, name, g.diffType)
	w.Printf("\n")
	w.Printf("func (%s) FloatEqDebugUlpsDiff() %s { return %s{} }\n", g.d.Name, name, name)
}

func (g *gen) writeCompanion(w *codefmt.Writer, name string, fieldType func(*Operand) string) {
	switch g.d.Shape.Kind {
	case parse.Empty:
		w.Printf("type %s struct{}\n", name)

	case parse.Named:
		w.Printf("type %s struct {\n", name)
		for i, f := range g.d.Shape.Fields {
			w.Printf("%s %s\n", f.Name, fieldType(g.fields[i]))
		}
		w.Printf("}\n")

	case parse.Positional:
		// Elements share the operand.
		w.Printf("type %s %s\n", name, arrayOf(int64(g.d.Shape.Len()), fieldType(g.fields[0])))
	}
}
