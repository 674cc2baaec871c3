package externs

import (
	"strings"

	"github.com/alippai/gots-annotate/internal/stast"
	"github.com/alippai/gots-annotate/pkg/tags"
)

// emitFunctionGroup handles a group of declared function overloads
// sharing one name, merging them into a single stub. At the root it
// emits a genuine function declaration (`function f(x) {}`); nested
// under a namespace there is no declaration form available, so it
// assigns a function expression instead.
func (g *Generator) emitFunctionGroup(overloads []*stast.FunctionLikeDeclaration, namespace string) {
	tagList, paramNames := g.mtt.GetFunctionTypeJSDoc(overloads, nil)
	comment := tags.ToSerializedComment(tagList)
	g.writeLine(comment.Text)

	name := overloads[0].Name.Text
	params := strings.Join(paramNames, ", ")
	if namespace == "" {
		g.writeLine("function " + name + "(" + params + ") {}")
		return
	}
	g.writeLine(qualify(namespace, name) + " = function(" + params + ") {};")
}
