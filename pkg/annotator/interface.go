package annotator

import (
	"github.com/alippai/gots-annotate/internal/stast"
	"github.com/alippai/gots-annotate/pkg/tags"
)

// transformInterface handles an interface declaration. AT has no
// interface form, so a survives-emission interface becomes a
// zero-argument function declaration carrying a "record" tag.
func (tr *Transformer) transformInterface(iface *stast.InterfaceDeclaration) []stast.Node {
	if sym, ok := tr.mtt.Checker.GetSymbolAtLocation(iface.Name); ok && sym.IsValue() {
		tr.mtt.DebugWarn(iface, "interface name is also a value in this scope, skipping emission")
		return nil
	}

	fn := &stast.FunctionLikeDeclaration{
		Kind:    stast.FunctionKindFunction,
		Name:    iface.Name,
		HasBody: true,
	}

	h := tr.mtt.GetMutableJSDoc(fn)
	h.Append(tags.Tag{Name: tags.NameRecord})
	if len(iface.TypeParameters) > 0 {
		h.Append(tags.Tag{Name: tags.NameTemplate, Text: typeParamNames(iface.TypeParameters)})
	}
	for _, t := range HeritageTags(tr, iface.Heritage, true, false, false) {
		h.Append(t)
	}
	h.UpdateComment()

	out := []stast.Node{fn}
	if memberDecl := BuildMemberTypeDeclaration(tr, iface.Name, iface.Members, true); memberDecl != nil {
		out = append(out, memberDecl)
	}
	return out
}
