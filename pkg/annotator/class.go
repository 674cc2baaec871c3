package annotator

import (
	"strings"

	"github.com/alippai/gots-annotate/internal/stast"
	"github.com/alippai/gots-annotate/pkg/tags"
)

// transformClass handles a class declaration.
func (tr *Transformer) transformClass(cls *stast.ClassDeclaration) []stast.Node {
	h := tr.mtt.GetMutableJSDoc(cls)

	if cls.Modifiers.Abstract {
		h.Append(tags.Tag{Name: tags.NameAbstract})
	}
	if len(cls.TypeParameters) > 0 {
		h.Append(tags.Tag{Name: tags.NameTemplate, Text: typeParamNames(cls.TypeParameters)})
	}

	hasRuntimeExtends := classHasExtendsClause(cls)
	for _, t := range HeritageTags(tr, cls.Heritage, false, hasRuntimeExtends, false) {
		h.Append(t)
	}
	h.UpdateComment()

	// The member-type-declaration must be synthesized before the
	// constructor is visited, since visiting it strips the
	// parameter-property comments the declaration reads from.
	memberDecl := BuildMemberTypeDeclaration(tr, cls.Name, cls.Members, false)

	var newMembers []stast.Node
	for _, m := range cls.Members {
		newMembers = append(newMembers, tr.transformClassMember(m)...)
	}
	rewritten := *cls
	rewritten.Members = newMembers

	out := []stast.Node{&rewritten}
	if memberDecl != nil {
		out = append(out, memberDecl)
	}
	return out
}

func (tr *Transformer) transformClassMember(n stast.Node) []stast.Node {
	switch v := n.(type) {
	case *stast.FunctionLikeDeclaration:
		if v.Kind == stast.FunctionKindConstructor {
			for _, p := range v.Parameters {
				if p.IsParameterProperty() {
					tr.mtt.StripLeadingComments(p)
				}
			}
		}
		tr.annotateFunctionLike(v)
		return []stast.Node{v}
	case *stast.PropertyDeclaration:
		tr.transformPropertyDeclaration(v)
		return []stast.Node{v}
	case *stast.PropertyAssignment:
		tr.transformPropertyAssignment(v)
		return []stast.Node{v}
	default:
		return []stast.Node{n}
	}
}

func typeParamNames(tps []*stast.TypeParameter) string {
	names := make([]string, len(tps))
	for i, tp := range tps {
		names[i] = tp.Name
	}
	return strings.Join(names, ", ")
}

func classHasExtendsClause(cls *stast.ClassDeclaration) bool {
	for _, h := range cls.Heritage {
		if h.Token == "extends" {
			return true
		}
	}
	return false
}
