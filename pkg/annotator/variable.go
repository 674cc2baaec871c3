package annotator

import (
	"github.com/alippai/gots-annotate/internal/stast"
	"github.com/alippai/gots-annotate/pkg/tags"
)

// transformVariableStatement handles a variable statement:
// multi-declarator statements are split into one statement per
// declarator.
func (tr *Transformer) transformVariableStatement(v *stast.VariableStatement) []stast.Node {
	preexisting := tr.mtt.GetMutableJSDoc(v)

	var out []stast.Node

	if preexisting.Tags == nil && preexisting.PreexistingFreeform() != "" {
		// Non-structured comments on the original statement are preserved
		// on a not-emitted placeholder so the downstream printer retains
		// them verbatim.
		out = append(out, &stast.CommentedStatement{LeadingComment: preexisting.PreexistingFreeform()})
	}

	for i, d := range v.Declarators {
		stmt := &stast.VariableStatement{Kind: v.Kind, Declarators: []*stast.VariableDeclarator{d}}

		var tagList []tags.Tag
		if i == 0 {
			tagList = append(tagList, preexisting.Tags...)
		}

		if !d.Destructuring && d.Name != nil {
			if typeTag, emit := tr.variableTypeTag(d); emit {
				tagList = append(tagList, typeTag)
			}
		}

		if len(tagList) > 0 {
			h := tr.mtt.GetMutableJSDoc(stmt)
			h.Tags = tagList
			h.UpdateComment()
		}

		out = append(out, stmt)
	}

	return out
}

// variableTypeTag computes the declarator's type tag, or reports
// emit=false when the declared type is blacklisted and the declarator
// has an initializer.
func (tr *Transformer) variableTypeTag(d *stast.VariableDeclarator) (tags.Tag, bool) {
	var t *stast.Type
	if d.Type != nil {
		t = tr.mtt.Checker.TypeOfTypeNode(d.Type)
	}

	if t != nil && t.Kind == stast.TypeNamed && tr.mtt.Translator().IsBlacklisted(t.Symbol) && d.HasInitializer {
		return tags.Tag{}, false
	}

	typeStr := tr.mtt.Translator().Translate(t, d)
	return tags.Tag{Name: tags.NameType, Type: typeStr}, true
}
