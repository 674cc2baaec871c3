package annotator

import (
	"github.com/alippai/gots-annotate/internal/stast"
	"github.com/alippai/gots-annotate/pkg/tags"
)

// allowedPropertyTags is the set of tags a property declaration or
// property assignment's leading comment may legally carry; anything
// else is downgraded to free text by EscapeIllegalTags.
var allowedPropertyTags = map[tags.Name]bool{
	tags.NameType:      true,
	tags.NameExport:    true,
	tags.NameConst:     true,
	tags.NamePrivate:   true,
	tags.NameProtected: true,
	tags.NamePublic:    true,
}

func (tr *Transformer) transformPropertyDeclaration(p *stast.PropertyDeclaration) {
	tr.mtt.EscapeIllegalTags(p, allowedPropertyTags)
}

func (tr *Transformer) transformPropertyAssignment(p *stast.PropertyAssignment) {
	tr.mtt.EscapeIllegalTags(p, allowedPropertyTags)
}
