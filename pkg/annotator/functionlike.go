package annotator

import "github.com/alippai/gots-annotate/internal/stast"

// annotateFunctionLike handles a function-like declaration. A
// body-less declaration (overload signature or abstract method) is
// left untouched here — it is handled by the member-type-declaration
// pass instead.
func (tr *Transformer) annotateFunctionLike(fn *stast.FunctionLikeDeclaration) {
	if !fn.HasBody {
		return
	}

	tagList, _ := tr.mtt.GetFunctionTypeJSDoc([]*stast.FunctionLikeDeclaration{fn}, nil)
	tr.mtt.Translator().BlacklistTypeParameters(fn, fn.TypeParameters)

	h := tr.mtt.GetMutableJSDoc(fn)
	h.Tags = tagList
	h.UpdateComment()
}
