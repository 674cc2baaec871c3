package externs

import (
	"github.com/alippai/gots-annotate/internal/stast"
	"github.com/alippai/gots-annotate/pkg/moduletranslator"
	"github.com/alippai/gots-annotate/pkg/tags"
)

// heritageTags is the externs-side counterpart of
// pkg/annotator.HeritageTags. Externs always forces tag
// emission — there is no runtime `extends` clause to preserve syntax
// for, unlike the Annotation Transformer's class rewrite.
func heritageTags(mtt *moduletranslator.ModuleTypeTranslator, heritage []*stast.HeritageClause, isInterface bool) []tags.Tag {
	var out []tags.Tag

	for _, clause := range heritage {
		for _, h := range clause.Types {
			sym, ok := mtt.Checker.GetSymbolAtLocation(h.Expression)
			if !ok || sym == nil {
				out = append(out, tags.Tag{Text: "could not resolve supertype, class definition may be incomplete"})
				continue
			}

			resolved := resolveTypeAliasSymbol(mtt, sym)

			if mtt.Translator().IsBlacklisted(resolved) {
				continue
			}
			if resolved.IsValue() && !resolved.IsType() {
				continue
			}

			name := tags.NameExtends
			if !isInterface && resolved.Flags.Has(stast.SymbolInterface) {
				name = tags.NameImplements
			}

			out = append(out, tags.Tag{Name: name, Type: mtt.Translator().SymbolToString(resolved, false)})
		}
	}

	return out
}

func resolveTypeAliasSymbol(mtt *moduletranslator.ModuleTypeTranslator, sym *stast.Symbol) *stast.Symbol {
	cur := sym
	seen := map[int]bool{}
	for cur.Flags.Has(stast.SymbolTypeAlias) {
		if seen[cur.ID] {
			break
		}
		seen[cur.ID] = true
		declared := mtt.Checker.GetDeclaredTypeOfSymbol(cur)
		if declared == nil || declared.Symbol == nil {
			break
		}
		cur = declared.Symbol
	}
	return cur
}
