package annotator

import (
	"github.com/alippai/gots-annotate/internal/stast"
	"github.com/alippai/gots-annotate/pkg/tags"
)

// HeritageTags resolves every heritage type of every heritage clause on
// a class or interface to its symbol and produces the tags describing
// its supertype relationships. isInterface selects the
// always-"extends" rule; hasRuntimeExtends signals that the class
// already has a real runtime `extends` clause (so a redundant
// `implements`-as-`extends` clause is dropped); forExterns forces
// emission of a tag even for a syntax-preserved class `extends` clause.
func HeritageTags(tr *Transformer, heritage []*stast.HeritageClause, isInterface, hasRuntimeExtends, forExterns bool) []tags.Tag {
	var out []tags.Tag
	seenRealExtends := false

	for _, clause := range heritage {
		for _, h := range clause.Types {
			sym, ok := tr.mtt.Checker.GetSymbolAtLocation(h.Expression)
			if !ok || sym == nil {
				out = append(out, tags.Tag{Text: "could not resolve supertype, class definition may be incomplete"})
				continue
			}

			resolved := resolveTypeAliasSymbol(tr, sym)

			if tr.mtt.Translator().IsBlacklisted(resolved) {
				continue
			}

			if resolved.IsValue() && !resolved.IsType() {
				continue
			}

			tagName, skip := heritageTagName(clause, resolved, isInterface, hasRuntimeExtends, &seenRealExtends)
			if skip {
				continue
			}

			if tagName == tags.NameExtends && clause.Token == "extends" && !isInterface && !forExterns {
				// Preserved at the syntax level by the runtime class
				// declaration; no tag needed.
				continue
			}

			out = append(out, tags.Tag{Name: tagName, Type: tr.mtt.Translator().SymbolToString(resolved, false)})
		}
	}

	return out
}

// resolveTypeAliasSymbol follows a type-alias symbol to the aliased
// type's ultimate symbol.
func resolveTypeAliasSymbol(tr *Transformer, sym *stast.Symbol) *stast.Symbol {
	cur := sym
	seen := map[int]bool{}
	for cur.Flags.Has(stast.SymbolTypeAlias) {
		if seen[cur.ID] {
			break
		}
		seen[cur.ID] = true
		declared := tr.mtt.Checker.GetDeclaredTypeOfSymbol(cur)
		if declared == nil || declared.Symbol == nil {
			break
		}
		cur = declared.Symbol
	}
	return cur
}

// heritageTagName picks the tag name a resolved heritage symbol should
// carry, given the clause it came from.
func heritageTagName(clause *stast.HeritageClause, resolved *stast.Symbol, isInterface, hasRuntimeExtends bool, seenRealExtends *bool) (tags.Name, bool) {
	if isInterface {
		return tags.NameExtends, false
	}

	if resolved.Flags.Has(stast.SymbolClass) {
		if clause.Token == "implements" && hasRuntimeExtends {
			// Redundant and risks wrong precedence: the class already has
			// a real runtime `extends`.
			return "", true
		}
		return tags.NameExtends, false
	}

	if resolved.Flags.Has(stast.SymbolInterface) {
		return tags.NameImplements, false
	}

	// Open question preserved deliberately: a class-typed
	// heritage appearing in an `implements` position is still treated as
	// `extends` by the fallthrough above; this branch only remains for
	// resolved symbols that are neither class nor interface.
	_ = seenRealExtends
	return tags.NameExtends, false
}
