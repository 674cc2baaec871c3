package stast

// SymbolFlags classifies what a Symbol denotes: the subset of the type
// checker's symbol-flag inspection the Checker interface exposes
// ("value/type/alias/class/interface/type-alias").
type SymbolFlags uint16

const (
	SymbolValue SymbolFlags = 1 << iota
	SymbolType
	SymbolAlias
	SymbolClass
	SymbolInterface
	SymbolTypeAlias
	SymbolEnum
	SymbolNamespace
)

func (f SymbolFlags) Has(flag SymbolFlags) bool { return f&flag != 0 }

// Symbol is a checker-level named entity: a declaration's identity,
// independent of how many times it is re-declared (declaration merging)
// or re-exported (aliasing).
type Symbol struct {
	ID           int // stable identity for map keys / cycle detection
	Name         string
	ExportedName string // name visible in the declaring module's export table; usually == Name
	Flags        SymbolFlags
	ModulePath   string // resolved path of the declaring module, "" if local/ambient-global
	Namespace    []string // enclosing namespace segments, outermost first
	Declarations []Node
	AliasTarget  *Symbol // set when Flags.Has(SymbolAlias); the symbol this one re-exports
}

// IsValue reports whether sym denotes a runtime value.
func (s *Symbol) IsValue() bool { return s != nil && s.Flags.Has(SymbolValue) }

// IsType reports whether sym denotes a type-level entity.
func (s *Symbol) IsType() bool {
	return s != nil && s.Flags.Has(SymbolType|SymbolClass|SymbolInterface|SymbolTypeAlias|SymbolEnum)
}

// DottedName renders the symbol's namespace-qualified exported name,
// e.g. ["ns", "inner"] + "Foo" -> "ns.inner.Foo".
func (s *Symbol) DottedName() string {
	name := s.ExportedName
	if name == "" {
		name = s.Name
	}
	if len(s.Namespace) == 0 {
		return name
	}
	out := ""
	for _, seg := range s.Namespace {
		out += seg + "."
	}
	return out + name
}
