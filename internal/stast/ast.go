// Package stast defines the minimal typed syntax tree that the Annotation
// Transformer and Externs Generator operate over, treating the parsed,
// type-checked program as an external given. Nothing in this package
// performs semantic analysis; internal/stparser builds it from
// tree-sitter output, and internal/stparser's Checker implements the
// read-only type-query operations the Checker interface declares.
package stast

// Node is implemented by every syntax tree node. Pos/End are byte
// offsets into the owning SourceFile's text, used for position-preserving
// printing and diagnostic spans.
type Node interface {
	Pos() int
	End() int
	node()
}

// base gives every concrete node type its Pos/End implementation.
type base struct {
	StartPos int
	EndPos   int
}

func (b base) Pos() int { return b.StartPos }
func (b base) End() int { return b.EndPos }
func (base) node()      {}

// Comments attached to a node, keyed by node identity in a side map
// owned by SourceFile.
type CommentAttachment struct {
	Leading  []string
	Trailing []string
}

// SourceFile is the root of one parsed ST-dialect file.
type SourceFile struct {
	base
	Path            string
	FileOverview    string // leading file-level comment text, if any
	ModulePrologue  []Node // module-system boilerplate statements to preserve before insertion point
	Statements      []Node
	Text            []byte
	LeadingComments map[Node][]string // raw leading comment text, pre-parse
}

// Identifier is a bare name reference.
type Identifier struct {
	base
	Text string
}

// Modifier flags shared by class members, parameters, and declarations.
type Modifiers struct {
	Abstract  bool
	Private   bool
	Protected bool
	Public    bool
	Readonly  bool
	Static    bool
	Export    bool
	Default   bool
	Declare   bool
	Const     bool // const enum
}

// TypeParameter is a generic type-parameter declaration. AT has no
// constrained templates, so Constraint is tracked but intentionally
// dropped by the translator.
type TypeParameter struct {
	base
	Name       string
	Constraint TypeNode
}

// TypeNode is the syntax-level representation of a type annotation
// (as written in source), distinct from the checker-level Type the
// Type-String Translator consumes. Concrete variants implement it.
type TypeNode interface {
	Node
	typeNode()
}

type typeBase struct{ base }

func (typeBase) typeNode() {}

// TypeReferenceNode is a named type reference, possibly with type args.
type TypeReferenceNode struct {
	typeBase
	Name     *Identifier
	TypeArgs []TypeNode
}

// UnionTypeNode is `A | B | ...`.
type UnionTypeNode struct {
	typeBase
	Members []TypeNode
}

// KeywordTypeNode is a primitive keyword type (string, number, any, ...).
type KeywordTypeNode struct {
	typeBase
	Keyword string
}

// ArrayTypeNode is `T[]`.
type ArrayTypeNode struct {
	typeBase
	Element TypeNode
}

// FunctionTypeNode is `(params) => ret`.
type FunctionTypeNode struct {
	typeBase
	Params []*ParameterNode
	Return TypeNode
}
