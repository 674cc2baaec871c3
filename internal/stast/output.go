package stast

// The nodes in this file are synthesized by pkg/annotator and pkg/externs
// rather than parsed from input; they model the small slice of AT-dialect
// runtime syntax the transformer needs to emit (member-type-declarations,
// casts, forward declares).

// RawStatement wraps pre-rendered statement text, used for constructs the
// printer does not need to re-walk (forward declares, TODO comments).
type RawStatement struct {
	base
	Text string
}

// ExpressionStatement is `<Expression>;`.
type ExpressionStatement struct {
	base
	Expression Node
	Leading    *CommentAttachment
}

// PropertyAccessExpression is `<Expression>.<Name>`.
type PropertyAccessExpression struct {
	base
	Expression Node
	Name       string
}

// ParenthesizedExpression is `(<Expression>)`, used for type-assertion
// casts.
type ParenthesizedExpression struct {
	base
	Expression Node
	Leading    *CommentAttachment
}

// RawExpression wraps pre-rendered expression text (identifiers,
// preserved original expressions that are not re-modeled here).
type RawExpression struct {
	base
	Text string
}

// EmptyFunctionExpression is `function(p1, p2) {}`, used for member-type-
// declaration method stubs and externs function bodies.
type EmptyFunctionExpression struct {
	base
	ParameterNames []string
}

// AssignmentExpression is `<Left> = <Right>`.
type AssignmentExpression struct {
	base
	Left  Node
	Right Node
}

// IfFalseBlock is the `if (false) { ... }` member-type-declaration
// wrapper.
type IfFalseBlock struct {
	base
	Statements []Node
}

// CommentedStatement attaches an explicit leading comment string to any
// statement node, used when the comment was already serialized by
// pkg/tags and just needs to be spliced in front of a statement.
type CommentedStatement struct {
	base
	LeadingComment string
	Statement      Node
}

// Sequence groups statements that are siblings in the output (used when
// one input node expands to N output statements, e.g. a multi-declarator
// variable statement, or a class plus its member-type-declaration).
type Sequence struct {
	base
	Statements []Node
}
