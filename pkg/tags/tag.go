// Package tags implements the in-memory model of structured comment
// annotations (the AT dialect's "JSDoc"-shaped tags) and their
// serialization back into comment text.
package tags

// Name is the short identifier of a Tag, such as "type" or "param".
// An empty Name marks a free-text tag that contributes no @-line.
type Name string

const (
	NameType        Name = "type"
	NameParam       Name = "param"
	NameReturn      Name = "return"
	NameTemplate    Name = "template"
	NameExtends     Name = "extends"
	NameImplements  Name = "implements"
	NameTypedef     Name = "typedef"
	NameRecord      Name = "record"
	NameConstructor Name = "constructor"
	NameStruct      Name = "struct"
	NameAbstract    Name = "abstract"
	NameExport      Name = "export"
	NameThis        Name = "this"
	NamePrivate     Name = "private"
	NameProtected   Name = "protected"
	NamePublic      Name = "public"
	NameConst       Name = "const"
)

// conflictingWithType is the set of tags that are mutually exclusive with
// a "type" tag on the same declaration.
var conflictingWithType = map[Name]bool{
	NameParam:     true,
	NameReturn:    true,
	NameThis:      true,
	NameTypedef:   true,
	NameTemplate:  true,
	NamePrivate:   true,
	NameProtected: true,
	NamePublic:    true,
	NameExport:    true,
}

// Tag is a single structured comment annotation.
type Tag struct {
	Name          Name
	Type          string
	ParameterName string
	Text          string
	Optional      bool
	RestParam     bool
	Destructuring bool
}

// IsFreeText reports whether this tag contributes only free text (no
// @name line), i.e. has an empty Name.
func (t Tag) IsFreeText() bool {
	return t.Name == ""
}

// ConflictsWithType reports whether t must be dropped when a "type" tag
// is also present on the same comment.
func (t Tag) ConflictsWithType() bool {
	return conflictingWithType[t.Name]
}
