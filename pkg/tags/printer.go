package tags

import (
	"fmt"
	"strings"
)

// Serialized is a textual block comment produced by ToSerializedComment.
type Serialized struct {
	Text string
}

// escaper neutralizes comment metacharacters so that free text or
// placeholder source snippets can never terminate the enclosing
// block comment early.
var escaper = strings.NewReplacer("*/", "* /", "/*", "/ *")

// Escape neutralizes comment-ending/starting sequences in s.
func Escape(s string) string {
	return escaper.Replace(s)
}

// ToSerializedComment produces a textual block comment with one @tag
// line per non-free-text Tag, in insertion order. Tags named in
// conflictingTagsToDrop are removed when the tag list also carries a
// "type" tag.
func ToSerializedComment(list []Tag, conflictingTagsToDrop ...Name) Serialized {
	hasType := false
	for _, t := range list {
		if t.Name == NameType {
			hasType = true
			break
		}
	}

	drop := make(map[Name]bool, len(conflictingTagsToDrop))
	for _, n := range conflictingTagsToDrop {
		drop[n] = true
	}

	var lines []string
	for _, t := range list {
		if hasType && drop[t.Name] {
			continue
		}
		lines = append(lines, renderTag(t))
	}

	if len(lines) == 0 {
		return Serialized{Text: "/**  */"}
	}

	var b strings.Builder
	b.WriteString("/**\n")
	for _, l := range lines {
		b.WriteString(" * ")
		b.WriteString(l)
		b.WriteString("\n")
	}
	b.WriteString(" */")
	return Serialized{Text: b.String()}
}

// ToSerializedCommentInline renders tags with no enclosing newlines, used
// by the Annotation Transformer for single-tag inline casts.
func ToSerializedCommentInline(t Tag) Serialized {
	return Serialized{Text: "/** " + renderTag(t) + " */"}
}

func renderTag(t Tag) string {
	if t.IsFreeText() {
		return Escape(t.Text)
	}

	var b strings.Builder
	b.WriteString("@")
	b.WriteString(string(t.Name))

	if t.Type != "" {
		typ := t.Type
		if t.Optional && t.Name == NameParam {
			typ = "(" + typ + "=)"
		}
		fmt.Fprintf(&b, " {%s}", typ)
	}

	if t.Name == NameParam {
		name := t.ParameterName
		if t.RestParam {
			name = "..." + name
		}
		b.WriteString(" ")
		b.WriteString(name)
	}

	if t.Text != "" {
		b.WriteString(" ")
		b.WriteString(Escape(t.Text))
	}

	return b.String()
}
