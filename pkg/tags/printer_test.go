package tags

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSerializedComment_SingleType(t *testing.T) {
	out := ToSerializedComment([]Tag{{Name: NameType, Type: "string"}})
	assert.Contains(t, out.Text, "@type {string}")
	assert.True(t, strings.HasPrefix(out.Text, "/**\n"))
	assert.True(t, strings.HasSuffix(out.Text, " */"))
}

func TestToSerializedComment_DropsConflictingTagsWhenTypePresent(t *testing.T) {
	list := []Tag{
		{Name: NameType, Type: "function(number): string"},
		{Name: NameParam, ParameterName: "x", Type: "number"},
		{Name: NameReturn, Type: "string"},
	}
	out := ToSerializedComment(list, NameParam, NameReturn)
	assert.Contains(t, out.Text, "@type")
	assert.NotContains(t, out.Text, "@param")
	assert.NotContains(t, out.Text, "@return")
}

func TestToSerializedComment_KeepsConflictingTagsWithoutType(t *testing.T) {
	list := []Tag{
		{Name: NameParam, ParameterName: "x", Type: "number"},
		{Name: NameReturn, Type: "string"},
	}
	out := ToSerializedComment(list, NameParam, NameReturn)
	assert.Contains(t, out.Text, "@param {number} x")
	assert.Contains(t, out.Text, "@return {string}")
}

func TestToSerializedCommentInline_NoTrailingNewline(t *testing.T) {
	out := ToSerializedCommentInline(Tag{Name: NameType, Type: "string"})
	require.Equal(t, "/** @type {string} */", out.Text)
	assert.False(t, strings.Contains(out.Text, "\n"))
}

func TestEscape_NeutralizesCommentTerminator(t *testing.T) {
	got := Escape("end */ of comment")
	assert.NotContains(t, got, "*/")
}

func TestToSerializedComment_OptionalParam(t *testing.T) {
	out := ToSerializedComment([]Tag{{Name: NameParam, ParameterName: "x", Type: "number", Optional: true}})
	assert.Contains(t, out.Text, "@param {(number=)} x")
}

func TestToSerializedComment_RestParam(t *testing.T) {
	out := ToSerializedComment([]Tag{{Name: NameParam, ParameterName: "args", Type: "string", RestParam: true}})
	assert.Contains(t, out.Text, "...args")
}

func TestComment_TypeTag(t *testing.T) {
	c := NewSyntheticComment(Tag{Name: NameParam}, Tag{Name: NameType, Type: "number"})
	tag, ok := c.TypeTag()
	require.True(t, ok)
	assert.Equal(t, "number", tag.Type)
}

func TestComment_Merge(t *testing.T) {
	a := NewSyntheticComment(Tag{Name: NameTemplate, Text: "T"})
	b := NewSyntheticComment(Tag{Name: NameExtends, Type: "Base"})
	a.Merge(b)
	require.Len(t, a.Tags, 2)
	assert.Equal(t, NameExtends, a.Tags[1].Name)
}
