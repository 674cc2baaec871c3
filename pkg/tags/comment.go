package tags

// Position marks whether a Comment was produced by the transformer
// (synthetic) or copied verbatim from the input source (real).
type Position int

const (
	PositionSynthetic Position = iota
	PositionReal
)

// Attachment describes where a Comment attaches relative to its node.
type Attachment int

const (
	AttachLeading Attachment = iota
	AttachTrailing
)

// Comment is an ordered list of Tags plus a position marker.
type Comment struct {
	Tags       []Tag
	Position   Position
	Attachment Attachment
}

// NewSyntheticComment builds a leading, synthetic Comment from the given tags.
func NewSyntheticComment(ts ...Tag) *Comment {
	return &Comment{Tags: ts, Position: PositionSynthetic, Attachment: AttachLeading}
}

// HasType reports whether the comment carries a "type" tag.
func (c *Comment) HasType() bool {
	for _, t := range c.Tags {
		if t.Name == NameType {
			return true
		}
	}
	return false
}

// TypeTag returns the comment's "type" tag and true, or the zero Tag and
// false if none is present.
func (c *Comment) TypeTag() (Tag, bool) {
	for _, t := range c.Tags {
		if t.Name == NameType {
			return t, true
		}
	}
	return Tag{}, false
}

// Append adds a tag to the comment, returning the comment for chaining.
func (c *Comment) Append(t Tag) *Comment {
	c.Tags = append(c.Tags, t)
	return c
}

// Merge appends every tag of other onto c, preserving insertion order.
func (c *Comment) Merge(other *Comment) *Comment {
	if other == nil {
		return c
	}
	c.Tags = append(c.Tags, other.Tags...)
	return c
}
