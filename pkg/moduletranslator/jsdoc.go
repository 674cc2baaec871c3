package moduletranslator

import (
	"strings"

	"github.com/alippai/gots-annotate/internal/stast"
	"github.com/alippai/gots-annotate/pkg/tags"
)

// JSDocHandle is the mutable comment handle `{tags, updateComment()}`.
// Tag mutations on Tags are only observable
// on the node's leading comment after UpdateComment is called.
type JSDocHandle struct {
	Tags []tags.Tag

	node    stast.Node
	mtt     *ModuleTypeTranslator
	preexistingFreeform string // a non-structured leading comment, preserved verbatim if non-empty
	dirty   bool
}

// GetMutableJSDoc returns the handle for node's leading comment,
// creating one on first access. A pre-existing leading comment that
// parses as structured is loaded into Tags (so appends/edits build on
// it); a non-structured one is preserved untouched and Tags starts
// empty.
func (m *ModuleTypeTranslator) GetMutableJSDoc(node stast.Node) *JSDocHandle {
	if h, ok := m.comments[node]; ok {
		return h
	}

	h := &JSDocHandle{node: node, mtt: m}

	if m.File != nil && m.File.LeadingComments != nil {
		if raw, ok := m.File.LeadingComments[node]; ok && len(raw) > 0 {
			last := raw[len(raw)-1]
			if parsed, ok := tags.Parse(last); ok {
				h.Tags = parsed.Tags
			} else {
				h.preexistingFreeform = last
			}
		}
	}

	m.comments[node] = h
	return h
}

// PreexistingFreeform returns the non-structured leading comment text
// loaded from the node's original comment, if any.
func (h *JSDocHandle) PreexistingFreeform() string { return h.preexistingFreeform }

// Append adds a tag and returns the handle for chaining.
func (h *JSDocHandle) Append(t tags.Tag) *JSDocHandle {
	h.Tags = append(h.Tags, t)
	return h
}

// UpdateComment re-serializes Tags and overwrites node's leading comment
//. If a non-structured leading
// comment was preserved and no tags were ever added, the original text
// is kept verbatim instead of being replaced by an empty structured
// comment.
func (h *JSDocHandle) UpdateComment(conflictingTagsToDrop ...tags.Name) *stast.CommentAttachment {
	h.dirty = true

	if len(h.Tags) == 0 && h.preexistingFreeform != "" {
		return &stast.CommentAttachment{Leading: []string{h.preexistingFreeform}}
	}

	serialized := tags.ToSerializedComment(h.Tags, conflictingTagsToDrop...)
	attachment := &stast.CommentAttachment{Leading: []string{serialized.Text}}

	if h.mtt != nil && h.mtt.File != nil {
		if h.mtt.File.LeadingComments == nil {
			h.mtt.File.LeadingComments = make(map[stast.Node][]string)
		}
		h.mtt.File.LeadingComments[h.node] = attachment.Leading
	}

	return attachment
}

// stripLeadingComments suppresses the given node's comments entirely,
// used for parameter-property strip-and-suppress.
func (m *ModuleTypeTranslator) StripLeadingComments(node stast.Node) {
	h := m.GetMutableJSDoc(node)
	h.Tags = nil
	h.preexistingFreeform = ""
	h.dirty = true
	if m.File != nil && m.File.LeadingComments != nil {
		delete(m.File.LeadingComments, node)
	}
}

// EscapeIllegalTags re-serializes node's existing structured comment,
// downgrading any tag not in allowed to free text.
func (m *ModuleTypeTranslator) EscapeIllegalTags(node stast.Node, allowed map[tags.Name]bool) *stast.CommentAttachment {
	h := m.GetMutableJSDoc(node)
	cleaned := make([]tags.Tag, 0, len(h.Tags))
	for _, t := range h.Tags {
		if t.IsFreeText() || allowed[t.Name] {
			cleaned = append(cleaned, t)
			continue
		}
		cleaned = append(cleaned, tags.Tag{Text: "@" + string(t.Name) + " " + strings.TrimSpace(t.Type+" "+t.Text)})
	}
	h.Tags = cleaned
	return h.UpdateComment()
}
