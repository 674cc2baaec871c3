package tags

import (
	"regexp"
	"strings"
)

// tagLine matches a single "@name {type} rest" comment line. The type
// braces and the parameter name are both optional, matching the variety
// of structured comment shapes this package's tag vocabulary covers.
var tagLine = regexp.MustCompile(`^@(\w+)(?:\s*\{([^}]*)\})?(?:\s+(\S+))?(?:\s+(.*))?$`)

// Parse attempts to interpret raw block-comment text as a structured
// Comment. It returns ok=false when the text has no recognizable @tag
// line, signaling to the caller (pkg/moduletranslator's getMutableJSDoc)
// that the comment is free-form and must be preserved untouched rather
// than replaced.
func Parse(raw string) (*Comment, bool) {
	body := strings.TrimSpace(raw)
	body = strings.TrimPrefix(body, "/**")
	body = strings.TrimPrefix(body, "/*")
	body = strings.TrimSuffix(body, "*/")

	var tagsFound []Tag
	var freeText []string
	sawTag := false

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "*")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "@") {
			freeText = append(freeText, line)
			continue
		}
		m := tagLine.FindStringSubmatch(line)
		if m == nil {
			freeText = append(freeText, line)
			continue
		}
		sawTag = true
		name := Name(m[1])
		typ := m[2]
		rest := strings.TrimSpace(m[3] + " " + m[4])
		t := Tag{Name: name, Type: typ}
		if name == NameParam {
			t.ParameterName = strings.TrimSpace(m[3])
			t.Text = strings.TrimSpace(m[4])
		} else {
			t.Text = strings.TrimSpace(rest)
		}
		tagsFound = append(tagsFound, t)
	}

	if !sawTag {
		return nil, false
	}

	if len(freeText) > 0 {
		tagsFound = append([]Tag{{Text: strings.Join(freeText, " ")}}, tagsFound...)
	}

	return &Comment{Tags: tagsFound, Position: PositionReal, Attachment: AttachLeading}, true
}
