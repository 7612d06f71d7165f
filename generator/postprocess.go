package generator

import (
	"errors"
	"strings"
)

// ErrNoMapping reports a model reply without the expected component
// mapping section. There is no fallback extraction.
var ErrNoMapping = errors.New("component mapping section not found in model output")

// PostProcess splits a raw model reply into the mapping section and the
// diagram markup that follows it. Only surrounding whitespace is
// trimmed; the markup is not validated as Mermaid.
func PostProcess(raw string) (Diagram, error) {
	idx := strings.Index(raw, mappingCloseTag)
	if idx < 0 {
		return Diagram{}, ErrNoMapping
	}
	return Diagram{
		Mapping: extractMapping(raw[:idx]),
		Markup:  strings.TrimSpace(raw[idx+len(mappingCloseTag):]),
	}, nil
}

// Mapping body is everything between the tags; a missing open tag keeps
// whatever preceded the close.
func extractMapping(head string) string {
	if i := strings.Index(head, mappingOpenTag); i >= 0 {
		head = head[i+len(mappingOpenTag):]
	}
	return strings.TrimSpace(head)
}
