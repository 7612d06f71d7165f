package generator

import (
	"context"
	"strings"
)

// MockLLM is a local stand-in that never calls a remote model. The reply
// is deterministic so repeated runs produce identical output files.
type MockLLM struct{}

func (m MockLLM) Complete(_ context.Context, _ Prompt) (string, error) {
	var sb strings.Builder
	sb.WriteString(mappingOpenTag)
	sb.WriteString("\n- Root: ./\n")
	sb.WriteString(mappingCloseTag)
	sb.WriteString("\nflowchart TD\n")
	sb.WriteString("    Root[\"Root\"]")
	return sb.String(), nil
}
