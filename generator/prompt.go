package generator

import (
	"fmt"
	"strings"
)

// Prompt is the message pair sent to the LLM.
type Prompt struct {
	System string
	User   string
}

// Markers delimiting the component mapping section the model is asked to
// produce. PostProcess keys off the closing tag.
const (
	mappingOpenTag  = "<component_mapping>"
	mappingCloseTag = "</component_mapping>"
)

// BuildDiagramPrompt embeds the file tree and README into the static
// instruction template.
func BuildDiagramPrompt(in Input) Prompt {
	var sb strings.Builder
	sb.WriteString("Analyze the repository described below and produce an architecture diagram.\n")
	sb.WriteString("Respond in exactly two parts, with no code fences and no commentary:\n")
	sb.WriteString(fmt.Sprintf("1. A %s section with one \"- ComponentName: path\" line per major component, closed with %s.\n", mappingOpenTag, mappingCloseTag))
	sb.WriteString("2. Immediately after the closing tag, Mermaid flowchart markup (starting with \"flowchart TD\") showing how the components depend on each other.\n")
	sb.WriteString("\n<file_tree>\n")
	sb.WriteString(in.Tree)
	sb.WriteString("\n</file_tree>\n")
	sb.WriteString("\n<readme>\n")
	sb.WriteString(in.Readme)
	sb.WriteString("\n</readme>\n")

	return Prompt{
		System: "You are a software architect. Follow the requested output format exactly.",
		User:   sb.String(),
	}
}
