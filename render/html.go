package render

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"

	"archmap/generator"
)

// HTML builds a self-contained preview page: the diagram rendered
// client-side by Mermaid, the component mapping, and the README
// converted from Markdown.
func HTML(d generator.Diagram, readme string) ([]byte, error) {
	var readmeHTML bytes.Buffer
	if readme != "" {
		if err := goldmark.Convert([]byte(readme), &readmeHTML); err != nil {
			return nil, fmt.Errorf("render readme: %w", err)
		}
	}

	var b bytes.Buffer
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>archmap</title>\n</head>\n<body>\n")
	b.WriteString("<h1>Architecture</h1>\n<pre class=\"mermaid\">\n")
	b.WriteString(html.EscapeString(d.Markup))
	b.WriteString("\n</pre>\n")
	if d.Mapping != "" {
		b.WriteString("<h2>Component mapping</h2>\n<pre>")
		b.WriteString(html.EscapeString(d.Mapping))
		b.WriteString("</pre>\n")
	}
	if readmeHTML.Len() > 0 {
		b.WriteString("<h2>README</h2>\n")
		b.Write(readmeHTML.Bytes())
	}
	b.WriteString("<script type=\"module\">\n")
	b.WriteString("import mermaid from \"https://cdn.jsdelivr.net/npm/mermaid@11/dist/mermaid.esm.min.mjs\";\n")
	b.WriteString("mermaid.initialize({ startOnLoad: true });\n")
	b.WriteString("</script>\n</body>\n</html>\n")
	return b.Bytes(), nil
}
