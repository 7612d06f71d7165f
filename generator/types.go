package generator

// Input carries the two artifacts gathered from the target folder.
type Input struct {
	// Tree is the indented file listing, one entry per line.
	Tree string
	// Readme is the verbatim README contents, possibly empty.
	Readme string
}

// Diagram is the model's answer split into its two sections.
type Diagram struct {
	// Mapping is the body of the component mapping section.
	Mapping string
	// Markup is the Mermaid flowchart text written to the output file.
	Markup string
}
