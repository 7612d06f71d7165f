package generator

import (
	"context"
	"errors"
)

// Agent turns scanned folder artifacts into a diagram with one model call.
type Agent struct {
	llm LLMClient
}

func NewAgent(llm LLMClient) (*Agent, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	return &Agent{llm: llm}, nil
}

// Generate builds the prompt, calls the provider once, and extracts the
// diagram from the reply.
func (a *Agent) Generate(ctx context.Context, in Input) (Diagram, error) {
	raw, err := a.llm.Complete(ctx, BuildDiagramPrompt(in))
	if err != nil {
		return Diagram{}, err
	}
	return PostProcess(raw)
}
