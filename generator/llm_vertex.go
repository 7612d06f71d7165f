package generator

import (
	"context"
	"errors"

	genai "google.golang.org/genai"
)

// VertexLLM calls Gemini models through the Vertex AI backend of the
// official genai client.
type VertexLLM struct {
	Model  string
	APIKey string
}

func NewVertexLLMFromConfig(cfg *LLMSettings) (*VertexLLM, error) {
	if cfg == nil {
		return nil, errors.New("llm config is nil")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("vertex api key missing; set VERTEX_API_KEY")
	}
	if cfg.Model == "" {
		return nil, errors.New("llm model is required")
	}
	return &VertexLLM{Model: cfg.Model, APIKey: cfg.APIKey}, nil
}

func (v *VertexLLM) Complete(ctx context.Context, prompt Prompt) (string, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendVertexAI,
		APIKey:  v.APIKey,
	})
	if err != nil {
		return "", err
	}

	resp, err := cli.Models.GenerateContent(ctx, v.Model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt.User}}}},
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: prompt.System}}},
		},
	)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
