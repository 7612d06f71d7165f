package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLLM records the prompt and returns a canned reply.
type stubLLM struct {
	reply  string
	err    error
	prompt Prompt
}

func (s *stubLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	s.prompt = prompt
	return s.reply, s.err
}

func TestAgentGenerate(t *testing.T) {
	stub := &stubLLM{reply: "<component_mapping>- App: ./</component_mapping>\nflowchart TD\nA-->B"}
	agent, err := NewAgent(stub)
	require.NoError(t, err)

	d, err := agent.Generate(context.Background(), Input{Tree: "a.txt", Readme: "Hello"})
	require.NoError(t, err)
	assert.Equal(t, "flowchart TD\nA-->B", d.Markup)
	assert.Equal(t, "- App: ./", d.Mapping)
	assert.Contains(t, stub.prompt.User, "a.txt")
	assert.Contains(t, stub.prompt.User, "Hello")
}

func TestAgentGeneratePropagatesProviderError(t *testing.T) {
	boom := errors.New("provider down")
	agent, err := NewAgent(&stubLLM{err: boom})
	require.NoError(t, err)

	_, err = agent.Generate(context.Background(), Input{})
	require.ErrorIs(t, err, boom)
}

func TestAgentGenerateEmptyReply(t *testing.T) {
	// A provider reply with no text is not a transport error; it fails at
	// extraction.
	agent, err := NewAgent(&stubLLM{reply: ""})
	require.NoError(t, err)

	_, err = agent.Generate(context.Background(), Input{})
	require.ErrorIs(t, err, ErrNoMapping)
}

func TestNewAgentRequiresClient(t *testing.T) {
	_, err := NewAgent(nil)
	require.Error(t, err)
}

func TestMockLLMReplyIsExtractable(t *testing.T) {
	raw, err := MockLLM{}.Complete(context.Background(), Prompt{})
	require.NoError(t, err)

	d, err := PostProcess(raw)
	require.NoError(t, err)
	assert.Contains(t, d.Markup, "flowchart TD")
}
