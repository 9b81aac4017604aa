package agent

import (
	"context"

	"idea-forge-be/pkg/llm"
	"idea-forge-be/pkg/propagation"
)

// Editor runs section-edit turns against the configured LLM backend.
type Editor struct {
	provider llm.LLMProvider
}

func NewEditor(provider llm.LLMProvider) *Editor {
	return &Editor{provider: provider}
}

// EditSection performs exactly one model round trip for one edit turn.
// Transport errors bubble up wrapped with the llm sentinel errors; a response
// that cannot be parsed as the requested JSON comes back as a degraded
// EditResult, never as an error.
func (e *Editor) EditSection(
	ctx context.Context,
	project *ProjectContext,
	stage propagation.Stage,
	section, message string,
) (*EditResult, error) {
	prompt := NewEditPromptBuilder(project, stage, section, message).Build()

	raw, err := e.provider.Generate(ctx, prompt,
		llm.WithTemperature(0.4),
		llm.WithMaxTokens(8000),
	)
	if err != nil {
		return nil, err
	}

	return ParseEditResult(raw), nil
}
