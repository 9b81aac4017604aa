package agent

import (
	"context"
	"strings"

	"idea-forge-be/pkg/llm"
)

// Assistant answers free-form questions about a project without editing any
// section. Answers are plain text, not JSON.
type Assistant struct {
	provider llm.LLMProvider
}

func NewAssistant(provider llm.LLMProvider) *Assistant {
	return &Assistant{provider: provider}
}

// HistoryTurn is one prior exchange included for conversational continuity.
type HistoryTurn struct {
	Role    string
	Content string
}

// Answer runs one question-answer round trip over the full project context.
func (a *Assistant) Answer(ctx context.Context, project *ProjectContext, history []HistoryTurn, question string) (string, error) {
	var prompt strings.Builder
	prompt.WriteString("<task>\nYou are a software project planning assistant. Answer the user's question about their project below. Be concrete and concise. Do NOT propose section rewrites; this is a read-only conversation.\n</task>\n\n")

	prompt.WriteString("<project_context>\n")
	if idea := project.Idea; idea != nil {
		prompt.WriteString("## Stage: ideation\n")
		writeSection(&prompt, "title", idea.Title)
		writeSection(&prompt, "objective", idea.Objective)
		writeSection(&prompt, "problem", idea.Problem)
		writeSection(&prompt, "scope", idea.Scope)
	}
	if plan := project.ActionPlan; plan != nil {
		prompt.WriteString("## Stage: action_plan\n")
		writeSection(&prompt, "functional_requirements", plan.FunctionalRequirements)
		writeSection(&prompt, "non_functional_requirements", plan.NonFunctionalRequirements)
		writeSection(&prompt, "business_logic_flow", plan.BusinessLogicFlow)
	}
	if arch := project.Architecture; arch != nil {
		prompt.WriteString("## Stage: architecture\n")
		writeSection(&prompt, "user_stories", arch.UserStories)
		writeSection(&prompt, "tech_stack", arch.TechStack)
		writeSection(&prompt, "architecture_pattern", arch.ArchitecturePattern)
		writeSection(&prompt, "system_architecture", arch.SystemArchitecture)
	}
	prompt.WriteString("</project_context>\n\n")

	if len(history) > 0 {
		prompt.WriteString("<conversation>\n")
		for _, turn := range history {
			prompt.WriteString(turn.Role)
			prompt.WriteString(": ")
			prompt.WriteString(turn.Content)
			prompt.WriteString("\n")
		}
		prompt.WriteString("</conversation>\n\n")
	}

	prompt.WriteString("<question>\n")
	prompt.WriteString(question)
	prompt.WriteString("\n</question>\n")

	return a.provider.Generate(ctx, prompt.String(), llm.WithTemperature(0.7))
}
