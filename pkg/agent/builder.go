package agent

import (
	"fmt"
	"strings"

	"idea-forge-be/pkg/propagation"
)

// EditPromptBuilder assembles the prompt for a single section edit turn.
// The structure mirrors the contextual builders used elsewhere: tagged
// blocks for context, task, guidelines and the required response format.
type EditPromptBuilder struct {
	project *ProjectContext
	stage   propagation.Stage
	section string
	message string
}

func NewEditPromptBuilder(project *ProjectContext, stage propagation.Stage, section, message string) *EditPromptBuilder {
	return &EditPromptBuilder{
		project: project,
		stage:   stage,
		section: section,
		message: message,
	}
}

func (b *EditPromptBuilder) Build() string {
	var prompt strings.Builder

	b.writeProjectContext(&prompt)
	b.writeTask(&prompt)
	b.writeGuidelines(&prompt)
	b.writeResponseFormat(&prompt)
	b.writeUserMessage(&prompt)

	return prompt.String()
}

func (b *EditPromptBuilder) writeProjectContext(prompt *strings.Builder) {
	prompt.WriteString("<project_context>\n")

	if idea := b.project.Idea; idea != nil {
		prompt.WriteString("## Stage: ideation\n")
		writeSection(prompt, "title", idea.Title)
		writeSection(prompt, "objective", idea.Objective)
		writeSection(prompt, "problem", idea.Problem)
		writeSection(prompt, "scope", idea.Scope)
	}
	if plan := b.project.ActionPlan; plan != nil {
		prompt.WriteString("## Stage: action_plan\n")
		writeSection(prompt, "functional_requirements", plan.FunctionalRequirements)
		writeSection(prompt, "non_functional_requirements", plan.NonFunctionalRequirements)
		writeSection(prompt, "business_logic_flow", plan.BusinessLogicFlow)
	}
	if arch := b.project.Architecture; arch != nil {
		prompt.WriteString("## Stage: architecture\n")
		writeSection(prompt, "user_stories", arch.UserStories)
		writeSection(prompt, "database_type", arch.DatabaseType)
		writeSection(prompt, "database_schema", arch.DatabaseSchema)
		writeSection(prompt, "entities_relationships", arch.EntitiesRelationships)
		writeSection(prompt, "tech_stack", arch.TechStack)
		writeSection(prompt, "architecture_pattern", arch.ArchitecturePattern)
		writeSection(prompt, "system_architecture", arch.SystemArchitecture)
	}

	prompt.WriteString("</project_context>\n\n")
}

func (b *EditPromptBuilder) writeTask(prompt *strings.Builder) {
	prompt.WriteString("<task>\n")
	prompt.WriteString(fmt.Sprintf(
		"You are a software project planning assistant. The user is editing the \"%s\" section of the \"%s\" stage.\n",
		b.section, b.stage.Key(),
	))
	prompt.WriteString("Apply the user's instruction to that section and produce its complete new content.\n")
	prompt.WriteString("Then decide which OTHER sections (in this stage or in the other stages shown above) must also change to stay consistent with the edit, and produce their complete new content too.\n")
	prompt.WriteString("</task>\n\n")
}

func (b *EditPromptBuilder) writeGuidelines(prompt *strings.Builder) {
	prompt.WriteString("<guidelines>\n")
	prompt.WriteString("- Keep the user's language and tone.\n")
	prompt.WriteString("- updatedSection and every propagated content value are full replacements, never diffs.\n")
	prompt.WriteString("- addedText lists must contain VERBATIM substrings of the new content that did not exist before the edit.\n")
	prompt.WriteString("- Use null content for every section that needs no change.\n")
	prompt.WriteString("- Only propagate when consistency genuinely requires it; do not rewrite sections gratuitously.\n")
	prompt.WriteString("- If the instruction is off-topic for the project, redirect the user in reply and change nothing.\n")
	prompt.WriteString("</guidelines>\n\n")
}

func (b *EditPromptBuilder) writeResponseFormat(prompt *strings.Builder) {
	prompt.WriteString("<response_format>\n")
	prompt.WriteString("Answer ONLY with a JSON object, no prose around it:\n")
	prompt.WriteString(`{
  "reply": "conversational message for the user",
  "updatedSection": "complete new content of the edited section",
  "addedText": ["verbatim new fragment", "..."],
  "propagation": {
    "ideation": {"title": {"content": null, "addedText": []}, "objective": {"content": null, "addedText": []}, "problem": {"content": null, "addedText": []}, "scope": {"content": null, "addedText": []}},
    "action_plan": {"functional_requirements": {"content": null, "addedText": []}, "non_functional_requirements": {"content": null, "addedText": []}, "business_logic_flow": {"content": null, "addedText": []}},
    "architecture": {"user_stories": {"content": null, "addedText": []}, "database_type": {"content": null, "addedText": []}, "database_schema": {"content": null, "addedText": []}, "entities_relationships": {"content": null, "addedText": []}, "tech_stack": {"content": null, "addedText": []}, "architecture_pattern": {"content": null, "addedText": []}, "system_architecture": {"content": null, "addedText": []}}
  }
}`)
	prompt.WriteString("\n</response_format>\n\n")
}

func (b *EditPromptBuilder) writeUserMessage(prompt *strings.Builder) {
	prompt.WriteString("User instruction: ")
	prompt.WriteString(b.message)
	prompt.WriteString("\n")
}

func writeSection(prompt *strings.Builder, key, value string) {
	if value == "" {
		value = "(empty)"
	}
	prompt.WriteString(fmt.Sprintf("### %s\n%s\n\n", key, value))
}
