package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"idea-forge-be/pkg/llm"
)

// Generator produces first-draft stage content: the polished version of a raw
// idea, the initial action plan derived from a completed idea, the initial
// architecture derived from a completed plan, and the development module
// breakdown derived from a completed architecture.
type Generator struct {
	provider llm.LLMProvider
}

func NewGenerator(provider llm.LLMProvider) *Generator {
	return &Generator{provider: provider}
}

// ImproveIdea rewrites the four ideation sections of a freshly created idea
// into sharper, more specific versions.
func (g *Generator) ImproveIdea(ctx context.Context, idea *IdeaContext) (*IdeaContext, error) {
	var prompt strings.Builder
	prompt.WriteString("<task>\nYou are a software project ideation assistant. Improve the following raw idea: make the title specific, give the objective measurable outcomes, name the target user and their pain in the problem, and describe a concrete MVP in the scope.\n</task>\n\n")
	prompt.WriteString("<idea>\n")
	writeSection(&prompt, "title", idea.Title)
	writeSection(&prompt, "objective", idea.Objective)
	writeSection(&prompt, "problem", idea.Problem)
	writeSection(&prompt, "scope", idea.Scope)
	prompt.WriteString("</idea>\n\n")
	prompt.WriteString("Answer ONLY with JSON: {\"title\": \"...\", \"objective\": \"...\", \"problem\": \"...\", \"scope\": \"...\"}\n")

	raw, err := g.provider.Generate(ctx, prompt.String(), llm.WithTemperature(0.7))
	if err != nil {
		return nil, err
	}

	var out struct {
		Title     string `json:"title"`
		Objective string `json:"objective"`
		Problem   string `json:"problem"`
		Scope     string `json:"scope"`
	}
	if err := unmarshalObject(raw, &out); err != nil {
		return nil, err
	}
	return &IdeaContext{
		Title:     out.Title,
		Objective: out.Objective,
		Problem:   out.Problem,
		Scope:     out.Scope,
	}, nil
}

// GenerateActionPlan derives the initial action plan content from a completed
// idea.
func (g *Generator) GenerateActionPlan(ctx context.Context, idea *IdeaContext) (*ActionPlanContext, error) {
	var prompt strings.Builder
	prompt.WriteString("<task>\nYou are a software project planning assistant. From the idea below, produce the initial action plan: numbered functional requirements (RF-001...), numbered non-functional requirements (RNF-001...) and the main business logic flow step by step.\n</task>\n\n")
	prompt.WriteString("<idea>\n")
	writeSection(&prompt, "title", idea.Title)
	writeSection(&prompt, "objective", idea.Objective)
	writeSection(&prompt, "problem", idea.Problem)
	writeSection(&prompt, "scope", idea.Scope)
	prompt.WriteString("</idea>\n\n")
	prompt.WriteString("Answer ONLY with JSON: {\"functional_requirements\": \"...\", \"non_functional_requirements\": \"...\", \"business_logic_flow\": \"...\"}\n")

	raw, err := g.provider.Generate(ctx, prompt.String(), llm.WithTemperature(0.7), llm.WithMaxTokens(8000))
	if err != nil {
		return nil, err
	}

	var out struct {
		FunctionalRequirements    string `json:"functional_requirements"`
		NonFunctionalRequirements string `json:"non_functional_requirements"`
		BusinessLogicFlow         string `json:"business_logic_flow"`
	}
	if err := unmarshalObject(raw, &out); err != nil {
		return nil, err
	}
	return &ActionPlanContext{
		FunctionalRequirements:    out.FunctionalRequirements,
		NonFunctionalRequirements: out.NonFunctionalRequirements,
		BusinessLogicFlow:         out.BusinessLogicFlow,
	}, nil
}

// GenerateArchitecture derives the initial architecture content from a
// completed idea and action plan.
func (g *Generator) GenerateArchitecture(ctx context.Context, idea *IdeaContext, plan *ActionPlanContext) (*ArchitectureContext, error) {
	var prompt strings.Builder
	prompt.WriteString("<task>\nYou are an expert software architect. From the project below, produce: 8-12 prioritized user stories (\"As a [role], I want [feature], so that [benefit]\"), the most appropriate database type (relational, nosql or hybrid) with justification, a ready-to-implement database schema, the domain entities and their relationships, a full tech stack recommendation, the best-fitting architecture pattern, and the overall system architecture with components and data flow.\n</task>\n\n")
	prompt.WriteString("<project>\n")
	writeSection(&prompt, "title", idea.Title)
	writeSection(&prompt, "objective", idea.Objective)
	writeSection(&prompt, "functional_requirements", plan.FunctionalRequirements)
	writeSection(&prompt, "non_functional_requirements", plan.NonFunctionalRequirements)
	writeSection(&prompt, "business_logic_flow", plan.BusinessLogicFlow)
	prompt.WriteString("</project>\n\n")
	prompt.WriteString("Answer ONLY with JSON: {\"user_stories\": \"...\", \"database_type\": \"...\", \"database_schema\": \"...\", \"entities_relationships\": \"...\", \"tech_stack\": \"...\", \"architecture_pattern\": \"...\", \"system_architecture\": \"...\"}\n")

	raw, err := g.provider.Generate(ctx, prompt.String(), llm.WithTemperature(0.7), llm.WithMaxTokens(8000))
	if err != nil {
		return nil, err
	}

	var out struct {
		UserStories           string `json:"user_stories"`
		DatabaseType          string `json:"database_type"`
		DatabaseSchema        string `json:"database_schema"`
		EntitiesRelationships string `json:"entities_relationships"`
		TechStack             string `json:"tech_stack"`
		ArchitecturePattern   string `json:"architecture_pattern"`
		SystemArchitecture    string `json:"system_architecture"`
	}
	if err := unmarshalObject(raw, &out); err != nil {
		return nil, err
	}
	return &ArchitectureContext{
		UserStories:           out.UserStories,
		DatabaseType:          out.DatabaseType,
		DatabaseSchema:        out.DatabaseSchema,
		EntitiesRelationships: out.EntitiesRelationships,
		TechStack:             out.TechStack,
		ArchitecturePattern:   out.ArchitecturePattern,
		SystemArchitecture:    out.SystemArchitecture,
	}, nil
}

// ModuleDraft is one development module proposed by the model.
type ModuleDraft struct {
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Functionality    string   `json:"functionality"`
	Dependencies     []string `json:"dependencies"`
	TechnicalDetails string   `json:"technical_details"`
	Priority         int      `json:"priority"`
}

// GenerateModules breaks a completed architecture down into ordered
// development modules.
func (g *Generator) GenerateModules(ctx context.Context, idea *IdeaContext, arch *ArchitectureContext) ([]ModuleDraft, error) {
	var prompt strings.Builder
	prompt.WriteString("<task>\nYou are a technical lead. Break the project below into 5-10 development modules a small team could build in order. For each module give name, description, functionality, the names of modules it depends on, technical details, and a priority (1 = build first).\n</task>\n\n")
	prompt.WriteString("<project>\n")
	writeSection(&prompt, "title", idea.Title)
	writeSection(&prompt, "user_stories", arch.UserStories)
	writeSection(&prompt, "tech_stack", arch.TechStack)
	writeSection(&prompt, "architecture_pattern", arch.ArchitecturePattern)
	writeSection(&prompt, "system_architecture", arch.SystemArchitecture)
	prompt.WriteString("</project>\n\n")
	prompt.WriteString("Answer ONLY with JSON: {\"modules\": [{\"name\": \"...\", \"description\": \"...\", \"functionality\": \"...\", \"dependencies\": [\"...\"], \"technical_details\": \"...\", \"priority\": 1}]}\n")

	raw, err := g.provider.Generate(ctx, prompt.String(), llm.WithTemperature(0.7), llm.WithMaxTokens(8000))
	if err != nil {
		return nil, err
	}

	var out struct {
		Modules []ModuleDraft `json:"modules"`
	}
	if err := unmarshalObject(raw, &out); err != nil {
		return nil, err
	}
	return out.Modules, nil
}

func unmarshalObject(raw string, target any) error {
	payload := extractJSONObject(raw)
	if payload == "" {
		return fmt.Errorf("agent: no JSON object in model response")
	}
	if err := json.Unmarshal([]byte(payload), target); err != nil {
		return fmt.Errorf("agent: decode model response: %w", err)
	}
	return nil
}
